// Package docs registers the OpenAPI document served under /swagger/. It is kept in the
// layout swag init produces so `swag init -g cmd/api/main.go` can regenerate it from the
// controller annotations; edits here must stay in sync with those annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/colleges/{id}/decision": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Moves a Pending college to Approved or Rejected. Only one concurrent decision can succeed; the others get 409.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve or reject a pending college",
                "parameters": [
                    {"type": "string", "description": "College ID", "name": "id", "in": "path", "required": true},
                    {"description": "Decision (Approved or Rejected)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CollegeDecisionRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the updated college", "schema": {"$ref": "#/definitions/controllers.CollegeDecisionSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or invalid_id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/colleges/{id}/suspend": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Moves an Approved college to Suspended, then suspends its active users and its draft or published events. When the college is already suspended the cascade is re-applied and the summary is returned with 409.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Suspend a college and halt its users and events",
                "parameters": [
                    {"type": "string", "description": "College ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the cascade summary", "schema": {"$ref": "#/definitions/controllers.SuspendCollegeSuccessResponse"}},
                    "400": {"description": "error.code: invalid_id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/colleges/{id}/unsuspend": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Moves a Suspended college back to Approved, reactivates its suspended users and restores its suspended events to the state they had before suspension.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reinstate a suspended college and its users and events",
                "parameters": [
                    {"type": "string", "description": "College ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the cascade summary", "schema": {"$ref": "#/definitions/controllers.UnsuspendCollegeSuccessResponse"}},
                    "400": {"description": "error.code: invalid_id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/reports": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns reports newest first with offset pagination.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List filed reports",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/controllers.ListReportsSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/{modelType}/{id}/report": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Persists the report and notifies every admin plus the stakeholder (the user, the event's team leader or the ad's sponsor).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "File a report against a user, event or ad",
                "parameters": [
                    {"type": "string", "description": "user, event or ad", "name": "modelType", "in": "path", "required": true},
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {"description": "Report reason", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the message and reportId", "schema": {"$ref": "#/definitions/controllers.CreateReportSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or invalid_id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/{modelType}/{id}/suspension": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sets the record to its suspended or active state and notifies the admins and the affected stakeholder. The update overwrites whatever state the record is in, so repeating the same target is allowed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Suspend or reactivate a user, event or ad",
                "parameters": [
                    {"type": "string", "description": "user, event or ad", "name": "modelType", "in": "path", "required": true},
                    {"type": "string", "description": "Record ID", "name": "id", "in": "path", "required": true},
                    {"description": "targetStatus: suspended or active", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ToggleSuspensionRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the updated document", "schema": {"$ref": "#/definitions/controllers.ToggleSuspensionSuccessResponse"}},
                    "400": {"description": "error.code: bad_request or invalid_id", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "403": {"description": "error.code: forbidden", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/inbox": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the notifications addressed to the current user, newest first.",
                "produces": ["application/json"],
                "tags": ["inbox"],
                "summary": "List my notifications",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/controllers.ListInboxSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.SuspendCollegeResponse": {
            "type": "object",
            "properties": {
                "collegeId": {"type": "string"},
                "eventsSuspended": {"type": "integer"},
                "message": {"type": "string"},
                "usersSuspended": {"type": "integer"}
            }
        },
        "controllers.SuspendCollegeSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.SuspendCollegeResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.UnsuspendCollegeResponse": {
            "type": "object",
            "properties": {
                "collegeId": {"type": "string"},
                "eventsUnsuspended": {"type": "integer"},
                "message": {"type": "string"},
                "usersUnsuspended": {"type": "integer"}
            }
        },
        "controllers.UnsuspendCollegeSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.UnsuspendCollegeResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CollegeDecisionRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "controllers.CollegeDecisionResponse": {
            "type": "object",
            "properties": {
                "college": {"$ref": "#/definitions/domain.College"},
                "message": {"type": "string"}
            }
        },
        "controllers.CollegeDecisionSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.CollegeDecisionResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.CreateReportRequest": {
            "type": "object",
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "controllers.CreateReportSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.ReportReceipt"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListInboxResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Notification"}},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.ListInboxSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ListInboxResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListReportsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Report"}},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.ListReportsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ListReportsResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ToggleSuspensionRequest": {
            "type": "object",
            "properties": {
                "targetStatus": {"type": "string"}
            }
        },
        "controllers.ToggleSuspensionResponse": {
            "type": "object",
            "properties": {
                "document": {},
                "message": {"type": "string"},
                "notificationId": {"type": "string"}
            }
        },
        "controllers.ToggleSuspensionSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ToggleSuspensionResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.College": {
            "type": "object",
            "properties": {
                "approved_by": {"type": "string"},
                "code": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Notification": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "from": {"type": "string"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "recipients": {"type": "array", "items": {"type": "string"}},
                "subject": {"$ref": "#/definitions/domain.SubjectRef"},
                "summary": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "domain.Report": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "notification_id": {"type": "string"},
                "reason": {"type": "string"},
                "reporter_id": {"type": "string"},
                "target": {"$ref": "#/definitions/domain.SubjectRef"}
            }
        },
        "domain.ReportReceipt": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "reportId": {"type": "string"}
            }
        },
        "domain.SubjectRef": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CampusHub Admin API",
	Description:      "Admin moderation for colleges, users, events and sponsor ads.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
