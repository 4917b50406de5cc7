package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"campushub/internal/delivery/http/helpers"
	"campushub/internal/delivery/http/middleware"
	"campushub/internal/domain"
)

// CollegeDecisionRequest is the request body for POST /admin/colleges/{id}/decision.
type CollegeDecisionRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (c CollegeDecisionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Status) == "" {
		errs = append(errs, "status is required")
	}
	return errs
}

// CollegeDecisionResponse is the response body of a college registration decision.
type CollegeDecisionResponse struct {
	Message string          `json:"message"`
	College *domain.College `json:"college"`
}

// CollegeDecisionSuccessResponse is the success response envelope for POST /admin/colleges/{id}/decision (200).
type CollegeDecisionSuccessResponse struct {
	Data  CollegeDecisionResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// SuspendCollegeResponse reports how many users and events a college suspension halted.
// swagger:model SuspendCollegeResponse
type SuspendCollegeResponse struct {
	Message         string `json:"message,omitempty"`
	CollegeID       string `json:"collegeId"`
	UsersSuspended  int64  `json:"usersSuspended"`
	EventsSuspended int64  `json:"eventsSuspended"`
}

// SuspendCollegeSuccessResponse is the success response envelope for POST /admin/colleges/{id}/suspend (200).
type SuspendCollegeSuccessResponse struct {
	Data  SuspendCollegeResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// UnsuspendCollegeResponse reports how many users and events a college reinstatement restored.
// swagger:model UnsuspendCollegeResponse
type UnsuspendCollegeResponse struct {
	Message           string `json:"message,omitempty"`
	CollegeID         string `json:"collegeId"`
	UsersUnsuspended  int64  `json:"usersUnsuspended"`
	EventsUnsuspended int64  `json:"eventsUnsuspended"`
}

// UnsuspendCollegeSuccessResponse is the success response envelope for POST /admin/colleges/{id}/unsuspend (200).
type UnsuspendCollegeSuccessResponse struct {
	Data  UnsuspendCollegeResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ToggleSuspensionRequest is the request body for POST /admin/{modelType}/{id}/suspension.
type ToggleSuspensionRequest struct {
	TargetStatus string `json:"targetStatus"`
}

// Validate implements Validator.
func (t ToggleSuspensionRequest) Validate() []string {
	var errs []string
	if t.TargetStatus == "" {
		errs = append(errs, "targetStatus is required")
	}
	return errs
}

// ToggleSuspensionResponse carries the updated document and the queued notification.
type ToggleSuspensionResponse struct {
	Message        string `json:"message"`
	Document       any    `json:"document"`
	NotificationID string `json:"notificationId"`
}

// ToggleSuspensionSuccessResponse is the success response envelope for POST /admin/{modelType}/{id}/suspension (200).
type ToggleSuspensionSuccessResponse struct {
	Data  ToggleSuspensionResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// CreateReportRequest is the request body for POST /admin/{modelType}/{id}/report.
type CreateReportRequest struct {
	Reason string `json:"reason"`
}

// CreateReportSuccessResponse is the success response envelope for POST /admin/{modelType}/{id}/report (201).
type CreateReportSuccessResponse struct {
	Data  domain.ReportReceipt `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ListReportsResponse is the response body for GET /admin/reports.
type ListReportsResponse struct {
	Items      []*domain.Report       `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListReportsSuccessResponse is the success response envelope for GET /admin/reports (200).
type ListReportsSuccessResponse struct {
	Data  ListReportsResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type ModerationController struct {
	Logger  *slog.Logger
	Service domain.ModerationService
}

func NewModerationController(logger *slog.Logger, svc domain.ModerationService) *ModerationController {
	return &ModerationController{
		Logger:  logger,
		Service: svc,
	}
}

// DecideCollegeRegistration godoc
// @Summary Approve or reject a pending college
// @Description Moves a Pending college to Approved or Rejected. Only one concurrent decision can succeed; the others get 409.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Param body body CollegeDecisionRequest true "Decision (Approved or Rejected)"
// @Success 200 {object} controllers.CollegeDecisionSuccessResponse "data contains the updated college"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/colleges/{id}/decision [post]
func (c *ModerationController) DecideCollegeRegistration(w http.ResponseWriter, r *http.Request) {
	collegeID := r.PathValue("id")
	if collegeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing college id")
		return
	}
	var req CollegeDecisionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	college, err := c.Service.HandleCollegeRegistration(r.Context(), collegeID, domain.Status(req.Status), actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CollegeDecisionResponse{
		Message: fmt.Sprintf("College registration for %s successfully %s.", college.Name, college.Status),
		College: college,
	})
}

// SuspendCollege godoc
// @Summary Suspend a college and halt its users and events
// @Description Moves an Approved college to Suspended, then suspends its active users and its draft or published events. When the college is already suspended the cascade is re-applied and the summary is returned with 409.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} controllers.SuspendCollegeSuccessResponse "data contains the cascade summary"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/colleges/{id}/suspend [post]
func (c *ModerationController) SuspendCollege(w http.ResponseWriter, r *http.Request) {
	c.moveCollege(w, r, c.Service.SuspendCollege, func(s *domain.CascadeSummary, message string) any {
		return SuspendCollegeResponse{Message: message, CollegeID: s.CollegeID, UsersSuspended: s.Users, EventsSuspended: s.Events}
	}, "College %s successfully suspended, and related entities halted.")
}

// UnsuspendCollege godoc
// @Summary Reinstate a suspended college and its users and events
// @Description Moves a Suspended college back to Approved, reactivates its suspended users and restores its suspended events to the state they had before suspension.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "College ID"
// @Success 200 {object} controllers.UnsuspendCollegeSuccessResponse "data contains the cascade summary"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/colleges/{id}/unsuspend [post]
func (c *ModerationController) UnsuspendCollege(w http.ResponseWriter, r *http.Request) {
	c.moveCollege(w, r, c.Service.UnsuspendCollege, func(s *domain.CascadeSummary, message string) any {
		return UnsuspendCollegeResponse{Message: message, CollegeID: s.CollegeID, UsersUnsuspended: s.Users, EventsUnsuspended: s.Events}
	}, "College %s successfully reinstated, and related entities restored.")
}

type collegeMove func(ctx context.Context, collegeID, actorID string) (*domain.CascadeSummary, error)

// cascadeView shapes a summary into the direction's response body.
type cascadeView func(s *domain.CascadeSummary, message string) any

func (c *ModerationController) moveCollege(w http.ResponseWriter, r *http.Request, move collegeMove, view cascadeView, successFormat string) {
	collegeID := r.PathValue("id")
	if collegeID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing college id")
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	summary, err := move(r.Context(), collegeID, actorID)
	if err != nil {
		if summary != nil && errors.Is(err, domain.ErrConflict) {
			helpers.WriteJSONErrorWithData(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error(), view(summary, ""))
			return
		}
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view(summary, fmt.Sprintf(successFormat, collegeID)))
}

// ToggleSuspension godoc
// @Summary Suspend or reactivate a user, event or ad
// @Description Sets the record to its suspended or active state and notifies the admins and the affected stakeholder. The update overwrites whatever state the record is in, so repeating the same target is allowed.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param modelType path string true "user, event or ad"
// @Param id path string true "Record ID"
// @Param body body ToggleSuspensionRequest true "targetStatus: suspended or active"
// @Success 200 {object} controllers.ToggleSuspensionSuccessResponse "data contains the updated document"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/{modelType}/{id}/suspension [post]
func (c *ModerationController) ToggleSuspension(w http.ResponseWriter, r *http.Request) {
	modelType, id := r.PathValue("modelType"), r.PathValue("id")
	if modelType == "" || id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing modelType or id")
		return
	}
	var req ToggleSuspensionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	res, err := c.Service.ToggleSuspension(r.Context(), modelType, id, req.TargetStatus, actorID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ToggleSuspensionResponse{
		Message:        res.Message,
		Document:       res.Document,
		NotificationID: res.NotificationID,
	})
}

// CreateReport godoc
// @Summary File a report against a user, event or ad
// @Description Persists the report and notifies every admin plus the stakeholder (the user, the event's team leader or the ad's sponsor).
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param modelType path string true "user, event or ad"
// @Param id path string true "Record ID"
// @Param body body CreateReportRequest true "Report reason"
// @Success 201 {object} controllers.CreateReportSuccessResponse "data contains the message and reportId"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/{modelType}/{id}/report [post]
func (c *ModerationController) CreateReport(w http.ResponseWriter, r *http.Request) {
	modelType, id := r.PathValue("modelType"), r.PathValue("id")
	if modelType == "" || id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing modelType or id")
		return
	}
	var req CreateReportRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reporterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	receipt, err := c.Service.CreateReport(r.Context(), modelType, id, req.Reason, reporterID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, receipt)
}

// ListReports godoc
// @Summary List filed reports
// @Description Returns reports newest first with offset pagination.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListReportsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/reports [get]
func (c *ModerationController) ListReports(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListReports(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if list == nil {
		list = []*domain.Report{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListReportsResponse{Items: list, Pagination: meta})
}
