package controllers

import (
	"log/slog"
	"net/http"

	"campushub/internal/delivery/http/helpers"
	"campushub/internal/delivery/http/middleware"
	"campushub/internal/domain"
)

// ListInboxResponse is the response body for GET /inbox.
type ListInboxResponse struct {
	Items      []*domain.Notification `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListInboxSuccessResponse is the success response envelope for GET /inbox (200).
type ListInboxSuccessResponse struct {
	Data  ListInboxResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type InboxController struct {
	Logger  *slog.Logger
	Service domain.InboxService
}

func NewInboxController(logger *slog.Logger, svc domain.InboxService) *InboxController {
	return &InboxController{
		Logger:  logger,
		Service: svc,
	}
}

// ListInbox godoc
// @Summary List my notifications
// @Description Returns the notifications addressed to the current user, newest first.
// @Tags inbox
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListInboxSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /inbox [get]
func (c *InboxController) ListInbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.ListInbox(r.Context(), userID, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if list == nil {
		list = []*domain.Notification{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListInboxResponse{Items: list, Pagination: meta})
}
