package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campushub/internal/delivery/http/helpers"
	"campushub/internal/delivery/http/middleware"
	"campushub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeModerationService implements domain.ModerationService for handler tests.
type fakeModerationService struct {
	decisionErr     error
	decisionResult  *domain.College
	lastDecision    domain.Status
	lastCollegeID   string
	lastActorID     string
	cascadeErr      error
	cascadeResult   *domain.CascadeSummary
	toggleErr       error
	toggleResult    *domain.SuspensionResult
	lastModelType   string
	lastTargetID    string
	lastTarget      string
	reportErr       error
	reportResult    *domain.ReportReceipt
	lastReason      string
	listErr         error
	listResult      []*domain.Report
	listTotal       int
	lastListParams  domain.PaginationParams
	suspendCalled   bool
	unsuspendCalled bool
}

func (f *fakeModerationService) HandleCollegeRegistration(_ context.Context, collegeID string, decision domain.Status, actorID string) (*domain.College, error) {
	f.lastCollegeID, f.lastDecision, f.lastActorID = collegeID, decision, actorID
	return f.decisionResult, f.decisionErr
}

func (f *fakeModerationService) SuspendCollege(_ context.Context, collegeID, actorID string) (*domain.CascadeSummary, error) {
	f.suspendCalled = true
	f.lastCollegeID, f.lastActorID = collegeID, actorID
	return f.cascadeResult, f.cascadeErr
}

func (f *fakeModerationService) UnsuspendCollege(_ context.Context, collegeID, actorID string) (*domain.CascadeSummary, error) {
	f.unsuspendCalled = true
	f.lastCollegeID, f.lastActorID = collegeID, actorID
	return f.cascadeResult, f.cascadeErr
}

func (f *fakeModerationService) ToggleSuspension(_ context.Context, modelType, id, targetStatus, actorID string) (*domain.SuspensionResult, error) {
	f.lastModelType, f.lastTargetID, f.lastTarget, f.lastActorID = modelType, id, targetStatus, actorID
	return f.toggleResult, f.toggleErr
}

func (f *fakeModerationService) CreateReport(_ context.Context, modelType, id, reason, reporterID string) (*domain.ReportReceipt, error) {
	f.lastModelType, f.lastTargetID, f.lastReason, f.lastActorID = modelType, id, reason, reporterID
	return f.reportResult, f.reportErr
}

func (f *fakeModerationService) ListReports(_ context.Context, params domain.PaginationParams) ([]*domain.Report, int, error) {
	f.lastListParams = params
	return f.listResult, f.listTotal, f.listErr
}

func withAdmin(req *http.Request) *http.Request {
	return req.WithContext(middleware.SetPrincipal(req.Context(), &domain.Principal{
		UserID: "admin-1",
		Roles:  []string{domain.RoleAdmin},
	}))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	return envelope
}

func TestModerationController_DecideCollegeRegistration(t *testing.T) {
	tests := []struct {
		name          string
		collegeID     string
		body          string
		fakeErr       error
		noUser        bool
		wantStatus    int
		wantCode      string
		wantMessage   string
		wantDecision  domain.Status
		checkResponse bool
	}{
		{
			name:          "approve",
			collegeID:     "college-1",
			body:          `{"status":"Approved"}`,
			wantStatus:    http.StatusOK,
			wantMessage:   "College registration for Riverside successfully Approved.",
			wantDecision:  domain.CollegeApproved,
			checkResponse: true,
		},
		{
			name:       "missing status",
			collegeID:  "college-1",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unknown field rejected",
			collegeID:  "college-1",
			body:       `{"status":"Approved","by":"me"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no principal",
			collegeID:  "college-1",
			body:       `{"status":"Approved"}`,
			noUser:     true,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "invalid decision",
			collegeID:  "college-1",
			body:       `{"status":"Suspended"}`,
			fakeErr:    domain.NewInvalidInput("decision must be Approved or Rejected"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "malformed id",
			collegeID:  "nope",
			body:       `{"status":"Approved"}`,
			fakeErr:    domain.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeInvalidID,
		},
		{
			name:       "not found",
			collegeID:  "college-9",
			body:       `{"status":"Approved"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:      "already decided",
			collegeID: "college-1",
			body:      `{"status":"Rejected"}`,
			fakeErr: &domain.StatusConflictError{
				Kind: domain.KindCollege, ID: "college-1", Actual: domain.CollegeApproved,
				Expected: []domain.Status{domain.CollegePending}, Target: domain.CollegeRejected,
			},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "store failure",
			collegeID:  "college-1",
			body:       `{"status":"Approved"}`,
			fakeErr:    errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeModerationService{
				decisionErr:    tt.fakeErr,
				decisionResult: &domain.College{ID: tt.collegeID, Name: "Riverside", Status: domain.CollegeApproved},
			}
			ctrl := NewModerationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/colleges/"+tt.collegeID+"/decision", bytes.NewBufferString(tt.body))
			req.SetPathValue("id", tt.collegeID)
			if !tt.noUser {
				req = withAdmin(req)
			}
			rr := httptest.NewRecorder()

			ctrl.DecideCollegeRegistration(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok, "data must be object")
			assert.Equal(t, tt.wantMessage, data["message"])
			assert.Equal(t, tt.wantDecision, fake.lastDecision)
			assert.Equal(t, "admin-1", fake.lastActorID)
			assert.Equal(t, tt.collegeID, fake.lastCollegeID)
		})
	}
}

func TestModerationController_SuspendCollege(t *testing.T) {
	summary := &domain.CascadeSummary{CollegeID: "college-1", Direction: domain.CascadeSuspend, Users: 4, Events: 2}

	tests := []struct {
		name       string
		fakeErr    error
		result     *domain.CascadeSummary
		wantStatus int
		wantCode   string
		wantData   bool
	}{
		{
			name:       "success",
			result:     summary,
			wantStatus: http.StatusOK,
			wantData:   true,
		},
		{
			name:   "already suspended still reports repaired cascade",
			result: &domain.CascadeSummary{CollegeID: "college-1", Direction: domain.CascadeSuspend},
			fakeErr: &domain.StatusConflictError{
				Kind: domain.KindCollege, ID: "college-1", Actual: domain.CollegeSuspended,
				Expected: []domain.Status{domain.CollegeApproved}, Target: domain.CollegeSuspended,
			},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
			wantData:   true,
		},
		{
			name: "not approved",
			fakeErr: &domain.StatusConflictError{
				Kind: domain.KindCollege, ID: "college-1", Actual: domain.CollegePending,
				Expected: []domain.Status{domain.CollegeApproved}, Target: domain.CollegeSuspended,
			},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "incomplete cascade",
			result:     summary,
			fakeErr:    fmt.Errorf("college college-1 is Suspended but cascade is incomplete: %w", errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
		{
			name:       "not found",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeModerationService{cascadeResult: tt.result, cascadeErr: tt.fakeErr}
			ctrl := NewModerationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/colleges/college-1/suspend", nil)
			req.SetPathValue("id", "college-1")
			req = withAdmin(req)
			rr := httptest.NewRecorder()

			ctrl.SuspendCollege(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.True(t, fake.suspendCalled)
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			} else {
				require.Nil(t, envelope.Error)
			}
			if !tt.wantData {
				assert.Nil(t, envelope.Data)
				return
			}
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok, "data must be object")
			assert.Equal(t, "college-1", data["collegeId"])
			assert.EqualValues(t, tt.result.Users, data["usersSuspended"])
			assert.EqualValues(t, tt.result.Events, data["eventsSuspended"])
		})
	}
}

func TestModerationController_UnsuspendCollege(t *testing.T) {
	fake := &fakeModerationService{
		cascadeResult: &domain.CascadeSummary{CollegeID: "college-1", Direction: domain.CascadeUnsuspend, Users: 1, Events: 3},
	}
	ctrl := NewModerationController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "/admin/colleges/college-1/unsuspend", nil)
	req.SetPathValue("id", "college-1")
	req = withAdmin(req)
	rr := httptest.NewRecorder()

	ctrl.UnsuspendCollege(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, fake.unsuspendCalled)
	assert.False(t, fake.suspendCalled)
	envelope := decodeEnvelope(t, rr)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok, "data must be object")
	assert.Contains(t, data["message"], "reinstated")
	assert.EqualValues(t, 1, data["usersUnsuspended"])
	assert.EqualValues(t, 3, data["eventsUnsuspended"])
}

func TestModerationController_ToggleSuspension(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		modelType  string
		id         string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "suspend event",
			modelType:  "event",
			id:         "event-1",
			body:       `{"targetStatus":"suspended"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing target",
			modelType:  "event",
			id:         "event-1",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "missing model type",
			modelType:  "",
			id:         "event-1",
			body:       `{"targetStatus":"suspended"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "unsupported model type",
			modelType:  "college",
			id:         "college-1",
			body:       `{"targetStatus":"suspended"}`,
			fakeErr:    domain.NewInvalidInput("Invalid modelType"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:      "terminal state",
			modelType: "event",
			id:        "event-3",
			body:      `{"targetStatus":"active"}`,
			fakeErr: &domain.StatusConflictError{
				Kind: domain.KindEvent, ID: "event-3", Actual: domain.EventCompleted,
				Expected: []domain.Status{domain.EventSuspended}, Target: domain.EventPublished,
			},
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeModerationService{
				toggleErr: tt.fakeErr,
				toggleResult: &domain.SuspensionResult{
					Message:        "event status successfully updated to suspended. Notification queued.",
					Document:       &domain.Event{ID: tt.id, Title: "Hackathon", Status: domain.EventSuspended, CreatedAt: now, UpdatedAt: now},
					NotificationID: "notification-1",
				},
			}
			ctrl := NewModerationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/"+tt.modelType+"/"+tt.id+"/suspension", bytes.NewBufferString(tt.body))
			req.SetPathValue("modelType", tt.modelType)
			req.SetPathValue("id", tt.id)
			req = withAdmin(req)
			rr := httptest.NewRecorder()

			ctrl.ToggleSuspension(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok, "data must be object")
			assert.Equal(t, "notification-1", data["notificationId"])
			assert.Contains(t, data["message"], "Notification queued")
			doc, ok := data["document"].(map[string]any)
			require.True(t, ok, "document must be object")
			assert.Equal(t, "suspended", doc["status"])
			assert.Equal(t, "suspended", fake.lastTarget)
			assert.Equal(t, "admin-1", fake.lastActorID)
		})
	}
}

func TestModerationController_CreateReport(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"reason":"spam"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "empty reason rejected by service",
			body:       `{"reason":"  "}`,
			fakeErr:    domain.NewInvalidInput("a reason for the report is required"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{"reason":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "target missing",
			body:       `{"reason":"spam"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeModerationService{
				reportErr:    tt.fakeErr,
				reportResult: &domain.ReportReceipt{Message: "Admins have been notified.", ReportID: "report-1"},
			}
			ctrl := NewModerationController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/ad/ad-1/report", bytes.NewBufferString(tt.body))
			req.SetPathValue("modelType", "ad")
			req.SetPathValue("id", "ad-1")
			req = withAdmin(req)
			rr := httptest.NewRecorder()

			ctrl.CreateReport(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus != http.StatusCreated {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			data, ok := envelope.Data.(map[string]any)
			require.True(t, ok, "data must be object")
			assert.Equal(t, "report-1", data["reportId"])
			assert.Equal(t, "Admins have been notified.", data["message"])
			assert.Equal(t, "spam", fake.lastReason)
			assert.Equal(t, "ad", fake.lastModelType)
		})
	}
}

func TestModerationController_ListReports(t *testing.T) {
	t.Run("paginates", func(t *testing.T) {
		fake := &fakeModerationService{
			listResult: []*domain.Report{{ID: "report-1", ReporterID: "admin-1", Reason: "spam"}},
			listTotal:  41,
		}
		ctrl := NewModerationController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/reports?page=2&page_size=20", nil)
		rr := httptest.NewRecorder()

		ctrl.ListReports(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 20}, fake.lastListParams)
		envelope := decodeEnvelope(t, rr)
		data, ok := envelope.Data.(map[string]any)
		require.True(t, ok, "data must be object")
		items, ok := data["items"].([]any)
		require.True(t, ok, "items must be array")
		assert.Len(t, items, 1)
		pagination := data["pagination"].(map[string]any)
		assert.EqualValues(t, 3, pagination["total_pages"])
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := NewModerationController(testLogger, &fakeModerationService{})
		req := httptest.NewRequest(http.MethodGet, "/admin/reports", nil)
		rr := httptest.NewRecorder()

		ctrl.ListReports(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewModerationController(testLogger, &fakeModerationService{listErr: errors.New("db down")})
		req := httptest.NewRequest(http.MethodGet, "/admin/reports", nil)
		rr := httptest.NewRecorder()

		ctrl.ListReports(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "db down", envelope.Error.Message)
	})
}
