package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campushub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "invalid id", err: fmt.Errorf("get user: %w", domain.ErrInvalidID), wantStatus: http.StatusBadRequest, wantCode: ErrCodeInvalidID},
		{name: "invalid input", err: domain.NewInvalidInput("bad status"), wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "conflict", err: &domain.StatusConflictError{Kind: domain.KindCollege, Actual: "Approved", Target: "Approved"}, wantStatus: http.StatusConflict, wantCode: ErrCodeConflict},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: ErrCodeForbidden},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/admin/colleges/c1/suspend", nil)

			WriteServiceError(rr, req, logger, tt.err)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
			assert.Equal(t, tt.err.Error(), envelope.Error.Message)
		})
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (r reasonRequest) Validate() []string {
	if strings.TrimSpace(r.Reason) == "" {
		return []string{"reason is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{name: "valid", body: `{"reason":"spam"}`, wantOK: true},
		{name: "validation fails", body: `{"reason":" "}`},
		{name: "unknown field", body: `{"reason":"spam","extra":1}`},
		{name: "malformed", body: `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dest reasonRequest

			ok := DecodeAndValidate(rr, req, &dest)

			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, rr.Code)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/reports?page=3&page_size=500", nil)
	p := ParsePagination(req)
	assert.Equal(t, domain.PaginationParams{Page: 3, PageSize: MaxPageSize}, p)

	req = httptest.NewRequest(http.MethodGet, "/admin/reports?page=zero", nil)
	p = ParsePagination(req)
	assert.Equal(t, domain.PaginationParams{Page: DefaultPage, PageSize: DefaultPageSize}, p)

	assert.Equal(t, PaginationMeta{Page: 1, PageSize: 20, Total: 41, TotalPages: 3}, NewPaginationMeta(domain.PaginationParams{Page: 1, PageSize: 20}, 41))
}
