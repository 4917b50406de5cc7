package http

import (
	"log/slog"
	"net/http"

	"campushub/internal/delivery/http/controllers"
	"campushub/internal/delivery/http/helpers"
	"campushub/internal/delivery/http/middleware"
	"campushub/internal/domain"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	moderationController *controllers.ModerationController,
	inboxController *controllers.InboxController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier, logger)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)
	admin := func(h http.HandlerFunc) http.HandlerFunc { return authed(requireAdmin(h)) }

	// Colleges
	mux.HandleFunc("POST /admin/colleges/{id}/decision", admin(moderationController.DecideCollegeRegistration))
	mux.HandleFunc("POST /admin/colleges/{id}/suspend", admin(moderationController.SuspendCollege))
	mux.HandleFunc("POST /admin/colleges/{id}/unsuspend", admin(moderationController.UnsuspendCollege))

	// Users, events and ads
	mux.HandleFunc("POST /admin/{modelType}/{id}/suspension", admin(moderationController.ToggleSuspension))
	mux.HandleFunc("POST /admin/{modelType}/{id}/report", admin(moderationController.CreateReport))
	mux.HandleFunc("GET /admin/reports", admin(moderationController.ListReports))

	mux.HandleFunc("GET /inbox", authed(inboxController.ListInbox))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
