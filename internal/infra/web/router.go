package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/infra/auth"
	"github.com/roadassist/dispatch/internal/infra/web/handler"
	"github.com/roadassist/dispatch/internal/infra/web/middleware"
	"github.com/roadassist/dispatch/pkg/logger"
	"github.com/roadassist/dispatch/pkg/metrics"
)

type RouterDeps struct {
	Requests *handler.RequestHandler
	Garages  *handler.GarageHandler
	Users    *handler.UserHandler
	Admin    *handler.AdminHandler
	Contact  *handler.ContactHandler
	Health   http.Handler

	JWT      *auth.JWTManager
	Logger   logger.Logger
	Metrics  metrics.Metrics
	Registry *prometheus.Registry

	// AllowResubmission exposes the rejected-garage resubmit route.
	AllowResubmission bool
}

// NewRouter mounts the public surface under /api/v1 plus the operational
// endpoints at the root.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(otelchi.Middleware("dispatch-api", otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MetricsWrapper(deps.Metrics))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})
	r.Use(rateLimiter.Handler(deps.Logger))

	r.Handle("/healthz", deps.Health)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	authenticate := middleware.Authenticate(deps.JWT)

	r.Route("/api/v1", func(r chi.Router) {
		// Public surface. Submissions work anonymously; a session, when
		// present, ties the request to its requester.
		r.With(middleware.AuthenticateOptional(deps.JWT)).Post("/requests", deps.Requests.Submit)
		r.Post("/garages", deps.Garages.Register)
		r.Post("/garages/login", deps.Garages.Login)
		r.Post("/users", deps.Users.Register)
		r.Post("/users/login", deps.Users.Login)
		r.Post("/contact", deps.Contact.Send)

		// Reject doubles as the requester's cancel, so users may reach it.
		// The use case decides who actually gets through.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(outbound.RoleUser, outbound.RoleGarage, outbound.RoleAdmin))

			r.Post("/requests/{id}/reject", deps.Requests.Reject)
		})

		// Garage operations.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(outbound.RoleGarage, outbound.RoleAdmin))

			r.Post("/requests/{id}/assign-garage", deps.Requests.AssignGarage)
			r.Post("/requests/{id}/assign-mechanic", deps.Requests.AssignMechanic)
			r.Post("/requests/{id}/complete", deps.Requests.Complete)
			r.Get("/garages/{id}/requests", deps.Requests.ListForGarage)
			r.Get("/garages/{id}/mechanics", deps.Garages.Roster)
			r.Post("/mechanics", deps.Garages.RegisterMechanic)
			r.Put("/mechanics/{id}", deps.Garages.UpdateMechanic)
			r.Delete("/mechanics/{id}", deps.Garages.DeleteMechanic)

			if deps.AllowResubmission {
				r.Put("/garages/{id}/resubmit", deps.Garages.Resubmit)
			}
		})

		// Admin operations.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireRole(outbound.RoleAdmin))

			r.Put("/admin/garages/{id}/approve", deps.Admin.ApproveGarage)
			r.Put("/admin/garages/{id}/reject", deps.Admin.RejectGarage)
			r.Get("/admin/garages/stats", deps.Admin.Stats)
		})
	})

	return r
}
