package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the middleware chain and every route:
//
//	GET /health
//	GET /api/v1/catalog
//	GET /api/v1/holidays?from=YYYY&to=YYYY
//	GET /api/v1/holidays/{year}
//	GET /api/v1/holidays/check/{date}
func NewRouter(handlers *Handlers, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery runs after request ID so a panic is logged with it.
	r.Use(
		RequestIDMiddleware(log),
		RecoveryMiddleware(),
		LoggingMiddleware(),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w, r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handlers.GetCatalog)

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", handlers.GetHolidayRange)
			r.Get("/{year}", handlers.GetYearHolidays)
			r.Get("/check/{date}", handlers.CheckDate)
		})
	})

	return r
}
