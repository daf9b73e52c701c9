package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/holidays/{year}               observed holidays (?raw=true for the catalog)
//	GET /api/v1/holidays/{year}/month/{month} observed holidays in a month
//	GET /api/v1/easter/{year}                 Easter and the feasts derived from it
//	GET /api/v1/carnival/{year}               carnival days and Ash Wednesday
//	GET /api/v1/calendar/{year}.ics           iCalendar download
//	GET /api/v1/dates/{date}                  what happens on a day
//	GET /api/v1/business-days                 business days between start and end
//	GET /api/v1/view                          rendered calendar browser state
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		RequestIDMiddleware(logger),
		RecoveryMiddleware(),
		LoggingMiddleware(),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w, "Method not allowed")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/holidays/{year}", handlers.GetHolidays)
		r.Get("/holidays/{year}/month/{month}", handlers.GetMonthHolidays)
		r.Get("/easter/{year}", handlers.GetEaster)
		r.Get("/carnival/{year}", handlers.GetCarnival)
		r.Get("/calendar/{year}.ics", handlers.GetCalendarFile)
		r.Get("/dates/{date}", handlers.GetDate)
		r.Get("/business-days", handlers.GetBusinessDays)
		r.Get("/view", handlers.GetView)
	})

	return r
}
