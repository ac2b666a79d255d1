package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/mindset-api/internal/api"
	apiMiddleware "github.com/phrazzld/mindset-api/internal/api/middleware"
	"github.com/phrazzld/mindset-api/internal/api/shared"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewMetricsMiddleware(app.metrics))

	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	reflectionHandler := api.NewReflectionHandler(app.journalService, app.logger)
	goalHandler := api.NewGoalHandler(app.journalService, app.logger)
	journalHandler := api.NewJournalHandler(app.journalService, app.logger)
	resourceHandler := api.NewResourceHandler(app.library)
	healthHandler := api.NewHealthHandler(app.sessions)

	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.sessionService, app.logger)
	rateLimiter := apiMiddleware.NewRateLimiter(
		app.config.RateLimit.RequestsPerSecond,
		app.config.RateLimit.Burst,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(rateLimiter.Handle)

		// Session lifecycle and static content
		r.Post("/session", sessionHandler.Start)
		r.Delete("/session", sessionHandler.End)
		r.Get("/resources", resourceHandler.List)

		// Session-scoped journal routes
		r.Group(func(r chi.Router) {
			r.Use(sessionMiddleware.Handle)

			r.Post("/reflections", reflectionHandler.Create)
			r.Get("/reflections", reflectionHandler.List)

			r.Post("/goals", goalHandler.Create)
			r.Get("/goals", goalHandler.List)
			r.Get("/goals/summaries", goalHandler.Summaries)
			r.Put("/goals/{index}/progress", goalHandler.UpdateProgress)
			r.Put("/goals/id/{id}/progress", goalHandler.UpdateProgressByID)
			r.Get("/achievements", goalHandler.Achievements)

			r.Get("/series/mindset", journalHandler.MindsetSeries)
			r.Get("/dashboard", journalHandler.Dashboard)
			r.Get("/export", journalHandler.Export)
		})
	})

	r.Get("/health", healthHandler.Check)
	r.Handle("/metrics", app.metrics.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", shared.SessionIDHeader},
		ExposedHeaders: []string{shared.SessionIDHeader, shared.TraceIDHeader},
	})

	return c.Handler(r)
}
