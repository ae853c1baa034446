package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/mailforge/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Services are the use cases the API exposes.
type Services struct {
	Templates  service.TemplateService
	Generation service.GenerationService
	Sessions   service.SessionService
	History    service.HistoryService
	Examples   service.ExampleService
}

// NewRouter builds the API handler.
func NewRouter(svc Services, logger zerolog.Logger) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("http_request")
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Route("/api", func(api chi.Router) {
		api.Get("/templates", h.listTemplates)
		api.Get("/templates/{id}", h.getTemplate)
		api.Post("/prompt", h.compilePrompt)
		api.Post("/generate", h.generate)
		api.Get("/examples", h.listExamples)
		api.Get("/sessions/{templateId}", h.getSession)
		api.Delete("/sessions/{templateId}", h.clearSession)
		api.Get("/history", h.listHistory)
		api.Get("/history/{id}", h.getHistory)
	})

	return r
}
