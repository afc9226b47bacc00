package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hardings-auto/go_backend/internal/app/config"
	"hardings-auto/go_backend/internal/app/http/handlers"
	"hardings-auto/go_backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/catalog/services", h.ListServices)
		r.Get("/catalog/vehicles", h.ListVehicles)
		r.Get("/catalog/vehicles/{make}/models", h.ListModels)

		r.Post("/quotes/check", h.CheckQuote)
		r.Post("/quotes", h.CreateQuote)
		r.Post("/quotes/pdf", h.QuotePDF)
		r.Post("/quotes/share", h.ShareQuote)
	})

	return r
}
