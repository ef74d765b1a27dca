package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/httpserver/handlers"
	"github.com/homegrid/homegrid/internal/httpserver/mw"
)

func init() { Register(registerConfig) }

func registerConfig(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Get("/api/config", handlers.Config(d))
	sub.Get("/api/config/export", handlers.ExportConfig(d))
	sub.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             5,
		RefillPerIPPerMin: 10,
		TrustProxy:        d.TrustProxy,
	})).Post("/api/config/import", handlers.ImportConfig(d))
	sub.Post("/api/config/reset", handlers.ResetConfig(d))
}
