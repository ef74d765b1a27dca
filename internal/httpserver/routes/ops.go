package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/httpserver/handlers"
	"github.com/homegrid/homegrid/internal/httpserver/mw"
)

func init() { Register(registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	sub := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger))
	sub.Get("/healthz", handlers.Healthz(d))
	sub.Get("/readyz", handlers.Readyz(d))
	sub.Get("/infra", handlers.Infra(d))
}
