package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/httpserver/handlers"
	"github.com/homegrid/homegrid/internal/httpserver/mw"
)

func init() { Register(registerSession) }

func registerSession(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Get("/api/session", handlers.Session(d))
	sub.Post("/api/session/edit-mode", handlers.ToggleEditMode(d))
	sub.Post("/api/session/open", handlers.OpenModal(d))
	sub.Post("/api/session/cancel", handlers.CancelModal(d))
}
