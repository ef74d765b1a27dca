package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/httpserver/handlers"
	"github.com/homegrid/homegrid/internal/httpserver/mw"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))

	sub.Post("/api/categories", handlers.AddCategory(d))
	// "order" before "{key}" so the literal route wins.
	sub.Put("/api/categories/order", handlers.ReorderCategories(d))
	sub.Put("/api/categories/{key}", handlers.EditCategory(d))
	sub.Delete("/api/categories/{key}", handlers.DeleteCategory(d))

	sub.Post("/api/categories/{key}/services", handlers.AddService(d))
	sub.Put("/api/categories/{key}/services/order", handlers.ReorderServices(d))
	sub.Put("/api/categories/{key}/services/{index}", handlers.EditService(d))
	sub.Delete("/api/categories/{key}/services/{index}", handlers.DeleteService(d))
}
