package handlers

import (
	"net/http"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
)

// Config serves the current document snapshot.
func Config(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Controller.Document()
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, doc)
	}
}
