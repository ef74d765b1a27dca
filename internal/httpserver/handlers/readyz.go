package handlers

import (
	"net/http"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness: the service is ready once a document is
// loaded (storage or bootstrap), which is guaranteed after startup.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready: d.Controller.Document() != nil,
		})
	}
}
