package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool   `json:"ok"`
	Categories *int   `json:"categories,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Impact     string `json:"impact,omitempty"`
	Error      string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports component health: the in-memory document and the
// storage slot. Storage being down degrades persistence only; the
// in-memory snapshot stays the source of truth.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Controller.Document()
		categories := len(doc.Categories)

		components := map[string]componentStatus{
			"document": {
				OK:         true,
				Categories: &categories,
			},
			"storage": checkStorage(d),
			"session": {
				OK:   true,
				Mode: string(d.Controller.Modal().State),
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if storage, exists := components["storage"]; exists && !storage.OK {
		// Edits still work against memory; they just will not survive
		// a restart until storage recovers.
		return "degraded"
	}
	return "durable"
}

func checkStorage(d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "store not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-enabled",
	}
}
