package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/httpserver/deps"
)

func serviceIndex(r *http.Request) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// AddService handles POST /api/categories/{key}/services. The
// add-service modal for that category must be open.
func AddService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var svc domain.Service
		if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		doc, err := d.Controller.AddService(key, svc)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, doc)
	}
}

// EditService handles PUT /api/categories/{key}/services/{index}.
func EditService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		index, ok := serviceIndex(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid service index"))
			return
		}

		var svc domain.Service
		if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		doc, err := d.Controller.EditService(key, index, svc)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// DeleteService handles DELETE /api/categories/{key}/services/{index}.
func DeleteService(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		index, ok := serviceIndex(r)
		if !ok {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid service index"))
			return
		}

		doc, err := d.Controller.DeleteService(key, index)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

type reorderServicesRequest struct {
	Services []domain.Service `json:"list"`
}

// ReorderServices handles PUT /api/categories/{key}/services/order
// with the full new service order.
func ReorderServices(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var req reorderServicesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		doc, err := d.Controller.ReorderServices(key, req.Services)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}
