package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/httpserver/deps"
)

type categoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AddCategory handles POST /api/categories. The add-category modal
// must be open.
func AddCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		doc, err := d.Controller.AddCategory(domain.Category{
			Name: req.Name,
			Icon: req.Icon,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, doc)
	}
}

// EditCategory handles PUT /api/categories/{key}. Only name and icon
// change; the service list is preserved.
func EditCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}
		if req.Name == "" {
			writeJSON(w, http.StatusBadRequest, errorBody("name is required"))
			return
		}

		doc, err := d.Controller.EditCategory(key, req.Name, req.Icon)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

// DeleteCategory handles DELETE /api/categories/{key}. Services under
// the category are removed with it.
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")

		doc, err := d.Controller.DeleteCategory(key)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

type reorderCategoriesRequest struct {
	Keys []string `json:"keys"`
}

// ReorderCategories handles PUT /api/categories/order with the full
// new key order.
func ReorderCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderCategoriesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		doc, err := d.Controller.ReorderCategories(req.Keys)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}
