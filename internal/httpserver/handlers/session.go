package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/logger"
	"github.com/homegrid/homegrid/internal/session"
)

type sessionResponse struct {
	EditMode bool          `json:"edit_mode"`
	Modal    session.Modal `json:"modal"`
}

// Session reports the edit-mode flag and the active modal.
func Session(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionResponse{
			EditMode: d.Controller.EditMode(),
			Modal:    d.Controller.Modal(),
		})
	}
}

// ToggleEditMode flips the edit-mode flag. Turning it off closes any
// open modal.
func ToggleEditMode(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		on := d.Controller.ToggleEditMode()
		d.Logger.Info("edit mode toggled",
			logger.Bool("enabled", on))
		writeJSON(w, http.StatusOK, sessionResponse{
			EditMode: on,
			Modal:    d.Controller.Modal(),
		})
	}
}

type openModalRequest struct {
	State        session.State `json:"state"`
	CategoryKey  string        `json:"category_key"`
	ServiceIndex int           `json:"service_index"`
}

// OpenModal moves the session into one of the editing states,
// cancelling whatever was open before.
func OpenModal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openModalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
			return
		}

		var err error
		switch req.State {
		case session.StateAddingCategory:
			err = d.Controller.OpenAddCategory()
		case session.StateEditingCategory:
			err = d.Controller.OpenEditCategory(req.CategoryKey)
		case session.StateAddingService:
			err = d.Controller.OpenAddService(req.CategoryKey)
		case session.StateEditingService:
			err = d.Controller.OpenEditService(req.CategoryKey, req.ServiceIndex)
		default:
			writeJSON(w, http.StatusBadRequest, errorBody("unknown session state"))
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{
			EditMode: d.Controller.EditMode(),
			Modal:    d.Controller.Modal(),
		})
	}
}

// CancelModal returns the session to idle. A persistence write already
// scheduled is never cancelled.
func CancelModal(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Controller.Cancel()
		writeJSON(w, http.StatusOK, sessionResponse{
			EditMode: d.Controller.EditMode(),
			Modal:    d.Controller.Modal(),
		})
	}
}
