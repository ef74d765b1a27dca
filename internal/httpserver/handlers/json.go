package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// writeError maps domain and session errors onto HTTP statuses.
// Validation failures and malformed intents are the caller's fault;
// anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, domain.ErrDuplicateName):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, domain.ErrBadPermutation):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, session.ErrEditModeOff),
		errors.Is(err, session.ErrModalMismatch):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	case isValidationError(err):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
