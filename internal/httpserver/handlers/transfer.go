package handlers

import (
	"fmt"
	"net/http"

	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/logger"
	"github.com/homegrid/homegrid/internal/transfer"
	"github.com/homegrid/homegrid/internal/utils"
)

// ExportConfig handles GET /api/config/export: the current snapshot as
// a pretty-printed JSON download with a fixed filename.
func ExportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := d.Controller.Document()
		data, err := transfer.Export(doc)
		if err != nil {
			d.Logger.Error("config export failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody("export failed"))
			return
		}

		w.Header().Set("Content-Type", transfer.ExportMIME)
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", transfer.ExportFilename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			d.Logger.Debug("failed to write export response", logger.Error(err))
		}
	}
}

// ImportConfig handles POST /api/config/import: a multipart upload
// ("file" field) replacing the whole document. The upload is parsed
// and validated before anything changes; on failure the current
// document is untouched.
func ImportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, d.ImportMaxBytes)

		file, _, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("missing config file upload"))
			return
		}
		defer utils.Close(file)

		doc, err := transfer.Import(file)
		if err != nil {
			d.Logger.Warn("config import rejected", logger.Error(err))
			writeJSON(w, http.StatusUnprocessableEntity, errorBody(err.Error()))
			return
		}

		next := d.Controller.Replace(doc)
		d.Logger.Info("config imported",
			logger.Int("categories", len(next.Categories)))
		writeJSON(w, http.StatusOK, next)
	}
}

// ResetConfig handles POST /api/config/reset: reload the bundled
// default config and make it the current document.
func ResetConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := d.Bootstrap.Load()
		if err != nil {
			d.Logger.Error("config reset failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody("failed to load default config"))
			return
		}

		next := d.Controller.Replace(doc)
		d.Logger.Info("config reset to defaults")
		writeJSON(w, http.StatusOK, next)
	}
}
