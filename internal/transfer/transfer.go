// Package transfer handles the portable half of persistence: turning
// the dashboard document into a downloadable JSON file and turning an
// uploaded file back into a document.
package transfer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/homegrid/homegrid/internal/domain"
)

const (
	// ExportFilename is the fixed download filename.
	ExportFilename = "homelab-dashboard-config.json"

	// ExportMIME is the content type of exported files.
	ExportMIME = "application/json"
)

// Export serializes the document as pretty-printed JSON, the same
// shape written to the storage slot.
func Export(doc *domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to export document: %w", err)
	}
	return data, nil
}

// Import reads a user-supplied config file, parses it and validates it
// eagerly so a structurally broken document is rejected here instead
// of failing later inside a view or operation. On success the returned
// document is normalized and carries fresh surrogate keys.
func Import(r io.Reader) (*domain.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config file is not valid JSON: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	doc.Normalize()
	return &doc, nil
}
