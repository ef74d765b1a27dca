// Package bootstrap loads the bundled default dashboard config, used
// only when the storage slot is empty.
package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/homegrid/homegrid/internal/domain"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the default config file.
// JSON is the canonical format (same shape as the storage slot and
// export files); YAML is accepted for hand-edited homelab setups.
type Loader struct {
	filePath string
}

// NewLoader creates a new bootstrap loader.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the default config file. The returned document
// is validated and normalized, ready to become the current snapshot.
func (l *Loader) Load() (*domain.Document, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	var doc domain.Document
	switch strings.ToLower(filepath.Ext(l.filePath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse default config yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse default config json: %w", err)
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}

	doc.Normalize()
	return &doc, nil
}
