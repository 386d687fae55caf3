// Package content loads the static content store.
package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

// Load reads and parses the content file. JSON and YAML are both accepted,
// chosen by file extension.
func Load(path string) (*models.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	p, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := Validate(p); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes content data in the format named by ext (".json", ".yaml", ".yml")
func Parse(data []byte, ext string) (*models.Portfolio, error) {
	var p models.Portfolio
	switch strings.ToLower(ext) {
	case ".json", "":
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported content format %q", ext)
	}
	return &p, nil
}

// Validate checks the invariants the views rely on: every project has a
// unique non-empty id and a title.
func Validate(p *models.Portfolio) error {
	var errs []error
	seen := make(map[models.ProjectID]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			errs = append(errs, fmt.Errorf("project #%d has no id", i))
			continue
		}
		if seen[proj.ID] {
			errs = append(errs, fmt.Errorf("duplicate project id %q", proj.ID))
		}
		seen[proj.ID] = true
		if strings.TrimSpace(proj.Title) == "" {
			errs = append(errs, fmt.Errorf("project %q has no title", proj.ID))
		}
	}
	return errors.Join(errs...)
}
