package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProjectID identifies a project. The content store may spell it as a JSON
// number or a string; both decode to the same textual form.
type ProjectID string

// UnmarshalJSON accepts numbers and strings
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProjectID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("project id must be a number or string: %w", err)
	}
	*id = ProjectID(n.String())
	return nil
}

// UnmarshalYAML accepts numbers and strings
func (id *ProjectID) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*id = ProjectID(v)
	case int:
		*id = ProjectID(strconv.Itoa(v))
	case float64:
		*id = ProjectID(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("project id must be a number or string, got %T", raw)
	}
	return nil
}

// String returns the id as it appears in URLs
func (id ProjectID) String() string {
	return string(id)
}

// Project represents a portfolio project
type Project struct {
	ID           ProjectID `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	Description  string    `json:"description,omitempty" yaml:"description"`
	Details      string    `json:"details,omitempty" yaml:"details"` // markdown
	Category     string    `json:"category,omitempty" yaml:"category"`
	CategoryTags []string  `json:"categories,omitempty" yaml:"categories"`
	Tags         []string  `json:"tags" yaml:"tags"`
	Image        string    `json:"image,omitempty" yaml:"image"`
	ImageList    []string  `json:"images,omitempty" yaml:"images"`
	GitHubURL    string    `json:"github,omitempty" yaml:"github"`
	DemoURL      string    `json:"demo,omitempty" yaml:"demo"`
}

// Categories returns the project's category labels, falling back to the
// singular category field when the list is absent.
func (p Project) Categories() []string {
	if p.CategoryTags != nil {
		return p.CategoryTags
	}
	if p.Category != "" {
		return []string{p.Category}
	}
	return nil
}

// HasCategory reports whether the project is tagged with label
func (p Project) HasCategory(label string) bool {
	for _, c := range p.Categories() {
		if c == label {
			return true
		}
	}
	return false
}

// Images returns the ordered image sequence. Without an images list the
// single image field becomes a sequence of length at most one.
func (p Project) Images() []string {
	if p.ImageList != nil {
		return p.ImageList
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Cover returns the image used on project cards
func (p Project) Cover() string {
	if p.Image != "" {
		return p.Image
	}
	if imgs := p.Images(); len(imgs) > 0 {
		return imgs[0]
	}
	return ""
}
