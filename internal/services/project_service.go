package services

import (
	"errors"
	"fmt"

	"folio.dev/internal/models"
)

// AllCategories is the filter label that matches every project
const AllCategories = "All"

// DefaultRelated is how many related projects a detail page shows
const DefaultRelated = 3

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects   []models.Project
	categories []string
}

// NewProjectService creates a new ProjectService. The category list is
// derived once since the project list never changes.
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{
		projects:   projects,
		categories: deriveCategories(projects),
	}
}

// deriveCategories returns "All" followed by every category in order of
// first appearance
func deriveCategories(projects []models.Project) []string {
	seen := make(map[string]bool)
	out := []string{AllCategories}
	for i := range projects {
		for _, c := range projects[i].Categories() {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects {
		if s.projects[i].ID.String() == id {
			return &s.projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Categories returns the selectable filter labels, "All" first
func (s *ProjectService) Categories() []string {
	return s.categories
}

// Filter returns the projects tagged with label in their original order.
// "All" returns every project; an unknown label returns an empty list.
func (s *ProjectService) Filter(label string) []models.Project {
	if label == AllCategories {
		return s.projects
	}
	out := make([]models.Project, 0)
	for i := range s.projects {
		if s.projects[i].HasCategory(label) {
			out = append(out, s.projects[i])
		}
	}
	return out
}

// Count returns how many projects Filter(label) would return
func (s *ProjectService) Count(label string) int {
	return len(s.Filter(label))
}

// Related returns up to limit projects other than id
func (s *ProjectService) Related(id string, limit int) []models.Project {
	if limit <= 0 {
		limit = DefaultRelated
	}
	out := make([]models.Project, 0, limit)
	for i := range s.projects {
		if len(out) == limit {
			break
		}
		if s.projects[i].ID.String() != id {
			out = append(out, s.projects[i])
		}
	}
	return out
}
