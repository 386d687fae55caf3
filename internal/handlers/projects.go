package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/carousel"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.Filter(categoryParam(r))
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// CategoryCount is one filter label with the number of projects it matches
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ListCategories handles GET /api/categories
func (h *ProjectHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	labels := h.projectService.Categories()
	out := make([]CategoryCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, CategoryCount{Label: label, Count: h.projectService.Count(label)})
	}
	respondJSON(w, http.StatusOK, out)
}

// CarouselState is the carousel of one project at a given index
type CarouselState struct {
	ProjectID string                    `json:"project_id"`
	Index     int                       `json:"index"`
	Count     int                       `json:"count"`
	Current   string                    `json:"current,omitempty"`
	Previous  int                       `json:"previous"`
	Next      int                       `json:"next"`
	Controls  bool                      `json:"controls"`
	Layout    carousel.PaginationLayout `json:"layout"`
}

// GetCarousel handles GET /api/projects/{id}/carousel
func (h *ProjectHandler) GetCarousel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c := carousel.New(id, project.Images())
	c.GoTo(imageParam(r))

	current, _ := c.Current()
	respondJSON(w, http.StatusOK, CarouselState{
		ProjectID: id,
		Index:     c.Index(),
		Count:     c.Len(),
		Current:   current,
		Previous:  c.PreviousIndex(),
		Next:      c.NextIndex(),
		Controls:  c.HasControls(),
		Layout:    carousel.Layout(c.Len()),
	})
}

// categoryParam returns the ?category= filter, "All" when absent
func categoryParam(r *http.Request) string {
	if c := r.URL.Query().Get("category"); c != "" {
		return c
	}
	return services.AllCategories
}

// imageParam returns the ?image= index; anything unparsable means the first
// image and out-of-range values are clamped by the carousel
func imageParam(r *http.Request) int {
	i, err := strconv.Atoi(r.URL.Query().Get("image"))
	if err != nil {
		return 0
	}
	return i
}
