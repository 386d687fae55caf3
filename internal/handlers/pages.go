package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"folio.dev/internal/carousel"
	"folio.dev/internal/services"
	"folio.dev/internal/views"
)

// Acknowledgments shown after a contact submission
const (
	msgSent        = "Thank you for your message! I'll get back to you soon."
	msgMissing     = "Please fill in all required fields."
	msgInvalid     = "Please enter a valid email address."
	msgInFlight    = "Your message is already being sent."
	msgSendFailure = "Failed to send message. Please try again or contact me directly at %s."
)

// PageHandler renders the HTML views
type PageHandler struct {
	renderer       *views.Renderer
	projectService *services.ProjectService
	contactService *services.ContactService
	log            *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(rd *views.Renderer, ps *services.ProjectService, cs *services.ContactService, log *zap.Logger) *PageHandler {
	return &PageHandler{
		renderer:       rd,
		projectService: ps,
		contactService: cs,
		log:            log,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageHome, views.Page{Path: "/"})
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageAbout, views.Page{Title: "About", Path: "/about"})
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	active := categoryParam(r)

	body := views.ProjectsBody{
		Active:   active,
		Projects: h.projectService.Filter(active),
		ResetURL: "/projects",
	}
	for _, label := range h.projectService.Categories() {
		body.Filters = append(body.Filters, views.FilterButton{
			Label:  label,
			Count:  h.projectService.Count(label),
			Active: label == active,
			URL:    filterURL(label),
		})
	}

	h.render(w, r, http.StatusOK, views.PageProjects, views.Page{Title: "Projects", Path: "/projects", Body: body})
}

// ProjectDetail handles GET /projects/{id}
func (h *PageHandler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		h.render(w, r, http.StatusNotFound, views.PageNotFound, views.Page{
			Title: "Project Not Found",
			Path:  "/projects",
			Body: views.NotFoundBody{
				Heading:   "Project Not Found",
				Message:   "The project you're looking for doesn't exist.",
				BackURL:   "/projects",
				BackLabel: "Back to Projects",
			},
		})
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	c := carousel.New(id, project.Images())
	c.GoTo(imageParam(r))

	path := "/projects/" + url.PathEscape(id)
	h.render(w, r, http.StatusOK, views.PageProject, views.Page{
		Title: project.Title,
		Path:  path,
		Body: views.ProjectBody{
			Project: *project,
			Gallery: views.NewGallery(c, project.Title, path),
			Related: h.projectService.Related(id, services.DefaultRelated),
		},
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageContact, views.Page{
		Title: "Contact",
		Path:  "/contact",
		Body:  h.blankForm(),
	})
}

// SubmitContact handles POST /contact. On success the form is cleared; on
// any failure the visitor's input is kept so nothing has to be retyped.
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	formID := r.PostFormValue("form_id")
	draft := services.Draft{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	page := views.Page{Title: "Contact", Path: "/contact"}

	err := h.contactService.Submit(r.Context(), formID, draft)
	if err == nil {
		page.Body = h.blankForm()
		page.Notice = &views.Notice{Success: true, Text: msgSent}
		h.render(w, r, http.StatusOK, views.PageContact, page)
		return
	}

	body := views.ContactBody{
		Name:     draft.Name,
		Email:    draft.Email,
		Subject:  draft.Subject,
		Message:  draft.Message,
		FormID:   formID,
		Fallback: h.contactService.Fallback(),
	}
	if body.FormID == "" {
		body.FormID = h.contactService.NewFormID()
	}

	var text string
	switch {
	case errors.Is(err, services.ErrMissingField):
		body.Missing = draft.Missing()
		text = msgMissing
	case errors.Is(err, services.ErrInvalidEmail):
		text = msgInvalid
	case errors.Is(err, services.ErrSubmissionInFlight):
		text = msgInFlight
	default:
		text = fmt.Sprintf(msgSendFailure, body.Fallback)
	}
	page.Body = body
	page.Notice = &views.Notice{Text: text}
	h.render(w, r, contactStatus(err), views.PageContact, page)
}

// NotFound renders the empty state for unknown paths
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, views.PageNotFound, views.Page{
		Title: "Page Not Found",
		Path:  r.URL.Path,
		Body: views.NotFoundBody{
			Heading:   "Page Not Found",
			Message:   "The page you're looking for doesn't exist.",
			BackURL:   "/",
			BackLabel: "Back to Home",
		},
	})
}

func (h *PageHandler) blankForm() views.ContactBody {
	return views.ContactBody{
		FormID:   h.contactService.NewFormID(),
		Fallback: h.contactService.Fallback(),
	}
}

// render writes a page with the given status
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, p views.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, p); err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Debug("client went away", zap.Error(err))
	}
}

func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("failed to render page",
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// filterURL links a category filter button
func filterURL(label string) string {
	if label == services.AllCategories {
		return "/projects"
	}
	return "/projects?" + url.Values{"category": {label}}.Encode()
}
