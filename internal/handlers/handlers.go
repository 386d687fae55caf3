package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"folio.dev/internal/config"
	"folio.dev/internal/mailer"
	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/services"
	"folio.dev/internal/views"
)

// Deps are what the router is built from
type Deps struct {
	Config *config.Config
	Site   *models.Portfolio
	Sender mailer.Sender
	Logger *zap.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) (http.Handler, error) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))

	// Initialize services
	projectService := services.NewProjectService(d.Site.Projects)
	contactService := services.NewContactService(d.Sender, services.ContactOptions{
		Recipient:     d.Config.Email.Recipient,
		Fallback:      fallbackAddress(d.Config, d.Site),
		RatePerMinute: d.Config.Contact.RatePerMinute,
		Burst:         d.Config.Contact.Burst,
	}, log.Named("contact"))

	renderer, err := views.New(d.Site, d.Config.Theme)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize handlers
	pageHandler := NewPageHandler(renderer, projectService, contactService, log)
	projectHandler := NewProjectHandler(projectService)
	contactHandler := NewContactHandler(contactService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.Config.Server.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			MaxAge:         300,
		}))

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/projects/{id}/carousel", projectHandler.GetCarousel)
		r.Get("/categories", projectHandler.ListCategories)

		// Contact relay
		r.Post("/contact", contactHandler.Submit)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(views.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/projects/{id}", pageHandler.ProjectDetail)
	r.Get("/contact", pageHandler.Contact)
	r.Post("/contact", pageHandler.SubmitContact)
	r.NotFound(pageHandler.NotFound)

	return otelhttp.NewHandler(r, d.Config.Telemetry.ServiceName), nil
}

// fallbackAddress is the address shown when sending fails: the site's
// public contact email, else the relay recipient
func fallbackAddress(cfg *config.Config, site *models.Portfolio) string {
	if site.Contact.Email != "" {
		return site.Contact.Email
	}
	return cfg.Email.Recipient
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
