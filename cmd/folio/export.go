package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio.dev/internal/handlers"
	"folio.dev/internal/mailer"
	"folio.dev/internal/models"
	"folio.dev/internal/views"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Render every page to static HTML",
	Long: `Renders each view to <output-dir>/<path>/index.html, writes the project
list to projects.json and copies the static assets. The contact form still
needs a running server to deliver messages.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		router, err := handlers.SetupRoutes(handlers.Deps{
			Config: cfg,
			Site:   site,
			Sender: mailer.NewEmailJS(cfg.Email),
			Logger: logger,
		})
		if err != nil {
			return err
		}

		n, err := exportSite(router, site, args[0])
		if err != nil {
			return err
		}
		logger.Info("export complete", zap.String("dir", args[0]), zap.Int("pages", n))
		return nil
	},
}

// exportSite renders every page of site into dir and returns how many pages
// were written
func exportSite(h http.Handler, site *models.Portfolio, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	pages := []string{"/", "/about", "/projects", "/contact"}
	for _, p := range site.Projects {
		pages = append(pages, "/projects/"+url.PathEscape(p.ID.String()))
	}

	for _, page := range pages {
		if err := exportPage(h, page, filepath.Join(dir, filepath.FromSlash(page), "index.html"), http.StatusOK); err != nil {
			return 0, err
		}
	}
	if err := exportPage(h, "/404", filepath.Join(dir, "404.html"), http.StatusNotFound); err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(site.Projects, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to marshal projects: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "projects.json"), data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write projects.json: %w", err)
	}

	if err := copyStatic(filepath.Join(dir, "static")); err != nil {
		return 0, err
	}
	return len(pages) + 1, nil
}

// exportPage fetches target from h and writes the body to dest
func exportPage(h http.Handler, target, dest string, want int) error {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != want {
		return fmt.Errorf("rendering %s: status %d", target, rec.Code)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(dest, rec.Body.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

// copyStatic writes the embedded assets under dir
func copyStatic(dir string) error {
	assets := views.Static()
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return fmt.Errorf("failed to copy %s: %w", path.Join("static", p), err)
		}
		return nil
	})
}
