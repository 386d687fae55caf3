// Package views renders the site's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"folio.dev/internal/config"
	"folio.dev/internal/models"
	"folio.dev/internal/reveal"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageProjects = "projects"
	PageProject  = "project"
	PageContact  = "contact"
	PageNotFound = "notfound"
)

var pages = []string{PageHome, PageAbout, PageProjects, PageProject, PageContact, PageNotFound}

// Page is the data every template receives
type Page struct {
	Title  string
	Path   string // current URL path, used to highlight the nav link
	Site   *models.Portfolio
	Theme  config.Theme
	Year   int
	Body   any
	Notice *Notice
}

// Notice is a one-off acknowledgment shown at the top of a page
type Notice struct {
	Success bool
	Text    string
}

// Renderer executes page templates
type Renderer struct {
	site  *models.Portfolio
	theme config.Theme
	pages map[string]*template.Template
	now   func() time.Time
}

// Static returns the embedded static assets rooted at "static"
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("views: static assets missing: " + err.Error())
	}
	return sub
}

// New parses every page template
func New(site *models.Portfolio, theme config.Theme) (*Renderer, error) {
	md := NewMarkdown()
	funcs := template.FuncMap{
		"markdown":    md.Render,
		"reveal":      reveal.NewSection,
		"placeholder": Placeholder,
		"add":         func(a, b int) int { return a + b },
		"mul":         func(a, b int) int { return a * b },
		"initials":    initials,
		"headOf":      headOf,
		"extra":       func(s []string, n int) int { return max(0, len(s)-n) },
		"active":      isActive,
	}

	r := &Renderer{
		site:  site,
		theme: theme,
		pages: make(map[string]*template.Template, len(pages)),
		now:   time.Now,
	}
	for _, name := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes a full page. The page is rendered into a buffer first so a
// template error never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	p.Site = r.site
	p.Theme = r.theme
	p.Year = r.now().Year()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// initials returns up to two leading letters of a title
func initials(s string) string {
	var out []rune
	for _, word := range strings.Fields(s) {
		out = append(out, []rune(word)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

// headOf returns at most n leading elements
func headOf(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// isActive reports whether a nav link matches the current path
func isActive(link, current string) bool {
	if link == "/" {
		return current == "/"
	}
	return current == link || strings.HasPrefix(current, strings.TrimSuffix(link, "/")+"/")
}
