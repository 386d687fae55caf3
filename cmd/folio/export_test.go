package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/handlers"
	"folio.dev/internal/mailer"
	"folio.dev/internal/models"
)

const sampleContent = `{
  "personal": {"name": "Sam Rivera", "title": "Engineer"},
  "navigation": {"brand": "SR", "links": [{"label": "Projects", "path": "/projects"}]},
  "projects": [
    {"id": 1, "title": "One", "category": "Web", "images": ["/a.png", "/b.png"]},
    {"id": "two", "title": "Two", "category": "CLI"}
  ]
}`

func TestExportSite(t *testing.T) {
	site, err := content.Parse([]byte(sampleContent), ".json")
	require.NoError(t, err)

	h, err := handlers.SetupRoutes(handlers.Deps{
		Config: config.Default(),
		Site:   site,
		Sender: mailer.NewEmailJS(config.EmailConfig{}),
	})
	require.NoError(t, err)

	dir := t.TempDir()
	n, err := exportSite(h, site, dir)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	for _, f := range []string{
		"index.html",
		"about/index.html",
		"projects/index.html",
		"projects/1/index.html",
		"projects/two/index.html",
		"contact/index.html",
		"404.html",
		"static/style.css",
		"static/reveal.js",
	} {
		assert.FileExists(t, filepath.Join(dir, f))
	}

	page, err := os.ReadFile(filepath.Join(dir, "projects", "1", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "One - Image 1")

	data, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(data, &projects))
	assert.Len(t, projects, 2)
	assert.Equal(t, models.ProjectID("1"), projects[0].ID)
}
