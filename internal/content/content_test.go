package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
)

const sampleJSON = `{
  "personal": {"name": "Ada", "title": "Engineer"},
  "navigation": {"brand": "Ada.", "links": [{"label": "Home", "path": "/"}]},
  "projects": [
    {"id": 1, "title": "One", "category": "Web", "tags": ["Go"], "image": "/a.png"},
    {"id": "two", "title": "Two", "categories": ["Web", "Mobile"], "tags": [], "images": ["/b1.png", "/b2.png"]}
  ]
}`

const sampleYAML = `
personal:
  name: Ada
projects:
  - id: 3
    title: Three
    categories: [Data]
    tags: [Python]
`

func TestParseJSON(t *testing.T) {
	p, err := Parse([]byte(sampleJSON), ".json")
	require.NoError(t, err)

	require.Len(t, p.Projects, 2)
	assert.Equal(t, models.ProjectID("1"), p.Projects[0].ID)
	assert.Equal(t, models.ProjectID("two"), p.Projects[1].ID)
	assert.Equal(t, []string{"Web"}, p.Projects[0].Categories())
	assert.Equal(t, []string{"/a.png"}, p.Projects[0].Images())
	assert.Equal(t, []string{"/b1.png", "/b2.png"}, p.Projects[1].Images())
	assert.Equal(t, "Ada.", p.Navigation.Brand)
}

func TestParseYAML(t *testing.T) {
	p, err := Parse([]byte(sampleYAML), ".yml")
	require.NoError(t, err)

	require.Len(t, p.Projects, 1)
	assert.Equal(t, models.ProjectID("3"), p.Projects[0].ID)
	assert.Equal(t, []string{"Data"}, p.Projects[0].Categories())
	assert.Empty(t, p.Projects[0].Images())
}

func TestParseUnsupported(t *testing.T) {
	_, err := Parse([]byte("x"), ".toml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	p := &models.Portfolio{Projects: []models.Project{
		{ID: "1", Title: "One"},
		{ID: "1", Title: "Dup"},
		{ID: "", Title: "Anon"},
		{ID: "4", Title: " "},
	}}

	err := Validate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate project id "1"`)
	assert.Contains(t, err.Error(), "project #2 has no id")
	assert.Contains(t, err.Error(), `project "4" has no title`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.Personal.Name)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
