package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio.dev/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "1", Title: "One", CategoryTags: []string{"Web"}},
		{ID: "2", Title: "Two", CategoryTags: []string{"Web", "Mobile"}},
		{ID: "3", Title: "Three", CategoryTags: []string{"Data"}},
	}
}

func ids(projects []models.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID.String()
	}
	return out
}

func TestCategories(t *testing.T) {
	s := NewProjectService(sampleProjects())
	assert.Equal(t, []string{"All", "Web", "Mobile", "Data"}, s.Categories())
}

func TestCategoriesSingularFallback(t *testing.T) {
	s := NewProjectService([]models.Project{
		{ID: "a", Category: "Design"},
		{ID: "b", CategoryTags: []string{"Design", "Web"}},
		{ID: "c"},
	})
	assert.Equal(t, []string{"All", "Design", "Web"}, s.Categories())
	assert.Equal(t, []string{"a", "b"}, ids(s.Filter("Design")))
}

func TestFilter(t *testing.T) {
	s := NewProjectService(sampleProjects())

	t.Run("Mobile", func(t *testing.T) {
		assert.Equal(t, []string{"2"}, ids(s.Filter("Mobile")))
	})

	t.Run("All keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2", "3"}, ids(s.Filter("All")))
	})

	t.Run("Web keeps order", func(t *testing.T) {
		assert.Equal(t, []string{"1", "2"}, ids(s.Filter("Web")))
	})

	t.Run("unknown label", func(t *testing.T) {
		got := s.Filter("Games")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterMatchesCategoryMembership(t *testing.T) {
	s := NewProjectService(sampleProjects())
	for _, label := range s.Categories()[1:] {
		for _, p := range s.Filter(label) {
			assert.True(t, p.HasCategory(label), "%s in %s", p.ID, label)
		}
	}
}

func TestCount(t *testing.T) {
	s := NewProjectService(sampleProjects())
	assert.Equal(t, 3, s.Count("All"))
	assert.Equal(t, 2, s.Count("Web"))
	assert.Equal(t, 0, s.Count("Nope"))
}

func TestGetByID(t *testing.T) {
	s := NewProjectService(sampleProjects())

	p, err := s.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Two", p.Title)

	_, err = s.GetByID("99")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRelated(t *testing.T) {
	projects := append(sampleProjects(),
		models.Project{ID: "4"},
		models.Project{ID: "5"},
	)
	s := NewProjectService(projects)

	assert.Equal(t, []string{"2", "3", "4"}, ids(s.Related("1", 3)))
	assert.Equal(t, []string{"1", "3", "4"}, ids(s.Related("2", 0)))
	assert.Equal(t, []string{"1"}, ids(s.Related("5", 1)))
}
