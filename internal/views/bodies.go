package views

import (
	"fmt"
	"html/template"
	"net/url"

	"folio.dev/internal/carousel"
	"folio.dev/internal/models"
)

// FilterButton is one category choice on the Projects page
type FilterButton struct {
	Label  string
	Count  int
	Active bool
	URL    string
}

// ProjectsBody is the Projects page
type ProjectsBody struct {
	Filters  []FilterButton
	Active   string
	Projects []models.Project
	ResetURL string
}

// Slide is one image of a gallery together with its indicator
type Slide struct {
	Index  int
	Image  string
	Alt    string
	Active bool
	URL    string
	Style  carousel.BulletStyle
}

// Gallery is the rendered state of a project's carousel
type Gallery struct {
	Slides      []Slide
	Current     string
	Index       int
	Count       int
	HasControls bool
	PrevURL     string
	NextURL     string
	Placeholder template.URL
	Layout      carousel.PaginationLayout
	Offset      int // indicator strip scroll, px
	WheelStep   int // px per wheel notch over the strip

	// Autoplay is the rotation delay in ms, 0 when the gallery does not loop
	Autoplay     int64
	PauseOnHover bool
}

// NewGallery renders the carousel for a project page at baseURL
func NewGallery(c *carousel.Carousel, title, baseURL string) Gallery {
	g := Gallery{
		Index:       c.Index(),
		Count:       c.Len(),
		HasControls: c.HasControls(),
		Layout:      carousel.Layout(c.Len()),
		WheelStep:   carousel.WheelStep,
	}
	if g.Layout.Loop {
		g.Autoplay = carousel.AutoplayDelay.Milliseconds()
		g.PauseOnHover = carousel.AutoplayPauseHover
	}
	if c.Empty() {
		g.Placeholder = Placeholder(title, 1200, 600)
		return g
	}

	strip := carousel.NewStrip(c.Len())
	strip.Click(c.Index())
	g.Offset = strip.Offset()

	g.Current, _ = c.Current()
	g.PrevURL = imageURL(baseURL, c.PreviousIndex())
	g.NextURL = imageURL(baseURL, c.NextIndex())
	for i, img := range c.Images() {
		g.Slides = append(g.Slides, Slide{
			Index:  i,
			Image:  img,
			Alt:    fmt.Sprintf("%s - Image %d", title, i+1),
			Active: i == c.Index(),
			URL:    imageURL(baseURL, i),
			Style:  strip.BulletStyle(i, c.Index()),
		})
	}
	return g
}

func imageURL(base string, i int) string {
	q := url.Values{}
	q.Set("image", fmt.Sprint(i))
	return base + "?" + q.Encode()
}

// ProjectBody is the Project Detail page
type ProjectBody struct {
	Project models.Project
	Gallery Gallery
	Related []models.Project
}

// ContactBody is the Contact page
type ContactBody struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	FormID   string
	Fallback string
	Missing  []string
}

// NotFoundBody is the empty state for unknown pages and projects
type NotFoundBody struct {
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}
