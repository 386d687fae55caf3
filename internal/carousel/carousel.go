// Package carousel tracks which image of a project's gallery is shown.
//
// A Carousel belongs to a single project detail view. Stepping wraps around
// the sequence, direct jumps are clamped into range, and selecting a different
// project always starts again from the first image.
package carousel

import "time"

// Autoplay policy for looping galleries, applied by the page script
const (
	AutoplayDelay      = 5 * time.Second
	AutoplayPauseHover = true
)

// Carousel is the image-index controller for one project
type Carousel struct {
	projectID string
	images    []string
	index     int
}

// New creates a Carousel positioned on the first image
func New(projectID string, images []string) *Carousel {
	return &Carousel{projectID: projectID, images: images}
}

// Select switches the carousel to a project. A different project resets the
// index to 0 even when the old index would still be in range.
func (c *Carousel) Select(projectID string, images []string) {
	if projectID != c.projectID {
		c.projectID = projectID
		c.images = images
		c.index = 0
		return
	}
	c.images = images
	c.GoTo(c.index)
}

// ProjectID returns the selected project
func (c *Carousel) ProjectID() string {
	return c.projectID
}

// Len returns the number of images
func (c *Carousel) Len() int {
	return len(c.images)
}

// Empty reports whether there is nothing to show; callers render a placeholder.
func (c *Carousel) Empty() bool {
	return len(c.images) == 0
}

// HasControls reports whether previous/next controls make sense
func (c *Carousel) HasControls() bool {
	return len(c.images) > 1
}

// Index returns the current position. It is meaningless when Empty.
func (c *Carousel) Index() int {
	return c.index
}

// Current returns the image at the current position
func (c *Carousel) Current() (string, bool) {
	if c.Empty() {
		return "", false
	}
	return c.images[c.index], true
}

// Images returns the sequence being browsed
func (c *Carousel) Images() []string {
	return c.images
}

// Next advances one image, wrapping from the last to the first
func (c *Carousel) Next() {
	c.index = c.NextIndex()
}

// Previous steps back one image, wrapping from the first to the last
func (c *Carousel) Previous() {
	c.index = c.PreviousIndex()
}

// NextIndex returns the index Next would move to
func (c *Carousel) NextIndex() int {
	n := len(c.images)
	if n <= 1 {
		return 0
	}
	return (c.index + 1) % n
}

// PreviousIndex returns the index Previous would move to
func (c *Carousel) PreviousIndex() int {
	n := len(c.images)
	if n <= 1 {
		return 0
	}
	return (c.index - 1 + n) % n
}

// GoTo jumps to position i, clamped into [0, Len()-1]
func (c *Carousel) GoTo(i int) {
	c.index = clamp(i, 0, len(c.images)-1)
}

// clamp limits a value to a range; an empty range collapses to 0
func clamp(val, min, max int) int {
	if max < min {
		return 0
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
