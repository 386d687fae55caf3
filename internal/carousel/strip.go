package carousel

// WheelStep is the horizontal scroll, in pixels, the browser applies per
// wheel notch over an overflowing strip
const WheelStep = 50

// Strip is the indicator row under the gallery. It only tracks the scroll
// offset; the selected image stays with the Carousel. Hover feedback is left
// to CSS.
type Strip struct {
	layout PaginationLayout
	offset int
}

// BulletStyle is the declarative look of one indicator
type BulletStyle struct {
	Opacity   float64 `json:"opacity"`
	Scale     float64 `json:"scale"`
	Highlight bool    `json:"highlight"`
}

// NewStrip creates a Strip for n indicators
func NewStrip(n int) *Strip {
	return &Strip{layout: Layout(n)}
}

// Layout returns the layout the strip was built from
func (s *Strip) Layout() PaginationLayout {
	return s.layout
}

// Overflows reports whether some indicators are out of view
func (s *Strip) Overflows() bool {
	return s.layout.Count > s.layout.MaxVisibleBullets
}

// ViewportWidth returns the visible strip width in pixels
func (s *Strip) ViewportWidth() int {
	return s.layout.MaxVisibleBullets * s.layout.Stride()
}

// ContentWidth returns the full strip width in pixels
func (s *Strip) ContentWidth() int {
	return s.layout.Count * s.layout.Stride()
}

// Offset returns the current horizontal scroll in pixels
func (s *Strip) Offset() int {
	return s.offset
}

func (s *Strip) maxOffset() int {
	return max(0, s.ContentWidth()-s.ViewportWidth())
}

func (s *Strip) scrollTo(px int) {
	s.offset = clamp(px, 0, s.maxOffset())
}

// Click handles a press on indicator i and returns the image index to jump
// to. When the strip overflows the clicked indicator is scrolled to the centre.
func (s *Strip) Click(i int) int {
	i = clamp(i, 0, s.layout.Count-1)
	if s.Overflows() {
		stride := s.layout.Stride()
		s.scrollTo(i*stride + stride/2 - s.ViewportWidth()/2)
	}
	return i
}

// BulletStyle returns how indicator i should look given the active image
func (s *Strip) BulletStyle(i, active int) BulletStyle {
	if i == active {
		return BulletStyle{Opacity: 1, Scale: 1, Highlight: true}
	}
	return BulletStyle{Opacity: 0.7, Scale: 1}
}
