package reveal

import (
	"fmt"
	"html/template"
	"strings"
)

// Variant holds the CSS classes for the hidden and visible states
type Variant struct {
	Hidden  string
	Visible string
}

// Animation names
const (
	FadeInUp    = "fadeInUp"
	FadeInDown  = "fadeInDown"
	FadeInLeft  = "fadeInLeft"
	FadeInRight = "fadeInRight"
	FadeIn      = "fadeIn"
	ScaleIn     = "scaleIn"
)

// Variants maps animation names to their class pairs
var Variants = map[string]Variant{
	FadeInUp:    {Hidden: "opacity-0 translate-y-8", Visible: "opacity-100 translate-y-0"},
	FadeInDown:  {Hidden: "opacity-0 -translate-y-8", Visible: "opacity-100 translate-y-0"},
	FadeInLeft:  {Hidden: "opacity-0 -translate-x-8", Visible: "opacity-100 translate-x-0"},
	FadeInRight: {Hidden: "opacity-0 translate-x-8", Visible: "opacity-100 translate-x-0"},
	FadeIn:      {Hidden: "opacity-0", Visible: "opacity-100"},
	ScaleIn:     {Hidden: "opacity-0 scale-95", Visible: "opacity-100 scale-100"},
}

// DefaultDuration is the transition length in milliseconds
const DefaultDuration = 600

// Section describes an animated block on a page
type Section struct {
	Animation string
	Delay     int // ms
	Duration  int // ms
	Options   Options
}

// NewSection creates a Section with the default observer options
func NewSection(animation string, delay int) Section {
	return Section{Animation: animation, Delay: delay, Duration: DefaultDuration, Options: DefaultOptions()}
}

// Variant returns the class pair, falling back to fadeInUp
func (s Section) Variant() Variant {
	if v, ok := Variants[s.Animation]; ok {
		return v
	}
	return Variants[FadeInUp]
}

// Class returns the classes for the given state
func (s Section) Class(visible bool) string {
	v := s.Variant()
	state := v.Hidden
	if visible {
		state = v.Visible
	}
	return "reveal transition-all ease-out " + state
}

// Attrs renders the HTML attributes the browser side picks up. Extra classes
// are appended to the class attribute.
func (s Section) Attrs(extra ...string) template.HTMLAttr {
	opts := s.Options
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	opts = opts.withDefaults()
	duration := s.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	v := s.Variant()

	var b strings.Builder
	class := strings.TrimSpace(s.Class(false) + " " + strings.Join(extra, " "))
	fmt.Fprintf(&b, `class="%s"`, template.HTMLEscapeString(class))
	fmt.Fprintf(&b, ` data-reveal-hidden="%s"`, template.HTMLEscapeString(v.Hidden))
	fmt.Fprintf(&b, ` data-reveal-visible="%s"`, template.HTMLEscapeString(v.Visible))
	fmt.Fprintf(&b, ` data-reveal-threshold="%g"`, opts.Threshold)
	fmt.Fprintf(&b, ` data-reveal-once="%t"`, opts.TriggerOnce)
	fmt.Fprintf(&b, ` data-reveal-margin="%s"`, template.HTMLEscapeString(opts.RootMargin))
	fmt.Fprintf(&b, ` style="transition-delay: %dms; transition-duration: %dms"`, s.Delay, duration)
	return template.HTMLAttr(b.String())
}
