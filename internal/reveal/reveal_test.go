package reveal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserverTriggerOnce(t *testing.T) {
	o := NewObserver(DefaultOptions())

	var changes []bool
	o.Attach("hero", func(v bool) { changes = append(changes, v) })

	o.Observe(Entry{Target: "hero", Ratio: 0.05})
	assert.Empty(t, changes, "below threshold")

	o.Observe(Entry{Target: "hero", Ratio: 0.5})
	require.Equal(t, []bool{true}, changes)
	assert.False(t, o.Attached("hero"), "detached after first trigger")

	o.Observe(Entry{Target: "hero", Ratio: 0})
	assert.Equal(t, []bool{true}, changes)
}

func TestObserverToggles(t *testing.T) {
	o := NewObserver(Options{Threshold: 0.25, TriggerOnce: false})

	var changes []bool
	o.Attach("card", func(v bool) { changes = append(changes, v) })

	o.Observe(Entry{Target: "card", Ratio: 0.3})
	o.Observe(Entry{Target: "card", Ratio: 0.9})
	o.Observe(Entry{Target: "card", Ratio: 0})
	o.Observe(Entry{Target: "card", Ratio: 0.1})
	o.Observe(Entry{Target: "card", Ratio: 0.25})

	assert.Equal(t, []bool{true, false, true}, changes)
	assert.True(t, o.Attached("card"))
}

func TestObserverUnknownTargetIsNoop(t *testing.T) {
	o := NewObserver(DefaultOptions())
	assert.NotPanics(t, func() {
		o.Observe(Entry{Target: "missing", Ratio: 1})
	})

	called := false
	o.Attach("x", func(bool) { called = true })
	o.Detach("x")
	o.Observe(Entry{Target: "x", Ratio: 1})
	assert.False(t, called)
}

func TestObserverDefaults(t *testing.T) {
	o := NewObserver(Options{})
	assert.Equal(t, DefaultThreshold, o.Options().Threshold)
	assert.Equal(t, DefaultRootMargin, o.Options().RootMargin)
}

func TestSectionAttrs(t *testing.T) {
	s := NewSection(ScaleIn, 200)
	attrs := string(s.Attrs())

	assert.Contains(t, attrs, "opacity-0 scale-95")
	assert.Contains(t, attrs, `data-reveal-once="true"`)
	assert.Contains(t, attrs, `data-reveal-threshold="0.1"`)
	assert.Contains(t, attrs, "transition-delay: 200ms")
	assert.Contains(t, attrs, "transition-duration: 600ms")
}

func TestSectionAttrsExtraClasses(t *testing.T) {
	attrs := string(NewSection(FadeIn, 0).Attrs("center", "wide"))
	assert.Contains(t, attrs, `class="reveal transition-all ease-out opacity-0 center wide"`)
}

func TestSectionUnknownAnimationFallsBack(t *testing.T) {
	s := Section{Animation: "spin"}
	assert.Equal(t, Variants[FadeInUp], s.Variant())
	assert.True(t, strings.HasSuffix(s.Class(true), Variants[FadeInUp].Visible))
}
