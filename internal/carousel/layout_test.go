package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		visible int
		width   int
		height  int
		hint    bool
		density string
		maxW    int
	}{
		{"none", 0, 0, 48, 32, false, DensityFew, 0},
		{"one", 1, 1, 48, 32, false, DensityFew, 56},
		{"five", 5, 5, 48, 32, false, DensityFew, 280},
		{"six", 6, 5, 48, 32, true, DensityModerate, 336},
		{"eight", 8, 5, 48, 32, true, DensityModerate, 400},
		{"nine", 9, 5, 36, 24, true, DensityMany, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Layout(tt.n)
			assert.Equal(t, tt.visible, l.MaxVisibleBullets)
			assert.Equal(t, tt.width, l.BulletWidth)
			assert.Equal(t, tt.height, l.BulletHeight)
			assert.Equal(t, tt.hint, l.ShowScrollHint)
			assert.Equal(t, tt.density, l.Density)
			assert.Equal(t, tt.maxW, l.ContainerMaxWidth)
			assert.Equal(t, tt.n > 1, l.Loop)
		})
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.Equal(t, Layout(n), Layout(n))
	}
}

func TestStripClickCentres(t *testing.T) {
	s := NewStrip(10)
	// compact bullets: 36 wide with 2px margins
	assert.Equal(t, 40, s.Layout().Stride())
	assert.Equal(t, 200, s.ViewportWidth())

	assert.Equal(t, 5, s.Click(5))
	assert.Equal(t, 120, s.Offset())

	s.Click(0)
	assert.Equal(t, 0, s.Offset())

	s.Click(9)
	assert.Equal(t, 200, s.Offset())

	assert.Equal(t, 9, s.Click(42))
}

func TestStripWithoutOverflowNeverScrolls(t *testing.T) {
	s := NewStrip(3)
	assert.False(t, s.Overflows())
	assert.Equal(t, 2, s.Click(2))
	assert.Equal(t, 0, s.Offset())
}

func TestBulletStyle(t *testing.T) {
	s := NewStrip(4)
	assert.Equal(t, BulletStyle{Opacity: 1, Scale: 1, Highlight: true}, s.BulletStyle(1, 1))
	assert.Equal(t, BulletStyle{Opacity: 0.7, Scale: 1}, s.BulletStyle(2, 1))
}
