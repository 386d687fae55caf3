package carousel

// Indicator sizing constants
const (
	MaxVisibleBullets = 5
	CompactThreshold  = 8
	bulletSlotWidth   = 56
	maxContainerWidth = 400
)

// Density classes describe how crowded the indicator strip is
const (
	DensityFew      = "few-images"
	DensityModerate = "moderate-images"
	DensityMany     = "many-images"
)

// PaginationLayout holds indicator-strip parameters derived from the image count
type PaginationLayout struct {
	Count             int    `json:"count"`
	MaxVisibleBullets int    `json:"max_visible_bullets"`
	BulletWidth       int    `json:"bullet_width"`
	BulletHeight      int    `json:"bullet_height"`
	BulletMargin      int    `json:"bullet_margin"`
	ContainerMaxWidth int    `json:"container_max_width"`
	ShowScrollHint    bool   `json:"show_scroll_hint"`
	DynamicBullets    bool   `json:"dynamic_bullets"`
	Loop              bool   `json:"loop"`
	Density           string `json:"density"`
}

// Layout computes the indicator strip for n images. It is a pure function of n.
func Layout(n int) PaginationLayout {
	if n < 0 {
		n = 0
	}

	l := PaginationLayout{
		Count:             n,
		MaxVisibleBullets: min(n, MaxVisibleBullets),
		BulletWidth:       48,
		BulletHeight:      32,
		BulletMargin:      4,
		ContainerMaxWidth: min(n*bulletSlotWidth, maxContainerWidth),
		DynamicBullets:    n > MaxVisibleBullets,
		Loop:              n > 1,
		Density:           DensityFew,
	}
	l.ShowScrollHint = n > l.MaxVisibleBullets

	if n > CompactThreshold {
		l.BulletWidth = 36
		l.BulletHeight = 24
		l.BulletMargin = 2
		l.Density = DensityMany
	} else if n > MaxVisibleBullets {
		l.Density = DensityModerate
	}

	return l
}

// Stride returns the horizontal space one indicator occupies
func (l PaginationLayout) Stride() int {
	return l.BulletWidth + 2*l.BulletMargin
}
