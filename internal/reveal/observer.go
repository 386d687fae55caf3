// Package reveal implements scroll-reveal: a section starts hidden and flips
// to visible once enough of it enters the viewport.
package reveal

import "sync"

// Defaults used when Options are left zero
const (
	DefaultThreshold  = 0.1
	DefaultRootMargin = "0px 0px -50px 0px"
)

// Options configures when a target counts as visible
type Options struct {
	Threshold   float64 `json:"threshold"`
	TriggerOnce bool    `json:"triggerOnce"`
	RootMargin  string  `json:"rootMargin"`
}

// DefaultOptions returns the options sections use unless told otherwise
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, TriggerOnce: true, RootMargin: DefaultRootMargin}
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 || o.Threshold > 1 {
		o.Threshold = DefaultThreshold
	}
	if o.RootMargin == "" {
		o.RootMargin = DefaultRootMargin
	}
	return o
}

// Visibility is anything that can report when a target enters or leaves view.
// A browser IntersectionObserver satisfies it; so does Observer.
type Visibility interface {
	Attach(target string, onChange func(visible bool))
	Detach(target string)
}

// Entry is one intersection sample for a target
type Entry struct {
	Target string
	Ratio  float64 // fraction of the target's area inside the viewport
}

type watch struct {
	visible  bool
	onChange func(bool)
}

// Observer drives visibility flags from intersection samples
type Observer struct {
	opts Options

	mu      sync.Mutex
	targets map[string]*watch
}

var _ Visibility = (*Observer)(nil)

// NewObserver creates an Observer
func NewObserver(opts Options) *Observer {
	return &Observer{opts: opts.withDefaults(), targets: make(map[string]*watch)}
}

// Options returns the effective options
func (o *Observer) Options() Options {
	return o.opts
}

// Attach starts watching target. Every target starts hidden.
func (o *Observer) Attach(target string, onChange func(visible bool)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets[target] = &watch{onChange: onChange}
}

// Detach stops watching target
func (o *Observer) Detach(target string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.targets, target)
}

// Attached reports whether target is being watched
func (o *Observer) Attached(target string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.targets[target]
	return ok
}

// Observe applies an intersection sample. Samples for unknown targets are
// ignored. With TriggerOnce the target is detached after it first shows.
func (o *Observer) Observe(e Entry) {
	o.mu.Lock()
	w, ok := o.targets[e.Target]
	if !ok {
		o.mu.Unlock()
		return
	}

	intersecting := e.Ratio > 0 && e.Ratio >= o.opts.Threshold
	changed := false
	switch {
	case intersecting:
		changed = !w.visible
		w.visible = true
		if o.opts.TriggerOnce {
			delete(o.targets, e.Target)
		}
	case !o.opts.TriggerOnce:
		changed = w.visible
		w.visible = false
	}
	cb := w.onChange
	visible := w.visible
	o.mu.Unlock()

	// callbacks run outside the lock so they may Attach or Detach
	if changed && cb != nil {
		cb(visible)
	}
}
