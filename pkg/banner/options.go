package banner

import (
	"time"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
)

// DefaultAutoHide is how long a banner stays visible before it
// dismisses itself.
const DefaultAutoHide = 6000 * time.Millisecond

// Anchor is the corner of the viewport the snackbar attaches to.
type Anchor string

const (
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
)

type config struct {
	autoHide time.Duration
	anchor   Anchor
	sched    reactive.Scheduler
	observer Observer
	owner    *reactive.Owner
}

func defaultConfig() config {
	return config{
		autoHide: DefaultAutoHide,
		anchor:   AnchorBottomLeft,
	}
}

// Option configures a banner component.
type Option func(*config)

// WithAutoHide sets the auto-hide duration. Zero or negative disables
// auto-hide entirely.
func WithAutoHide(d time.Duration) Option {
	return func(c *config) {
		c.autoHide = d
	}
}

// WithAnchor sets the viewport corner the snackbar attaches to.
func WithAnchor(a Anchor) Option {
	return func(c *config) {
		c.anchor = a
	}
}

// WithScheduler sets the scheduler that serializes timer callbacks.
// Defaults to reactive.Inline().
func WithScheduler(s reactive.Scheduler) Option {
	return func(c *config) {
		c.sched = s
	}
}

// WithObserver wires show/dismiss notifications to an Observer.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithOwner parents the banner's reactive scope under an existing owner,
// so disposing that owner unmounts the banner.
func WithOwner(o *reactive.Owner) Option {
	return func(c *config) {
		c.owner = o
	}
}
