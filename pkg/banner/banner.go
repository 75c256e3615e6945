package banner

import (
	"sync"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// Banner is the notification component. It observes a DisplayProps
// getter and owns a single piece of state: whether the banner is
// currently visible.
//
// State machine:
//
//	Hidden  --(severity changes to a defined value)--> Visible
//	Visible --(dismiss, reason != clickaway)---------> Hidden   (reset fires once)
//	Visible --(dismiss, reason == clickaway)---------> Visible  (no-op)
//
// The initial state comes from the Open prop at mount. There is no
// terminal state; the component lives until Unmount.
type Banner struct {
	props func() DisplayProps
	cfg   config

	visible *reactive.Signal[bool]
	owner   *reactive.Owner
	snack   *Snackbar

	// closeMu serializes Close against concurrent dismiss sources so
	// the reset callback cannot double-fire on one transition.
	closeMu sync.Mutex
}

// New creates a Banner bound to a reactive DisplayProps getter. The
// getter is re-read on demand; it should read its inputs from signals
// (or a memo) so visibility reacts to status changes.
func New(props func() DisplayProps, opts ...Option) *Banner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sched == nil {
		cfg.sched = reactive.Inline()
	}

	b := &Banner{
		props: props,
		cfg:   cfg,
		owner: reactive.NewOwner(cfg.owner),
	}

	// Initial visibility comes from the Open prop.
	initial := false
	reactive.Untracked(func() {
		initial = props().Open
	})
	b.visible = reactive.NewSignal(initial)
	if initial && cfg.observer != nil {
		reactive.Untracked(func() {
			cfg.observer.BannerShown(props().Severity)
		})
	}

	reactive.WithOwner(b.owner, func() {
		// Any change of severity to a defined value shows the banner.
		first := true
		var last status.Severity
		reactive.CreateEffect(func() reactive.Cleanup {
			sev := b.props().Severity
			if first {
				first = false
				last = sev
				return nil
			}
			if sev == last {
				return nil
			}
			last = sev
			if sev.Valid() && !b.visible.Peek() {
				b.visible.Set(true)
				if b.cfg.observer != nil {
					b.cfg.observer.BannerShown(sev)
				}
			}
			return nil
		})
	})

	b.snack = NewSnackbar(b.owner, cfg.sched, b.snackbarProps)
	return b
}

// Close handles a dismiss event. Clickaway dismissals are ignored
// entirely. Any other reason, while visible, invokes the wired reset
// callback exactly once and hides the banner. Closing an already hidden
// banner is a no-op.
func (b *Banner) Close(reason CloseReason) {
	if reason == ReasonClickaway {
		return
	}

	b.closeMu.Lock()
	defer b.closeMu.Unlock()

	if !b.visible.Peek() {
		return
	}

	var reset func()
	reactive.Untracked(func() {
		reset = b.props().Reset
	})
	if reset != nil {
		reset()
	}
	b.visible.Set(false)

	if b.cfg.observer != nil {
		b.cfg.observer.BannerDismissed(reason)
	}
}

// Visible reports whether the banner is currently in the Visible state.
func (b *Banner) Visible() bool {
	return b.visible.Peek()
}

// Unmount disposes the banner's reactive scope: the severity watcher
// and any pending auto-hide timer.
func (b *Banner) Unmount() {
	b.owner.Dispose()
}

func (b *Banner) snackbarProps() SnackbarProps {
	p := b.props()
	return SnackbarProps{
		Open:     b.visible.Get() && p.Severity.Valid(),
		Severity: p.Severity,
		Message:  p.Message,
		OnClose:  b.Close,
		AutoHide: b.cfg.autoHide,
		Anchor:   b.cfg.anchor,
	}
}

// Render implements vdom.Component. With no defined severity the banner
// renders nothing, even when open: an empty banner must never flash.
func (b *Banner) Render() *vdom.VNode {
	return b.snack.Render()
}

var _ vdom.Component = (*Banner)(nil)
