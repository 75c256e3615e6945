package banner

import (
	"time"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// SnackbarProps is the prop contract of the Snackbar widget.
type SnackbarProps struct {
	Open     bool
	Severity status.Severity
	Message  string

	// OnClose is invoked with the reason when the widget wants to
	// close: the dismiss button, the auto-hide timer, or a clickaway.
	OnClose func(CloseReason)

	// AutoHide is how long the snackbar stays open before it fires
	// OnClose(ReasonTimeout). Zero or negative disables auto-hide.
	AutoHide time.Duration

	Anchor Anchor
}

// Snackbar is the rendering primitive underneath Banner. It owns the
// auto-hide timer: the timer is armed when Open becomes true and
// cancelled when Open turns false or the widget unmounts.
type Snackbar struct {
	props func() SnackbarProps
	sched reactive.Scheduler
	owner *reactive.Owner
}

// NewSnackbar creates a snackbar bound to a reactive props getter.
// The widget's scope is parented under owner; disposing it cancels any
// pending timer.
func NewSnackbar(owner *reactive.Owner, sched reactive.Scheduler, props func() SnackbarProps) *Snackbar {
	if sched == nil {
		sched = reactive.Inline()
	}
	s := &Snackbar{
		props: props,
		sched: sched,
		owner: reactive.NewOwner(owner),
	}

	reactive.WithOwner(s.owner, func() {
		// The timer outlives individual effect runs: a message or
		// severity update while the snackbar is open must not restart
		// the auto-hide window. Only the open state arms and disarms.
		var cancel reactive.Cleanup
		s.owner.OnCleanup(func() {
			if cancel != nil {
				cancel()
			}
		})
		reactive.CreateEffect(func() reactive.Cleanup {
			p := s.props()
			armed := p.Open && p.Severity.Valid() && p.AutoHide > 0
			if !armed {
				if cancel != nil {
					cancel()
					cancel = nil
				}
				return nil
			}
			if cancel != nil {
				return nil
			}
			onClose := p.OnClose
			cancel = reactive.Timeout(s.sched, p.AutoHide, func() {
				if onClose != nil {
					onClose(ReasonTimeout)
				}
			})
			return nil
		})
	})

	return s
}

// Unmount disposes the widget's reactive scope, cancelling any pending
// auto-hide timer.
func (s *Snackbar) Unmount() {
	s.owner.Dispose()
}

// severityClasses map each severity to its visual variant.
var severityClasses = map[status.Severity]string{
	status.SeveritySuccess: "flashbar-success",
	status.SeverityInfo:    "flashbar-info",
	status.SeverityWarning: "flashbar-warning",
	status.SeverityError:   "flashbar-error",
}

// Render implements vdom.Component. Without a defined severity the
// snackbar produces no output at all, regardless of Open.
func (s *Snackbar) Render() *vdom.VNode {
	p := s.props()
	if !p.Severity.Valid() {
		return nil
	}

	openClass := "flashbar-closed"
	ariaLive := "off"
	if p.Open {
		openClass = "flashbar-open"
		ariaLive = "polite"
		if p.Severity == status.SeverityError {
			ariaLive = "assertive"
		}
	}

	anchor := p.Anchor
	if anchor == "" {
		anchor = AnchorBottomLeft
	}

	return vdom.Div(
		vdom.Class("flashbar-snackbar", "flashbar-anchor-"+string(anchor), severityClasses[p.Severity], openClass),
		vdom.Role("alert"),
		vdom.AriaLive(ariaLive),
		vdom.AriaAtomic(true),
		vdom.Data("severity", string(p.Severity)),
		vdom.Hidden(!p.Open),
		vdom.Span(
			vdom.Class("flashbar-message"),
			vdom.Text(p.Message),
		),
		vdom.Button(
			vdom.Class("flashbar-close"),
			vdom.Type("button"),
			vdom.AriaLabel("Dismiss"),
			vdom.OnClick(func() {
				if p.OnClose != nil {
					p.OnClose(ReasonCloseButton)
				}
			}),
			vdom.Text("×"),
		),
	)
}

var _ vdom.Component = (*Snackbar)(nil)
