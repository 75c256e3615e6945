package banner

import (
	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// MutationBanner adapts a mutation-style status source into a Banner.
//
// Derivation priority:
//  1. An explicit status message wins, whatever IsError says.
//  2. Otherwise a failed run becomes a synthetic error banner carrying
//     the failure reason's text (empty if unavailable).
//  3. Otherwise the banner stays mounted but closed, unlike
//     QueryBanner, which mounts nothing when there is no status.
//
// The source's Reset is wired as the dismiss callback in cases 1 and 2.
type MutationBanner struct {
	source  status.MutationSource
	derived *reactive.Memo[DisplayProps]
	banner  *Banner
}

// NewMutationBanner creates the adapter. A nil source renders nothing.
func NewMutationBanner(source status.MutationSource, opts ...Option) *MutationBanner {
	m := &MutationBanner{source: source}
	if source == nil {
		return m
	}

	// Memoized so the props object only changes when the status
	// message, error flag, or failure reason change; unrelated
	// re-renders must not disturb in-progress visibility state.
	m.derived = reactive.NewMemo(func() DisplayProps {
		return DeriveDisplayProps(source)
	})
	m.banner = New(m.derived.Get, opts...)

	return m
}

// DeriveDisplayProps computes a mutation source's display props. It is
// a pure function of StatusMessage, IsError, and FailureReason.
func DeriveDisplayProps(source status.MutationSource) DisplayProps {
	if msg := source.StatusMessage(); msg != nil {
		return DisplayProps{
			Open:     true,
			Severity: msg.Severity,
			Message:  msg.Message,
			Reset:    source.Reset,
		}
	}

	if source.IsError() {
		message := ""
		if err := source.FailureReason(); err != nil {
			message = err.Error()
		}
		return DisplayProps{
			Open:     true,
			Severity: status.SeverityError,
			Message:  message,
			Reset:    source.Reset,
		}
	}

	return DisplayProps{Open: false, Reset: source.Reset}
}

// Render implements vdom.Component.
func (m *MutationBanner) Render() *vdom.VNode {
	if m.banner == nil {
		return nil
	}
	return m.banner.Render()
}

// Banner exposes the underlying Banner, mainly for dismissal wiring.
// Returns nil when no source was provided.
func (m *MutationBanner) Banner() *Banner {
	return m.banner
}

// Unmount releases the underlying banner's reactive scope.
func (m *MutationBanner) Unmount() {
	if m.banner != nil {
		m.banner.Unmount()
	}
}

var _ vdom.Component = (*MutationBanner)(nil)
