package banner

import (
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// QueryBanner adapts a query-style status source into a Banner.
//
// When the source has no status message, nothing is mounted at all;
// "nothing to show" is distinct from "show a closed banner". When a
// status is present the banner opens with its severity and message.
// No reset callback is wired; query results are not reset through this
// path.
type QueryBanner struct {
	source status.QuerySource
	banner *Banner
}

// NewQueryBanner creates the adapter. A nil source renders nothing.
func NewQueryBanner(source status.QuerySource, opts ...Option) *QueryBanner {
	q := &QueryBanner{source: source}
	if source == nil {
		return q
	}

	q.banner = New(func() DisplayProps {
		msg := source.StatusMessage()
		if msg == nil {
			return DisplayProps{}
		}
		return DisplayProps{
			Open:     true,
			Severity: msg.Severity,
			Message:  msg.Message,
		}
	}, opts...)

	return q
}

// Render implements vdom.Component.
func (q *QueryBanner) Render() *vdom.VNode {
	if q.banner == nil {
		return nil
	}
	if q.source.StatusMessage() == nil {
		return nil
	}
	return q.banner.Render()
}

// Unmount releases the underlying banner's reactive scope.
func (q *QueryBanner) Unmount() {
	if q.banner != nil {
		q.banner.Unmount()
	}
}

var _ vdom.Component = (*QueryBanner)(nil)
