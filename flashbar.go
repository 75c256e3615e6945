// Package flashbar provides the public API for the flashbar
// notification toolkit.
//
// This is the recommended import for most applications:
//
//	import "github.com/flashbar-dev/flashbar"
//
// Usage:
//
//	b := flashbar.NewBanner(func() flashbar.DisplayProps {
//	    return flashbar.DisplayProps{
//	        Open:     true,
//	        Severity: flashbar.SeveritySuccess,
//	        Message:  "Profile saved",
//	    }
//	})
//	defer b.Unmount()
//	html := flashbar.RenderToString(b.Render())
package flashbar

import (
	"github.com/flashbar-dev/flashbar/pkg/banner"
	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/render"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// =============================================================================
// Severity and status messages (re-export from pkg/status)
// =============================================================================

// Severity classifies a notification.
type Severity = status.Severity

const (
	SeveritySuccess = status.SeveritySuccess
	SeverityInfo    = status.SeverityInfo
	SeverityWarning = status.SeverityWarning
	SeverityError   = status.SeverityError
)

// StatusMessage is a severity plus human-readable text. A nil
// StatusMessage means there is nothing to report.
type StatusMessage = status.StatusMessage

// QuerySource supplies the status of a read operation.
type QuerySource = status.QuerySource

// MutationSource supplies the status of a write operation.
type MutationSource = status.MutationSource

// =============================================================================
// Banner components (re-export from pkg/banner)
// =============================================================================

// DisplayProps describe what a banner should show.
type DisplayProps = banner.DisplayProps

// Banner is the base notification banner component.
type Banner = banner.Banner

// QueryBanner shows the status of a read operation.
type QueryBanner = banner.QueryBanner

// MutationBanner shows the status of a write operation.
type MutationBanner = banner.MutationBanner

// CloseReason says why a banner was dismissed.
type CloseReason = banner.CloseReason

const (
	ReasonTimeout      = banner.ReasonTimeout
	ReasonCloseButton  = banner.ReasonCloseButton
	ReasonClickaway    = banner.ReasonClickaway
	ReasonProgrammatic = banner.ReasonProgrammatic
)

// DefaultAutoHide is how long a banner stays visible before it
// dismisses itself.
const DefaultAutoHide = banner.DefaultAutoHide

// Option configures a banner component.
type Option = banner.Option

var (
	WithAutoHide  = banner.WithAutoHide
	WithAnchor    = banner.WithAnchor
	WithScheduler = banner.WithScheduler
	WithObserver  = banner.WithObserver
)

// NewBanner creates a banner driven by the given props function.
//
// Example:
//
//	b := flashbar.NewBanner(func() flashbar.DisplayProps {
//	    return flashbar.DisplayProps{Open: true, Severity: flashbar.SeverityInfo, Message: "Hi"}
//	})
func NewBanner(props func() DisplayProps, opts ...Option) *Banner {
	return banner.New(props, opts...)
}

// NewQueryBanner creates a banner that follows a query's status.
// A nil source renders nothing.
func NewQueryBanner(source QuerySource, opts ...Option) *QueryBanner {
	return banner.NewQueryBanner(source, opts...)
}

// NewMutationBanner creates a banner that follows a mutation's status.
// A nil source renders nothing.
func NewMutationBanner(source MutationSource, opts ...Option) *MutationBanner {
	return banner.NewMutationBanner(source, opts...)
}

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// NewSignal creates a new reactive signal with the given initial value.
//
// Example:
//
//	count := flashbar.NewSignal(0)
//	count.Set(1)
//	value := count.Get() // 1
func NewSignal[T any](initial T) *reactive.Signal[T] {
	return reactive.NewSignal(initial)
}

// NewMemo creates a computed value that automatically tracks its
// dependencies.
//
// Example:
//
//	doubled := flashbar.NewMemo(func() int {
//	    return count.Get() * 2
//	})
func NewMemo[T any](compute func() T) *reactive.Memo[T] {
	return reactive.NewMemo(compute)
}

// Batch groups multiple signal writes into one notification pass.
var Batch = reactive.Batch

// =============================================================================
// Rendering (re-export from pkg/vdom and pkg/render)
// =============================================================================

// VNode is a virtual DOM node.
type VNode = vdom.VNode

// RenderToString renders a VNode tree to an HTML string. A nil node
// renders as the empty string.
func RenderToString(node *VNode) (string, error) {
	return render.New(render.Config{}).RenderToString(node)
}
