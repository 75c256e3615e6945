package banner

import "github.com/flashbar-dev/flashbar/pkg/status"

// DisplayProps is the derived, ephemeral input of a Banner. It is
// recomputed from a status source on demand; none of it is persisted.
type DisplayProps struct {
	// Open requests the banner to start visible.
	Open bool

	// Severity selects the visual variant. The zero value means
	// "nothing to show": the banner renders no output at all.
	Severity status.Severity

	// Message is the text displayed inside the banner.
	Message string

	// Reset, when non-nil, is invoked once per visible-to-hidden
	// transition (never on clickaway).
	Reset func()
}

// Observer receives component lifecycle notifications. The middleware
// package provides a Prometheus-backed implementation.
type Observer interface {
	// BannerShown fires on each hidden-to-visible transition.
	BannerShown(severity status.Severity)

	// BannerDismissed fires on each visible-to-hidden transition.
	BannerDismissed(reason CloseReason)
}
