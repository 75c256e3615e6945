package banner

// CloseReason describes why a snackbar close event fired.
type CloseReason string

const (
	// ReasonTimeout means the auto-hide duration elapsed.
	ReasonTimeout CloseReason = "timeout"

	// ReasonCloseButton means the user pressed the dismiss button.
	ReasonCloseButton CloseReason = "close"

	// ReasonClickaway means the user clicked outside the banner.
	// Clickaway dismissals are ignored: no state change, no callback.
	ReasonClickaway CloseReason = "clickaway"

	// ReasonProgrammatic means application code requested the close.
	ReasonProgrammatic CloseReason = "programmatic"
)
