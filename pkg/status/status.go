// Package status defines the severity/message data model shared by the
// flashbar components and the async-state trackers that feed them.
package status

// Severity is the alert level of a status message. It controls the
// visual styling of the banner that displays it.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the four known severities.
// The zero value ("") is not valid; banners treat it as "nothing to show".
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// StatusMessage is the outcome of an asynchronous operation, as produced
// by a query or mutation source. A nil *StatusMessage means "no status".
type StatusMessage struct {
	Severity Severity
	Message  string
}

// QuerySource is the contract a query-style result must expose to be
// displayed by a QueryBanner.
type QuerySource interface {
	// StatusMessage returns the current status, or nil when there is
	// nothing to show.
	StatusMessage() *StatusMessage
}

// MutationSource is the contract a mutation-style result must expose to
// be displayed by a MutationBanner.
type MutationSource interface {
	// StatusMessage returns the explicit status, or nil.
	StatusMessage() *StatusMessage

	// IsError reports whether the last run failed.
	IsError() bool

	// FailureReason returns the failure, or nil. Its message text is
	// used when no explicit StatusMessage is present.
	FailureReason() error

	// Reset clears the mutation's state. Banners invoke it when the
	// user dismisses the notification.
	Reset()
}
