// Package toast dispatches feedback notifications to connected clients.
//
// Server-rendered banners cover statuses that exist at render time;
// toasts cover the push path: an event emitted mid-session (a background
// job finished, a save failed) reaches the browser as a custom event the
// client-side handler turns into a visible notification:
//
//	window.addEventListener("flashbar:toast", (e) => {
//	    const { level, message } = e.detail;
//	    showToast(level, message);
//	});
//
// Server-side:
//
//	toast.Error(hub, "Failed to delete project")
//	toast.Success(hub, "Project deleted")
package toast

import "github.com/flashbar-dev/flashbar/pkg/status"

// EventName is the event name dispatched for toasts. Client-side code
// listens for this event.
const EventName = "flashbar:toast"

// Emitter delivers a named event with a payload to connected clients.
// The server package's Hub implements it.
type Emitter interface {
	Emit(name string, data any)
}

// Show displays a toast notification at the given severity.
//
// The client receives an event with:
//   - event.type = "flashbar:toast"
//   - event.detail = { level: "success|info|warning|error", message: "..." }
func Show(e Emitter, level status.Severity, message string) {
	e.Emit(EventName, map[string]any{
		"level":   string(level),
		"message": message,
	})
}

// Success shows a success toast.
func Success(e Emitter, message string) {
	Show(e, status.SeveritySuccess, message)
}

// Error shows an error toast.
func Error(e Emitter, message string) {
	Show(e, status.SeverityError, message)
}

// Warning shows a warning toast.
func Warning(e Emitter, message string) {
	Show(e, status.SeverityWarning, message)
}

// Info shows an info toast.
func Info(e Emitter, message string) {
	Show(e, status.SeverityInfo, message)
}

// WithTitle shows a toast with a title and message.
func WithTitle(e Emitter, level status.Severity, title, message string) {
	e.Emit(EventName, map[string]any{
		"level":   string(level),
		"title":   title,
		"message": message,
	})
}

// FromStatus shows a toast for a status message. A nil status emits
// nothing.
func FromStatus(e Emitter, msg *status.StatusMessage) {
	if msg == nil {
		return
	}
	Show(e, msg.Severity, msg.Message)
}

// Custom shows a toast with arbitrary payload fields, for advanced
// client-side configurations (duration, position, action buttons).
func Custom(e Emitter, data map[string]any) {
	e.Emit(EventName, data)
}
