package uitest

import (
	"strings"
	"sync"
	"testing"

	"github.com/flashbar-dev/flashbar/pkg/banner"
	"github.com/flashbar-dev/flashbar/pkg/render"
	"github.com/flashbar-dev/flashbar/pkg/status"
	"github.com/flashbar-dev/flashbar/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// A nil node renders as the empty string.
//
// Example:
//
//	html := uitest.RenderToString(b.Render())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.New(render.Config{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// ExpectNothing asserts that the node renders to no output at all.
func ExpectNothing(t *testing.T, node *vdom.VNode) {
	t.Helper()
	html := RenderToString(node)
	if html != "" {
		t.Errorf("expected no rendered output, got:\n%s", truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// RecordingObserver records banner lifecycle callbacks for assertions.
// Safe for concurrent use.
type RecordingObserver struct {
	mu        sync.Mutex
	shown     []status.Severity
	dismissed []banner.CloseReason
}

// NewRecordingObserver returns an empty RecordingObserver.
func NewRecordingObserver() *RecordingObserver {
	return &RecordingObserver{}
}

// BannerShown implements banner.Observer.
func (o *RecordingObserver) BannerShown(severity status.Severity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.shown = append(o.shown, severity)
}

// BannerDismissed implements banner.Observer.
func (o *RecordingObserver) BannerDismissed(reason banner.CloseReason) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dismissed = append(o.dismissed, reason)
}

// Shown returns the recorded severities in order.
func (o *RecordingObserver) Shown() []status.Severity {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]status.Severity(nil), o.shown...)
}

// Dismissals returns the recorded close reasons in order.
func (o *RecordingObserver) Dismissals() []banner.CloseReason {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]banner.CloseReason(nil), o.dismissed...)
}

var _ banner.Observer = (*RecordingObserver)(nil)

// CapturedEvent is one event recorded by a CaptureEmitter.
type CapturedEvent struct {
	Name string
	Data any
}

// CaptureEmitter implements toast.Emitter and records every emitted
// event. Safe for concurrent use.
type CaptureEmitter struct {
	mu     sync.Mutex
	events []CapturedEvent
}

// NewCaptureEmitter returns an empty CaptureEmitter.
func NewCaptureEmitter() *CaptureEmitter {
	return &CaptureEmitter{}
}

// Emit records the event.
func (e *CaptureEmitter) Emit(name string, data any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, CapturedEvent{Name: name, Data: data})
}

// Events returns the recorded events in order.
func (e *CaptureEmitter) Events() []CapturedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]CapturedEvent(nil), e.events...)
}

// Last returns the most recent event, or a zero CapturedEvent if none.
func (e *CaptureEmitter) Last() CapturedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		return CapturedEvent{}
	}
	return e.events[len(e.events)-1]
}
