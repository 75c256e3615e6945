package banner

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// signalMutation is a MutationSource backed by signals.
type signalMutation struct {
	msg    *reactive.Signal[*status.StatusMessage]
	failed *reactive.Signal[bool]
	reason *reactive.Signal[error]
	resets atomic.Int32
}

func newSignalMutation() *signalMutation {
	return &signalMutation{
		msg:    reactive.NewSignal[*status.StatusMessage](nil),
		failed: reactive.NewSignal(false),
		reason: reactive.NewSignal[error](nil),
	}
}

func (m *signalMutation) StatusMessage() *status.StatusMessage { return m.msg.Get() }
func (m *signalMutation) IsError() bool                        { return m.failed.Get() }
func (m *signalMutation) FailureReason() error                 { return m.reason.Get() }

func (m *signalMutation) Reset() {
	m.resets.Add(1)
	reactive.Batch(func() {
		m.msg.Set(nil)
		m.failed.Set(false)
		m.reason.Set(nil)
	})
}

func TestMutationBannerNilSource(t *testing.T) {
	m := NewMutationBanner(nil)
	defer m.Unmount()

	if m.Render() != nil {
		t.Error("nil source should render nothing")
	}
	if m.Banner() != nil {
		t.Error("nil source should have no banner")
	}
}

func TestMutationBannerIdleMountedButClosed(t *testing.T) {
	source := newSignalMutation()
	m := NewMutationBanner(source)
	defer m.Unmount()

	// Idle: no status, no error. The banner mounts closed and, with no
	// severity, produces no markup.
	if m.Banner().Visible() {
		t.Error("idle mutation banner should be closed")
	}
	if m.Render() != nil {
		t.Error("idle mutation banner should render nothing")
	}
}

func TestMutationBannerStatusMessageWins(t *testing.T) {
	source := newSignalMutation()
	reactive.Batch(func() {
		source.msg.Set(&status.StatusMessage{Severity: status.SeveritySuccess, Message: "saved"})
		source.failed.Set(true)
		source.reason.Set(errors.New("stale error"))
	})

	props := DeriveDisplayProps(source)
	if props.Severity != status.SeveritySuccess {
		t.Errorf("explicit status must win over error flag, got %q", props.Severity)
	}
	if props.Message != "saved" {
		t.Errorf("expected status message, got %q", props.Message)
	}
	if !props.Open {
		t.Error("explicit status should open the banner")
	}
}

func TestMutationBannerErrorFallback(t *testing.T) {
	source := newSignalMutation()
	reactive.Batch(func() {
		source.failed.Set(true)
		source.reason.Set(errors.New("Network down"))
	})

	props := DeriveDisplayProps(source)
	if props.Severity != status.SeverityError {
		t.Errorf("expected error severity, got %q", props.Severity)
	}
	if props.Message != "Network down" {
		t.Errorf("expected failure reason text, got %q", props.Message)
	}
}

func TestMutationBannerErrorWithoutReason(t *testing.T) {
	source := newSignalMutation()
	source.failed.Set(true)

	props := DeriveDisplayProps(source)
	if props.Severity != status.SeverityError {
		t.Errorf("expected error severity, got %q", props.Severity)
	}
	if props.Message != "" {
		t.Errorf("expected empty message, got %q", props.Message)
	}
}

func TestMutationBannerFailureLifecycle(t *testing.T) {
	source := newSignalMutation()
	m := NewMutationBanner(source)
	defer m.Unmount()

	// Mutation fails
	reactive.Batch(func() {
		source.failed.Set(true)
		source.reason.Set(errors.New("Network down"))
	})

	if !m.Banner().Visible() {
		t.Fatal("failed mutation should show the banner")
	}
	html := renderHTML(t, m.Render())
	if !strings.Contains(html, "flashbar-error") || !strings.Contains(html, "Network down") {
		t.Errorf("expected error banner with reason, got %q", html)
	}

	// Auto-hide expires
	m.Banner().Close(ReasonTimeout)

	if m.Banner().Visible() {
		t.Error("banner should hide after timeout")
	}
	if n := source.resets.Load(); n != 1 {
		t.Errorf("expected exactly one reset, got %d", n)
	}

	// Source is clean again; nothing renders
	if m.Render() != nil {
		t.Error("reset mutation should render nothing")
	}
}

func TestMutationBannerClickawayKeepsState(t *testing.T) {
	source := newSignalMutation()
	m := NewMutationBanner(source)
	defer m.Unmount()

	source.failed.Set(true)

	m.Banner().Close(ReasonClickaway)

	if !m.Banner().Visible() {
		t.Error("clickaway must not hide the banner")
	}
	if n := source.resets.Load(); n != 0 {
		t.Errorf("clickaway must not reset the mutation, got %d", n)
	}
}

func TestMutationBannerDerivationMemoized(t *testing.T) {
	source := newSignalMutation()
	m := NewMutationBanner(source)
	defer m.Unmount()

	source.failed.Set(true)

	// Repeated renders with unchanged inputs are stable and do not
	// disturb visibility.
	first := renderHTML(t, m.Render())
	for i := 0; i < 5; i++ {
		if got := renderHTML(t, m.Render()); got != first {
			t.Fatalf("derivation unstable across renders: %q vs %q", first, got)
		}
	}
	if !m.Banner().Visible() {
		t.Error("re-rendering must not change visibility")
	}
}
