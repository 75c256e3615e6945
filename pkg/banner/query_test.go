package banner

import (
	"strings"
	"testing"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// signalQuery is a QuerySource backed by a signal.
type signalQuery struct {
	msg *reactive.Signal[*status.StatusMessage]
}

func newSignalQuery(msg *status.StatusMessage) *signalQuery {
	return &signalQuery{msg: reactive.NewSignal(msg)}
}

func (q *signalQuery) StatusMessage() *status.StatusMessage {
	return q.msg.Get()
}

func TestQueryBannerNilSource(t *testing.T) {
	q := NewQueryBanner(nil)
	defer q.Unmount()

	if q.Render() != nil {
		t.Error("nil source should render nothing")
	}
}

func TestQueryBannerNilStatusRendersNothing(t *testing.T) {
	q := NewQueryBanner(newSignalQuery(nil))
	defer q.Unmount()

	if node := q.Render(); node != nil {
		t.Errorf("nil status should mount nothing, got %q", renderHTML(t, node))
	}
}

func TestQueryBannerShowsStatus(t *testing.T) {
	source := newSignalQuery(&status.StatusMessage{
		Severity: status.SeverityWarning,
		Message:  "partial results",
	})
	q := NewQueryBanner(source)
	defer q.Unmount()

	html := renderHTML(t, q.Render())
	if !strings.Contains(html, "flashbar-warning") {
		t.Errorf("expected warning variant, got %q", html)
	}
	if !strings.Contains(html, "partial results") {
		t.Errorf("expected message, got %q", html)
	}
	if !strings.Contains(html, "flashbar-open") {
		t.Errorf("status banner should be open, got %q", html)
	}
}

func TestQueryBannerStatusAppears(t *testing.T) {
	source := newSignalQuery(nil)
	q := NewQueryBanner(source)
	defer q.Unmount()

	if q.Render() != nil {
		t.Fatal("expected nothing before status arrives")
	}

	source.msg.Set(&status.StatusMessage{
		Severity: status.SeverityError,
		Message:  "fetch failed",
	})

	html := renderHTML(t, q.Render())
	if !strings.Contains(html, "fetch failed") {
		t.Errorf("expected banner after status arrives, got %q", html)
	}
}

func TestQueryBannerStatusClears(t *testing.T) {
	source := newSignalQuery(&status.StatusMessage{
		Severity: status.SeverityInfo,
		Message:  "loaded",
	})
	q := NewQueryBanner(source)
	defer q.Unmount()

	if q.Render() == nil {
		t.Fatal("expected banner while status present")
	}

	source.msg.Set(nil)
	if q.Render() != nil {
		t.Error("clearing the status should unmount the banner output")
	}
}
