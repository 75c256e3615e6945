package asyncstate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// waitFor polls cond until it returns true or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestQuerySuccess(t *testing.T) {
	q := NewQuery(reactive.Inline(), func(ctx context.Context) (int, error) {
		return 42, nil
	})

	waitFor(t, func() bool { return q.State() == QueryReady })

	if q.Data() != 42 {
		t.Errorf("expected 42, got %d", q.Data())
	}
	if q.Err() != nil {
		t.Errorf("unexpected error: %v", q.Err())
	}
	if q.IsLoading() {
		t.Error("ready query should not be loading")
	}
}

func TestQueryFailure(t *testing.T) {
	boom := errors.New("backend down")
	q := NewQuery(reactive.Inline(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	waitFor(t, func() bool { return q.State() == QueryFailed })

	if !errors.Is(q.Err(), boom) {
		t.Errorf("expected wrapped failure, got %v", q.Err())
	}

	msg := q.StatusMessage()
	if msg == nil {
		t.Fatal("failed query should publish a status")
	}
	if msg.Severity != status.SeverityError || msg.Message != "backend down" {
		t.Errorf("unexpected status %+v", msg)
	}
}

func TestQueryNoStatusWhileLoading(t *testing.T) {
	release := make(chan struct{})
	q := NewQuery(reactive.Inline(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	if q.StatusMessage() != nil {
		t.Error("loading query should publish no status")
	}
	close(release)
	waitFor(t, func() bool { return q.State() == QueryReady })

	// Without a success message configured, Ready publishes nothing
	if q.StatusMessage() != nil {
		t.Error("ready query without success message should publish no status")
	}
}

func TestQuerySuccessMessage(t *testing.T) {
	q := NewQuery(reactive.Inline(), func(ctx context.Context) (string, error) {
		return "data", nil
	}, QuerySuccessMessage[string]("Loaded fine"))

	waitFor(t, func() bool { return q.State() == QueryReady })

	msg := q.StatusMessage()
	if msg == nil || msg.Severity != status.SeveritySuccess || msg.Message != "Loaded fine" {
		t.Errorf("unexpected status %+v", msg)
	}
}

func TestQueryRefetchSupersedes(t *testing.T) {
	var calls atomic.Int32
	first := make(chan struct{})

	q := NewQuery(reactive.Inline(), func(ctx context.Context) (int, error) {
		n := calls.Add(1)
		if n == 1 {
			<-first
			return 1, nil
		}
		return 2, nil
	})

	q.Refetch()
	waitFor(t, func() bool { return q.State() == QueryReady })

	// First fetch completes late; its result must be discarded
	close(first)
	time.Sleep(20 * time.Millisecond)

	if q.Data() != 2 {
		t.Errorf("stale fetch overwrote newer result: got %d", q.Data())
	}
}

func TestQueryDrivesQueryBanner(t *testing.T) {
	q := NewQuery(reactive.Inline(), func(ctx context.Context) (int, error) {
		return 0, errors.New("nope")
	})
	waitFor(t, func() bool { return q.State() == QueryFailed })

	msg := q.StatusMessage()
	if msg == nil || msg.Severity != status.SeverityError {
		t.Fatalf("expected error status, got %+v", msg)
	}
}
