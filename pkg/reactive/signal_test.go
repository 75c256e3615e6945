package reactive

import (
	"sync"
	"testing"
)

// testListener counts MarkDirty calls.
type testListener struct {
	mu         sync.Mutex
	id         uint64
	dirtyCount int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() {
	l.mu.Lock()
	l.dirtyCount++
	l.mu.Unlock()
}

func (l *testListener) ID() uint64 {
	return l.id
}

func (l *testListener) getDirtyCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dirtyCount
}

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalPeek(t *testing.T) {
	count := NewSignal(42)

	listener := newTestListener()
	WithListener(listener, func() {
		if value := count.Peek(); value != 42 {
			t.Errorf("expected 42, got %d", value)
		}
	})

	count.Set(100)
	if listener.getDirtyCount() != 0 {
		t.Errorf("Peek should not subscribe listener, got %d notifications", listener.getDirtyCount())
	}
}

func TestSignalSubscription(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = count.Get()
	})

	count.Set(1)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.getDirtyCount())
	}

	// Same value should not notify
	count.Set(1)
	if listener.getDirtyCount() != 1 {
		t.Errorf("same value should not notify, got %d", listener.getDirtyCount())
	}

	count.Set(2)
	if listener.getDirtyCount() != 2 {
		t.Errorf("expected 2 notifications, got %d", listener.getDirtyCount())
	}
}

func TestSignalNoTrackingOutsideContext(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	_ = count.Get()

	count.Set(1)
	if listener.getDirtyCount() != 0 {
		t.Error("read outside tracking context should not subscribe")
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Treat all even numbers as equal to each other
	sig := NewSignal(0).WithEquals(func(a, b int) bool {
		return a%2 == b%2
	})
	listener := newTestListener()

	WithListener(listener, func() {
		_ = sig.Get()
	})

	sig.Set(2)
	if listener.getDirtyCount() != 0 {
		t.Error("custom equals should suppress notification")
	}

	sig.Set(3)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.getDirtyCount())
	}
}

func TestSignalConcurrentAccess(t *testing.T) {
	count := NewSignal(0)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			count.Set(n)
		}(i)
		go func() {
			defer wg.Done()
			_ = count.Get()
		}()
	}
	wg.Wait()
}

func TestBatchDedup(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = a.Get()
		_ = b.Get()
	})

	Batch(func() {
		a.Set(1)
		b.Set(1)
		a.Set(2)
	})

	// All writes inside the batch collapse into one notification
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 batched notification, got %d", listener.getDirtyCount())
	}
}

func TestUntracked(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		Untracked(func() {
			_ = count.Get()
		})
	})

	count.Set(1)
	if listener.getDirtyCount() != 0 {
		t.Error("untracked read should not subscribe")
	}
}

func TestUntrackedGet(t *testing.T) {
	count := NewSignal(7)
	listener := newTestListener()

	WithListener(listener, func() {
		if v := UntrackedGet(count); v != 7 {
			t.Errorf("expected 7, got %d", v)
		}
	})

	count.Set(8)
	if listener.getDirtyCount() != 0 {
		t.Error("UntrackedGet should not subscribe")
	}
}
