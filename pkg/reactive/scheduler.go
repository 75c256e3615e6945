package reactive

import (
	"sync"
	"sync/atomic"
)

// Scheduler serializes state transitions. All signal writes originating
// outside the UI event flow (timer expiry, background work) go through
// Dispatch so that transitions stay single-threaded, matching the
// cooperative event-loop model of the rendering layer.
type Scheduler interface {
	// Dispatch queues fn to run on the scheduler. Safe from any goroutine.
	Dispatch(fn func())
}

// inlineScheduler runs dispatched functions synchronously under a mutex.
// Dispatch from inside a dispatched function runs fn directly, so a
// state transition that triggers another transition on the same
// scheduler (an auto-hide dismiss resetting a mutation, for instance)
// does not deadlock.
type inlineScheduler struct {
	mu    sync.Mutex
	owner atomic.Uint64
}

func (s *inlineScheduler) Dispatch(fn func()) {
	gid := goroutineID()
	if s.owner.Load() == gid {
		fn()
		return
	}

	s.mu.Lock()
	s.owner.Store(gid)
	defer func() {
		s.owner.Store(0)
		s.mu.Unlock()
	}()
	fn()
}

// Inline returns a scheduler that runs dispatched functions immediately
// on the calling goroutine, serialized by a mutex. This is the default
// for tests and simple embedding.
func Inline() Scheduler {
	return &inlineScheduler{}
}

// Loop is a single-goroutine event loop. Every dispatched function runs
// on the loop goroutine in FIFO order, so no two state transitions ever
// execute concurrently.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop starts a new event loop.
func NewLoop() *Loop {
	l := &Loop{
		queue: make(chan func(), 256),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-l.done:
			// Drain what was queued before shutdown.
			for {
				select {
				case fn := <-l.queue:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Dispatch implements Scheduler. Functions dispatched after Stop are
// dropped.
func (l *Loop) Dispatch(fn func()) {
	select {
	case <-l.done:
	case l.queue <- fn:
	}
}

// Stop shuts the loop down. Idempotent.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}
