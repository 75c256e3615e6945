package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect. It runs immediately when created and
// re-runs whenever a signal or memo it read during execution changes.
// The effect function may return a Cleanup that runs before the next
// execution and when the effect is disposed.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources   []*signalBase
	sourcesMu sync.Mutex

	owner *Owner

	// running coalesces re-entrant MarkDirty calls during a run.
	running  atomic.Bool
	rerun    atomic.Bool
	disposed atomic.Bool
}

// MarkDirty re-runs the effect. Implements Listener.
// If called while the effect body is executing (a signal the effect
// reads was written inside it), the re-run is deferred until the current
// run finishes, once.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.running.Load() {
		e.rerun.Store(true)
		return
	}
	e.run()
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}
	e.running.Store(true)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	// Drop stale subscriptions before re-tracking.
	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	old := setCurrentListener(e)
	e.cleanup = e.fn()
	setCurrentListener(old)

	e.running.Store(false)
	if e.rerun.CompareAndSwap(true, false) {
		e.run()
	}
}

// addSource implements sourceTracker.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

// dispose runs the pending cleanup and unsubscribes from all sources.
func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

var _ sourceTracker = (*Effect)(nil)

// CreateEffect creates and immediately runs an effect within the current
// owner scope. Disposing the owner disposes the effect.
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("visible:", visible.Get())
//	    return nil
//	})
func CreateEffect(fn func() Cleanup) *Effect {
	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: getCurrentOwner(),
	}

	if e.owner != nil {
		e.owner.registerEffect(e)
	}

	e.run()
	return e
}

// OnMount runs fn once when the component is constructed. Equivalent to
// an effect with no reactive dependencies.
func OnMount(fn func()) {
	CreateEffect(func() Cleanup {
		fn()
		return nil
	})
}

// OnUnmount registers fn to run when the current owner is disposed.
func OnUnmount(fn func()) {
	if owner := getCurrentOwner(); owner != nil {
		owner.OnCleanup(fn)
	}
}

// OnUpdate creates an effect that skips its callback on the first run.
// deps is always called to establish dependencies; callback fires only
// when they subsequently change.
func OnUpdate(deps func(), callback func()) {
	first := true
	CreateEffect(func() Cleanup {
		deps()
		if first {
			first = false
			return nil
		}
		callback()
		return nil
	})
}
