package reactive

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached computation that tracks its dependencies. When any
// dependency changes the memo is invalidated and recomputes on the next
// read. Memos are lazy: if several signals change before a read, the
// computation runs once.
//
// Memos can themselves be subscribed to, so derived values chain.
type Memo[T any] struct {
	base signalBase

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid indicates whether the cached value is current.
	valid atomic.Bool

	sources   []*signalBase
	sourcesMu sync.Mutex

	// computing guards against recursion on circular dependencies.
	computing atomic.Bool
}

// NewMemo creates a memo. The computation runs lazily on first Get.
func NewMemo[T any](compute func() T) *Memo[T] {
	return &Memo[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
}

// Get returns the memo's value, recomputing if invalid, and subscribes
// the current listener.
func (m *Memo[T]) Get() T {
	if listener := getCurrentListener(); listener != nil {
		m.base.subscribe(listener)
		if tr, ok := listener.(sourceTracker); ok {
			tr.addSource(&m.base)
		}
	}

	if !m.valid.Load() {
		m.recompute()
	}

	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// Peek returns the value without subscribing. Still recomputes if stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	value := m.value
	m.valueMu.RUnlock()
	return value
}

// MarkDirty invalidates the cached value and propagates to subscribers.
// Implements Listener.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notifySubscribers()
	}
}

// ID implements Listener.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

// addSource implements sourceTracker.
func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		// Circular dependency; keep the stale value.
		return
	}
	defer m.computing.Store(false)

	// Drop stale subscriptions before re-tracking.
	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	old := setCurrentListener(m)
	newValue := m.compute()
	setCurrentListener(old)

	m.valueMu.Lock()
	m.value = newValue
	m.valueMu.Unlock()

	m.valid.Store(true)
}

var _ sourceTracker = (*Memo[int])(nil)
