package reactive

import (
	"sync"
	"sync/atomic"
)

// Owner represents a component scope that owns reactive primitives.
// Disposing an Owner disposes its effects, runs registered cleanups, and
// disposes child owners. Owners form a tree mirroring the component tree,
// so unmounting a component cancels every timer and listener it created.
type Owner struct {
	id uint64

	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool
}

// NewOwner creates an Owner under parent. A nil parent creates a root.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// OnCleanup registers a function to run when the owner is disposed.
// If the owner is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if fn == nil {
		return
	}
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	o.cleanups = append(o.cleanups, fn)
	o.cleanupsMu.Unlock()
}

// Dispose tears down the owner: child owners first, then effects, then
// cleanups in reverse registration order. Idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()
	for _, child := range children {
		child.Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()
	for _, e := range effects {
		e.dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}
}

// Disposed reports whether Dispose has been called.
func (o *Owner) Disposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	o.children = append(o.children, child)
	o.childrenMu.Unlock()
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		e.dispose()
		return
	}
	o.effectsMu.Lock()
	o.effects = append(o.effects, e)
	o.effectsMu.Unlock()
}
