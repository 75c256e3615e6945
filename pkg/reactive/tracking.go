package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for one goroutine: which
// listener is currently collecting dependencies, which owner adopts new
// effects, and the batch queue.
type trackingContext struct {
	currentOwner    *Owner
	currentListener Listener

	// batchDepth tracks nested Batch() calls. When > 0, signal updates
	// queue notifications instead of firing immediately.
	batchDepth     int
	pendingUpdates []Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// goroutineID extracts the current goroutine's ID from the runtime stack.
// Implementation detail; never exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> ".
	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTrackingContext() *trackingContext {
	gid := goroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// getCurrentListener returns the listener collecting dependencies, or nil.
func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener swaps the tracked listener and returns the previous
// one so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

func getBatchDepth() int {
	return getTrackingContext().batchDepth
}

func incrementBatchDepth() {
	getTrackingContext().batchDepth++
}

// decrementBatchDepth returns true when the outermost batch completes.
func decrementBatchDepth() bool {
	ctx := getTrackingContext()
	ctx.batchDepth--
	return ctx.batchDepth == 0
}

func queuePendingUpdate(l Listener) {
	ctx := getTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

func drainPendingUpdates() []Listener {
	ctx := getTrackingContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

// WithOwner runs fn with the given owner adopting any effects created
// inside. Used when constructing components so their reactive state is
// released on unmount.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs fn with the given listener collecting dependencies.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}
