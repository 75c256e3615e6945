package reactive

// Listener is anything that can be notified when a dependency changes.
// Memos and effects implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// Memos invalidate their cached value; effects re-run.
	MarkDirty()

	// ID returns a unique identifier, used for deduplication during
	// batch processing and subscription bookkeeping.
	ID() uint64
}

// Cleanup is returned by effects and timer helpers to release resources.
// It is called before an effect re-runs and when its owner is disposed.
type Cleanup func()
