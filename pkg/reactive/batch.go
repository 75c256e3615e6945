package reactive

// Batch groups multiple signal updates into a single notification phase.
// Updates inside fn are collected, deduplicated by listener ID, and all
// affected listeners are notified once when the outermost batch
// completes.
//
//	Batch(func() {
//	    severity.Set(status.SeverityError)
//	    message.Set("save failed")
//	})
func Batch(fn func()) {
	incrementBatchDepth()
	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()
	fn()
}

func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, listener := range updates {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		listener.MarkDirty()
	}
}

// Untracked runs fn without tracking signal reads as dependencies.
// For a single read, prefer signal.Peek().
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedGet reads a signal's value without creating a dependency.
func UntrackedGet[T any](s *Signal[T]) T {
	return s.Peek()
}
