// Package reactive provides the signal primitives that drive flashbar
// components: Signal, Memo, Effect, and Owner scopes.
//
// Reading a signal inside a tracked context (a memo computation or an
// effect body) subscribes that context to the signal. When the signal
// changes, memos are invalidated and effects re-run.
//
//	visible := reactive.NewSignal(false)
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    if visible.Get() {
//	        return reactive.Timeout(sched, 6*time.Second, hide)
//	    }
//	    return nil
//	})
//
// State transitions are serialized through a Scheduler: either Inline()
// (synchronous, the default for tests and simple embedding) or NewLoop()
// (a single goroutine acting as the UI event loop).
package reactive
