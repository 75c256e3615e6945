package reactive

import (
	"sync/atomic"
	"time"
)

// Timeout runs fn once after d, dispatched through sched. The returned
// Cleanup cancels the timer; fn fires at most once even if cancel races
// with expiry.
//
// Typical use inside an effect, so unmount cancels the timer:
//
//	CreateEffect(func() Cleanup {
//	    if open.Get() {
//	        return Timeout(sched, 6*time.Second, autoHide)
//	    }
//	    return nil
//	})
func Timeout(sched Scheduler, d time.Duration, fn func()) Cleanup {
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		if fired.CompareAndSwap(false, true) {
			sched.Dispatch(fn)
		}
	})

	return func() {
		fired.Store(true)
		timer.Stop()
	}
}

// Interval runs fn every d on sched until the returned Cleanup is called.
// The first tick occurs after d.
func Interval(sched Scheduler, d time.Duration, fn func()) Cleanup {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sched.Dispatch(fn)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
