package asyncstate

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// MutationState represents the current state of a Mutation.
type MutationState int

const (
	MutationIdle      MutationState = iota // Before any Run call
	MutationRunning                        // Operation in progress
	MutationSucceeded                      // Last operation completed
	MutationFailed                         // Last operation failed
)

// String returns a human-readable name for the mutation state.
func (s MutationState) String() string {
	switch s {
	case MutationIdle:
		return "idle"
	case MutationRunning:
		return "running"
	case MutationSucceeded:
		return "succeeded"
	case MutationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation tracks the state of an asynchronous mutating operation.
// Re-running cancels prior in-flight work; Reset cancels and returns to
// Idle, clearing the stored result and failure. State transitions are
// applied on the scheduler, off the worker goroutine.
type Mutation[A any, R any] struct {
	do    func(ctx context.Context, arg A) (R, error)
	sched reactive.Scheduler

	state  *reactive.Signal[MutationState]
	result *reactive.Signal[R]
	err    *reactive.Signal[error]

	// successMessage, when set, is published as a success status after
	// the operation completes.
	successMessage string

	onSuccess func(R)
	onError   func(error)

	cancel     context.CancelFunc
	cancelMu   sync.Mutex
	currentSeq uint64
	seq        atomic.Uint64
}

// MutationOption configures a Mutation.
type MutationOption[A any, R any] func(*Mutation[A, R])

// MutationSuccessMessage publishes msg as a success status when the
// operation completes.
func MutationSuccessMessage[A any, R any](msg string) MutationOption[A, R] {
	return func(m *Mutation[A, R]) {
		m.successMessage = msg
	}
}

// OnMutationSuccess registers a callback fired with the result on
// success.
func OnMutationSuccess[A any, R any](fn func(R)) MutationOption[A, R] {
	return func(m *Mutation[A, R]) {
		m.onSuccess = fn
	}
}

// OnMutationError registers a callback fired with the failure.
func OnMutationError[A any, R any](fn func(error)) MutationOption[A, R] {
	return func(m *Mutation[A, R]) {
		m.onError = fn
	}
}

// NewMutation creates a Mutation around the given operation.
func NewMutation[A any, R any](sched reactive.Scheduler, do func(ctx context.Context, arg A) (R, error), opts ...MutationOption[A, R]) *Mutation[A, R] {
	if sched == nil {
		sched = reactive.Inline()
	}
	m := &Mutation[A, R]{
		do:     do,
		sched:  sched,
		state:  reactive.NewSignal(MutationIdle),
		result: reactive.NewSignal(*new(R)),
		err:    reactive.NewSignal[error](nil),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the operation with the given argument, cancelling any
// operation still in flight.
func (m *Mutation[A, R]) Run(arg A) {
	m.cancelMu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	seq := m.seq.Add(1)
	workCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.currentSeq = seq
	m.cancelMu.Unlock()

	m.sched.Dispatch(func() {
		reactive.Batch(func() {
			m.state.Set(MutationRunning)
			m.err.Set(nil)
		})
	})

	go func() {
		result, err := m.do(workCtx, arg)

		if workCtx.Err() != nil {
			return
		}

		m.sched.Dispatch(func() {
			// A newer run supersedes this one.
			m.cancelMu.Lock()
			stale := m.currentSeq != seq
			m.cancelMu.Unlock()
			if stale {
				return
			}

			reactive.Batch(func() {
				if err != nil {
					m.err.Set(err)
					m.state.Set(MutationFailed)
				} else {
					m.result.Set(result)
					m.state.Set(MutationSucceeded)
				}
			})

			if err != nil {
				if m.onError != nil {
					m.onError(err)
				}
			} else if m.onSuccess != nil {
				m.onSuccess(result)
			}
		})
	}()
}

// Reset cancels any in-flight work and returns the mutation to Idle,
// clearing the stored result and failure. Banners invoke this when the
// user dismisses the notification.
func (m *Mutation[A, R]) Reset() {
	m.cancelMu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.cancelMu.Unlock()

	m.sched.Dispatch(func() {
		reactive.Batch(func() {
			m.state.Set(MutationIdle)
			m.result.Set(*new(R))
			m.err.Set(nil)
		})
	})
}

// State returns the current state, subscribing the current listener.
func (m *Mutation[A, R]) State() MutationState {
	return m.state.Get()
}

// Result returns the last successful result and true, or the zero value
// and false.
func (m *Mutation[A, R]) Result() (R, bool) {
	if m.state.Get() == MutationSucceeded {
		return m.result.Get(), true
	}
	return *new(R), false
}

// IsRunning reports whether an operation is in progress.
func (m *Mutation[A, R]) IsRunning() bool {
	return m.state.Get() == MutationRunning
}

// StatusMessage implements status.MutationSource. Only the configured
// success message is published explicitly; failures surface through
// IsError/FailureReason and are coerced into an error banner by the
// display layer.
func (m *Mutation[A, R]) StatusMessage() *status.StatusMessage {
	if m.state.Get() == MutationSucceeded && m.successMessage != "" {
		return &status.StatusMessage{Severity: status.SeveritySuccess, Message: m.successMessage}
	}
	return nil
}

// IsError implements status.MutationSource.
func (m *Mutation[A, R]) IsError() bool {
	return m.state.Get() == MutationFailed
}

// FailureReason implements status.MutationSource.
func (m *Mutation[A, R]) FailureReason() error {
	return m.err.Get()
}

var _ status.MutationSource = (*Mutation[int, int])(nil)
