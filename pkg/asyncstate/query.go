package asyncstate

import (
	"context"
	"sync"

	"github.com/flashbar-dev/flashbar/pkg/reactive"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

// QueryState represents the current state of a Query.
type QueryState int

const (
	QueryPending QueryState = iota // Initial state, before the first fetch
	QueryLoading                   // Fetch in progress
	QueryReady                     // Data successfully loaded
	QueryFailed                    // Fetch failed
)

// String returns a human-readable name for the query state.
func (s QueryState) String() string {
	switch s {
	case QueryPending:
		return "pending"
	case QueryLoading:
		return "loading"
	case QueryReady:
		return "ready"
	case QueryFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Query tracks asynchronous data fetching state. The fetch function is
// supplied by the caller; Query only manages the state machine
// Pending → Loading → Ready | Failed and publishes a status message for
// display.
type Query[T any] struct {
	fetch func(ctx context.Context) (T, error)
	sched reactive.Scheduler

	state *reactive.Signal[QueryState]
	data  *reactive.Signal[T]
	err   *reactive.Signal[error]

	// successMessage, when set, is published as a success status after
	// a fetch completes. Without it, only failures produce a status.
	successMessage string

	// fetchID lets a newer fetch supersede the results of older ones.
	fetchID uint64
	mu      sync.Mutex
}

// QueryOption configures a Query.
type QueryOption[T any] func(*Query[T])

// QuerySuccessMessage publishes msg as a success status when a fetch
// completes.
func QuerySuccessMessage[T any](msg string) QueryOption[T] {
	return func(q *Query[T]) {
		q.successMessage = msg
	}
}

// NewQuery creates a Query and starts the first fetch immediately.
func NewQuery[T any](sched reactive.Scheduler, fetch func(ctx context.Context) (T, error), opts ...QueryOption[T]) *Query[T] {
	if sched == nil {
		sched = reactive.Inline()
	}
	q := &Query[T]{
		fetch: fetch,
		sched: sched,
		state: reactive.NewSignal(QueryPending),
		data:  reactive.NewSignal(*new(T)),
		err:   reactive.NewSignal[error](nil),
	}
	for _, opt := range opts {
		opt(q)
	}
	q.Refetch()
	return q
}

// State returns the current state, subscribing the current listener.
func (q *Query[T]) State() QueryState {
	return q.state.Get()
}

// Data returns the last fetched value.
func (q *Query[T]) Data() T {
	return q.data.Get()
}

// Err returns the last fetch error, or nil.
func (q *Query[T]) Err() error {
	return q.err.Get()
}

// IsLoading reports whether a fetch is pending or in progress.
func (q *Query[T]) IsLoading() bool {
	s := q.state.Get()
	return s == QueryPending || s == QueryLoading
}

// Refetch starts a new fetch. A fetch started later supersedes the
// results of any fetch still in flight.
func (q *Query[T]) Refetch() {
	q.mu.Lock()
	q.fetchID++
	currentID := q.fetchID
	q.mu.Unlock()

	q.sched.Dispatch(func() {
		reactive.Batch(func() {
			q.state.Set(QueryLoading)
			q.err.Set(nil)
		})
	})

	go func() {
		result, err := q.fetch(context.Background())

		q.mu.Lock()
		stale := q.fetchID != currentID
		q.mu.Unlock()
		if stale {
			return
		}

		q.sched.Dispatch(func() {
			reactive.Batch(func() {
				if err != nil {
					q.err.Set(err)
					q.state.Set(QueryFailed)
				} else {
					q.data.Set(result)
					q.state.Set(QueryReady)
				}
			})
		})
	}()
}

// StatusMessage implements status.QuerySource. Failures surface as an
// error status with the failure text; successful fetches surface the
// configured success message, if any. All other states publish nothing.
func (q *Query[T]) StatusMessage() *status.StatusMessage {
	switch q.state.Get() {
	case QueryFailed:
		message := ""
		if err := q.err.Get(); err != nil {
			message = err.Error()
		}
		return &status.StatusMessage{Severity: status.SeverityError, Message: message}
	case QueryReady:
		if q.successMessage != "" {
			return &status.StatusMessage{Severity: status.SeveritySuccess, Message: q.successMessage}
		}
	}
	return nil
}

var _ status.QuerySource = (*Query[int])(nil)
