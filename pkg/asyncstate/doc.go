// Package asyncstate tracks the status of caller-supplied asynchronous
// work and publishes it in the shape the banner components consume.
//
// Query wraps a fetch function with Pending/Loading/Ready/Failed state;
// Mutation wraps a mutating operation with Idle/Running/Succeeded/Failed
// state, cancel-on-rerun semantics, and a Reset that the banners wire to
// their dismiss path.
//
// Neither type performs any I/O of its own: transport, databases, and
// caching belong to the caller's function. This package only manages
// state transitions, serialized through a reactive.Scheduler.
package asyncstate
