// Package core defines the shared types used across the basicLogger
// aggregator.
//
// It provides the Token type that identifies a producer, the Action type
// that represents one deferred unit of work, and the Entry type that ties
// the two together inside the aggregator's queue.
//
// A producer never hands the aggregator a closure: an Action is a tagged
// variant that either carries a value to render later or marks a flush
// point. The value is captured when the entry is created, so the
// producer's stack may unwind long before the consumer goroutine runs
// the action.
//
// Entry objects are pooled via sync.Pool. The aggregator gets an Entry
// with GetEntry on the append path and returns it with PutEntry once the
// consumer has executed and unlinked it.
package core
