package core

// ActionKind discriminates the two behaviors a queued entry can defer.
type ActionKind uint8

const (
	// RenderAction appends a value's textual form to the accumulation buffer.
	RenderAction ActionKind = iota
	// FlushAction signals that accumulated output should be emitted.
	FlushAction
)

// Action is one deferred unit of work: either "render this value" or
// "flush now". Value holds the producer's value exactly as passed, by
// value, never by reference into the producer's frame.
type Action struct {
	Kind  ActionKind
	Value any
}

type flushMarker struct{}

// Flush is the distinguished marker value. Appending it enqueues a
// FlushAction instead of a content append, the aggregator's analogue of
// an explicit end-of-line.
var Flush = flushMarker{}

// MakeAction classifies v into an Action, recognizing the Flush marker.
func MakeAction(v any) Action {
	if _, ok := v.(flushMarker); ok {
		return Action{Kind: FlushAction}
	}
	return Action{Kind: RenderAction, Value: v}
}
