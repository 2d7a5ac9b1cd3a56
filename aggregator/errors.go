package aggregator

import "github.com/pkg/errors"

// ErrClosed is returned by Append and Flush once Close has begun.
//
// Appending concurrently with Close is a race in the embedding
// application. The aggregator resolves it deterministically: entries
// accepted before the close request are always drained, entries after it
// are rejected with this error, never silently dropped.
var ErrClosed = errors.New("aggregator: closed")
