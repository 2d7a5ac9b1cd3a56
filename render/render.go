package render

import "bytes"

// Renderer turns one appended value into text.
//
// AppendValue appends v's textual form to buf and nothing else: no
// separators, no trailing newline. The aggregator emits exactly the bytes
// the renderer produced, so what a producer appends is what the sink
// receives.
type Renderer interface {
	AppendValue(buf *bytes.Buffer, v any)
}

// Config holds common renderer configuration.
type Config struct {
	// TimeFormat specifies how time.Time values render (empty for RFC3339).
	TimeFormat string
}
