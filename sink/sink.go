package sink

import "io"

// Sink receives flushed output. Write must fully accept text before
// returning; it is invoked only by the aggregator's consumer goroutine.
type Sink interface {
	Write(text string) error
}

// WriterSink adapts an io.Writer to the Sink interface.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write writes text to the underlying writer as a single Write call.
func (s *WriterSink) Write(text string) error {
	n, err := io.WriteString(s.w, text)
	if err == nil && n < len(text) {
		err = io.ErrShortWrite
	}
	return err
}

type discard struct{}

func (discard) Write(string) error { return nil }

// Discard is a sink that drops all output.
var Discard Sink = discard{}
