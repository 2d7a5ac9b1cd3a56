package aggregator

// LineWriter adapts a Producer to io.Writer so byte-oriented clients
// such as log.New or fmt.Fprintf can route through the aggregator. Each
// Write appends the chunk as one value; a chunk ending in '\n' also
// appends the flush marker, so line-at-a-time writers get one sink write
// per line.
type LineWriter struct {
	p *Producer
}

// NewLineWriter wraps p in an io.Writer.
func NewLineWriter(p *Producer) *LineWriter {
	return &LineWriter{p: p}
}

// Write appends b as a single value, flushing on a trailing newline.
func (w *LineWriter) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	// Copy out of b: rendering is deferred and the caller may reuse the
	// slice as soon as Write returns.
	s := string(b)
	if err := w.p.Append(s); err != nil {
		return 0, err
	}
	if s[len(s)-1] == '\n' {
		if err := w.p.Flush(); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}
