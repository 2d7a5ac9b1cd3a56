package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileSink appends flushed output to a single file.
type FileSink struct {
	f *os.File
}

// NewFileSink opens (or creates) the file at path in append mode.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "sink: open file")
	}
	return &FileSink{f: f}, nil
}

// Write appends text to the file.
func (s *FileSink) Write(text string) error {
	n, err := io.WriteString(s.f, text)
	if err != nil {
		return errors.Wrap(err, "sink: write file")
	}
	if n < len(text) {
		return io.ErrShortWrite
	}
	return nil
}

// Close closes the underlying file. The owning aggregator must be closed
// first; a FileSink does not synchronize with in-flight flushes.
func (s *FileSink) Close() error {
	return errors.Wrap(s.f.Close(), "sink: close file")
}
