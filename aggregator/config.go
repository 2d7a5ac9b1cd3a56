package aggregator

import (
	"os"

	"github.com/varun-myprojects/basicLogger/render"
	"github.com/varun-myprojects/basicLogger/sink"
)

// Config holds configuration for an Aggregator.
type Config struct {
	// Sink receives each flushed message as one Write call (default: stdout).
	Sink sink.Sink
	// Renderer turns appended values into text (default: TextRenderer).
	Renderer render.Renderer
	// BufferCap pre-grows the accumulation buffer (default: 256).
	BufferCap int
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Sink == nil {
		cfg.Sink = sink.NewWriterSink(os.Stdout)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.NewTextRenderer(render.Config{})
	}
	if cfg.BufferCap <= 0 {
		cfg.BufferCap = 256
	}
}
