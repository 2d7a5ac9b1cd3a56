package benchmark

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/varun-myprojects/basicLogger/aggregator"
	"github.com/varun-myprojects/basicLogger/sink"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op sink)
// ---------------------------------------------------------------------------

// newAggregator returns an aggregator draining to a no-op sink.
func newAggregator() *aggregator.Aggregator {
	return aggregator.New(aggregator.Config{Sink: sink.Discard})
}

// newZapLogger returns a zap.Logger that writes to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newZerologLogger returns a zerolog.Logger that writes to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// newLogrusLogger returns a logrus.Logger that writes to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// lockedWriter is the baseline: a mutex held across all parts of one
// message, every producer paying for the writer's latency.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) emit(parts ...string) {
	w.mu.Lock()
	for _, p := range parts {
		io.WriteString(w.w, p)
	}
	w.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Single-goroutine message emission
// ---------------------------------------------------------------------------

func BenchmarkBasicLoggerMessage(b *testing.B) {
	agg := newAggregator()
	defer agg.Close()
	p := agg.Producer()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Append("request ")
		p.Append(i)
		p.Append(" done\n")
		p.Flush()
	}
}

func BenchmarkZapMessage(b *testing.B) {
	l := newZapLogger()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request done", zap.Int("i", i))
	}
}

func BenchmarkSlogMessage(b *testing.B) {
	l := newSlogLogger()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("request done", "i", i)
	}
}

func BenchmarkZerologMessage(b *testing.B) {
	l := newZerologLogger()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Int("i", i).Msg("request done")
	}
}

func BenchmarkLogrusMessage(b *testing.B) {
	l := newLogrusLogger()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.WithField("i", i).Info("request done")
	}
}

// ---------------------------------------------------------------------------
// Parallel producers, whole-message atomicity
// ---------------------------------------------------------------------------

func BenchmarkBasicLoggerParallel(b *testing.B) {
	agg := newAggregator()
	defer agg.Close()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		p := agg.Producer()
		for pb.Next() {
			p.Append("request ")
			p.Append("done\n")
			p.Flush()
		}
	})
}

func BenchmarkMutexWriterParallel(b *testing.B) {
	w := &lockedWriter{w: io.Discard}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w.emit("request ", "done\n")
		}
	})
}

func BenchmarkZapParallel(b *testing.B) {
	l := newZapLogger()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("request done")
		}
	})
}

func BenchmarkZerologParallel(b *testing.B) {
	l := newZerologLogger()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info().Msg("request done")
		}
	})
}

func BenchmarkLogrusParallel(b *testing.B) {
	l := newLogrusLogger()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("request done")
		}
	})
}
