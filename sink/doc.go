// Package sink defines where flushed output goes.
//
// A Sink receives each flushed message as exactly one Write call, only
// ever from the aggregator's consumer goroutine, so implementations need
// no locking of their own. Writes are expected to be synchronous: the
// text must be fully accepted before Write returns.
//
// Built-in sinks:
//
//   - WriterSink adapts any io.Writer (default target: os.Stdout).
//   - FileSink appends to a single file. There is no rotation or backup
//     management; callers who need that should wrap their own io.Writer.
//   - Discard drops everything, useful for benchmarks.
package sink
