// Package aggregator serializes multi-part messages from many concurrent
// producers into whole, non-interleaved writes on a single sink.
//
// Producers register for a handle and then append values one at a time;
// a single background consumer goroutine owns all rendering and all sink
// I/O. Scheduling is group-coherent rather than per-entry FIFO: once the
// consumer starts executing one producer's entries it stays with that
// producer (the producer "holds the floor") until a Flush marker is
// executed. Everything that producer accumulated since its previous
// flush is then written to the sink as one contiguous write, and the
// floor is handed to the producer of the oldest entry still in the queue.
//
//	agg := aggregator.New(aggregator.Config{})
//	defer agg.Close()
//
//	p := agg.Producer()
//	p.Append("request handled in ")
//	p.Append(elapsed)
//	p.Append("\n")
//	p.Flush()
//
// Two guarantees follow from this discipline and hold under any
// interleaving of producers: the bytes of one producer's message reach
// the sink in append order with nothing spliced in between, and every
// sink write contains output from exactly one producer. No ordering is
// promised between different producers' messages; the floor moves
// FIFO-by-arrival among groups, not round-robin, so a producer that
// never flushes holds the floor until it does or until Close. That
// starvation behavior is deliberate and documented, not a bug.
//
// Close drains every entry accepted before the close request. Flush
// markers seen during shutdown do not trigger individual writes; all
// remaining output is emitted in a single final write. Append after
// Close has begun is rejected with ErrClosed.
package aggregator
