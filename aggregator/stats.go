package aggregator

import "sync/atomic"

// Stats tracks aggregator counters. All counters are updated atomically
// and may be read at any time via GetSnapshot.
type Stats struct {
	// Appended counts entries accepted by Append.
	Appended uint64
	// Executed counts entries the consumer has run.
	Executed uint64
	// Flushes counts successful sink writes.
	Flushes uint64
	// SinkErrors counts failed sink writes.
	SinkErrors uint64
	// Wakes counts consumer wake-ups signaled by the append path.
	Wakes uint64
}

// IncrementAppended atomically increments the appended counter.
func (s *Stats) IncrementAppended() {
	atomic.AddUint64(&s.Appended, 1)
}

// IncrementExecuted atomically increments the executed counter.
func (s *Stats) IncrementExecuted() {
	atomic.AddUint64(&s.Executed, 1)
}

// IncrementFlushes atomically increments the flush counter.
func (s *Stats) IncrementFlushes() {
	atomic.AddUint64(&s.Flushes, 1)
}

// IncrementSinkErrors atomically increments the sink error counter.
func (s *Stats) IncrementSinkErrors() {
	atomic.AddUint64(&s.SinkErrors, 1)
}

// IncrementWakes atomically increments the wake counter.
func (s *Stats) IncrementWakes() {
	atomic.AddUint64(&s.Wakes, 1)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Appended   uint64
	Executed   uint64
	Flushes    uint64
	SinkErrors uint64
	Wakes      uint64
}

// GetSnapshot returns a snapshot of current statistics.
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Appended:   atomic.LoadUint64(&s.Appended),
		Executed:   atomic.LoadUint64(&s.Executed),
		Flushes:    atomic.LoadUint64(&s.Flushes),
		SinkErrors: atomic.LoadUint64(&s.SinkErrors),
		Wakes:      atomic.LoadUint64(&s.Wakes),
	}
}
