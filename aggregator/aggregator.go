package aggregator

import (
	"bytes"
	"container/list"
	"sync"

	"github.com/varun-myprojects/basicLogger/core"
)

// Aggregator is the shared state behind the producer handles and the
// consumer goroutine. One mutex guards the queue, the floor cursor, and
// the flush flag; the condition variable parks the consumer when there
// is no executable work.
//
// Queue elements are never reordered. Entries belonging to producers
// other than the floor holder are skipped in place during a drain and
// stay where they are until their producer gets the floor.
type Aggregator struct {
	cfg Config

	mu   sync.Mutex
	cond *sync.Cond

	queue *list.List // of *core.Entry, arrival order
	// cursor points at the next unexecuted entry of the active producer.
	// nil means the consumer has caught up with that producer ("exhausted")
	// or, when active is also zero, that the aggregator is idle.
	cursor *list.Element
	// active is the producer currently holding the floor; zero when free.
	active core.Token

	buf     bytes.Buffer // accumulated unflushed output
	flushed bool
	closing bool
	lastErr error

	stats Stats

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

// New creates an Aggregator and starts its consumer goroutine.
func New(cfg Config) *Aggregator {
	applyDefaults(&cfg)
	a := &Aggregator{
		cfg:   cfg,
		queue: list.New(),
		done:  make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.mu)
	a.buf.Grow(cfg.BufferCap)

	a.wg.Add(1)
	go a.run()
	return a
}

// Producer registers a new producer identity with the aggregator and
// returns the handle it appends through.
func (a *Aggregator) Producer() *Producer {
	return &Producer{agg: a, tok: core.NewToken()}
}

// Stats returns a snapshot of the aggregator's counters.
func (a *Aggregator) Stats() Snapshot {
	return a.stats.GetSnapshot()
}

// Close requests shutdown and blocks until the consumer goroutine has
// executed every queued entry and terminated. All unflushed output is
// written to the sink in one final write. Close is idempotent and safe
// to call from multiple goroutines; every call returns the last sink
// write error observed over the aggregator's lifetime, or nil.
func (a *Aggregator) Close() error {
	a.closeOnce.Do(func() {
		a.mu.Lock()
		a.closing = true
		a.mu.Unlock()
		a.cond.Signal()
		a.wg.Wait()
		close(a.done)
	})
	<-a.done

	a.mu.Lock()
	err := a.lastErr
	a.mu.Unlock()
	return err
}

// append links one entry into the queue and applies the claim/extend
// rule for the floor. The consumer is signaled only when it could
// otherwise miss the entry: when the floor was free, or when the floor
// holder appends after the consumer caught up and went back to waiting.
// In every other case the consumer is guaranteed to visit the entry on
// its own, so no wake is issued.
func (a *Aggregator) append(tok core.Token, action core.Action) error {
	e := core.GetEntry(tok, action)

	a.mu.Lock()
	if a.closing {
		a.mu.Unlock()
		core.PutEntry(e)
		return ErrClosed
	}

	el := a.queue.PushBack(e)
	a.stats.IncrementAppended()

	switch {
	case a.active.IsZero():
		// Floor is free. The queue was fully drained before going idle,
		// so this entry is the front and its producer claims the floor.
		a.cursor = el
		a.active = tok
		a.stats.IncrementWakes()
		a.cond.Signal()
	case a.active == tok && a.cursor == nil:
		// The consumer exhausted this producer's run and is waiting;
		// extend the run to the new entry.
		a.cursor = el
		a.stats.IncrementWakes()
		a.cond.Signal()
	}

	a.mu.Unlock()
	return nil
}

// run is the consumer loop. The lock is held for the whole of each
// same-producer drain, including the sink write on flush, and released
// only while parked waiting for work or a close request.
func (a *Aggregator) run() {
	defer a.wg.Done()

	a.mu.Lock()
	defer a.mu.Unlock()

	for {
		for !a.closing && a.cursor == nil {
			a.cond.Wait()
		}

		if a.closing {
			a.drainAll()
			return
		}

		a.drainActive()
	}
}

// drainActive executes entries for the floor holder until the holder's
// run is exhausted or the queue empties. A flush hands the floor to the
// producer of the oldest remaining entry and the drain continues with
// that producer's run. Called with mu held and cursor non-nil.
func (a *Aggregator) drainActive() {
	for {
		e := a.cursor.Value.(*core.Entry)
		a.exec(e)

		if a.flushed {
			a.emit()
			a.queue.Remove(a.cursor)
			core.PutEntry(e)

			// Floor handoff favors the oldest pending entry, whoever
			// appended it.
			a.cursor = a.queue.Front()
			if a.cursor == nil {
				a.active = core.Token{}
				return
			}
			a.active = a.cursor.Value.(*core.Entry).Token
			continue
		}

		// Scan past other producers' entries, leaving them in place, for
		// the next entry of the same producer.
		scan := a.cursor.Next()
		a.queue.Remove(a.cursor)
		core.PutEntry(e)
		for scan != nil && scan.Value.(*core.Entry).Token != a.active {
			scan = scan.Next()
		}
		a.cursor = scan
		if a.cursor == nil {
			// Exhausted. Keep the floor so a later Append by the same
			// producer extends the run without re-claiming.
			return
		}
	}
}

// drainAll is the shutdown path: every remaining entry executes in
// group-then-scan order and whatever accumulated is written to the sink
// at most once, at the very end. Flush markers met along the way set the
// flush flag but do not trigger intermediate writes. Called with mu held.
func (a *Aggregator) drainAll() {
	for a.queue.Len() > 0 {
		if a.cursor == nil {
			a.cursor = a.queue.Front()
			a.active = a.cursor.Value.(*core.Entry).Token
		}
		for a.cursor != nil {
			e := a.cursor.Value.(*core.Entry)
			if e.Token == a.active {
				next := a.cursor.Next()
				a.exec(e)
				a.queue.Remove(a.cursor)
				core.PutEntry(e)
				a.cursor = next
			} else {
				a.cursor = a.cursor.Next()
			}
		}
	}
	a.emit()
}

// exec runs one entry's action: render into the buffer or raise the
// flush flag. Called with mu held.
func (a *Aggregator) exec(e *core.Entry) {
	if e.Action.Kind == core.FlushAction {
		a.flushed = true
	} else {
		a.cfg.Renderer.AppendValue(&a.buf, e.Action.Value)
	}
	a.stats.IncrementExecuted()
}

// emit drains the accumulation buffer to the sink as one write and
// clears the flush flag. An empty buffer produces no write. Called with
// mu held; holding the lock across the sink write is what keeps a
// producer from observing a half-flushed aggregator.
func (a *Aggregator) emit() {
	a.flushed = false
	if a.buf.Len() == 0 {
		return
	}
	if err := a.cfg.Sink.Write(a.buf.String()); err != nil {
		a.lastErr = err
		a.stats.IncrementSinkErrors()
	} else {
		a.stats.IncrementFlushes()
	}
	a.buf.Reset()
}
