package core

import "sync"

// Entry is one queued unit of deferred work tied to a producer identity.
// From Append until it has been executed and unlinked, an Entry is owned
// exclusively by the aggregator's queue and is never mutated.
type Entry struct {
	Token  Token
	Action Action
}

// entryPool recycles Entry objects to keep the append path allocation-free.
var entryPool = sync.Pool{
	New: func() interface{} {
		return new(Entry)
	},
}

// GetEntry retrieves an Entry from the pool and initializes it.
func GetEntry(tok Token, action Action) *Entry {
	e := entryPool.Get().(*Entry)
	e.Token = tok
	e.Action = action
	return e
}

// PutEntry returns an Entry to the pool.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Token = Token{}
	e.Action = Action{}
	entryPool.Put(e)
}
