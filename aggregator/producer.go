package aggregator

import "github.com/varun-myprojects/basicLogger/core"

// Producer is a registered handle. All appends through one Producer form
// a single message stream: values accumulate until a Flush marker, at
// which point everything since the previous flush reaches the sink as
// one contiguous write.
//
// Append and Flush never wait on the consumer; they take the shared lock
// only long enough to link one entry. A Producer may technically be
// shared between goroutines, but the callers would be interleaving one
// logical stream; the usual pattern is one Producer per goroutine.
type Producer struct {
	agg *Aggregator
	tok core.Token
}

// Token returns the producer's opaque identity.
func (p *Producer) Token() core.Token {
	return p.tok
}

// Append submits one value for deferred rendering. Passing core.Flush is
// equivalent to calling Flush. Returns ErrClosed once shutdown has begun.
func (p *Producer) Append(v any) error {
	return p.agg.append(p.tok, core.MakeAction(v))
}

// Flush appends the flush marker, requesting that everything this
// producer accumulated since its previous flush be emitted. Returns
// ErrClosed once shutdown has begun.
func (p *Producer) Flush() error {
	return p.agg.append(p.tok, core.Action{Kind: core.FlushAction})
}
