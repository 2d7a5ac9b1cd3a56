package aggregator

import (
	"testing"

	"github.com/varun-myprojects/basicLogger/sink"
)

func BenchmarkAppendFlush(b *testing.B) {
	agg := New(Config{Sink: sink.Discard})
	defer agg.Close()

	p := agg.Producer()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Append("part one ")
		p.Append(i)
		p.Flush()
	}
}

func BenchmarkAppendFlushParallel(b *testing.B) {
	agg := New(Config{Sink: sink.Discard})
	defer agg.Close()

	b.RunParallel(func(pb *testing.PB) {
		p := agg.Producer()
		for pb.Next() {
			p.Append("part one ")
			p.Append("part two")
			p.Flush()
		}
	})
}
