package store

import (
	"sync"
	"testing"

	"github.com/ringlog/ringlog/core"
)

func benchStore(capacity int) *Store {
	return NewBuilder().
		WithCapacity(capacity).
		WithConsole(nil).
		Build()
}

func BenchmarkStore_Record(b *testing.B) {
	s := benchStore(DefaultCapacity)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Record(core.Message, "benchmark message ", i)
	}
}

func BenchmarkStore_RecordParallel(b *testing.B) {
	s := benchStore(DefaultCapacity)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Record(core.Message, "benchmark message")
		}
	})
}

func BenchmarkStore_RecordMutexLocker(b *testing.B) {
	s := NewBuilder().
		WithConsole(nil).
		WithLocker(&sync.Mutex{}).
		Build()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Record(core.Message, "benchmark message")
		}
	})
}

func BenchmarkStore_Stream(b *testing.B) {
	s := benchStore(DefaultCapacity)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Append("part ", i).Flush()
	}
}

func BenchmarkStore_NewLogs(b *testing.B) {
	s := benchStore(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		s.Record(core.Message, "fill ", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Record(core.Message, "tick")
		_ = s.NewLogs()
	}
}
