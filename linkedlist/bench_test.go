package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/dsakit/linkedlist"
)

// BenchmarkAppend measures tail append, which must stay O(1).
func BenchmarkAppend(b *testing.B) {
	l := linkedlist.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

// BenchmarkGetAt_Middle measures an O(n/2) walk on a 1k-element list.
func BenchmarkGetAt_Middle(b *testing.B) {
	l := linkedlist.New[int]()
	for i := 0; i < 1000; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.GetAt(500)
	}
}

// BenchmarkRemoveAt_Head measures head removal paired with a refill append.
func BenchmarkRemoveAt_Head(b *testing.B) {
	l := linkedlist.New[int]()
	for i := 0; i < 1000; i++ {
		l.Append(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := l.RemoveAt(0)
		l.Append(v)
	}
}
