// Package sorted provides a slice that keeps its elements ordered by a
// comparator. It is not safe to call any method concurrently from different
// goroutines.
package sorted

import (
	"iter"

	"github.com/ddirect/order"
	"github.com/ddirect/order/array"
)

type Slice[T any] struct {
	compare order.Comparator[T]
	s       []T
}

func New[T any](compare order.Comparator[T]) *Slice[T] {
	return &Slice[T]{
		compare: compare,
	}
}

// From builds a Slice from values, sorting them once. Values equivalent under
// the comparator may end up in any relative order.
func From[T any](compare order.Comparator[T], values ...T) *Slice[T] {
	s := append([]T(nil), values...)
	array.Sort(compare, s, 0, len(s)-1, false)
	return &Slice[T]{
		compare: compare,
		s:       s,
	}
}

func (sl *Slice[T]) Len() int {
	return len(sl.s)
}

func (sl *Slice[T]) Get(i int) T {
	return sl.s[i]
}

func (sl *Slice[T]) Clear() {
	clear(sl.s)
	sl.s = sl.s[:0]
}

// Insert adds v at a position that keeps the elements ordered.
func (sl *Slice[T]) Insert(v T) {
	i := array.FindInsertIndex(sl.compare, sl.s, v, 0, len(sl.s))
	sl.s = append(sl.s, v)
	copy(sl.s[i+1:], sl.s[i:])
	sl.s[i] = v
}

// Delete removes one element equivalent to v and reports whether one was
// found.
func (sl *Slice[T]) Delete(v T) bool {
	i := sl.IndexOf(v)
	if i < 0 {
		return false
	}
	copy(sl.s[i:], sl.s[i+1:])
	n := len(sl.s) - 1
	clear(sl.s[n:])
	sl.s = sl.s[:n]
	return true
}

func (sl *Slice[T]) Exists(v T) bool {
	return sl.IndexOf(v) >= 0
}

// IndexOf returns the index of an element equivalent to v, or -1 if there is
// none. With duplicates present, any equivalent index may be returned.
func (sl *Slice[T]) IndexOf(v T) int {
	i := array.FindInsertIndex(sl.compare, sl.s, v, 0, len(sl.s)) - 1
	if i < 0 || sl.compare(sl.s[i], v) != 0 {
		return -1
	}
	return i
}

func (sl *Slice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range sl.s {
			if !yield(v) {
				return
			}
		}
	}
}
