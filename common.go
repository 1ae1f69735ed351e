package order

import "cmp"

// Comparator reports how two elements relate: negative if first comes before
// second, zero if they are equivalent, positive if second comes before first.
// It must describe a consistent total preorder over the elements it is applied
// to; if it does not, the routines in this module still terminate but leave an
// unspecified order.
type Comparator[T any] func(first, second T) int

// Natural compares elements by their natural < ordering.
func Natural[T cmp.Ordered](first, second T) int {
	if first < second {
		return -1
	}
	if second < first {
		return 1
	}
	return 0
}
