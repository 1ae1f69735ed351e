// Package array sorts and searches index ranges of caller-owned slices using
// a three-way comparator. The routines never allocate: the unstable sort keeps
// its pending ranges in a fixed-size stack instead of recursing.
package array

import (
	"github.com/ddirect/order"
)

// small ranges are cheaper to finish by selection than to partition
const selectionThreshold = 8

// stackSize bounds the pending-range stack of the unstable sort. Each stacked
// range is at most half of the one it came from, so 30 entries cover any
// addressable slice.
const stackSize = 30

// Sort orders s[firstElement..lastElement] (inclusive range) in place so that
// compare(s[i], s[j]) <= 0 for every i < j in the range. If lastElement <=
// firstElement the call is a no-op.
//
// With retainOrderOfEquivalentItems set, elements the comparator considers
// equivalent keep their relative order, using a slower quadratic pass;
// otherwise an iterative quicksort is used and equivalent elements may move
// relative to each other.
func Sort[T any](compare order.Comparator[T], s []T, firstElement, lastElement int, retainOrderOfEquivalentItems bool) {
	if lastElement <= firstElement {
		return
	}
	if retainOrderOfEquivalentItems {
		stableSort(compare, s, firstElement, lastElement)
	} else {
		quickSort(compare, s, firstElement, lastElement)
	}
}

// stableSort bubbles out-of-order neighbours; after a swap it steps back two
// positions (clamped to firstElement) so the moved element is re-checked
// against its new predecessor.
func stableSort[T any](compare order.Comparator[T], s []T, firstElement, lastElement int) {
	for i := firstElement; i < lastElement; i++ {
		if compare(s[i], s[i+1]) > 0 {
			s[i], s[i+1] = s[i+1], s[i]
			if i > firstElement {
				i -= 2
			}
		}
	}
}

func quickSort[T any](compare order.Comparator[T], s []T, firstElement, lastElement int) {
	var fromStack, toStack [stackSize]int
	stackIndex := 0

	for {
		size := lastElement - firstElement + 1

		if size <= selectionThreshold {
			selectionSort(compare, s, firstElement, lastElement)
		} else {
			// middle element as pivot, parked at the front
			mid := firstElement + size>>1
			s[mid], s[firstElement] = s[firstElement], s[mid]

			i := firstElement
			j := lastElement + 1

			for {
				for {
					i++
					if i > lastElement || compare(s[i], s[firstElement]) > 0 {
						break
					}
				}
				for {
					j--
					if j <= firstElement || compare(s[j], s[firstElement]) < 0 {
						break
					}
				}
				if j < i {
					break
				}
				s[i], s[j] = s[j], s[i]
			}

			s[j], s[firstElement] = s[firstElement], s[j]

			// stack the larger side, keep iterating on the smaller one
			if j-1-firstElement >= lastElement-i {
				if firstElement+1 < j {
					fromStack[stackIndex] = firstElement
					toStack[stackIndex] = j - 1
					stackIndex++
				}
				if i < lastElement {
					firstElement = i
					continue
				}
			} else {
				if i < lastElement {
					fromStack[stackIndex] = i
					toStack[stackIndex] = lastElement
					stackIndex++
				}
				if firstElement+1 < j {
					lastElement = j - 1
					continue
				}
			}
		}

		stackIndex--
		if stackIndex < 0 {
			return
		}
		firstElement = fromStack[stackIndex]
		lastElement = toStack[stackIndex]
	}
}

// selectionSort repeatedly moves the maximum of the unsorted prefix into the
// last unsorted slot.
func selectionSort[T any](compare order.Comparator[T], s []T, firstElement, lastElement int) {
	for j := lastElement; j > firstElement; j-- {
		maxIndex := firstElement
		for k := firstElement + 1; k <= j; k++ {
			if compare(s[k], s[maxIndex]) > 0 {
				maxIndex = k
			}
		}
		s[j], s[maxIndex] = s[maxIndex], s[j]
	}
}
