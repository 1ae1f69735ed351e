package array

import (
	"fmt"

	"github.com/ddirect/order"
)

// FindInsertIndex returns the index at which newElement should be inserted
// into s to keep it ordered, searching the half-open range [firstElement,
// lastElement). s must already be sorted by compare over that range. When
// elements equivalent to newElement are present, the index after the last of
// them is returned. The slice is not modified.
//
// FindInsertIndex panics if firstElement > lastElement.
func FindInsertIndex[T any](compare order.Comparator[T], s []T, newElement T, firstElement, lastElement int) int {
	if firstElement > lastElement {
		panic(fmt.Errorf("array: invalid search range %d..%d", firstElement, lastElement))
	}

	for firstElement < lastElement {
		if compare(newElement, s[firstElement]) == 0 {
			firstElement++
			break
		}

		halfway := (firstElement + lastElement) >> 1
		if halfway == firstElement {
			if compare(newElement, s[halfway]) >= 0 {
				firstElement++
			}
			break
		}
		if compare(newElement, s[halfway]) >= 0 {
			firstElement = halfway
		} else {
			lastElement = halfway
		}
	}

	return firstElement
}
