package huffcode

import (
	"golang.org/x/exp/constraints"
)

// Comparator reports the relative order of a and b: negative if a sorts
// before b, positive if a sorts after b, and zero if they are tied.
type Comparator[T any] func(a, b T) int

// CompareOrdered is the natural Comparator for any ordered type.
func CompareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func minmax(minSize *int, maxSize *int, size int, first bool) {
	if first {
		*minSize = size
		*maxSize = size
	} else if *minSize > size {
		*minSize = size
	} else if *maxSize < size {
		*maxSize = size
	}
}
