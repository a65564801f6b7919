package huffcode

import (
	"sort"

	"golang.org/x/exp/slices"
)

// OrderedSequence is a sequence of values that is kept in ascending order
// under a Comparator after every operation.
//
// Among values that compare equal, the one inserted most recently sorts
// first.  BuildTree relies on this rule to produce the same tree shape for the
// same input every time.
//
type OrderedSequence[T comparable] struct {
	list []T
	cmp  Comparator[T]
}

// NewOrderedSequence returns an empty OrderedSequence ordered by cmp.
func NewOrderedSequence[T comparable](cmp Comparator[T]) *OrderedSequence[T] {
	return &OrderedSequence[T]{cmp: cmp}
}

// Len returns the number of values in the sequence.
func (s *OrderedSequence[T]) Len() int {
	return len(s.list)
}

// Insert adds value immediately before the first stored value that is not
// strictly less than it.
func (s *OrderedSequence[T]) Insert(value T) {
	index := s.searchAtLeast(value)
	s.list = slices.Insert(s.list, index, value)
}

// Remove removes the first stored value that is equal (==) to value, not
// merely tied with it under the Comparator.  It returns false if there was no
// such value.
func (s *OrderedSequence[T]) Remove(value T) bool {
	for index := s.searchAtLeast(value); index < len(s.list); index++ {
		item := s.list[index]
		if s.cmp(item, value) != 0 {
			break
		}
		if item == value {
			s.removeAt(index)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the value at the given 0-based position.  It
// returns false, and leaves the sequence untouched, if index is out of range.
func (s *OrderedSequence[T]) RemoveAt(index int) (T, bool) {
	if index < 0 || index >= len(s.list) {
		var zero T
		return zero, false
	}
	return s.removeAt(index), true
}

// Get returns the value at the given 0-based position, or false if index is
// out of range.
func (s *OrderedSequence[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(s.list) {
		var zero T
		return zero, false
	}
	return s.list[index], true
}

// FirstIndexAtLeast returns the position of the first stored value that is
// not less than value, or false if every stored value is less than value.
//
// This is a threshold search, not an equality search.
//
func (s *OrderedSequence[T]) FirstIndexAtLeast(value T) (int, bool) {
	index := s.searchAtLeast(value)
	if index >= len(s.list) {
		return -1, false
	}
	return index, true
}

// Snapshot returns a copy of the current contents in ascending order.
func (s *OrderedSequence[T]) Snapshot() []T {
	return slices.Clone(s.list)
}

func (s *OrderedSequence[T]) searchAtLeast(value T) int {
	return sort.Search(len(s.list), func(i int) bool {
		return s.cmp(s.list[i], value) >= 0
	})
}

func (s *OrderedSequence[T]) removeAt(index int) T {
	var zero T
	item := s.list[index]

	// Popping the front is the hot path for BuildTree; reslice instead of
	// shifting the whole list down.
	if index == 0 {
		s.list[0] = zero
		s.list = s.list[1:]
		return item
	}

	last := len(s.list) - 1
	copy(s.list[index:], s.list[index+1:])
	s.list[last] = zero
	s.list = s.list[:last]
	return item
}
