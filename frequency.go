package huffcode

import (
	"github.com/chronos-tachyon/assert"
)

// FrequencyTable maps each distinct Symbol to the number of times it occurs.
// Symbols are remembered in the order they were first added, and every
// iteration over the table follows that order.
type FrequencyTable struct {
	order  []Symbol
	counts map[Symbol]int
}

// NewFrequencyTable returns an empty FrequencyTable.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[Symbol]int)}
}

// CountFrequencies splits text into symbols and counts them.  If split is
// nil, SplitRunes is used.
func CountFrequencies(text string, split SplitFunc) *FrequencyTable {
	if split == nil {
		split = SplitRunes
	}
	ft := NewFrequencyTable()
	for _, symbol := range split(text) {
		ft.Add(symbol, 1)
	}
	return ft
}

// Add increases the count for symbol by count, which must be positive.
func (ft *FrequencyTable) Add(symbol Symbol, count int) {
	assert.Assertf(count > 0, "count %d for symbol %q is not positive", count, symbol)
	if _, found := ft.counts[symbol]; !found {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol] += count
}

// Count returns the number of occurrences of symbol, or false if symbol does
// not appear in the table.
func (ft *FrequencyTable) Count(symbol Symbol) (int, bool) {
	count, found := ft.counts[symbol]
	return count, found
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() int {
	var total int
	for _, count := range ft.counts {
		total += count
	}
	return total
}

// Symbols returns the distinct symbols in first-added order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// ForEach calls fn once for each (symbol, count) pair, in first-added order.
func (ft *FrequencyTable) ForEach(fn func(symbol Symbol, count int)) {
	for _, symbol := range ft.order {
		fn(symbol, ft.counts[symbol])
	}
}
