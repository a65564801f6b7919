package huffcode

import (
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Symbols produced by
// the split functions in this package are never empty.
type Symbol string

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol("")

// SplitFunc cuts a text payload into its sequence of symbols.  Joining the
// returned symbols back together must reproduce the text exactly.
type SplitFunc func(text string) []Symbol

// SplitRunes yields one Symbol per UTF-8 encoded code point.  Bytes that are
// not valid UTF-8 are yielded one at a time, unchanged.
func SplitRunes(text string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(text))
	for len(text) != 0 {
		_, size := utf8.DecodeRuneInString(text)
		out = append(out, Symbol(text[:size]))
		text = text[size:]
	}
	return out
}

// SplitBytes yields one Symbol per byte.
func SplitBytes(text string) []Symbol {
	out := make([]Symbol, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = Symbol(text[i : i+1])
	}
	return out
}
