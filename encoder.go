package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Encoder turns text into a string of '0' and '1' characters using a
// CodeBook.
type Encoder struct {
	codes CodeBook
	split SplitFunc
}

// Init initializes this Encoder.  The split function must be the one that was
// used to count the frequencies the CodeBook was built from; if nil,
// SplitRunes is used.
func (e *Encoder) Init(cb CodeBook, split SplitFunc) {
	if split == nil {
		split = SplitRunes
	}
	*e = Encoder{
		codes: cb,
		split: split,
	}
}

// Encode returns the Code for a single Symbol, or false if it has none.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.codes.Lookup(symbol)
}

// EncodeString encodes every symbol of text, in order, and returns the
// concatenation of their codes.
//
// A symbol without a Code means the CodeBook was not built from this text,
// which is reported as ErrSymbolNotFound; nothing is ever skipped.
//
func (e Encoder) EncodeString(text string) (string, error) {
	symbols := e.split(text)
	var sb strings.Builder
	sb.Grow(len(symbols) * e.codes.MaxSize())
	for index, symbol := range symbols {
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return "", fmt.Errorf("%w: %q at symbol index %d", ErrSymbolNotFound, symbol, index)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for _, symbol := range e.codes.Symbols() {
		hc, _ := e.codes.Lookup(symbol)
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode encodes text with cb, splitting it into runes.
func Encode(cb CodeBook, text string) (string, error) {
	var e Encoder
	e.Init(cb, SplitRunes)
	return e.EncodeString(text)
}
