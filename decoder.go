package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Decoder implements the linear-scan decoder: it grows a candidate Code one
// bit at a time until the candidate names a symbol.
//
// Every prefix of every Code is indexed, so a candidate that cannot grow into
// any Code is rejected as soon as it is read rather than at end of input.
//
type Decoder struct {
	table   map[Code]decoderData
	minSize int
	maxSize int
}

// Init initializes this Decoder from a CodeBook.  The CodeBook must be a
// prefix code, which is always true of one built by GenerateCodeBook or
// NewCodeBook.
func (d *Decoder) Init(cb CodeBook) error {
	if !cb.IsPrefixFree() {
		return ErrInvalidCodeBook
	}

	*d = Decoder{
		table:   make(map[Code]decoderData, cb.Len()*(cb.MaxSize()+1)),
		minSize: cb.MinSize(),
		maxSize: cb.MaxSize(),
	}

	for _, symbol := range cb.Symbols() {
		hc, _ := cb.Lookup(symbol)
		fillTable(d.table, symbol, hc)
	}
	return nil
}

// Decode attempts to decode a Code into a Symbol.
//
// If the Decode is completely successful, symbol != InvalidSymbol and
// minSize == maxSize == hc.Size().
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and
// at least (minSize - hc.Size()) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size()) additional bits will be
// required.
//
// If the Decode fails because hc is not the prefix of any Code, symbol ==
// InvalidSymbol and minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// DecodeString decodes a complete bitstream.  It returns
// ErrMalformedBitstream if the bitstream contains anything other than '0' and
// '1', or is not exactly a sequence of complete codes.
func (d Decoder) DecodeString(bits string) (string, error) {
	var sb strings.Builder
	start := 0
	for end := 1; end <= len(bits); end++ {
		if b := bits[end-1]; b != '0' && b != '1' {
			return "", fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedBitstream, b, end-1)
		}
		candidate := Code(bits[start:end])
		symbol, minSize, _ := d.Decode(candidate)
		if symbol != InvalidSymbol {
			sb.WriteString(string(symbol))
			start = end
			continue
		}
		if minSize == 0 {
			return "", fmt.Errorf("%w: %s at offset %d matches no code", ErrMalformedBitstream, candidate, start)
		}
	}
	if start != len(bits) {
		return "", fmt.Errorf("%w: %d trailing bits do not form a complete code", ErrMalformedBitstream, len(bits)-start)
	}
	return sb.String(), nil
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make([]Code, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	slices.SortFunc(keys, compareCodes)
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%q, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize int
	maxSize int
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) {
	dd := decoderData{symbol, hc.Size(), hc.Size()}
	table[hc] = dd

	for hc.Size() != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling),
		// where A = NOT a, into ddNew (the new parent for dd and
		// ddSibling).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc.sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "xxx...a" to "xxx...".

		hc = hc[:hc.Size()-1]

		// If table[hc] already equals ddNew, we can stop recursing.

		if ddOld, found := table[hc]; found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
}

func compareCodes(a, b Code) int {
	if c := CompareOrdered(a.Size(), b.Size()); c != 0 {
		return c
	}
	return CompareOrdered(a, b)
}

// Decode decodes a bitstream by walking the tree: each '0' descends left,
// each '1' descends right, and reaching a leaf emits its symbol and restarts
// at root.
//
// A root that is itself a leaf has the one-bit Code "0", so each '0' emits
// that leaf's symbol.  Running out of bits anywhere but at root is reported as
// ErrMalformedBitstream.
//
func Decode(bits string, root *Node) (string, error) {
	if root == nil {
		if bits == "" {
			return "", nil
		}
		return "", fmt.Errorf("%w: no tree to decode %d bits with", ErrMalformedBitstream, len(bits))
	}

	var sb strings.Builder

	if root.IsLeaf() {
		for index := 0; index < len(bits); index++ {
			if bits[index] != '0' {
				return "", fmt.Errorf("%w: invalid bit %q at offset %d for a single-symbol code", ErrMalformedBitstream, bits[index], index)
			}
			sb.WriteString(string(root.Value()))
		}
		return sb.String(), nil
	}

	cur := root
	start := 0
	for index := 0; index < len(bits); index++ {
		switch bits[index] {
		case '0':
			cur = cur.Left()
		case '1':
			cur = cur.Right()
		default:
			return "", fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedBitstream, bits[index], index)
		}
		if cur == nil {
			return "", fmt.Errorf("%w: bit at offset %d leads to a missing child", ErrMalformedBitstream, index)
		}
		if cur.IsLeaf() {
			sb.WriteString(string(cur.Value()))
			cur = root
			start = index + 1
		}
	}
	if cur != root {
		return "", fmt.Errorf("%w: %d trailing bits do not form a complete code", ErrMalformedBitstream, len(bits)-start)
	}
	return sb.String(), nil
}

// DecodeWithCodeBook decodes a bitstream using only the CodeBook.  It always
// agrees with Decode run against the tree the CodeBook was generated from.
func DecodeWithCodeBook(bits string, cb CodeBook) (string, error) {
	var d Decoder
	if err := d.Init(cb); err != nil {
		return "", err
	}
	return d.DecodeString(bits)
}
