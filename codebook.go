package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/exp/slices"
)

// CodeBook maps each Symbol to its Code.  A CodeBook is immutable once built.
type CodeBook struct {
	codes   map[Symbol]Code
	minSize int
	maxSize int
}

// GenerateCodeBook walks the tree depth-first and assigns each leaf the Code
// spelled by the left ('0') and right ('1') decisions on its path from root.
//
// If root is itself a leaf, its symbol is assigned the Code "0" so that every
// symbol has a non-empty Code.  A nil root yields an empty CodeBook.
//
func GenerateCodeBook(root *Node) CodeBook {
	codes := make(map[Symbol]Code)
	if root == nil {
		return CodeBook{codes: codes}
	}
	if root.IsLeaf() {
		codes[root.Value()] = "0"
		return newCodeBook(codes)
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// path holds one bit for every internal node on the stack except the
	// root, so a leaf's Code is path plus the bit that leads to it.

	type stackItem struct {
		node *Node
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	path := make([]byte, 0, 16)

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if child.IsLeaf() {
			codes[child.Value()] = Code(path)
			path = path[:len(path)-1]
			return
		}
		stack = append(stack, stackItem{node: child})
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left(), '0')
		case 1:
			processChild(top.node.Right(), '1')
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	return newCodeBook(codes)
}

// NewCodeBook builds a CodeBook from an explicit mapping, e.g. one received
// from another party.  Every Code must be Valid, and no Code may be a prefix
// of another.
func NewCodeBook(codes map[Symbol]Code) (CodeBook, error) {
	copied := make(map[Symbol]Code, len(codes))
	for symbol, hc := range codes {
		if symbol == InvalidSymbol {
			return CodeBook{}, fmt.Errorf("%w: empty symbol", ErrInvalidCodeBook)
		}
		if !hc.Valid() {
			return CodeBook{}, fmt.Errorf("%w: symbol %q has invalid code %s", ErrInvalidCodeBook, symbol, hc)
		}
		copied[symbol] = hc
	}
	cb := newCodeBook(copied)
	if a, b, ok := cb.findPrefixPair(); ok {
		return CodeBook{}, fmt.Errorf("%w: code %s for %q is a prefix of code %s for %q",
			ErrInvalidCodeBook, cb.codes[a], a, cb.codes[b], b)
	}
	return cb, nil
}

func newCodeBook(codes map[Symbol]Code) CodeBook {
	cb := CodeBook{codes: codes}
	first := true
	for _, hc := range codes {
		minmax(&cb.minSize, &cb.maxSize, hc.Size(), first)
		first = false
	}
	return cb
}

// Lookup returns the Code for symbol, or false if symbol has no Code.
func (cb CodeBook) Lookup(symbol Symbol) (Code, bool) {
	hc, found := cb.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the CodeBook.
func (cb CodeBook) Len() int {
	return len(cb.codes)
}

// MinSize is the bit length of the shortest Code.
func (cb CodeBook) MinSize() int {
	return cb.minSize
}

// MaxSize is the bit length of the longest Code.
func (cb CodeBook) MaxSize() int {
	return cb.maxSize
}

// Symbols returns every symbol in the CodeBook, sorted by (Code size, Code).
func (cb CodeBook) Symbols() []Symbol {
	out := make([]Symbol, 0, len(cb.codes))
	for symbol := range cb.codes {
		out = append(out, symbol)
	}
	slices.SortFunc(out, func(a, b Symbol) int {
		return compareCodes(cb.codes[a], cb.codes[b])
	})
	return out
}

// IsPrefixFree returns true iff no Code in the CodeBook is a prefix of
// another.
func (cb CodeBook) IsPrefixFree() bool {
	_, _, found := cb.findPrefixPair()
	return !found
}

// findPrefixPair returns two symbols whose codes violate the prefix
// property.  Sorted lexically, a prefix always lands directly before some
// code that extends it.
func (cb CodeBook) findPrefixPair() (Symbol, Symbol, bool) {
	symbols := make([]Symbol, 0, len(cb.codes))
	for symbol := range cb.codes {
		symbols = append(symbols, symbol)
	}
	slices.SortFunc(symbols, func(a, b Symbol) int {
		return CompareOrdered(cb.codes[a], cb.codes[b])
	})
	for i := 1; i < len(symbols); i++ {
		a, b := symbols[i-1], symbols[i]
		if cb.codes[b].HasPrefix(cb.codes[a]) {
			return a, b, true
		}
	}
	return InvalidSymbol, InvalidSymbol, false
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (cb CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for _, symbol := range cb.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%q) = %s\n", symbol, cb.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// CBOR export {{{

var (
	codeBookEncMode = mustEncMode(cbor.CoreDetEncOptions())
	codeBookDecMode = mustDecMode(cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// MarshalCBOR encodes the CodeBook as a deterministic CBOR map from symbol
// to Code, so that it can be transmitted alongside an encoded payload.
func (cb CodeBook) MarshalCBOR() ([]byte, error) {
	raw := make(map[string]string, len(cb.codes))
	for symbol, hc := range cb.codes {
		raw[string(symbol)] = string(hc)
	}
	return codeBookEncMode.Marshal(raw)
}

var _ cbor.Marshaler = CodeBook{}

// UnmarshalCodeBook decodes a CodeBook written by MarshalCBOR, applying the
// same validation as NewCodeBook.
func UnmarshalCodeBook(data []byte) (CodeBook, error) {
	var raw map[string]string
	if err := codeBookDecMode.Unmarshal(data, &raw); err != nil {
		return CodeBook{}, fmt.Errorf("%w: %v", ErrInvalidCodeBook, err)
	}
	codes := make(map[Symbol]Code, len(raw))
	for symbol, hc := range raw {
		codes[Symbol(symbol)] = Code(hc)
	}
	return NewCodeBook(codes)
}

// }}}
