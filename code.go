package huffcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as '0' and '1' characters.  The
// first character is the first bit, i.e. the decision taken at the root of the
// tree.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Valid returns true iff this Code is non-empty and consists only of '0' and
// '1' characters.
func (hc Code) Valid() bool {
	if len(hc) == 0 {
		return false
	}
	return strings.Trim(string(hc), "01") == ""
}

// HasPrefix returns true iff prefix is a prefix of (or equal to) this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// sibling returns the Code which differs from this one only in its last bit.
func (hc Code) sibling() Code {
	last := byte('1')
	if hc[len(hc)-1] == '1' {
		last = '0'
	}
	return hc[:len(hc)-1] + Code(last)
}
