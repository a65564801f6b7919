package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReportRow is one line of the symbol table in a Report.
type ReportRow struct {
	Symbol    Symbol
	Frequency int
	Code      Code
}

// Report summarizes one encoding run: the code assigned to every symbol and
// how much space the encoding saves.
type Report struct {
	// Rows is sorted by descending (frequency, symbol).
	Rows []ReportRow

	Original string
	Encoded  string

	// InputBytes is the byte length of Original.
	InputBytes int

	// EncodedBits is the number of bits in Encoded.  EncodedBytes is that
	// number rounded up to whole bytes.
	EncodedBits  int
	EncodedBytes int

	// Savings is the percentage of InputBytes saved by the encoding,
	// rounded to two decimal places.
	Savings float64
}

// NewReport builds the Report for a completed encoding of text.
func NewReport(ft *FrequencyTable, cb CodeBook, text string, encoded string) Report {
	// The same (count, symbol) ordering the tree was built with, read back
	// to front.
	queue := NewOrderedSequence(CompareNodes[int, Symbol])
	ft.ForEach(func(symbol Symbol, count int) {
		queue.Insert(NewTreeNode(count, symbol, nil))
	})
	nodes := queue.Snapshot()
	rows := make([]ReportRow, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		hc, _ := cb.Lookup(n.Value())
		rows = append(rows, ReportRow{Symbol: n.Value(), Frequency: n.Key(), Code: hc})
	}

	r := Report{
		Rows:         rows,
		Original:     text,
		Encoded:      encoded,
		InputBytes:   len(text),
		EncodedBits:  len(encoded),
		EncodedBytes: (len(encoded) + 7) / 8,
	}
	r.Savings = savings(r.InputBytes, r.EncodedBytes)
	return r
}

func savings(inputBytes int, encodedBytes int) float64 {
	if inputBytes == 0 {
		return 0
	}
	pct := 100 - (float64(encodedBytes)/float64(inputBytes))*100
	return math.Round(pct*100) / 100
}

// SavingsString formats Savings with at most two decimals and no trailing
// zeros, e.g. "40", "62.5", "33.33".
func (r Report) SavingsString() string {
	return strconv.FormatFloat(r.Savings, 'f', -1, 64)
}

// WriteTo writes the human-readable report to the given writer.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Symbol\tFrequency   Code\n")
	buf.WriteString("------\t---------   ----\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&buf, "%s\t%d\t    %s\n", row.Symbol, row.Frequency, string(row.Code))
	}
	fmt.Fprintf(&buf, "\nOriginal String: \n%s\n", r.Original)
	fmt.Fprintf(&buf, "Encoded String: \n%s\n", r.Encoded)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "The original string requires %d bytes.\n", r.InputBytes)
	fmt.Fprintf(&buf, "The encoded string requires %d bytes.\n", r.EncodedBytes)
	fmt.Fprintf(&buf, "Difference in space required is %s%%.\n", r.SavingsString())
	return buf.WriteTo(w)
}

var _ io.WriterTo = Report{}
