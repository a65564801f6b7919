package huffcode

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func makeTestDecoder(t *testing.T) Decoder {
	t.Helper()
	var d Decoder
	if err := d.Init(makeTestCodeBook(t)); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder(t)

	type testRow struct {
		code Code
		min  int
		max  int
		sym  Symbol
	}

	testData := [...]testRow{
		{code: "", min: 1, max: 4, sym: InvalidSymbol},
		{code: "0", min: 1, max: 1, sym: "f"},
		{code: "1", min: 3, max: 4, sym: InvalidSymbol},
		{code: "10", min: 3, max: 3, sym: InvalidSymbol},
		{code: "11", min: 3, max: 4, sym: InvalidSymbol},
		{code: "100", min: 3, max: 3, sym: "c"},
		{code: "101", min: 3, max: 3, sym: "d"},
		{code: "110", min: 4, max: 4, sym: InvalidSymbol},
		{code: "111", min: 3, max: 3, sym: "e"},
		{code: "1100", min: 4, max: 4, sym: "a"},
		{code: "1101", min: 4, max: 4, sym: "b"},
		{code: "01", min: 0, max: 0, sym: InvalidSymbol},
		{code: "11111", min: 0, max: 0, sym: InvalidSymbol},
	}
	for _, row := range testData {
		t.Run(row.code.String(), func(t *testing.T) {
			sym, min, max := d.Decode(row.code)
			if sym != row.sym {
				t.Errorf("expected symbol %q, got %q", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}
}

func TestDecoder_Dump(t *testing.T) {
	var d Decoder
	cb, err := NewCodeBook(map[Symbol]Code{"b": "0", "a": "1"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Init(cb); err != nil {
		t.Fatal(err)
	}

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 1\n",
		"\tDecode(\"\") = {\"\", 1, 1}\n",
		"\tDecode(\"0\") = {\"b\", 1, 1}\n",
		"\tDecode(\"1\") = {\"a\", 1, 1}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecode(t *testing.T) {
	type testRow struct {
		text string
		bits string
	}

	testData := [...]testRow{
		{text: "aaabb", bits: "11100"},
		{text: "x", bits: "0"},
		{text: "abcdd", bits: "1101111000"},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			root, err := BuildTree(frequenciesOf(row.text))
			if err != nil {
				t.Fatal(err)
			}
			cb := GenerateCodeBook(root)

			actual, err := Decode(row.bits, root)
			if err != nil {
				t.Fatal(err)
			}
			if actual != row.text {
				t.Errorf("tree walk: wrong output:\n\texpect: %s\n\tactual: %s", row.text, actual)
			}

			actual, err = DecodeWithCodeBook(row.bits, cb)
			if err != nil {
				t.Fatal(err)
			}
			if actual != row.text {
				t.Errorf("linear scan: wrong output:\n\texpect: %s\n\tactual: %s", row.text, actual)
			}
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	root, err := BuildTree(frequenciesOf("aaabb"))
	if err != nil {
		t.Fatal(err)
	}
	if out, err := Decode("", root); err != nil || out != "" {
		t.Errorf("expected empty output, got %q, %v", out, err)
	}
	if out, err := DecodeWithCodeBook("", GenerateCodeBook(root)); err != nil || out != "" {
		t.Errorf("expected empty output, got %q, %v", out, err)
	}
	if out, err := Decode("", nil); err != nil || out != "" {
		t.Errorf("expected empty output, got %q, %v", out, err)
	}
	if _, err := Decode("0", nil); !errors.Is(err, ErrMalformedBitstream) {
		t.Errorf("expected ErrMalformedBitstream, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	type testRow struct {
		name string
		text string
		bits string
	}

	testData := [...]testRow{
		{name: "trailing-bit", text: "abcdd", bits: "1101"},
		{name: "truncated-code", text: "abcdd", bits: "11"},
		{name: "bad-character", text: "abcdd", bits: "0x0"},
		{name: "single-symbol-stray-one", text: "x", bits: "01"},
		{name: "single-symbol-bad-character", text: "x", bits: "0 "},
		{name: "unfinished-code", text: "aaaaabbbbbbbbbcccccccccccc", bits: "0101"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root, err := BuildTree(frequenciesOf(row.text))
			if err != nil {
				t.Fatal(err)
			}

			out, err := Decode(row.bits, root)
			if !errors.Is(err, ErrMalformedBitstream) {
				t.Errorf("tree walk: expected ErrMalformedBitstream, got %q, %v", out, err)
			}

			out, err = DecodeWithCodeBook(row.bits, GenerateCodeBook(root))
			if !errors.Is(err, ErrMalformedBitstream) {
				t.Errorf("linear scan: expected ErrMalformedBitstream, got %q, %v", out, err)
			}
		})
	}
}

func TestDecode_MissingChild(t *testing.T) {
	root := NewTreeNode(2, Symbol("ab"), nil)
	root.SetLeft(NewTreeNode(1, Symbol("a"), nil))
	if _, err := Decode("1", root); !errors.Is(err, ErrMalformedBitstream) {
		t.Errorf("expected ErrMalformedBitstream, got %v", err)
	}
}

func TestDecodeWithCodeBook_RejectsNonPrefixCode(t *testing.T) {
	cb := CodeBook{codes: map[Symbol]Code{"a": "0", "b": "01"}}
	if _, err := DecodeWithCodeBook("0", cb); !errors.Is(err, ErrInvalidCodeBook) {
		t.Errorf("expected ErrInvalidCodeBook, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("aaaaaaaabbbbccd efghij✓é")
	randomText := func(n int) string {
		out := make([]rune, n)
		for i := range out {
			out[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(out)
	}

	texts := []string{
		"x",
		"aaabb",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"héllo wörld ✓",
		"\xff\xfe\xfd",
	}
	for i := 0; i < 20; i++ {
		texts = append(texts, randomText(1+rng.Intn(500)))
	}

	for _, text := range texts {
		root, err := BuildTree(frequenciesOf(text))
		if err != nil {
			t.Fatal(err)
		}
		cb := GenerateCodeBook(root)
		bits, err := Encode(cb, text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}

		byTree, err := Decode(bits, root)
		if err != nil {
			t.Fatalf("%q: tree walk: %v", text, err)
		}
		byBook, err := DecodeWithCodeBook(bits, cb)
		if err != nil {
			t.Fatalf("%q: linear scan: %v", text, err)
		}
		if byTree != text || byBook != text {
			t.Errorf("round trip failed for %q: tree=%q book=%q", text, byTree, byBook)
		}
	}
}
