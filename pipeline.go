package huffcode

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Result holds every artifact produced by Run.
type Result struct {
	Frequencies *FrequencyTable
	Root        *Node
	CodeBook    CodeBook
	Encoded     string
}

// Report builds the Report for this Result.
func (res *Result) Report(text string) Report {
	return NewReport(res.Frequencies, res.CodeBook, text, res.Encoded)
}

type pipelineOptions struct {
	log         logger.Logger
	split       SplitFunc
	decodeCheck bool
}

// PipelineOption configures Run.
type PipelineOption func(*pipelineOptions)

// WithLogger makes Run log each stage.  By default Run does not log.
func WithLogger(log logger.Logger) PipelineOption {
	return func(o *pipelineOptions) {
		o.log = log
	}
}

// WithSplitFunc sets how text is cut into symbols.  The default is
// SplitRunes.
func WithSplitFunc(split SplitFunc) PipelineOption {
	return func(o *pipelineOptions) {
		if split != nil {
			o.split = split
		}
	}
}

// WithDecodeCheck makes Run decode its own output and fail with
// ErrRoundTripMismatch if the result differs from the input.
func WithDecodeCheck(enabled bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.decodeCheck = enabled
	}
}

func (o *pipelineOptions) infof(format string, args ...interface{}) {
	if o.log != nil {
		o.log.Infof(format, args...)
	}
}

// Run counts the symbols of text, builds the Huffman tree and CodeBook, and
// encodes text.  Empty text fails with ErrEmptyInput before anything is
// encoded.
func Run(text string, withOpts ...PipelineOption) (*Result, error) {
	opts := pipelineOptions{split: SplitRunes}
	for _, o := range withOpts {
		o(&opts)
	}

	ft := CountFrequencies(text, opts.split)
	opts.infof("counted %d symbols, %d distinct", ft.Total(), ft.Len())

	root, err := BuildTree(ft)
	if err != nil {
		return nil, err
	}
	leaves, internal := TreeShape(root)
	opts.infof("built tree: weight=%d leaves=%d internal=%d", root.Key(), leaves, internal)

	cb := GenerateCodeBook(root)
	opts.infof("generated code book: %d codes, %d..%d bits", cb.Len(), cb.MinSize(), cb.MaxSize())

	var e Encoder
	e.Init(cb, opts.split)
	encoded, err := e.EncodeString(text)
	if err != nil {
		// The code book came from this very text, so this is a bug.
		return nil, fmt.Errorf("internal consistency error: %w", err)
	}
	opts.infof("encoded %d bytes into %d bits", len(text), len(encoded))

	if opts.decodeCheck {
		decoded, err := Decode(encoded, root)
		if err != nil {
			return nil, err
		}
		if decoded != text {
			return nil, ErrRoundTripMismatch
		}
		opts.infof("decode check passed")
	}

	return &Result{
		Frequencies: ft,
		Root:        root,
		CodeBook:    cb,
		Encoded:     encoded,
	}, nil
}
