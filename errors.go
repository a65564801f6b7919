package huffcode

import "errors"

var (
	ErrEmptyInput         = errors.New("cannot build a Huffman tree without any symbols")
	ErrSymbolNotFound     = errors.New("symbol has no code in the code book")
	ErrMalformedBitstream = errors.New("bitstream is not a sequence of complete codes")
	ErrInvalidCodeBook    = errors.New("code book is not a valid prefix code")
	ErrRoundTripMismatch  = errors.New("decoded text does not match the original")
)
