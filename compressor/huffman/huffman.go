// Package huffman implements a prefix-free entropy coder. Encode derives a
// code table from the input's own symbol frequencies, substitutes each
// symbol with its codeword and packs the result into a byte-aligned
// bitstream; Decode reverses the process given the same table. The table is
// not derivable from the bitstream, so both artifacts must be kept.
package huffman

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput indicates an encode was requested on zero symbols.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrMalformedStream indicates an empty, truncated or inconsistently
	// padded bitstream.
	ErrMalformedStream = errors.New("huffman: malformed bitstream")
	// ErrMalformedTable indicates a code table that failed to parse or holds
	// a non-binary codeword.
	ErrMalformedTable = errors.New("huffman: malformed code table")
	// ErrUnknownSymbol indicates a symbol with no entry in the supplied table.
	ErrUnknownSymbol = errors.New("huffman: symbol missing from code table")
	// ErrIncompleteCode indicates trailing bits that match no codeword.
	ErrIncompleteCode = errors.New("huffman: trailing bits match no codeword")
)

// Encode compresses text, returning the packed bitstream and the code table
// required to decode it. Each call builds its frequency table, tree and code
// table from scratch; nothing is shared between calls.
func Encode(text string) ([]byte, CodeTable, error) {
	symbols := []rune(text)
	if len(symbols) == 0 {
		return nil, nil, ErrEmptyInput
	}
	tree := buildTree(countFrequencies(symbols))
	table := newCodeTable(tree)
	packed, err := packSymbols(symbols, table)
	if err != nil {
		return nil, nil, err
	}
	return packed, table, nil
}

// EncodeWith compresses text against an externally supplied table instead of
// deriving one. A symbol absent from the table fails with ErrUnknownSymbol.
func EncodeWith(text string, table CodeTable) ([]byte, error) {
	symbols := []rune(text)
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}
	return packSymbols(symbols, table)
}

func packSymbols(symbols []rune, table CodeTable) ([]byte, error) {
	var bits strings.Builder
	for _, symbol := range symbols {
		code, ok := table[symbol]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
		}
		bits.WriteString(code)
	}
	return packBits(bits.String())
}

// Decode reconstructs the text a bitstream was packed from, given the code
// table that encoded it. Bits are consumed greedily: the accumulated bits
// are emitted as a symbol the instant they equal a codeword, and the
// accumulator resets. A non-empty accumulator after the last bit means the
// stream and table do not pair up, and decoding fails with ErrIncompleteCode.
func Decode(packed []byte, table CodeTable) (string, error) {
	bits, err := unpackBits(packed)
	if err != nil {
		return "", err
	}
	codes := table.reverse()
	var out []rune
	start := 0
	for i := 0; i < len(bits); i++ {
		if symbol, ok := codes[bits[start:i+1]]; ok {
			out = append(out, symbol)
			start = i + 1
		}
	}
	if start != len(bits) {
		return "", fmt.Errorf("%w: %d unconsumed bits", ErrIncompleteCode, len(bits)-start)
	}
	return string(out), nil
}
