package huffman

import (
	"encoding/json"
	"fmt"
)

// CodeTable maps each symbol to its codeword, a non-empty string of '0' and
// '1' characters. No codeword is a prefix of another, so any bit sequence
// produced from the table decodes to exactly one symbol sequence.
type CodeTable map[rune]string

func newCodeTable(tree huffmanTree) CodeTable {
	table := make(CodeTable)
	assignCodes(tree, table, nil)
	return table
}

// MarshalJSON serializes the table as a JSON object keyed by the symbol
// itself, one entry per symbol, so the sidecar stays readable without the
// bitstream.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	entries := make(map[string]string, len(ct))
	for symbol, code := range ct {
		entries[string(symbol)] = code
	}
	return json.Marshal(entries)
}

// ParseCodeTable reads a serialized code table back. Input that is not a
// JSON object of single-character keys to binary strings fails with
// ErrMalformedTable.
func ParseCodeTable(data []byte) (CodeTable, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrMalformedTable)
	}
	table := make(CodeTable, len(entries))
	for key, code := range entries {
		symbols := []rune(key)
		if len(symbols) != 1 {
			return nil, fmt.Errorf("%w: key %q is not a single symbol", ErrMalformedTable, key)
		}
		if len(code) == 0 {
			return nil, fmt.Errorf("%w: empty codeword for %q", ErrMalformedTable, key)
		}
		for _, c := range code {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("%w: codeword %q for %q holds a non-binary character", ErrMalformedTable, code, key)
			}
		}
		table[symbols[0]] = code
	}
	return table, nil
}

// reverse returns the codeword-to-symbol view the decoder matches against.
func (ct CodeTable) reverse() map[string]rune {
	codes := make(map[string]rune, len(ct))
	for symbol, code := range ct {
		codes[code] = symbol
	}
	return codes
}
