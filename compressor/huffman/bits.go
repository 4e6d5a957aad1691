package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// packBits frames a logical bit sequence for byte-aligned storage. The first
// byte holds the count of zero bits (0-7) appended to reach a byte boundary;
// the bits themselves follow MSB-first.
func packBits(bits string) ([]byte, error) {
	padding := (8 - len(bits)%8) % 8
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteByte(byte(padding)); err != nil {
		return nil, err
	}
	for i := 0; i < len(bits); i++ {
		if err := w.WriteBool(bits[i] == '1'); err != nil {
			return nil, err
		}
	}
	for i := 0; i < padding; i++ {
		if err := w.WriteBool(false); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unpackBits reverses packBits. The input is untrusted, so the padding
// header is validated even though correct packing cannot produce a bad one.
func unpackBits(packed []byte) (string, error) {
	if len(packed) == 0 {
		return "", fmt.Errorf("%w: stream is empty", ErrMalformedStream)
	}
	padding := int(packed[0])
	if padding > 7 {
		return "", fmt.Errorf("%w: padding header %d out of range", ErrMalformedStream, padding)
	}
	payloadBits := (len(packed) - 1) * 8
	if padding > payloadBits {
		return "", fmt.Errorf("%w: padding header %d exceeds %d payload bits", ErrMalformedStream, padding, payloadBits)
	}
	r := bitio.NewReader(bytes.NewReader(packed[1:]))
	var bits strings.Builder
	bits.Grow(payloadBits)
	for i := 0; i < payloadBits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedStream, err)
		}
		if bit {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	logical := bits.String()
	return logical[:len(logical)-padding], nil
}
