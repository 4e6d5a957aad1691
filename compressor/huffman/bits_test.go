package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestPackUnpackBits(t *testing.T) {
	long := strings.Repeat("10011", 7)
	for length := 0; length <= len(long); length++ {
		bits := long[:length]
		packed, err := packBits(bits)
		if err != nil {
			t.Fatalf("packBits(%q) failed: %v", bits, err)
		}
		got, err := unpackBits(packed)
		if err != nil {
			t.Fatalf("unpackBits failed for length %d: %v", length, err)
		}
		if got != bits {
			t.Errorf("length %d: got %q, want %q", length, got, bits)
		}
	}
}

func TestPackBitsPaddingInvariant(t *testing.T) {
	for length := 1; length <= 32; length++ {
		bits := strings.Repeat("1", length)
		packed, err := packBits(bits)
		if err != nil {
			t.Fatalf("packBits failed: %v", err)
		}
		padding := int(packed[0])
		if padding < 0 || padding > 7 {
			t.Fatalf("length %d: padding %d out of range", length, padding)
		}
		totalBits := len(packed) * 8
		if (totalBits-8-padding)%8 != 0 {
			t.Errorf("length %d: %d total bits with padding %d is not byte aligned",
				length, totalBits, padding)
		}
		if totalBits-8-padding != length {
			t.Errorf("length %d: payload holds %d logical bits", length, totalBits-8-padding)
		}
	}
}

func TestUnpackBitsRejectsMalformedStreams(t *testing.T) {
	cases := []struct {
		name   string
		packed []byte
	}{
		{"empty", nil},
		{"padding out of range", []byte{9, 0xff}},
		{"padding exceeds payload", []byte{5}},
	}
	for _, tc := range cases {
		if _, err := unpackBits(tc.packed); !errors.Is(err, ErrMalformedStream) {
			t.Errorf("%s: unpackBits = %v, want ErrMalformedStream", tc.name, err)
		}
	}
}
