package huffpack

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the largest number of bits a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint8

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is bit (Size-1), i.e. the most significant valid bit, which
	// is the order in which the bits are packed into a BitBuffer.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size uint8, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// IsPrefixOf returns true iff hc is a (not necessarily proper) prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.binary())
}

func (hc Code) binary() string {
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}
