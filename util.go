package huffpack

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// byteLen returns the number of whole bytes needed to hold n bits.
func byteLen(n uint64) uint64 {
	q := n / 8
	if n%8 != 0 {
		q++
	}
	return q
}
