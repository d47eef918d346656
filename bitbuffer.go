package huffpack

import (
	"bytes"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitBuffer is a packed sequence of bits with an explicit logical length.
// Bits are packed most significant bit first; any bits of the final byte
// beyond Len() are padding and carry no meaning.
type BitBuffer struct {
	data []byte
	n    uint64
}

// NewBitBuffer wraps data as a BitBuffer holding n bits.  data must be
// exactly ceil(n/8) bytes long.  The BitBuffer does not copy data.
func NewBitBuffer(data []byte, n uint64) (BitBuffer, error) {
	if expect := byteLen(n); uint64(len(data)) != expect {
		return BitBuffer{}, malformed(nil, "%d bits need %d bytes, got %d", n, expect, len(data))
	}
	return BitBuffer{data: data, n: n}, nil
}

// Len returns the logical number of bits.
func (bb BitBuffer) Len() uint64 {
	return bb.n
}

// Bytes returns the backing bytes, including the padding of the final byte.
func (bb BitBuffer) Bytes() []byte {
	return bb.data
}

// Bit returns the i'th bit.
func (bb BitBuffer) Bit(i uint64) bool {
	assert.Assertf(i < bb.n, "bit index %d out of range [0, %d)", i, bb.n)
	return (bb.data[i/8]>>(7-i%8))&1 == 1
}

// String returns the bits as a string of '0' and '1'.
func (bb BitBuffer) String() string {
	out := make([]byte, bb.n)
	for i := uint64(0); i < bb.n; i++ {
		out[i] = '0'
		if bb.Bit(i) {
			out[i] = '1'
		}
	}
	return string(out)
}

// type bitWriter {{{

// bitWriter accumulates Codes into a growable buffer.
type bitWriter struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   uint64
}

func newBitWriter(sizeHint uint64) *bitWriter {
	bw := &bitWriter{}
	bw.buf.Grow(int(byteLen(sizeHint)))
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (bw *bitWriter) WriteCode(hc Code) error {
	if err := bw.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	bw.n += uint64(hc.Size)
	return nil
}

// Finish zero-pads the final byte and returns the completed BitBuffer.
func (bw *bitWriter) Finish() (BitBuffer, error) {
	if err := bw.w.Close(); err != nil {
		return BitBuffer{}, err
	}
	assert.Assertf(uint64(bw.buf.Len()) == byteLen(bw.n), "wrote %d bytes for %d bits", bw.buf.Len(), bw.n)
	return BitBuffer{data: bw.buf.Bytes(), n: bw.n}, nil
}

// }}}

// type bitReader {{{

// bitReader yields the bits of a BitBuffer one at a time and stops at its
// logical length, never reading into the padding.
type bitReader struct {
	r    *bitio.Reader
	pos  uint64
	bits uint64
}

func newBitReader(bb BitBuffer) *bitReader {
	return &bitReader{r: bitio.NewReader(bytes.NewReader(bb.data)), bits: bb.n}
}

func (br *bitReader) Remaining() uint64 {
	return br.bits - br.pos
}

func (br *bitReader) ReadBit() (uint64, error) {
	assert.Assertf(br.pos < br.bits, "read past logical end at bit %d", br.pos)
	b, err := br.r.ReadBool()
	if err != nil {
		return 0, malformed(err, "reading bit %d of %d", br.pos, br.bits)
	}
	br.pos++
	if b {
		return 1, nil
	}
	return 0, nil
}

// }}}
