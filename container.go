package huffpack

import (
	"bufio"
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

const (
	entrySize     = 5
	bitLengthSize = 8
)

// Container is the self-describing compressed artifact: the FrequencyTable
// needed to rebuild the Huffman tree, plus the packed payload.
//
// The binary layout is:
//
//     1 byte     number of distinct symbols N (256 is written as 0)
//     N × 5      {1 byte symbol, 4 bytes big-endian frequency}, ascending by symbol
//     8 bytes    big-endian payload length in bits
//     ⌈bits/8⌉   payload, most significant bit first, zero padded
//
type Container struct {
	Table   FrequencyTable
	Payload BitBuffer
}

// MarshalBinary serializes the Container.  The table must hold at least one
// symbol.
func (c Container) MarshalBinary() ([]byte, error) {
	symbols := c.Table.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	payload := c.Payload.Bytes()
	size := 1 + entrySize*len(symbols) + bitLengthSize + len(payload)
	out := make([]byte, 0, size)

	// len(symbols) is in [1, 256]; byte(256) == 0.
	out = append(out, byte(len(symbols)))
	for _, symbol := range symbols {
		out = append(out, byte(symbol))
		out = binary.BigEndian.AppendUint32(out, c.Table[symbol])
	}
	out = binary.BigEndian.AppendUint64(out, c.Payload.Len())
	out = append(out, payload...)
	return out, nil
}

// WriteTo writes the serialized Container to w.
func (c Container) WriteTo(w io.Writer) (int64, error) {
	raw, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// UnmarshalBinary parses a serialized Container.  The whole of data must be
// consumed; trailing bytes are an error.
func (c *Container) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	table, bits, err := readHeader(r)
	if err != nil {
		return err
	}

	expect := byteLen(bits)
	if have := uint64(r.Len()); have != expect {
		return malformed(nil, "payload of %d bits needs %d bytes, have %d", bits, expect, have)
	}

	offset := len(data) - r.Len()
	payload := make([]byte, expect)
	copy(payload, data[offset:])

	*c = Container{Table: table, Payload: BitBuffer{data: payload, n: bits}}
	return nil
}

// ReadContainer reads one serialized Container from r.  Unlike
// UnmarshalBinary, it stops after the payload and does not treat further
// bytes as an error.  If r is not an io.ByteReader it is buffered, so bytes
// beyond the Container may be consumed from r.
func ReadContainer(r io.Reader) (Container, error) {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReaderSize(r, 64)
	}

	table, bits, err := readHeader(br)
	if err != nil {
		return Container{}, err
	}
	if bits > math.MaxInt64 {
		return Container{}, malformed(nil, "payload length %d bits is too large", bits)
	}

	var buf bytes.Buffer
	n, err := io.CopyN(&buf, br, int64(byteLen(bits)))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Container{}, malformed(err, "payload truncated after %d bytes", n)
	}
	return Container{Table: table, Payload: BitBuffer{data: buf.Bytes(), n: bits}}, nil
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

func readHeader(r byteReader) (FrequencyTable, uint64, error) {
	var table FrequencyTable

	numByte, err := r.ReadByte()
	if err != nil {
		return table, 0, malformed(io.ErrUnexpectedEOF, "missing symbol count")
	}
	numSymbols := int(numByte)
	if numSymbols == 0 {
		numSymbols = NumSymbols
	}

	var entry [entrySize]byte
	for i := 0; i < numSymbols; i++ {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return table, 0, malformed(unexpected(err), "symbol table entry %d of %d truncated", i, numSymbols)
		}
		symbol := entry[0]
		freq := binary.BigEndian.Uint32(entry[1:])
		if freq == 0 {
			return table, 0, malformed(nil, "symbol table entry %d has zero frequency", i)
		}
		if table[symbol] != 0 {
			return table, 0, malformed(nil, "symbol %d listed twice", symbol)
		}
		table[symbol] = freq
	}

	var length [bitLengthSize]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return table, 0, malformed(unexpected(err), "payload length truncated")
	}
	return table, binary.BigEndian.Uint64(length[:]), nil
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

var (
	_ encoding.BinaryMarshaler   = Container{}
	_ encoding.BinaryUnmarshaler = (*Container)(nil)
	_ io.WriterTo                = Container{}
)
