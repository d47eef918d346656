package huffpack

import (
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpack")

// Compress returns the serialized Container holding data.  It returns
// ErrEmptyInput if data is empty.
//
// Compress keeps no state between calls and is safe for concurrent use.
func Compress(data []byte) ([]byte, error) {
	c, cb, err := compress(data)
	if err != nil {
		return nil, err
	}
	out, err := c.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("compressed %d bytes (%d symbols, codes %d..%d bits) into %d bytes",
			len(data), cb.Len(), cb.MinSize(), cb.MaxSize(), len(out))
	}
	return out, nil
}

// CompressTo writes the serialized Container holding data to w.  Nothing is
// written if compression fails.
func CompressTo(w io.Writer, data []byte) (int64, error) {
	artifact, err := Compress(data)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(artifact)
	return int64(n), err
}

// Analyze builds the FrequencyTable and CodeBook that Compress would use for
// data, without encoding it.
func Analyze(data []byte) (FrequencyTable, *CodeBook, error) {
	table, err := Count(data)
	if err != nil {
		return FrequencyTable{}, nil, err
	}
	t, err := BuildTree(table)
	if err != nil {
		return FrequencyTable{}, nil, err
	}
	return table, NewCodeBook(t), nil
}

func compress(data []byte) (Container, *CodeBook, error) {
	table, cb, err := Analyze(data)
	if err != nil {
		return Container{}, nil, err
	}
	payload, err := Encode(data, cb)
	if err != nil {
		return Container{}, nil, err
	}
	return Container{Table: table, Payload: payload}, cb, nil
}

// Decompress parses a serialized Container and returns the original bytes.
// Any inconsistency in the artifact yields a *MalformedStreamError.
//
// Decompress keeps no state between calls and is safe for concurrent use.
func Decompress(artifact []byte) ([]byte, error) {
	var c Container
	if err := c.UnmarshalBinary(artifact); err != nil {
		return nil, err
	}
	return c.Open()
}

// DecompressFrom reads one serialized Container from r and returns the
// original bytes.
func DecompressFrom(r io.Reader) ([]byte, error) {
	c, err := ReadContainer(r)
	if err != nil {
		return nil, err
	}
	return c.Open()
}

// Open rebuilds the Huffman tree from the Container's table and decodes the
// payload.  The payload length must match the length implied by the table,
// and the decoded bytes must have exactly the counts the table lists.
func (c Container) Open() ([]byte, error) {
	t, err := BuildTree(c.Table)
	if err != nil {
		return nil, malformed(err, "symbol table")
	}
	cb := NewCodeBook(t)

	if expect := cb.EncodedBits(c.Table); expect != c.Payload.Len() {
		return nil, malformed(nil, "payload has %d bits, symbol table implies %d", c.Payload.Len(), expect)
	}

	out, err := Decode(c.Payload, t, int(c.Table.Total()))
	if err != nil {
		return nil, err
	}

	actual, err := Count(out)
	if err != nil {
		return nil, malformed(err, "decoded output")
	}
	if actual != c.Table {
		return nil, malformed(nil, "decoded symbol counts do not match the symbol table")
	}

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("decompressed %d payload bits into %d bytes", c.Payload.Len(), len(out))
	}
	return out, nil
}
