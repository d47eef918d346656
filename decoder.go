package huffpack

import (
	"github.com/chronos-tachyon/assert"
)

// Decode reconstructs the bytes packed in bb by walking t from the root: each
// bit selects the Low (0) or High (1) child, and reaching a leaf emits its
// Symbol and returns to the root.  Decoding stops exactly at bb.Len(); the
// padding bits of the final byte are never consulted.
//
// sizeHint, if non-zero, is the expected number of output bytes.
//
// Decode returns a *MalformedStreamError if the bits run out part-way
// through a code.  For a single-leaf Tree, whose only code is "0", every bit
// must be 0 and emits one symbol.
//
func Decode(bb BitBuffer, t *Tree, sizeHint int) ([]byte, error) {
	assert.Assertf(t != nil && len(t.Nodes) != 0, "Decode called with an empty tree")

	if sizeHint <= 0 {
		sizeHint = int(bb.Len() / 8)
	}
	out := make([]byte, 0, sizeHint)
	br := newBitReader(bb)

	root := t.Nodes[t.Root]
	if root.IsLeaf() {
		for br.Remaining() != 0 {
			bit, err := br.ReadBit()
			if err != nil {
				return nil, err
			}
			if bit != 0 {
				return nil, malformed(nil, "bit %d is 1 but the only code is \"0\"", br.pos-1)
			}
			out = append(out, byte(root.Symbol))
		}
		return out, nil
	}

	index := t.Root
	var codeStart uint64
	for br.Remaining() != 0 {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, err
		}

		n := t.Nodes[index]
		if bit == 0 {
			index = n.Low
		} else {
			index = n.High
		}

		if leaf := t.Nodes[index]; leaf.IsLeaf() {
			out = append(out, byte(leaf.Symbol))
			index = t.Root
			codeStart = br.pos
		}
	}

	if index != t.Root {
		return nil, malformed(nil, "bit stream ends inside the code starting at bit %d", codeStart)
	}
	return out, nil
}
