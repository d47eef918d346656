package huffpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// CodeBook maps each Symbol of a Tree to its Code.
type CodeBook struct {
	codes   [NumSymbols]Code
	count   int
	minSize uint8
	maxSize uint8
}

// NewCodeBook derives the CodeBook for the given Tree.  Descending to the Low
// child appends a 0 bit and descending to the High child appends a 1 bit.
//
// A Tree with a single leaf has no edges to walk, so its only symbol is
// assigned the one-bit code "0".
//
func NewCodeBook(t *Tree) *CodeBook {
	assert.Assertf(t != nil && len(t.Nodes) != 0, "NewCodeBook called with an empty tree")

	cb := &CodeBook{}

	root := t.Nodes[t.Root]
	if root.IsLeaf() {
		cb.record(root.Symbol, MakeCode(1, 0))
		return cb
	}

	// Walk the tree with an explicit stack.  The stack depth is the
	// length of the code accumulated so far.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the low child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.NumLeaves()))+1)
	stack = append(stack, stackItem{index: t.Root})

	processChild := func(child int, code Code) {
		assert.Assertf(code.Size <= MaxCodeSize, "code for node %d exceeds %d bits", child, MaxCodeSize)
		n := t.Nodes[child]
		if n.IsLeaf() {
			cb.record(n.Symbol, code)
			return
		}
		stack = append(stack, stackItem{index: child, code: code})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.Nodes[top.index]
		switch x {
		case 0:
			processChild(n.Low, top.code.Append(0))
		case 1:
			processChild(n.High, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	return cb
}

func (cb *CodeBook) record(symbol Symbol, code Code) {
	assert.Assertf(cb.codes[symbol].Size == 0, "symbol %d reached twice", symbol)
	cb.codes[symbol] = code
	if cb.count == 0 {
		cb.minSize = code.Size
		cb.maxSize = code.Size
	} else if cb.minSize > code.Size {
		cb.minSize = code.Size
	} else if cb.maxSize < code.Size {
		cb.maxSize = code.Size
	}
	cb.count++
}

// Lookup returns the Code assigned to symbol.  The second return value is
// false if symbol does not appear in the CodeBook.
func (cb *CodeBook) Lookup(symbol Symbol) (Code, bool) {
	hc := cb.codes[symbol]
	return hc, hc.Size != 0
}

// Len returns the number of symbols in the CodeBook.
func (cb *CodeBook) Len() int {
	return cb.count
}

// MinSize is the bit length of the shortest code.
func (cb *CodeBook) MinSize() uint8 {
	return cb.minSize
}

// MaxSize is the bit length of the longest code.
func (cb *CodeBook) MaxSize() uint8 {
	return cb.maxSize
}

// EncodedBits returns the exact number of bits that Encode produces for an
// input described by table.
func (cb *CodeBook) EncodedBits(table FrequencyTable) uint64 {
	var sum uint64
	for symbol, freq := range table {
		sum += uint64(freq) * uint64(cb.codes[symbol].Size)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeBook to the
// given writer.
func (cb *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := cb.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the CodeBook as an object mapping each symbol (as a
// decimal string) to its code (as a string of '0' and '1').
func (cb *CodeBook) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, cb.count)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := cb.codes[symbol]
		if hc.Size != 0 {
			m[strconv.Itoa(symbol)] = hc.binary()
		}
	}
	return json.Marshal(m)
}

var _ json.Marshaler = (*CodeBook)(nil)
