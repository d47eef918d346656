package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NoChild marks the absent children of a leaf Node.
const NoChild = -1

// Node is one node of a Tree.  Leaves have Low == High == NoChild and carry a
// Symbol; internal nodes carry the indexes of exactly two children.
type Node struct {
	Symbol Symbol
	Weight uint64
	Low    int
	High   int
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return n.Low == NoChild
}

// Tree is a Huffman code tree stored as an arena: every node lives in Nodes
// and children are referenced by index.  Leaves occupy indexes 0 .. N-1 in
// ascending Symbol order; internal nodes follow in creation order, so the
// last node is always the Root.
type Tree struct {
	Nodes []Node
	Root  int
}

// BuildTree constructs the Huffman tree for the given FrequencyTable.
//
// The construction is deterministic: when two nodes have equal weight, the
// one inserted earlier wins, where leaves are inserted in ascending Symbol
// order before any internal node, and internal nodes in the order they are
// created.  The first node removed from the queue becomes the Low (0) child
// and the second becomes the High (1) child.  As a result, the same table
// always yields the same tree.
//
// A table with exactly one symbol yields a Tree consisting of a single leaf.
// A table with no symbols yields ErrEmptyInput.
//
func BuildTree(table FrequencyTable) (*Tree, error) {
	numLeaves := table.Distinct()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{Nodes: make([]Node, 0, 2*numLeaves-1)}

	// Step 1: seed the minheap with one leaf per symbol.  A node's index
	// in t.Nodes doubles as its insertion order.

	h := weightHeap{list: make([]nodeAndWeight, 0, numLeaves)}
	for _, symbol := range table.Symbols() {
		index := len(t.Nodes)
		weight := uint64(table[symbol])
		t.Nodes = append(t.Nodes, Node{Symbol: symbol, Weight: weight, Low: NoChild, High: NoChild})
		h.list = append(h.list, nodeAndWeight{index, weight})
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that node back until one node remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndWeight)
		b := heap.Pop(&h).(nodeAndWeight)

		index := len(t.Nodes)
		weight := a.weight + b.weight
		t.Nodes = append(t.Nodes, Node{Weight: weight, Low: a.index, High: b.index})
		heap.Push(&h, nodeAndWeight{index, weight})
	}

	root := heap.Pop(&h).(nodeAndWeight)
	t.Root = root.index
	assert.Assertf(t.Root == len(t.Nodes)-1, "root %d is not the last node of %d", t.Root, len(t.Nodes))
	return t, nil
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.Nodes) + 1) / 2
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot = %d\n", t.Root)
	for index, n := range t.Nodes {
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "\t%d: leaf %d weight %d\n", index, n.Symbol, n.Weight)
		} else {
			fmt.Fprintf(&buf, "\t%d: node (%d, %d) weight %d\n", index, n.Low, n.High, n.Weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeAndWeight + type weightHeap {{{

type nodeAndWeight struct {
	index  int
	weight uint64
}

type weightHeap struct {
	list []nodeAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
