package node

import (
	"github.com/sdbrain/artmap-go/internal/debug"
	"github.com/sdbrain/artmap-go/pkg/art/simd"
)

// Node16 stores up to 16 children in parallel sorted arrays, the same
// layout as Node4 but wide enough that key lookup uses simd.FindKeyIndex
// instead of a plain loop.
type Node16 struct {
	Base
	Keys     [16]byte
	Children [16]Node
}

var _ Node = (*Node16)(nil)

func (n *Node16) Type() Type { return TypeNode16 }
func (n *Node16) Full() bool { return n.NumChildren == 16 }

func (n *Node16) Minimum() *Leaf {
	if n.term != nil {
		return n.term.Minimum()
	}
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

func (n *Node16) FindChild(b byte) *Node {
	if i := simd.FindKeyIndex(&n.Keys, n.NumChildren, b); i >= 0 {
		return &n.Children[i]
	}
	return nil
}

func (n *Node16) AddChild(b byte, child Node) {
	debug.Assert(!n.Full(), "node16: add to full node")

	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, b)

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

// Grow converts to Node48's sparse index: Keys becomes a 256-entry table
// mapping a byte directly to a 1-based slot in Children.
func (n *Node16) Grow() Node {
	grown := &Node48{Base: n.Base}
	copy(grown.Children[:], n.Children[:n.NumChildren])
	for i := 0; i < n.NumChildren; i++ {
		grown.Keys[n.Keys[i]] = byte(i + 1)
	}
	return grown
}
