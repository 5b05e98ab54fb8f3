package node

import "github.com/sdbrain/artmap-go/internal/debug"

// Node48 stores up to 48 children behind a 256-entry sparse index: Keys[b]
// holds a 1-based slot number into Children, or 0 for "no child". This
// trades the 256-pointer footprint of Node256 for one extra indirection,
// worthwhile once a node has outgrown Node16 but still uses under a fifth
// of the byte space.
type Node48 struct {
	Base
	Keys     [256]byte
	Children [48]Node
}

var _ Node = (*Node48)(nil)

func (n *Node48) Type() Type { return TypeNode48 }
func (n *Node48) Full() bool { return n.NumChildren == 48 }

// Minimum scans Keys in ascending byte order for the first assigned slot.
func (n *Node48) Minimum() *Leaf {
	if n.term != nil {
		return n.term.Minimum()
	}
	if n.NumChildren == 0 {
		return nil
	}
	for i := 0; i < 256; i++ {
		if idx := n.Keys[i]; idx != 0 {
			return n.Children[idx-1].Minimum()
		}
	}
	return nil
}

func (n *Node48) FindChild(b byte) *Node {
	if idx := n.Keys[b]; idx != 0 {
		return &n.Children[idx-1]
	}
	return nil
}

func (n *Node48) AddChild(b byte, child Node) {
	debug.Assert(!n.Full(), "node48: add to full node")
	debug.Assert(n.Keys[b] == 0, "node48: key already present")

	var i byte
	for ; i < 48; i++ {
		if n.Children[i] == nil {
			break
		}
	}

	n.Keys[b] = i + 1
	n.Children[i] = child
	n.NumChildren++
}

func (n *Node48) Grow() Node {
	grown := &Node256{Base: n.Base}
	for b := 0; b < 256; b++ {
		if idx := n.Keys[b]; idx != 0 {
			grown.Children[b] = n.Children[idx-1]
		}
	}
	return grown
}
