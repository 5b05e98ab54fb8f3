package node

import "github.com/sdbrain/artmap-go/internal/debug"

// Node4 stores up to 4 children in parallel sorted arrays. It is the
// smallest and most common inner node shape, used for every split until a
// node accumulates a fifth distinct child byte.
type Node4 struct {
	Base
	Keys     [4]byte
	Children [4]Node
}

var _ Node = (*Node4)(nil)

func (n *Node4) Type() Type { return TypeNode4 }
func (n *Node4) Full() bool { return n.NumChildren == 4 }

func (n *Node4) Minimum() *Leaf {
	if n.term != nil {
		return n.term.Minimum()
	}
	if n.NumChildren == 0 {
		return nil
	}
	return n.Children[0].Minimum()
}

// FindChild does a linear scan; with at most 4 entries this beats any
// indexing scheme on cache locality alone.
func (n *Node4) FindChild(b byte) *Node {
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == b {
			return &n.Children[i]
		}
	}
	return nil
}

// AddChild inserts b/child keeping Keys sorted ascending.
func (n *Node4) AddChild(b byte, child Node) {
	debug.Assert(!n.Full(), "node4: add to full node")

	i := 0
	for ; i < n.NumChildren; i++ {
		if b < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = b
	n.Children[i] = child
	n.NumChildren++
}

func (n *Node4) Grow() Node {
	grown := &Node16{Base: n.Base}
	copy(grown.Keys[:], n.Keys[:n.NumChildren])
	copy(grown.Children[:], n.Children[:n.NumChildren])
	return grown
}
