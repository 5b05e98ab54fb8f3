package art

import (
	"github.com/sdbrain/artmap-go/pkg/art/node"
	"github.com/sdbrain/artmap-go/pkg/art/tree"
	"github.com/sdbrain/artmap-go/pkg/opt"
)

// Tree is an Adaptive Radix Tree mapping []byte keys to []byte values.
//
// The zero value is an empty tree ready to use; New returns a pointer to
// one. A Tree is not
// safe for concurrent use: callers sharing one across goroutines must
// synchronize externally.
type Tree struct {
	root node.Node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of keys stored in the tree.
func (t *Tree) Len() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool { return t.size == 0 }

// Insert associates value with key, replacing and returning any value
// previously stored under key.
func (t *Tree) Insert(key, value []byte) opt.Option[[]byte] {
	old, inserted := tree.RecursiveInsert(&t.root, node.NewLeaf(key, value), 0)
	if inserted {
		t.size++
		return opt.None[[]byte]()
	}
	return opt.Some(old)
}

// Search looks up key, returning its value if present.
func (t *Tree) Search(key []byte) opt.Option[[]byte] {
	return tree.Search(t.root, key)
}
