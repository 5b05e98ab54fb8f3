package tree

import (
	"bytes"

	"github.com/sdbrain/artmap-go/pkg/art/node"
	"github.com/sdbrain/artmap-go/pkg/opt"
)

// Search walks from root looking for key, checking each node's prefix
// along the way. Only a node's inline prefix bytes are compared here, and
// depth then advances by the full PrefixLen(): an inline mismatch, or a key
// too short for the prefix, proves key isn't in this subtree. Bytes beyond
// the inline prefix are not checked on the way down, so a key may reach a
// leaf it doesn't match; the final full-key comparison against that leaf
// rejects it, so prefixMatchDeep's minimum-leaf fallback isn't needed.
func Search(root node.Node, key []byte) opt.Option[[]byte] {
	cur := root
	depth := 0

	for cur != nil {
		if leaf, ok := cur.(*node.Leaf); ok {
			if bytes.Equal(leaf.Key, key) {
				return opt.Some(leaf.Value)
			}
			return opt.None[[]byte]()
		}

		if n := cur.PrefixLen(); n > 0 {
			partial := cur.Prefix()
			limit := min(len(partial), max(len(key)-depth, 0))

			matched := 0
			for matched < limit && partial[matched] == key[depth+matched] {
				matched++
			}
			if matched < limit || matched < len(partial) {
				return opt.None[[]byte]()
			}

			depth += n
		}

		if depth == len(key) {
			cur = *cur.Term()
			continue
		}
		if depth > len(key) {
			return opt.None[[]byte]()
		}

		child := cur.FindChild(key[depth])
		if child == nil {
			return opt.None[[]byte]()
		}
		cur = *child
		depth++
	}

	return opt.None[[]byte]()
}
