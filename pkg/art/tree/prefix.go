// Package tree implements the ART traversal, search and insertion
// algorithms over the node package's node shapes.
package tree

import "github.com/sdbrain/artmap-go/pkg/art/node"

// longestCommonPrefix returns the first index at or after depth where a
// and b diverge, or min(len(a), len(b)) if one is a prefix of the other.
func longestCommonPrefix(a, b []byte, depth int) int {
	n := min(len(a), len(b))

	i := depth
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// prefixMatch compares n's inline prefix against key starting at depth and
// returns how many leading bytes agree. The comparison is capped at
// whatever is actually stored inline (at most node.MaxPrefix bytes) and at
// the bytes key has left, so a full match here does not by itself prove
// the whole prefix matches once PrefixLen() exceeds what's inline - see
// prefixMatchDeep.
func prefixMatch(n node.Node, key []byte, depth int) int {
	partial := n.Prefix()
	limit := min(len(partial), max(len(key)-depth, 0))

	i := 0
	for i < limit && partial[i] == key[depth+i] {
		i++
	}
	return i
}

// prefixMatchDeep extends prefixMatch with a fallback to the subtree's
// minimum leaf when the inline prefix was fully matched but PrefixLen()
// says the true prefix runs longer than what's stored inline. This is the
// pessimistic half of pessimistic prefix compression: a truncated prefix
// can't tell insert whether two keys truly diverge beyond node.MaxPrefix
// bytes, so it has to go compare against an actual key from the subtree.
func prefixMatchDeep(n node.Node, key []byte, depth int) int {
	m := prefixMatch(n, key, depth)
	if m < len(n.Prefix()) || n.PrefixLen() <= node.MaxPrefix {
		return m
	}

	leaf := n.Minimum()
	if leaf == nil {
		return m
	}

	limit := min(len(leaf.Key), len(key))

	i := m
	for depth+i < limit && leaf.Key[depth+i] == key[depth+i] {
		i++
	}
	return i
}
