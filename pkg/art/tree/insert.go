package tree

import "github.com/sdbrain/artmap-go/pkg/art/node"

// RecursiveInsert inserts leaf into the subtree referenced by *cur,
// growing and splitting nodes as needed. cur is a pointer to the slot
// holding the subtree's root - a field on the parent, or the Tree's own
// root field - which lets a split or a grow replace that slot's contents
// without the caller needing to know it happened.
//
// It returns the replaced value and whether a new key was inserted, as
// opposed to an existing key's value being overwritten.
func RecursiveInsert(cur *node.Node, leaf *node.Leaf, depth int) (old []byte, inserted bool) {
	if *cur == nil {
		*cur = leaf
		return nil, true
	}

	if existing, ok := (*cur).(*node.Leaf); ok {
		return insertIntoLeaf(cur, existing, leaf, depth)
	}

	return insertIntoNode(cur, *cur, leaf, depth)
}

// attachChild adds child to n under depth, either as the byte-indexed
// child for key[depth] or, if the key ends exactly here, as the term
// child. It assumes n has room - callers only use it right after
// allocating a fresh Node4, which starts at zero children.
func attachChild(n node.Node, depth int, key []byte, child node.Node) {
	if depth == len(key) {
		*n.Term() = child
		return
	}
	n.AddChild(key[depth], child)
}

// addChild adds child under n's byte-indexed table at b, growing n to
// the next node shape first if it's full. *cur is updated in place when
// growth happens.
func addChild(cur *node.Node, n node.Node, b byte, child node.Node) {
	if n.Full() {
		grown := n.Grow()
		grown.AddChild(b, child)
		*cur = grown
		return
	}
	n.AddChild(b, child)
}

// insertIntoLeaf implements Case A (exact key match: replace the value)
// and Case B (diverging leaf: split into a fresh Node4 holding both
// leaves) of the insert algorithm.
func insertIntoLeaf(cur *node.Node, existing *node.Leaf, leaf *node.Leaf, depth int) (old []byte, inserted bool) {
	if existing.Matches(leaf.Key) {
		old = existing.Value
		existing.Value = leaf.Value
		return old, false
	}

	p := longestCommonPrefix(existing.Key, leaf.Key, depth)

	split := &node.Node4{}
	split.SetPrefixLen(p - depth)
	split.SetPrefix(leaf.Key[depth:min(p, depth+node.MaxPrefix)])

	attachChild(split, p, existing.Key, existing)
	attachChild(split, p, leaf.Key, leaf)

	*cur = split
	return nil, true
}

// insertIntoNode implements Case C: walk past n's compressed prefix
// (splitting it first if leaf's key diverges partway through), then
// either recurse into an existing child, attach a term child, or add a
// brand new child.
func insertIntoNode(cur *node.Node, n node.Node, leaf *node.Leaf, depth int) (old []byte, inserted bool) {
	if n.PrefixLen() > 0 {
		m := prefixMatchDeep(n, leaf.Key, depth)
		if m < n.PrefixLen() {
			splitPrefix(cur, n, leaf, depth, m)
			return nil, true
		}
		depth += n.PrefixLen()
	}

	if depth == len(leaf.Key) {
		slot := n.Term()
		if *slot != nil {
			return RecursiveInsert(slot, leaf, depth)
		}
		*slot = leaf
		return nil, true
	}

	b := leaf.Key[depth]
	if child := n.FindChild(b); child != nil {
		return RecursiveInsert(child, leaf, depth+1)
	}

	addChild(cur, n, b, leaf)
	return nil, true
}

// splitPrefix implements Case C2: n's compressed prefix diverges from
// leaf.Key at offset m (measured from depth), so a new Node4 is spliced
// in above n, holding the m bytes both keys agree on. n keeps the
// subtree it had, just with its prefix shortened by the m bytes now
// owned by the new node and the one pivot byte that sent it down this
// branch.
//
// When n's true prefix length exceeds MaxPrefix, the bytes beyond what's
// stored inline were never kept anywhere on n itself; they're recovered
// from a leaf in n's own subtree, since every key under n shares them by
// construction.
func splitPrefix(cur *node.Node, n node.Node, leaf *node.Leaf, depth, m int) {
	oldLen := n.PrefixLen()

	split := &node.Node4{}
	split.SetPrefixLen(m)

	var pivot byte
	var remainder []byte

	if oldLen <= node.MaxPrefix {
		partial := n.Prefix()
		split.SetPrefix(partial[:m])
		pivot = partial[m]
		remainder = partial[m+1:]
	} else {
		rest := n.Minimum()
		partial := rest.Key[depth : depth+node.MaxPrefix]
		split.SetPrefix(partial[:m])
		pivot = rest.Key[depth+m]

		start := depth + m + 1
		end := min(start+(oldLen-m-1), len(rest.Key))
		remainder = rest.Key[start:end]
	}

	if len(remainder) > node.MaxPrefix {
		remainder = remainder[:node.MaxPrefix]
	}

	n.SetPrefixLen(oldLen - m - 1)
	n.SetPrefix(remainder)

	split.AddChild(pivot, n)
	attachChild(split, depth+m, leaf.Key, leaf)

	*cur = split
}
