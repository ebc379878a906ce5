package rope

import "strings"

// MaxChildren is the maximum number of children of an internal node.
const MaxChildren = 8

// Node is a node of the rope tree.
// Leaves (height 0) hold text; internal nodes hold children.
// Nodes are never modified once built.
type Node struct {
	height   uint8
	summary  TextSummary
	children []*Node
	text     string
}

func newLeaf(text string) *Node {
	return &Node{text: text, summary: ComputeSummary(text)}
}

// newInternal builds a parent for children of equal height.
// The slice is copied so callers may reuse it.
func newInternal(children []*Node) *Node {
	n := &Node{
		height:   children[0].height + 1,
		children: make([]*Node, len(children)),
	}
	copy(n.children, children)
	for _, child := range children {
		n.summary = n.summary.Add(child.summary)
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() ByteOffset {
	return n.summary.Bytes
}

// buildTree builds a balanced tree over the given leaf texts.
func buildTree(pieces []string) *Node {
	if len(pieces) == 0 {
		return nil
	}
	nodes := make([]*Node, len(pieces))
	for i, p := range pieces {
		nodes[i] = newLeaf(p)
	}
	return fromChildren(nodes)
}

// fromChildren joins same-height nodes under as few levels as needed.
func fromChildren(nodes []*Node) *Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	for len(nodes) > MaxChildren {
		groups := (len(nodes) + MaxChildren - 1) / MaxChildren
		base, extra := len(nodes)/groups, len(nodes)%groups
		parents := make([]*Node, 0, groups)
		for i, start := 0, 0; i < groups; i++ {
			size := base
			if i < extra {
				size++
			}
			parents = append(parents, newInternal(nodes[start:start+size]))
			start += size
		}
		nodes = parents
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return newInternal(nodes)
}

// concat joins two trees. Either may be nil or empty.
func concat(a, b *Node) *Node {
	if a == nil || a.Len() == 0 {
		return b
	}
	if b == nil || b.Len() == 0 {
		return a
	}

	switch {
	case a.height == b.height:
		return joinSameHeight(a, b)

	case a.height > b.height:
		last := a.children[len(a.children)-1]
		merged := concat(last, b)
		children := make([]*Node, 0, len(a.children)+MaxChildren)
		children = append(children, a.children[:len(a.children)-1]...)
		if merged.height == last.height {
			children = append(children, merged)
		} else {
			children = append(children, merged.children...)
		}
		return fromChildren(children)

	default:
		first := b.children[0]
		merged := concat(a, first)
		children := make([]*Node, 0, len(b.children)+MaxChildren)
		if merged.height == first.height {
			children = append(children, merged)
		} else {
			children = append(children, merged.children...)
		}
		children = append(children, b.children[1:]...)
		return fromChildren(children)
	}
}

// joinSameHeight joins two non-empty trees of equal height.
func joinSameHeight(a, b *Node) *Node {
	if a.IsLeaf() {
		if len(a.text)+len(b.text) <= MaxLeafSize {
			return newLeaf(a.text + b.text)
		}
		if len(a.text) < MinLeafSize || len(b.text) < MinLeafSize {
			return buildTree(splitIntoLeaves(a.text + b.text))
		}
		return newInternal([]*Node{a, b})
	}

	children := make([]*Node, 0, len(a.children)+len(b.children))
	children = append(children, a.children...)
	children = append(children, b.children...)
	return fromChildren(children)
}

// split cuts the subtree at offset: left holds [0, offset), right holds the rest.
func split(n *Node, offset ByteOffset) (*Node, *Node) {
	if n == nil || offset == 0 {
		return nil, n
	}
	if offset >= n.Len() {
		return n, nil
	}

	if n.IsLeaf() {
		return newLeaf(n.text[:offset]), newLeaf(n.text[offset:])
	}

	idx, childOffset := n.childAt(offset)
	l, r := split(n.children[idx], childOffset)
	left := concat(fromChildren(n.children[:idx]), l)
	right := concat(r, fromChildren(n.children[idx+1:]))
	return left, right
}

// childAt returns the index of the child containing offset and the offset
// relative to that child. An offset at the very end maps to the last child.
func (n *Node) childAt(offset ByteOffset) (int, ByteOffset) {
	last := len(n.children) - 1
	for i, child := range n.children {
		if i == last || offset < child.Len() {
			return i, offset
		}
		offset -= child.Len()
	}
	return last, offset
}

// appendRange writes the text in [start, end) of this subtree to sb.
func (n *Node) appendRange(sb *strings.Builder, start, end ByteOffset) {
	if start >= end {
		return
	}
	if n.IsLeaf() {
		sb.WriteString(n.text[start:end])
		return
	}

	var offset ByteOffset
	for _, child := range n.children {
		childEnd := offset + child.Len()
		if childEnd > start && offset < end {
			from := ByteOffset(0)
			if start > offset {
				from = start - offset
			}
			to := child.Len()
			if end < childEnd {
				to = end - offset
			}
			child.appendRange(sb, from, to)
		}
		if childEnd >= end {
			return
		}
		offset = childEnd
	}
}

// linesBefore counts the newlines in [0, offset) of this subtree.
func (n *Node) linesBefore(offset ByteOffset) uint32 {
	var lines uint32
	node := n
	for !node.IsLeaf() {
		last := len(node.children) - 1
		for i, child := range node.children {
			if i == last || offset < child.Len() {
				node = child
				break
			}
			lines += child.summary.Lines
			offset -= child.Len()
		}
	}
	if offset > ByteOffset(len(node.text)) {
		offset = ByteOffset(len(node.text))
	}
	return lines + uint32(strings.Count(node.text[:offset], "\n"))
}

// offsetOfNewline returns the offset just past the nth newline (1-indexed).
// n must be between 1 and the subtree's newline count.
func (n *Node) offsetOfNewline(nth uint32) ByteOffset {
	var offset ByteOffset
	node := n
	for !node.IsLeaf() {
		parent := node
		for _, child := range parent.children {
			if child.summary.Lines >= nth {
				node = child
				break
			}
			nth -= child.summary.Lines
			offset += child.Len()
		}
		if node == parent {
			return offset
		}
	}
	pos := nthNewline(node.text, nth)
	if pos < 0 {
		return offset + node.Len()
	}
	return offset + ByteOffset(pos+1)
}

// appendTo writes the whole subtree to sb.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		sb.WriteString(n.text)
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}
