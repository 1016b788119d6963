package bintree

import (
	"fmt"
	"strings"
)

func (n *TreeNode[T]) Left() *TreeNode[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *TreeNode[T]) Right() *TreeNode[T] {
	if n == nil {
		return nil
	}
	return n.right
}

// SetLeft overwrites the value of the existing left child, keeping its
// subtree. An empty slot gets a new leaf.
func (n *TreeNode[T]) SetLeft(v T) {
	setChild(&n.left, v)
}

// SetRight is the right-hand counterpart of SetLeft.
func (n *TreeNode[T]) SetRight(v T) {
	setChild(&n.right, v)
}

func setChild[T comparable](slot **TreeNode[T], v T) {
	if child := *slot; child != nil {
		child.Value = v
		return
	}
	*slot = Leaf(v)
}

func (n *TreeNode[T]) IsLeaf() bool {
	return n.Left() == nil && n.Right() == nil
}

// AsDict exports the subtree as nested maps with the root at depth 0.
func (n *TreeNode[T]) AsDict() map[string]any {
	return n.AsDictAt(0)
}

func (n *TreeNode[T]) AsDictAt(depth int) map[string]any {
	if n == nil {
		return nil
	}

	dict := map[string]any{
		keyDepth: depth,
		keyValue: n.Value,
		keyLeft:  nil,
		keyRight: nil,
	}
	// keep untyped nil for empty slots so the export compares against plain nil
	if n.left != nil {
		dict[keyLeft] = n.left.AsDictAt(depth + 1)
	}
	if n.right != nil {
		dict[keyRight] = n.right.AsDictAt(depth + 1)
	}
	return dict
}

func (n *TreeNode[T]) String() string {
	var sb strings.Builder
	n.render(&sb, 0)
	return sb.String()
}

func (n *TreeNode[T]) render(sb *strings.Builder, depth int) {
	if n == nil {
		sb.WriteString("nil")
		return
	}

	fmt.Fprintf(sb, "{%s: %d, %s: %v, %s: ", keyDepth, depth, keyValue, n.Value, keyLeft)
	n.left.render(sb, depth+1)
	fmt.Fprintf(sb, ", %s: ", keyRight)
	n.right.render(sb, depth+1)
	sb.WriteByte('}')
}

// Equal walks both trees in order and compares values pairwise until the
// shorter walk ends. A tree yielding [1 2] is equal to one yielding [1 2 3].
// Use EqualExact when the lengths must match too.
func (n *TreeNode[T]) Equal(other *TreeNode[T]) bool {
	equal, _ := zipCompare(n, other)
	return equal
}

// EqualExact reports whether both trees yield the same in-order sequence.
// Shape is still ignored.
func (n *TreeNode[T]) EqualExact(other *TreeNode[T]) bool {
	equal, sameLen := zipCompare(n, other)
	return equal && sameLen
}

func zipCompare[T comparable](a, b *TreeNode[T]) (equal, sameLen bool) {
	ia, ib := a.Iterator(), b.Iterator()
	for ia.HasNext() && ib.HasNext() {
		va, _ := ia.Next()
		vb, _ := ib.Next()
		if va != vb {
			return false, false
		}
	}
	return true, ia.HasNext() == ib.HasNext()
}
