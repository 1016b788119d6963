package bintree

import "iter"

// Iterator returns a fresh in-order cursor. Cursors share no state, so a
// tree can be walked any number of times as long as it is not mutated mid-walk.
func (n *TreeNode[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	it.pushLeft(n)
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}

	last := len(it.stack) - 1
	cur := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	it.pushLeft(cur.right)
	return cur.Value, nil
}

// descend along left children so the leftmost pending node ends up on top
func (it *iterator[T]) pushLeft(n *TreeNode[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// All yields the values in order: left subtree, node, right subtree.
func (n *TreeNode[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n.ForEach(yield)
	}
}

func (n *TreeNode[T]) Values() []T {
	values := make([]T, 0)
	n.ForEach(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// ForEach calls cb for each value in order until cb returns false.
func (n *TreeNode[T]) ForEach(cb Callback[T]) {
	n.recursiveForEach(cb)
}

func (n *TreeNode[T]) recursiveForEach(cb Callback[T]) bool {
	if n == nil {
		return true
	}

	if !n.left.recursiveForEach(cb) {
		return false
	}
	if !cb(n.Value) {
		return false
	}
	return n.right.recursiveForEach(cb)
}
