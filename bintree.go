package bintree

import "errors"

const (
	keyDepth = "depth"
	keyValue = "value"
	keyLeft  = "left"
	keyRight = "right"
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	// TreeNode owns its left and right subtrees. A nil child means the slot is empty.
	TreeNode[T comparable] struct {
		Value T

		left  *TreeNode[T]
		right *TreeNode[T]
	}

	Callback[T comparable] func(v T) bool

	// in-order cursor over a single tree, nodes still to be visited sit on stack
	iterator[T comparable] struct {
		stack []*TreeNode[T]
	}
)
