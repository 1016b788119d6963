package bintree

type Iterator[T comparable] interface {
	HasNext() bool
	Next() (T, error)
}

func New[T comparable](value T, left, right *TreeNode[T]) *TreeNode[T] {
	return &TreeNode[T]{
		Value: value,
		left:  left,
		right: right,
	}
}

func Leaf[T comparable](value T) *TreeNode[T] {
	return New(value, nil, nil)
}
