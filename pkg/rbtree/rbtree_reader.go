package rbtree

import (
	"iter"

	"generic_rbtree/pkg/stack"
)

// NodeInfo describes one node as seen during a traversal. Parent is nil
// for the root; Left and Right are nil where the child is a leaf.
type NodeInfo[K any] struct {
	Key    K
	Color  Color
	Parent *K
	Left   *K
	Right  *K
	Depth  int
}

type frame struct {
	p     ptr
	depth int
}

// InOrder yields every key in ascending order. Equal keys are yielded once
// per occurrence. The tree must not be modified while iterating.
func (tree *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.scan(func(f frame) bool {
			return yield(tree.at(f.p).key)
		})
	}
}

// Nodes is InOrder with the colour and links of every node.
func (tree *Tree[K]) Nodes() iter.Seq[NodeInfo[K]] {
	return func(yield func(NodeInfo[K]) bool) {
		tree.scan(func(f frame) bool {
			return yield(tree.info(f))
		})
	}
}

// Ascend yields keys in ascending order starting at the first key not less
// than from.
func (tree *Tree[K]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.lowerBound(from); p != tree.meta.Null; p = tree.next(p) {
			if !yield(tree.at(p).key) {
				return
			}
		}
	}
}

// Descend yields every key in descending order.
func (tree *Tree[K]) Descend() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.maximum(tree.meta.Root); p != tree.meta.Null; p = tree.prev(p) {
			if !yield(tree.at(p).key) {
				return
			}
		}
	}
}

// PostOrder yields every node after both of its subtrees.
func (tree *Tree[K]) PostOrder() iter.Seq[NodeInfo[K]] {
	return func(yield func(NodeInfo[K]) bool) {
		s := stack.New[frame](tree.height())
		curr := frame{p: tree.meta.Root}
		last := tree.meta.Null

		for curr.p != tree.meta.Null || !s.Empty() {
			if curr.p != tree.meta.Null {
				s.Push(curr)
				curr = frame{p: tree.at(curr.p).left, depth: curr.depth + 1}
				continue
			}

			top := s.Top()
			right := tree.at(top.p).right
			if right != tree.meta.Null && right != last {
				curr = frame{p: right, depth: top.depth + 1}
				continue
			}

			s.Pop()
			if !yield(tree.info(top)) {
				return
			}
			last = top.p
		}
	}
}

// Keys returns every key in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.Size())
	for k := range tree.InOrder() {
		keys = append(keys, k)
	}
	return keys
}

// scan walks the tree in order without recursion, stopping when fn returns
// false.
func (tree *Tree[K]) scan(fn func(f frame) bool) {
	if tree.meta.Root == tree.meta.Null {
		return
	}

	curr := frame{p: tree.meta.Root}
	s := stack.New[frame](tree.height())
	for curr.p != tree.meta.Null || !s.Empty() {
		for curr.p != tree.meta.Null {
			s.Push(curr)
			curr = frame{p: tree.at(curr.p).left, depth: curr.depth + 1}
		}

		curr = s.Pop()
		if !fn(curr) {
			return
		}

		curr = frame{p: tree.at(curr.p).right, depth: curr.depth + 1}
	}
}

func (tree *Tree[K]) info(f frame) NodeInfo[K] {
	n := tree.at(f.p)
	info := NodeInfo[K]{
		Key:   n.key,
		Color: n.color(),
		Depth: f.depth,
	}

	if n.parent != tree.meta.Null {
		info.Parent = tree.keyRef(n.parent)
	}
	if n.left != tree.meta.Null {
		info.Left = tree.keyRef(n.left)
	}
	if n.right != tree.meta.Null {
		info.Right = tree.keyRef(n.right)
	}
	return info
}

func (tree *Tree[K]) keyRef(p ptr) *K {
	k := tree.at(p).key
	return &k
}
