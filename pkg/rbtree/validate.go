package rbtree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"generic_rbtree/pkg/stack"
)

var ErrInvalidTree = errors.New("invalid red-black tree")

type ViolationKind int

const (
	RootNotBlack ViolationKind = iota + 1
	SentinelNotBlack
	RedRedEdge
	BlackHeightMismatch
	BrokenLink
	OutOfOrder
	CountMismatch
)

func (k ViolationKind) String() string {
	switch k {
	case RootNotBlack:
		return "root not black"
	case SentinelNotBlack:
		return "sentinel not black"
	case RedRedEdge:
		return "red node with red child"
	case BlackHeightMismatch:
		return "black height mismatch"
	case BrokenLink:
		return "broken link"
	case OutOfOrder:
		return "keys out of order"
	case CountMismatch:
		return "count mismatch"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

type Violation struct {
	Kind   ViolationKind
	Detail string
}

func (v Violation) String() string {
	return v.Kind.String() + ": " + v.Detail
}

type Violations []Violation

// Has reports whether any violation of kind k was found.
func (vs Violations) Has(k ViolationKind) bool {
	for _, v := range vs {
		if v.Kind == k {
			return true
		}
	}
	return false
}

// Err returns nil for an empty list and otherwise an error wrapping
// ErrInvalidTree.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}

	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.String()
	}
	return errors.Wrapf(ErrInvalidTree, "%d violation(s): %s", len(vs), strings.Join(msgs, "; "))
}

type validationFrame struct {
	p      ptr
	blacks int
}

// Validate checks every red-black invariant and the arena bookkeeping
// without modifying the tree. An empty result means the tree is valid.
func (tree *Tree[K]) Validate() Violations {
	var vs Violations
	report := func(kind ViolationKind, format string, args ...any) {
		vs = append(vs, Violation{Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	null := tree.meta.Null
	size := tree.arr.Len()
	sentinel := tree.at(null)
	if !sentinel.isBlack() {
		report(SentinelNotBlack, "sentinel is %s", sentinel.color())
	}
	if sentinel.left != null || sentinel.right != null {
		report(BrokenLink, "sentinel has children %d/%d", sentinel.left, sentinel.right)
	}
	if sentinel.parent != null {
		report(BrokenLink, "sentinel parent link left at %d", sentinel.parent)
	}

	root := tree.meta.Root
	if root == null {
		if tree.meta.Count != 0 || size != null+1 {
			report(CountMismatch, "empty tree with count %d and %d arena slots", tree.meta.Count, size)
		}
		return vs
	}

	if root >= size {
		report(BrokenLink, "root index %d outside arena of %d", root, size)
		return vs
	}
	if !tree.at(root).isBlack() {
		report(RootNotBlack, "root %v is red", tree.at(root).key)
	}
	if tree.at(root).parent != null {
		report(BrokenLink, "root %v has parent %d", tree.at(root).key, tree.at(root).parent)
	}

	// black nodes on the leftmost path set the expected black height
	expected := 0
	for p, steps := root, ptr(0); p != null && p < size && steps < size; p, steps = tree.at(p).left, steps+1 {
		if tree.at(p).isBlack() {
			expected++
		}
	}

	linksOK := true
	visited := make([]bool, int(size))
	reached := uint64(0)
	s := stack.New[validationFrame](tree.height())
	s.Push(validationFrame{p: root})
	for !s.Empty() {
		f := s.Pop()
		if visited[f.p] {
			report(BrokenLink, "node %d reached twice", f.p)
			linksOK = false
			continue
		}
		visited[f.p] = true
		reached++

		n := tree.at(f.p)
		blacks := f.blacks
		if n.isBlack() {
			blacks++
		}

		for _, child := range [2]ptr{n.left, n.right} {
			if child == null {
				if blacks != expected {
					report(BlackHeightMismatch, "path through %v has %d black nodes, want %d", n.key, blacks, expected)
				}
				continue
			}

			if child >= size {
				report(BrokenLink, "node %v has child index %d outside arena of %d", n.key, child, size)
				linksOK = false
				continue
			}

			c := tree.at(child)
			if n.isRed() && c.isRed() {
				report(RedRedEdge, "red node %v has red child %v", n.key, c.key)
			}
			if c.parent != f.p {
				report(BrokenLink, "node %v is a child of %v but points to parent %d", c.key, n.key, c.parent)
				linksOK = false
			}
			s.Push(validationFrame{p: child, blacks: blacks})
		}
	}

	if reached != tree.meta.Count {
		report(CountMismatch, "%d nodes reachable, count is %d", reached, tree.meta.Count)
	}
	if uint64(size)-1 != tree.meta.Count {
		report(CountMismatch, "%d arena slots in use, count is %d", size-1, tree.meta.Count)
	}

	if linksOK {
		var prev *K
		tree.scan(func(f frame) bool {
			k := tree.at(f.p).key
			if prev != nil && tree.compare(*prev, k) > 0 {
				report(OutOfOrder, "%v comes before %v", *prev, k)
			}
			prev = &k
			return true
		})
	}

	return vs
}
