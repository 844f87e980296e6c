package rbtree

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// threeNodes returns 2 (black) with red children 1 and 3.
func threeNodes() *Tree[int] {
	tree := New[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}
	return tree
}

func TestValidateDetectsCorruption(t *testing.T) {
	testCases := []struct {
		name    string
		corrupt func(tree *Tree[int])
		kind    ViolationKind
	}{
		{
			name:    "red root",
			corrupt: func(tree *Tree[int]) { tree.at(tree.meta.Root).setRed() },
			kind:    RootNotBlack,
		},
		{
			name:    "red sentinel",
			corrupt: func(tree *Tree[int]) { tree.at(tree.meta.Null).setRed() },
			kind:    SentinelNotBlack,
		},
		{
			name:    "black height",
			corrupt: func(tree *Tree[int]) { tree.at(tree.search(1)).setBlack() },
			kind:    BlackHeightMismatch,
		},
		{
			name: "red child of red node",
			corrupt: func(tree *Tree[int]) {
				tree.at(tree.meta.Root).setRed()
			},
			kind: RedRedEdge,
		},
		{
			name:    "wrong parent link",
			corrupt: func(tree *Tree[int]) { tree.at(tree.search(3)).parent = tree.search(1) },
			kind:    BrokenLink,
		},
		{
			name:    "leaked sentinel parent",
			corrupt: func(tree *Tree[int]) { tree.at(tree.meta.Null).parent = tree.meta.Root },
			kind:    BrokenLink,
		},
		{
			name:    "dangling child",
			corrupt: func(tree *Tree[int]) { tree.at(tree.search(1)).left = 1000 },
			kind:    BrokenLink,
		},
		{
			name:    "keys out of order",
			corrupt: func(tree *Tree[int]) { tree.at(tree.meta.Root).key = 0 },
			kind:    OutOfOrder,
		},
		{
			name:    "count",
			corrupt: func(tree *Tree[int]) { tree.meta.Count++ },
			kind:    CountMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := threeNodes()
			require.Empty(t, tree.Validate())

			tc.corrupt(tree)
			vs := tree.Validate()
			require.True(t, vs.Has(tc.kind), "expecting %s in %v", tc.kind, vs)

			err := vs.Err()
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidTree)
			require.Equal(t, ErrInvalidTree, errors.Cause(err))
		})
	}
}

func TestValidateRedRedDeep(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{10, 5, 15, 1} {
		tree.Insert(k)
	}
	require.Empty(t, tree.Validate())

	tree.at(tree.search(5)).setRed()
	vs := tree.Validate()
	require.True(t, vs.Has(RedRedEdge))
	require.True(t, vs.Has(BlackHeightMismatch))
	require.False(t, vs.Has(RootNotBlack))
}

func TestValidateCycleTerminates(t *testing.T) {
	tree := threeNodes()
	tree.at(tree.search(3)).left = tree.meta.Root

	vs := tree.Validate()
	require.True(t, vs.Has(BrokenLink))
}

func TestViolationsErrNil(t *testing.T) {
	var vs Violations
	require.NoError(t, vs.Err())
	require.False(t, vs.Has(RootNotBlack))
}

func TestViolationString(t *testing.T) {
	v := Violation{Kind: RedRedEdge, Detail: "red node 2 has red child 1"}
	require.Equal(t, "red node with red child: red node 2 has red child 1", v.String())
	require.Equal(t, "violation(42)", ViolationKind(42).String())
}
