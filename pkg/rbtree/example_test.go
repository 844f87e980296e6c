package rbtree_test

import (
	"fmt"

	"generic_rbtree/pkg/rbtree"
)

func ExampleTree() {
	tree := rbtree.New[int]()
	for _, k := range []int{8, 100, 22, 28, 26} {
		tree.Insert(k)
	}
	fmt.Println(tree.Keys())

	min, _ := tree.Min()
	max, _ := tree.Max()
	fmt.Println("min:", min, "max:", max)

	suc, _ := tree.Successor(22)
	pred, _ := tree.Predecessor(28)
	fmt.Println("successor(22):", suc, "predecessor(28):", pred)

	_, ok := tree.Predecessor(10)
	fmt.Println("predecessor(10) found:", ok)

	fmt.Println(tree.Delete(26), tree.Delete(100), tree.Delete(9))
	fmt.Println(tree.Keys())
	fmt.Println("violations:", len(tree.Validate()))

	// Output:
	// [8 22 26 28 100]
	// min: 8 max: 100
	// successor(22): 26 predecessor(28): 26
	// predecessor(10) found: false
	// true true false
	// [8 22 28]
	// violations: 0
}

func ExampleTree_PostOrder() {
	tree := rbtree.New[int]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(k)
	}

	for info := range tree.PostOrder() {
		fmt.Println(info.Key, info.Color, info.Depth)
	}

	// Output:
	// 1 red 1
	// 3 red 1
	// 2 black 0
}
