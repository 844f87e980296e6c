// Package rbtree implements an ordered set (or multiset) of keys on a
// red-black tree. Nodes live in an arena and refer to each other by index;
// index 0 is the black sentinel that stands for every leaf and for the
// parent of the root.
package rbtree
