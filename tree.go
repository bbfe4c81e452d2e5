// Copyright 2024 The ordtree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ordtree implements an in-memory ordered key-value container backed
// by a binary search tree with explicit parent links.
//
// ordtree stores (key, value) entries in an ordered structure, allowing easy
// insertion, removal, and in-order iteration.  Keys are ordered by the
// language's natural ordering; duplicate keys are permitted and always routed
// to the right subtree, so entries with equal keys appear adjacent in the
// in-order sequence.
//
// The tree is deliberately unbalanced.  Every operation is bounded by the
// current height, and pathological insertion orders (strictly increasing
// keys, for example) degrade the height to the number of entries.  Callers
// that need logarithmic guarantees should reach for a balancing structure
// instead; this package trades those guarantees for a node layout whose
// parent links make upward navigation and splicing constant-time.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines.  If multiple goroutines access a tree concurrently and at least
// one of them modifies it, access must be synchronized externally.
package ordtree

import (
	"cmp"
	"errors"
	"iter"
)

// ErrKeyNotFound is returned by Search when no entry matches the given key.
//
// Remove deliberately does not share this behavior: removing an absent key is
// a no-op, not an error.
var ErrKeyNotFound = errors.New("ordtree: key not found")

// node is an internal node in a tree.
//
// Each non-root node is owned by its parent through the left or right child
// link.  The parent link is a non-owning back-reference and must at all times
// mirror the owning child link: if n.left != nil then n.left.parent == n, and
// symmetrically for right.  The root's parent is nil.
type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// ItemIterator allows callers of Ascend to iterate in-order over the entries
// of the tree.  When this function returns false, iteration stops and Ascend
// returns immediately.
type ItemIterator[K cmp.Ordered, V any] func(key K, value V) bool

// Tree is a generic ordered key-value container.
//
// The zero Tree is an empty tree ready for use; New is provided for symmetry
// with the rest of the module.  A tree is either empty (no root) or non-empty;
// Insert moves an empty tree to non-empty, and removing the last entry moves
// it back.
type Tree[K cmp.Ordered, V any] struct {
	root   *node[K, V]
	length int
}

// New creates a new empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Len returns the number of entries currently in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Insert adds an entry with the given key and value to the tree.
//
// The new node is attached as a leaf: descending from the root, the search
// goes left when the new key is strictly less than the current node's key and
// right otherwise, so an entry whose key already exists is placed in the
// right subtree of the existing entry.  Nothing is replaced and no
// rebalancing is performed.
func (t *Tree[K, V]) Insert(key K, value V) {
	n := &node[K, V]{key: key, value: value}
	t.length++

	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if n.key < cur.key {
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				return
			}
			cur = cur.right
		}
	}
}

// Search returns the value associated with the first node found matching the
// given key, or ErrKeyNotFound if no entry matches.
//
// With duplicate keys the first node found by top-down descent is returned,
// which is the shallowest matching node, not necessarily the first inserted.
func (t *Tree[K, V]) Search(key K) (V, error) {
	if n := t.find(key); n != nil {
		return n.value, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Has returns true if the given key is in the tree.
func (t *Tree[K, V]) Has(key K) bool {
	return t.find(key) != nil
}

// find locates the first node matching key by iterative top-down descent.
// Lookup cost is bounded by the height with no stack growth, which matters on
// degenerate trees.
func (t *Tree[K, V]) find(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		switch {
		case key == cur.key:
			return cur
		case key < cur.key:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// findRecursive is the recursive equivalent of find.  The two must visit the
// same node for every key; the tests cross-check them.
func findRecursive[K cmp.Ordered, V any](n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	switch {
	case key == n.key:
		return n
	case key < n.key:
		return findRecursive(n.left, key)
	default:
		return findRecursive(n.right, key)
	}
}

// Min returns the smallest entry in the tree, or (zero, zero, false) if the
// tree is empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := leftmost(t.root)
	return n.key, n.value, true
}

// Max returns the largest entry in the tree, or (zero, zero, false) if the
// tree is empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// leftmost returns the leftmost node of the subtree rooted at n.  Applied to
// a right child, this is the in-order successor of the child's parent.
// n must not be nil.
func leftmost[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Remove removes the first node found matching the given key, restructuring
// the tree to preserve the ordering property.  Removing an absent key is a
// no-op.
func (t *Tree[K, V]) Remove(key K) {
	t.removeNode(t.find(key))
}

// removeNode removes the given node by structural position.
//
// A node with two children is not unlinked itself: the in-order successor's
// key and value are copied into it and the successor, which has no left
// child, is removed instead.  All other cases splice the node's single child
// (or nothing) into its place, keeping parent links consistent.
func (t *Tree[K, V]) removeNode(n *node[K, V]) {
	if n == nil {
		return
	}

	if n.left != nil && n.right != nil {
		succ := leftmost(n.right)
		n.key = succ.key
		n.value = succ.value
		t.removeNode(succ)
		return
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	if n == t.root {
		t.root = child
		if child != nil {
			child.parent = nil
		}
	} else if !replaceChild(n.parent, n, child) {
		panic("ordtree: node is not a child of its parent")
	}

	n.left, n.right, n.parent = nil, nil, nil
	t.length--
}

// replaceChild repoints the slot of parent currently holding cur to repl,
// updating repl's parent link if non-nil.  It returns false if cur is not
// actually a child of parent, which indicates a corrupted parent link.
func replaceChild[K cmp.Ordered, V any](parent, cur, repl *node[K, V]) bool {
	switch cur {
	case parent.left:
		parent.left = repl
	case parent.right:
		parent.right = repl
	default:
		return false
	}
	if repl != nil {
		repl.parent = parent
	}
	return true
}

// Height returns the height of the tree: the edge count of the longest path
// from the root to a leaf.  The height of an empty tree is -1 and the height
// of a single node is 0.
//
// Height is recomputed on every call in time proportional to the number of
// entries; there is no cached height field to keep consistent, and without
// rebalancing there would be nothing to gain from one.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}

// Ascend calls the iterator for every entry in the tree in ascending key
// order, until the iterator returns false.  Entries with equal keys are
// visited in right-subtree position, i.e. after equal keys already visited.
func (t *Tree[K, V]) Ascend(iterator ItemIterator[K, V]) {
	inorder(t.root, iterator)
}

// All returns an in-order sequence of all entries in the tree.  The sequence
// is lazy, finite, and restartable: ranging over it again restarts from the
// smallest entry.
//
// The tree must not be mutated while ranging.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inorder(t.root, yield)
	}
}

// inorder visits left subtree, node, right subtree.  Recursion depth equals
// the height.
func inorder[K cmp.Ordered, V any](n *node[K, V], visit func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, visit) && visit(n.key, n.value) && inorder(n.right, visit)
}

// Clone returns an entirely independent deep copy of the tree: same shape,
// keys, and values, with no node shared between the two trees.  Parent links
// in the copy point within the copy only.  Mutating either tree never
// affects the other.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root:   cloneSubtree(t.root, nil),
		length: t.length,
	}
}

func cloneSubtree[K cmp.Ordered, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	out := &node[K, V]{key: n.key, value: n.value, parent: parent}
	out.left = cloneSubtree(n.left, out)
	out.right = cloneSubtree(n.right, out)
	return out
}

// Assign replaces the contents of t with a deep copy of other, releasing the
// previous contents first.  Assigning a tree to itself is a no-op.
func (t *Tree[K, V]) Assign(other *Tree[K, V]) {
	if t == other {
		return
	}
	t.Clear()
	t.root = cloneSubtree(other.root, nil)
	t.length = other.length
}

// Clear removes all entries from the tree, returning it to the empty state.
// Nodes are unlinked in post-order, children before parent, so no released
// node is reachable from another released node.
func (t *Tree[K, V]) Clear() {
	clearSubtree(t.root)
	t.root, t.length = nil, 0
}

func clearSubtree[K cmp.Ordered, V any](n *node[K, V]) {
	if n == nil {
		return
	}
	clearSubtree(n.left)
	clearSubtree(n.right)
	n.left, n.right, n.parent = nil, nil, nil
}
