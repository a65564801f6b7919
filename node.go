package huffcode

import (
	"weak"

	"golang.org/x/exp/constraints"
)

// Weight is the set of key types a TreeNode can carry.  Keys are summed when
// two nodes are merged.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Label is the set of value types a TreeNode can carry.  Values are
// concatenated when two nodes are merged.
type Label interface {
	~string
}

// TreeNode is a binary tree node carrying a key and a value.
//
// A node owns its children.  The parent link is a weak back-reference used
// only for upward navigation (see Path); it never keeps a parent alive.
//
type TreeNode[K Weight, V Label] struct {
	key    K
	value  V
	left   *TreeNode[K, V]
	right  *TreeNode[K, V]
	parent weak.Pointer[TreeNode[K, V]]
}

// Node is the TreeNode used for Huffman trees: the key is the aggregated
// frequency and the value is the concatenation of the symbols beneath it.
type Node = TreeNode[int, Symbol]

// NewTreeNode constructs a childless TreeNode.  parent may be nil.
func NewTreeNode[K Weight, V Label](key K, value V, parent *TreeNode[K, V]) *TreeNode[K, V] {
	n := &TreeNode[K, V]{key: key, value: value}
	n.SetParent(parent)
	return n
}

func (n *TreeNode[K, V]) Key() K {
	return n.key
}

func (n *TreeNode[K, V]) SetKey(key K) {
	n.key = key
}

func (n *TreeNode[K, V]) Value() V {
	return n.value
}

func (n *TreeNode[K, V]) SetValue(value V) {
	n.value = value
}

func (n *TreeNode[K, V]) Left() *TreeNode[K, V] {
	return n.left
}

// SetLeft attaches child as the left child of n and points child's parent
// link back at n.  child may be nil.
func (n *TreeNode[K, V]) SetLeft(child *TreeNode[K, V]) {
	n.left = child
	if child != nil {
		child.SetParent(n)
	}
}

func (n *TreeNode[K, V]) Right() *TreeNode[K, V] {
	return n.right
}

// SetRight attaches child as the right child of n and points child's parent
// link back at n.  child may be nil.
func (n *TreeNode[K, V]) SetRight(child *TreeNode[K, V]) {
	n.right = child
	if child != nil {
		child.SetParent(n)
	}
}

// Parent returns the parent of n, or nil if n has no parent or the parent is
// no longer reachable.
func (n *TreeNode[K, V]) Parent() *TreeNode[K, V] {
	return n.parent.Value()
}

func (n *TreeNode[K, V]) SetParent(parent *TreeNode[K, V]) {
	if parent == nil {
		n.parent = weak.Pointer[TreeNode[K, V]]{}
		return
	}
	n.parent = weak.Make(parent)
}

// IsLeaf returns true iff n has no children.
func (n *TreeNode[K, V]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Compare orders nodes by key, then by value.
func (n *TreeNode[K, V]) Compare(other *TreeNode[K, V]) int {
	if c := CompareOrdered(n.key, other.key); c != 0 {
		return c
	}
	return CompareOrdered(n.value, other.value)
}

// Clear resets every field of n, detaching it from its children and parent.
func (n *TreeNode[K, V]) Clear() {
	*n = TreeNode[K, V]{}
}

// Path returns the sequence of left ('0') and right ('1') decisions leading
// from the root of n's tree down to n, found by climbing the parent links.
// The root's Path is empty.
func (n *TreeNode[K, V]) Path() Code {
	var bits []byte
	for child, parent := n, n.Parent(); parent != nil; child, parent = parent, parent.Parent() {
		if parent.left == child {
			bits = append(bits, '0')
		} else {
			bits = append(bits, '1')
		}
	}
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	return Code(bits)
}

// CompareNodes is the Comparator shared by every container of tree nodes in
// this package, so that tie-breaking is the same everywhere.
func CompareNodes[K Weight, V Label](a, b *TreeNode[K, V]) int {
	return a.Compare(b)
}
