package huffcode

import (
	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs the Huffman tree for the given frequencies and returns
// its root.
//
// Every (symbol, count) pair becomes a leaf, queued in an OrderedSequence by
// (count, symbol).  The two smallest nodes are then merged, n-1 times, into a
// new node whose key is the sum of their counts and whose value is the left
// label followed by the right label.  The last node standing is the root.
//
// With a single distinct symbol, the root is that symbol's leaf.  With none,
// BuildTree returns ErrEmptyInput.
//
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: queue one leaf per symbol.

	queue := NewOrderedSequence(CompareNodes[int, Symbol])
	ft.ForEach(func(symbol Symbol, count int) {
		queue.Insert(NewTreeNode(count, symbol, nil))
	})

	// Step 2: repeatedly pop the two minimal nodes, merge them into a new
	// internal node, and push that node back onto the queue.

	numMerges := ft.Len() - 1
	for i := 0; i < numMerges; i++ {
		left, okLeft := queue.RemoveAt(0)
		right, okRight := queue.RemoveAt(0)
		assert.Assertf(okLeft && okRight, "queue ran dry after %d of %d merges", i, numMerges)

		parent := NewTreeNode(left.Key()+right.Key(), left.Value()+right.Value(), nil)
		parent.SetLeft(left)
		parent.SetRight(right)
		queue.Insert(parent)
	}

	// Step 3: exactly one node remains, and it is the root.

	root, ok := queue.RemoveAt(0)
	assert.Assertf(ok && queue.Len() == 0, "expected exactly one root, %d nodes left over", queue.Len())
	return root, nil
}

// TreeShape counts the leaves and internal nodes beneath root.
func TreeShape(root *Node) (leaves int, internal int) {
	if root == nil {
		return 0, 0
	}
	stack := []*Node{root}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			leaves++
			continue
		}
		internal++
		if n.Left() != nil {
			stack = append(stack, n.Left())
		}
		if n.Right() != nil {
			stack = append(stack, n.Right())
		}
	}
	return leaves, internal
}
