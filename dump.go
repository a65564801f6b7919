package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DumpTree writes a programmer-readable rendering of the tree to the given
// writer: one "key:value" line per node in pre-order, indented by depth, with
// each child marked by the bit that leads to it.
func DumpTree(w io.Writer, root *Node) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if root != nil {
		dumpNode(&buf, root, 1, "")
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int, bit string) {
	buf.WriteString(strings.Repeat("\t", depth))
	buf.WriteString(bit)
	fmt.Fprintf(buf, "%d:%q\n", n.Key(), n.Value())
	if left := n.Left(); left != nil {
		dumpNode(buf, left, depth+1, "0 ")
	}
	if right := n.Right(); right != nil {
		dumpNode(buf, right, depth+1, "1 ")
	}
}
