package segtree

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Every node is labelled with its range and sum.
func ToDot[N Number](t *Tree[N], w io.Writer) error {
	if t == nil || t.n == 0 {
		return fmt.Errorf("%w: cannot output an empty tree", ErrInvalidInput)
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist string
	var walk func(k, lo, hi int)
	walk = func(k, lo, hi int) {
		if lo == hi {
			nodelist += fmt.Sprintf("\"%d\" [label=\"[%d]\\n%v\" %s];\n", k, lo, t.sums[k], leafStyle)
			return
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"[%d,%d]\\n%v\" %s];\n", k, lo, hi, t.sums[k], innerStyle)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k+1)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", k, 2*k+2)
		mid := lo + (hi-lo)/2
		walk(2*k+1, lo, mid)
		walk(2*k+2, mid+1, hi)
	}
	walk(0, 0, t.n-1)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

const (
	leafStyle  = ",style=filled,fillcolor=grey95,shape=box"
	innerStyle = ",shape=ellipse"
)
