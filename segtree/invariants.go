package segtree

import "fmt"

// Check validates the structural invariants of the tree: the node slice has
// the expected size and every internal node holds the sum of its children.
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[N]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInconsistent)
	}
	if t.n <= 0 {
		return fmt.Errorf("%w: tree over %d values", ErrInconsistent, t.n)
	}
	if len(t.sums) != nodeCount(t.n) {
		return fmt.Errorf("%w: %d nodes for length %d, expected %d",
			ErrInconsistent, len(t.sums), t.n, nodeCount(t.n))
	}
	_, err := t.checkNode(0, 0, t.n-1)
	return err
}

func (t *Tree[N]) checkNode(k, lo, hi int) (height int, err error) {
	if k >= len(t.sums) {
		return 0, fmt.Errorf("%w: node %d for [%d, %d] out of storage", ErrInconsistent, k, lo, hi)
	}
	if lo == hi {
		if !finite(t.sums[k]) {
			return 0, fmt.Errorf("%w: leaf %d holds non-finite value", ErrInconsistent, lo)
		}
		return 0, nil
	}
	mid := lo + (hi-lo)/2
	lh, err := t.checkNode(2*k+1, lo, mid)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkNode(2*k+2, mid+1, hi)
	if err != nil {
		return 0, err
	}
	if sum := t.sums[2*k+1] + t.sums[2*k+2]; sum != t.sums[k] {
		return 0, fmt.Errorf("%w: node %d for [%d, %d] holds %v, children sum to %v",
			ErrInconsistent, k, lo, hi, t.sums[k], sum)
	}
	return max(lh, rh) + 1, nil
}
