package segtree

import (
	"fmt"
	"math/bits"
)

// Tree is a range-sum tree over a fixed-size sequence of values of type N.
//
// Every node caches the sum of its range. For internal nodes
//
//	sums[k] == sums[2k+1] + sums[2k+2]
//
// holds at all times; leaves hold the current value of their single index.
type Tree[N Number] struct {
	n    int // length of the sequence, always ≥ 1 for a built tree
	sums []N // node sums, addressed by node position
}

// Build creates a tree over values. The tree does not keep a reference to
// values; subsequent changes have to go through Update.
//
// Build returns ErrInvalidInput if values is empty or contains a value which
// is not finite.
func Build[N Number](values []N) (*Tree[N], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: cannot build a tree from an empty sequence", ErrInvalidInput)
	}
	for i, v := range values {
		if !finite(v) {
			return nil, fmt.Errorf("%w: value at index %d is not finite", ErrInvalidInput, i)
		}
	}
	n := len(values)
	t := &Tree[N]{
		n:    n,
		sums: make([]N, nodeCount(n)),
	}
	t.build(values, 0, 0, n-1)
	tracer().Debugf("segtree: built tree over %d values, height %d", n, t.Height())
	return t, nil
}

// nodeCount returns the size of the node slice for a sequence of length n.
// Splitting at the midpoint yields a tree of height ⌈log2 n⌉, which fits
// into a complete binary tree with 2·2^⌈log2 n⌉ - 1 positions.
func nodeCount(n int) int {
	return 2*(1<<bits.Len(uint(n-1))) - 1
}

func (t *Tree[N]) build(values []N, k, lo, hi int) {
	if lo == hi {
		t.sums[k] = values[lo]
		return
	}
	mid := lo + (hi-lo)/2
	t.build(values, 2*k+1, lo, mid)
	t.build(values, 2*k+2, mid+1, hi)
	t.sums[k] = t.sums[2*k+1] + t.sums[2*k+2]
}

// Len returns the length of the underlying sequence.
func (t *Tree[N]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Height returns ⌈log2 n⌉, i.e. the number of edges from the root to the
// deepest leaf. A tree over a single value has height 0.
func (t *Tree[N]) Height() int {
	if t == nil || t.n == 0 {
		return 0
	}
	return bits.Len(uint(t.n - 1))
}

// Sum returns the sum over the whole sequence.
func (t *Tree[N]) Sum() N {
	var zero N
	if t == nil || t.n == 0 {
		return zero
	}
	return t.sums[0]
}

// Update sets the value at index to v. Only the nodes on the path from the
// root to the leaf for index are touched.
//
// Update returns ErrIndexOutOfRange if index is not in [0, n-1], and
// ErrInvalidInput if v is not finite. In both cases the tree is unchanged.
func (t *Tree[N]) Update(index int, v N) error {
	if t == nil || index < 0 || index >= t.n {
		return fmt.Errorf("%w: update at %d, length %d", ErrIndexOutOfRange, index, t.Len())
	}
	if !finite(v) {
		return fmt.Errorf("%w: update value at %d is not finite", ErrInvalidInput, index)
	}
	t.update(0, 0, t.n-1, index, v)
	return nil
}

func (t *Tree[N]) update(k, lo, hi, index int, v N) {
	if lo == hi {
		t.sums[k] = v
		return
	}
	mid := lo + (hi-lo)/2
	if index > mid {
		t.update(2*k+2, mid+1, hi, index, v)
	} else {
		t.update(2*k+1, lo, mid, index, v)
	}
	t.sums[k] = t.sums[2*k+1] + t.sums[2*k+2]
}

// Query returns the sum of the values at positions lo…hi, inclusive.
//
// Query returns ErrInvalidRange if lo > hi or if one of the bounds is outside
// of [0, n-1].
func (t *Tree[N]) Query(lo, hi int) (N, error) {
	var zero N
	if t == nil || lo < 0 || hi >= t.n || lo > hi {
		return zero, fmt.Errorf("%w: [%d, %d] for length %d", ErrInvalidRange, lo, hi, t.Len())
	}
	return t.query(0, 0, t.n-1, lo, hi), nil
}

// query descends from node k, which covers [nlo, nhi]. The requested range
// [lo, hi] is always contained in [nlo, nhi].
func (t *Tree[N]) query(k, nlo, nhi, lo, hi int) N {
	if lo == nlo && hi == nhi {
		return t.sums[k]
	}
	mid := nlo + (nhi-nlo)/2
	if lo > mid {
		return t.query(2*k+2, mid+1, nhi, lo, hi)
	} else if hi <= mid {
		return t.query(2*k+1, nlo, mid, lo, hi)
	}
	return t.query(2*k+1, nlo, mid, lo, mid) + t.query(2*k+2, mid+1, nhi, mid+1, hi)
}

// Value returns the current value at index.
func (t *Tree[N]) Value(index int) (N, error) {
	var zero N
	if t == nil || index < 0 || index >= t.n {
		return zero, fmt.Errorf("%w: value at %d, length %d", ErrIndexOutOfRange, index, t.Len())
	}
	return t.query(0, 0, t.n-1, index, index), nil
}

// Values returns a copy of the current sequence.
func (t *Tree[N]) Values() []N {
	if t == nil {
		return nil
	}
	values := make([]N, 0, t.n)
	t.eachLeaf(0, 0, t.n-1, func(_ int, v N) {
		values = append(values, v)
	})
	return values
}

func (t *Tree[N]) eachLeaf(k, lo, hi int, f func(index int, v N)) {
	if lo == hi {
		f(lo, t.sums[k])
		return
	}
	mid := lo + (hi-lo)/2
	t.eachLeaf(2*k+1, lo, mid, f)
	t.eachLeaf(2*k+2, mid+1, hi, f)
}
