package window

import (
	"fmt"

	"github.com/npillmayer/volsum"
	"github.com/npillmayer/volsum/segtree"
)

// uninitialized is the right edge of a tracker which has no tree yet.
const uninitialized = -1

// Tracker maintains the sum over [0, r] for a moving right edge r.
//
// After every successful call to AdvanceTo(r)
//
//	CumulativeSum() == index.Query(0, r)  and  RightEdge() == r
//
// holds. The zero value is an uninitialized tracker; use New.
//
// Updating the tree at a position ≤ RightEdge() invalidates the cumulative
// sum. Call Initialize after such an update.
type Tracker[N segtree.Number] struct {
	index     *segtree.Tree[N]
	sum       N   // cumulative sum over [0, edge]
	edge      int // last right edge reported
	connected bool
}

// New creates a tracker for index and initializes it to span the whole
// sequence.
func New[N segtree.Number](index *segtree.Tree[N]) (*Tracker[N], error) {
	if index == nil || index.Len() == 0 {
		return nil, fmt.Errorf("%w: tracker needs a non-empty tree", volsum.ErrInvalidInput)
	}
	tr := &Tracker[N]{index: index, edge: uninitialized, connected: true}
	if err := tr.Initialize(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Initialize resets the tracker to the full window [0, n-1]. This is the
// state in which a chart shows the whole series.
func (tr *Tracker[N]) Initialize() error {
	if tr == nil || !tr.connected {
		return volsum.ErrUninitialized
	}
	n := tr.index.Len()
	sum, err := tr.index.Query(0, n-1)
	if err != nil {
		return err
	}
	tr.sum, tr.edge = sum, n-1
	tracer().Debugf("window: initialized to [0, %d], sum = %v", tr.edge, tr.sum)
	return nil
}

// AdvanceTo moves the right edge to r and returns the average over [0, r].
//
// Only the range between the previous and the new right edge is queried:
// if r grows, the newly covered values are added; if r shrinks, the values
// no longer covered are subtracted; if r is unchanged, nothing is queried.
//
// AdvanceTo returns ErrIndexOutOfRange if r is not in [0, n-1]. The tracker
// is unchanged in this case.
func (tr *Tracker[N]) AdvanceTo(r int) (float64, error) {
	if tr == nil || !tr.connected {
		return 0, volsum.ErrUninitialized
	}
	if r < 0 || r >= tr.index.Len() {
		return 0, fmt.Errorf("%w: right edge %d, length %d", volsum.ErrIndexOutOfRange, r, tr.index.Len())
	}
	switch {
	case r > tr.edge:
		delta, err := tr.index.Query(tr.edge+1, r)
		if err != nil {
			return 0, err
		}
		tr.sum += delta
	case r < tr.edge:
		delta, err := tr.index.Query(r+1, tr.edge)
		if err != nil {
			return 0, err
		}
		tr.sum -= delta
	}
	tr.edge = r
	return tr.Average(), nil
}

// CumulativeSum returns the sum over [0, RightEdge()].
func (tr *Tracker[N]) CumulativeSum() N {
	if tr == nil {
		return 0
	}
	return tr.sum
}

// RightEdge returns the last right edge, or -1 for an uninitialized tracker.
func (tr *Tracker[N]) RightEdge() int {
	if tr == nil || !tr.connected {
		return uninitialized
	}
	return tr.edge
}

// Average returns the average over [0, RightEdge()], or 0 for an
// uninitialized tracker.
func (tr *Tracker[N]) Average() float64 {
	if tr == nil || !tr.connected || tr.edge < 0 {
		return 0
	}
	return float64(tr.sum) / float64(tr.edge+1)
}

// Len returns the length of the tracked sequence.
func (tr *Tracker[N]) Len() int {
	if tr == nil || !tr.connected {
		return 0
	}
	return tr.index.Len()
}
