/*
Package segtree provides a range-sum tree over a fixed-size numeric sequence.

A tree is built once from a sequence of n values and afterwards answers sums
over arbitrary inclusive ranges [lo, hi] and accepts overwrite-in-place
updates of single values, both in O(log n). The shape of a tree never
changes after Build: there is no insertion or deletion of elements. Clients
which have to handle a sequence of different length build a new tree.

Nodes are stored in a flat slice. The root lives at position 0 and covers
[0, n-1]; the children of node k live at 2k+1 and 2k+2 and partition the
range of k at mid = ⌊(lo+hi)/2⌋ into [lo, mid] and [mid+1, hi].

Trees are not safe for concurrent mutation. Clients calling Update
concurrently with Query or Update have to provide external locking.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'volsum'
func tracer() tracing.Trace {
	return tracing.Select("volsum")
}
