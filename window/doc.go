/*
Package window maintains running averages over a window [0, r] of a
range-sum tree, where the right edge r moves back and forth.

A Tracker remembers the cumulative sum for the last right edge reported.
When a new right edge arrives, only the range between the old and the new
edge is queried from the tree and added to or subtracted from the
cumulative sum. The cost of a report is thus O(log n), no matter how wide
the window is. This is what a chart readout needs when it follows the
pointer over hundreds of periods of a time series.

A Tracker belongs to exactly one tree and one producer of right-edge
reports. If the underlying sequence changes length or granularity, clients
discard both the tree and the tracker and build new ones.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package window

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'volsum'
func tracer() tracing.Trace {
	return tracing.Select("volsum")
}
