/*
Package readout drives an average-volume readout for a chart of a time series.

A Readout owns the range-sum tree and the running-average tracker for the
currently selected period. Whenever the selected period changes, both are
discarded and rebuilt over the series of the new period. Hover events from
a chart are clamped to the series and turned into Updates, which are
returned to the caller and broadcast to all subscribers.

Formatting (FormatAverage, FormatVolume) and two renderers, one for
fixed-width consoles and one producing HTML, complete the presentation side.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package readout

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'volsum'
func tracer() tracing.Trace {
	return tracing.Select("volsum")
}

var (
	// ErrClosed signals that a readout has been closed.
	ErrClosed = errors.New("readout: closed")
	// ErrNoSuchDate signals a hover date which is not part of the series.
	ErrNoSuchDate = errors.New("readout: date not in series")
)
