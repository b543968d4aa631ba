/*
Package volsum computes running volume averages over price/volume time series.

Volsum

A chart of a traded instrument usually shows a bar per period (day, week,
month) for the traded volume. When a user moves the pointer across such a
chart, a readout is expected to show the average volume from the start of the
series up to the period under the pointer. Re-summing all periods on every
pointer move costs O(n) per event. Volsum keeps the per-period volumes in a
range-sum tree (package segtree) and maintains the running sum incrementally
(package window), so every pointer move costs O(log n), independent of the
length of the series.

Packages:

	segtree   range-sum tree over a fixed-size sequence (build, update, query)
	window    running average over [0, r] for a moving right edge r
	series    time series points, periods, yearly roll-up, Alpha Vantage JSON
	readout   period selection, hover handling, formatting and rendering

A typical client builds a readout over a set of series:

	set, err := series.LoadSet(ctx, files)
	r, err := readout.New(set, series.Weekly)
	u, err := r.Hover(42)
	fmt.Println(readout.FormatAverage(u.Average))

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package volsum

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// VolsumError is an error type for the volsum module
type VolsumError string

func (e VolsumError) Error() string {
	return string(e)
}

// ErrInvalidInput is flagged whenever a sequence is empty or carries values
// which are not finite numbers.
const ErrInvalidInput = VolsumError("invalid input")

// ErrIndexOutOfRange is flagged whenever an index or a right edge lies outside
// of [0, n-1] for a sequence of length n.
const ErrIndexOutOfRange = VolsumError("index out of range")

// ErrInvalidRange is flagged whenever a range [lo, hi] is reversed or not
// contained in [0, n-1].
const ErrInvalidRange = VolsumError("invalid range")

// ErrUninitialized is flagged when a tracker has not been connected to an index.
const ErrUninitialized = VolsumError("tracker not initialized")
