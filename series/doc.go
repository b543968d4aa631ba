/*
Package series holds the price/volume time series a volume readout works on.

Series are ordered oldest first, one Point per period. The package knows
four periods (daily, weekly, monthly, yearly); a yearly series is derived
from a monthly one by AggregateYearly.

Series usually come from the Alpha Vantage API. Retrieving them is left
to clients; package series decodes the JSON payloads of the
TIME_SERIES_DAILY, TIME_SERIES_WEEKLY, TIME_SERIES_MONTHLY, SMA and
GLOBAL_QUOTE functions, either from a reader or from a set of files (LoadSet).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package series

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'volsum'
func tracer() tracing.Trace {
	return tracing.Select("volsum")
}

var (
	// ErrInvalidSeries signals a series which is empty, unordered or carries
	// values which are not usable.
	ErrInvalidSeries = errors.New("series: invalid series")
	// ErrUnknownPeriod signals a period name which is not recognized.
	ErrUnknownPeriod = errors.New("series: unknown period")
	// ErrMissingSeries signals that a set holds no series for a period.
	ErrMissingSeries = errors.New("series: no series for period")
	// ErrUpstream signals an error or rate-limit message in a payload
	// instead of data.
	ErrUpstream = errors.New("series: upstream reported an error")
)
