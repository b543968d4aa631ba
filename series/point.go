package series

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Point is the data for one period of a series. Date identifies the period
// (for weekly and monthly series Alpha Vantage uses the last trading day).
type Point struct {
	Date   time.Time
	Close  float64
	Volume int64
}

// Series is a sequence of points ordered oldest first.
type Series []Point

// DateLayout is the date format of Alpha Vantage payloads and of readout
// labels.
const DateLayout = "2006-01-02"

// Volumes returns the volumes of s, in order.
func (s Series) Volumes() []int64 {
	volumes := make([]int64, len(s))
	for i, p := range s {
		volumes[i] = p.Volume
	}
	return volumes
}

// Validate checks that s is non-empty, ordered by strictly ascending dates,
// and that every close price is finite and every volume is non-negative.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSeries)
	}
	for i, p := range s {
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) {
			return fmt.Errorf("%w: close at %s is not finite", ErrInvalidSeries, p.Date.Format(DateLayout))
		}
		if p.Volume < 0 {
			return fmt.Errorf("%w: negative volume at %s", ErrInvalidSeries, p.Date.Format(DateLayout))
		}
		if i > 0 && !s[i-1].Date.Before(p.Date) {
			return fmt.Errorf("%w: dates not ascending at %s", ErrInvalidSeries, p.Date.Format(DateLayout))
		}
	}
	return nil
}

// IndexOf returns the position of the point for date, or -1.
func (s Series) IndexOf(date time.Time) int {
	i, found := slices.BinarySearchFunc(s, date, func(p Point, d time.Time) int {
		return p.Date.Compare(d)
	})
	if !found {
		return -1
	}
	return i
}
