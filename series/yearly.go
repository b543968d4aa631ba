package series

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// AggregateYearly rolls a monthly series up into one point per calendar year.
// A yearly point carries the mean close, rounded to cents, and the mean
// monthly volume, rounded to an integer. It is dated December 31st of its year.
func AggregateYearly(monthly Series) Series {
	if len(monthly) == 0 {
		return nil
	}
	var yearly Series
	var closes, volumes []float64
	year := monthly[0].Date.Year()
	flush := func() {
		yearly = append(yearly, Point{
			Date:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
			Close:  math.Round(stat.Mean(closes, nil)*100) / 100,
			Volume: int64(math.Round(stat.Mean(volumes, nil))),
		})
		closes, volumes = closes[:0], volumes[:0]
	}
	for _, p := range monthly { // monthly is ordered, so years come in runs
		if y := p.Date.Year(); y != year {
			flush()
			year = y
		}
		closes = append(closes, p.Close)
		volumes = append(volumes, float64(p.Volume))
	}
	flush()
	tracer().Debugf("series: aggregated %d months into %d years", len(monthly), len(yearly))
	return yearly
}
