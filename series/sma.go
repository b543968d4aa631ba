package series

import "time"

// SMAPoint is one value of a simple moving average of close prices.
type SMAPoint struct {
	Date  time.Time
	Value float64
}

// ChartRow is a point of a series joined with the moving average for its
// date, as a chart displays it. HasSMA is false for dates without an SMA
// value, e.g. at the start of a series.
type ChartRow struct {
	Point
	SMA    float64
	HasSMA bool
}

// JoinSMA joins a series with moving-average values by date. The result has
// one row per point of s.
func JoinSMA(s Series, sma []SMAPoint) []ChartRow {
	byDate := make(map[string]float64, len(sma))
	for _, p := range sma {
		byDate[p.Date.Format(DateLayout)] = p.Value
	}
	rows := make([]ChartRow, len(s))
	for i, p := range s {
		rows[i].Point = p
		rows[i].SMA, rows[i].HasSMA = byDate[p.Date.Format(DateLayout)]
	}
	return rows
}
