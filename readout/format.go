package readout

import (
	"math"

	"github.com/npillmayer/volsum/series"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is displayed for values which are missing or not finite.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// FormatAverage rounds an average volume to an integer and groups its digits
// by thousands, e.g. 1234567.4 → "1,234,567".
func FormatAverage(avg float64) string {
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return NotAvailable
	}
	return printer.Sprintf("%d", int64(math.Round(avg)))
}

// FormatVolume groups the digits of a volume by thousands.
func FormatVolume(v int64) string {
	return printer.Sprintf("%d", v)
}

// Stat is a labelled value of a readout, ready for display.
type Stat struct {
	Name  string
	Value string
}

// FormatPrice formats a price with two decimals and a dollar sign.
func FormatPrice(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return NotAvailable
	}
	return printer.Sprintf("$%.2f", p)
}

// Stats returns the values a readout displays for update u, followed by the
// values of the latest quote, if any. The volume of the hovered point is only
// available for updates of the selected period.
func (r *Readout) Stats(u Update) []Stat {
	first := r.series[0].Date.Format(series.DateLayout)
	volume := NotAvailable
	if u.Period == r.period && u.Index >= 0 && u.Index < len(r.series) {
		volume = FormatVolume(r.series[u.Index].Volume)
	}
	stats := []Stat{
		{Name: "Symbol", Value: orNA(r.set.Symbol)},
		{Name: "Period", Value: u.Period.String()},
		{Name: "Window", Value: first + " – " + u.Date.Format(series.DateLayout)},
		{Name: "Volume", Value: volume},
		{Name: "Average Volume", Value: FormatAverage(u.Average)},
		{Name: "Previous Close", Value: NotAvailable},
		{Name: "Day Range", Value: NotAvailable},
		{Name: "Quote Volume", Value: NotAvailable},
		{Name: "Change Percent", Value: NotAvailable},
	}
	if q := r.set.Quote; q != nil {
		stats[5].Value = FormatPrice(q.PreviousClose)
		if lo, hi := FormatPrice(q.Low), FormatPrice(q.High); lo != NotAvailable && hi != NotAvailable {
			stats[6].Value = lo + " – " + hi
		}
		if q.Volume >= 0 {
			stats[7].Value = FormatVolume(q.Volume)
		}
		stats[8].Value = orNA(q.ChangePercent)
	}
	return stats
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
