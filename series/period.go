package series

import (
	"fmt"
	"strings"
)

// Period is the granularity of a series.
type Period int8

// Periods known to a readout. Yearly series are derived from monthly ones.
const (
	Daily Period = iota
	Weekly
	Monthly
	Yearly
)

// Periods lists all periods in ascending granularity.
var Periods = []Period{Daily, Weekly, Monthly, Yearly}

var periodNames = [...]string{"daily", "weekly", "monthly", "yearly"}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		return fmt.Sprintf("Period(%d)", int8(p))
	}
	return periodNames[p]
}

// ParsePeriod returns the period for a name like "weekly" (case does not matter).
func ParsePeriod(name string) (Period, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, pn := range periodNames {
		if n == pn {
			return Period(i), nil
		}
	}
	return Daily, fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
}
