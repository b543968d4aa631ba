package series

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Set holds the series of one instrument for several periods, together with
// optional moving averages of close prices and an optional latest quote.
type Set struct {
	Symbol string
	Series map[Period]Series
	SMA    map[Period][]SMAPoint
	Quote  *Quote
}

// Sources names the payload files to load into a set. Either map may be
// sparse, Quote may be empty.
type Sources struct {
	Symbol string
	Series map[Period]string
	SMA    map[Period]string
	Quote  string
}

// Get returns the series for period p.
func (set Set) Get(p Period) (Series, error) {
	s, ok := set.Series[p]
	if !ok || len(s) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingSeries, p)
	}
	return s, nil
}

// Rows returns the chart rows for period p. Yearly series have no moving
// average of their own and are joined with the monthly one.
func (set Set) Rows(p Period) ([]ChartRow, error) {
	s, err := set.Get(p)
	if err != nil {
		return nil, err
	}
	smaPeriod := p
	if p == Yearly {
		smaPeriod = Monthly
	}
	return JoinSMA(s, set.SMA[smaPeriod]), nil
}

// LoadSet loads all payload files of src concurrently. If src names no
// yearly series but a monthly one, the yearly series is aggregated from it.
// The first error encountered cancels the remaining loads.
func LoadSet(ctx context.Context, src Sources) (Set, error) {
	set := Set{
		Symbol: src.Symbol,
		Series: make(map[Period]Series, len(Periods)),
		SMA:    make(map[Period][]SMAPoint, len(Periods)),
	}
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for p, name := range src.Series {
		g.Go(func() error {
			s, err := loadFile(ctx, name, DecodeTimeSeries)
			if err != nil {
				return fmt.Errorf("%s series %s: %w", p, name, err)
			}
			mu.Lock()
			defer mu.Unlock()
			set.Series[p] = s
			return nil
		})
	}
	for p, name := range src.SMA {
		g.Go(func() error {
			sma, err := loadFile(ctx, name, DecodeSMA)
			if err != nil {
				return fmt.Errorf("%s SMA %s: %w", p, name, err)
			}
			mu.Lock()
			defer mu.Unlock()
			set.SMA[p] = sma
			return nil
		})
	}
	if src.Quote != "" {
		g.Go(func() error {
			q, err := loadFile(ctx, src.Quote, DecodeGlobalQuote)
			if err != nil {
				return fmt.Errorf("quote %s: %w", src.Quote, err)
			}
			mu.Lock()
			defer mu.Unlock()
			set.Quote = &q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Set{}, err
	}
	if _, ok := set.Series[Yearly]; !ok {
		if monthly, ok := set.Series[Monthly]; ok {
			set.Series[Yearly] = AggregateYearly(monthly)
		}
	}
	tracer().Infof("series: loaded %d series and %d moving averages for %q",
		len(set.Series), len(set.SMA), set.Symbol)
	return set, nil
}

func loadFile[T any](ctx context.Context, name string, decode func(io.Reader) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	f, err := os.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return decode(f)
}
