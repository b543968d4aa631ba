package readout

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/volsum/segtree"
	"github.com/npillmayer/volsum/series"
	"github.com/npillmayer/volsum/window"
)

// Update is the state of the readout after a hover event.
type Update struct {
	Period  series.Period
	Index   int       // right edge of the window [0, Index]
	Date    time.Time // date of the point at Index
	Sum     int64     // total volume over the window
	Average float64   // average volume over the window
}

// Readout follows the pointer over a chart and keeps the average volume from
// the start of the series up to the hovered point.
//
// A Readout is meant to be driven by a single producer of hover events.
// Subscribers may listen from other goroutines. Hover handling never waits
// for subscribers.
type Readout struct {
	set     series.Set
	period  series.Period
	series  series.Series
	index   *segtree.Tree[int64]
	tracker *window.Tracker[int64]
	cast    *caster.Caster // broadcaster for updates
	closed  bool
}

// New creates a readout over set, showing period. The readout starts with the
// window spanning the whole series.
func New(set series.Set, period series.Period) (*Readout, error) {
	r := &Readout{
		set:  set,
		cast: caster.New(nil), // we will broadcast updates on every hover event
	}
	if err := r.SelectPeriod(period); err != nil {
		r.cast.Close()
		return nil, err
	}
	return r, nil
}

// SelectPeriod switches the readout to another period. The tree and the
// tracker for the previous period are discarded and new ones are built over
// the series of period p. Selecting the current period rebuilds as well.
func (r *Readout) SelectPeriod(p series.Period) error {
	if r.closed {
		return ErrClosed
	}
	s, err := r.set.Get(p)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s = slices.Clone(s) // revisions stay local to this period's tree
	index, err := segtree.Build(s.Volumes())
	if err != nil {
		return err
	}
	tracker, err := window.New(index)
	if err != nil {
		return err
	}
	r.period, r.series, r.index, r.tracker = p, s, index, tracker
	tracer().Infof("readout: selected %s period with %d points", p, len(s))
	return nil
}

// Period returns the selected period.
func (r *Readout) Period() series.Period {
	return r.period
}

// Series returns the series of the selected period.
func (r *Readout) Series() series.Series {
	return r.series
}

// Len returns the number of points of the selected series.
func (r *Readout) Len() int {
	return len(r.series)
}

// Current returns the readout state for the current right edge.
func (r *Readout) Current() Update {
	edge := r.tracker.RightEdge()
	return Update{
		Period:  r.period,
		Index:   edge,
		Date:    r.series[edge].Date,
		Sum:     r.tracker.CumulativeSum(),
		Average: r.tracker.Average(),
	}
}

// Hover moves the right edge of the window to the point at position i.
// Positions outside of the series are clamped to its first or last point,
// as pointer positions at the margins of a chart are common.
func (r *Readout) Hover(i int) (Update, error) {
	if r.closed {
		return Update{}, ErrClosed
	}
	i = max(0, min(i, len(r.series)-1))
	if _, err := r.tracker.AdvanceTo(i); err != nil {
		return Update{}, err
	}
	u := r.Current()
	r.cast.TryPub(u)
	return u, nil
}

// HoverDate moves the right edge of the window to the point dated d.
func (r *Readout) HoverDate(d time.Time) (Update, error) {
	i := r.series.IndexOf(d)
	if i < 0 {
		return Update{}, fmt.Errorf("%w: %s", ErrNoSuchDate, d.Format(series.DateLayout))
	}
	return r.Hover(i)
}

// Reset returns to the window spanning the whole series, which is what a
// chart shows when the pointer leaves it.
func (r *Readout) Reset() (Update, error) {
	if r.closed {
		return Update{}, ErrClosed
	}
	if err := r.tracker.Initialize(); err != nil {
		return Update{}, err
	}
	u := r.Current()
	r.cast.TryPub(u)
	return u, nil
}

// Revise overwrites the volume of the point at position i, e.g. when a quote
// for the still running period arrives. The window keeps its right edge.
// Revisions are dropped when another period is selected.
func (r *Readout) Revise(i int, volume int64) (Update, error) {
	if r.closed {
		return Update{}, ErrClosed
	}
	if volume < 0 {
		return Update{}, fmt.Errorf("%w: negative volume %d", series.ErrInvalidSeries, volume)
	}
	if err := r.index.Update(i, volume); err != nil {
		return Update{}, err
	}
	r.series[i].Volume = volume
	edge := r.tracker.RightEdge()
	if err := r.tracker.Initialize(); err != nil {
		return Update{}, err
	}
	if _, err := r.tracker.AdvanceTo(edge); err != nil {
		return Update{}, err
	}
	u := r.Current()
	r.cast.TryPub(u)
	return u, nil
}

// AverageBetween returns the average volume over the points lo…hi, as a
// chart shows it for a zoomed area.
func (r *Readout) AverageBetween(lo, hi int) (float64, error) {
	sum, err := r.index.Query(lo, hi)
	if err != nil {
		return 0, err
	}
	return float64(sum) / float64(hi-lo+1), nil
}

// Subscribe returns a channel receiving Updates from now on. The channel
// is closed when ctx is done or the readout is closed. Updates published
// while a subscriber lags by more than capacity are dropped for it.
func (r *Readout) Subscribe(ctx context.Context, capacity uint) (<-chan Update, error) {
	if r.closed {
		return nil, ErrClosed
	}
	sub, ok := r.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	updates := make(chan Update, capacity)
	go func() {
		defer func() {
			for range sub { // until the caster unsubscribes us
			}
		}()
		defer close(updates)
		for {
			select {
			case m, ok := <-sub:
				if !ok {
					return
				}
				select {
				case updates <- m.(Update):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return updates, nil
}

// Close stops broadcasting. Subscriber channels are closed.
func (r *Readout) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.cast.Close()
}
