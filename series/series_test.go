package series

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func day(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParsePeriod(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	for _, p := range Periods {
		q, err := ParsePeriod(strings.ToUpper(p.String()))
		if err != nil || q != p {
			t.Errorf("parse %q: got %v, %v", p.String(), q, err)
		}
	}
	if _, err := ParsePeriod("hourly"); !errors.Is(err, ErrUnknownPeriod) {
		t.Errorf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestDecodeTimeSeries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	f, err := os.Open("testdata/weekly.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	s, err := DecodeTimeSeries(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 5 {
		t.Fatalf("expected 5 points, got %d", len(s))
	}
	if !s[0].Date.Equal(day("2024-01-05")) || !s[4].Date.Equal(day("2024-02-02")) {
		t.Errorf("expected series ordered oldest first, got %v … %v", s[0].Date, s[4].Date)
	}
	vols := s.Volumes()
	for i, v := range []int64{10, 20, 30, 40, 50} {
		if vols[i] != v {
			t.Errorf("volume %d: expected %d, got %d", i, v, vols[i])
		}
	}
	if s[2].Close != 171.48 {
		t.Errorf("expected close 171.48, got %g", s[2].Close)
	}
	if i := s.IndexOf(day("2024-01-19")); i != 2 {
		t.Errorf("expected index 2 for 2024-01-19, got %d", i)
	}
	if i := s.IndexOf(day("2024-01-20")); i != -1 {
		t.Errorf("expected index -1 for missing date, got %d", i)
	}
}

func TestDecodeReportsUpstreamMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	f, err := os.Open("testdata/ratelimit.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	_, err = DecodeTimeSeries(f)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "call frequency") {
		t.Errorf("expected upstream message in error, got %q", err.Error())
	}
}

func TestDecodeUpstreamMessageOfOtherType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	_, err := DecodeTimeSeries(strings.NewReader(`{"Information": {"limit": 25}}`))
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), `"limit"`) {
		t.Errorf("expected raw upstream message in error, got %q", err.Error())
	}
}

func TestDecodeGlobalQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	f, err := os.Open("testdata/quote.json")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	q, err := DecodeGlobalQuote(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Symbol != "IBM" || q.PreviousClose != 186.9 || q.High != 187.45 || q.Low != 184.78 {
		t.Errorf("unexpected quote %+v", q)
	}
	if q.Volume != 4507142 || q.ChangePercent != "-0.5939%" {
		t.Errorf("unexpected quote volume or change %+v", q)
	}
	q, err = DecodeGlobalQuote(strings.NewReader(`{"Global Quote": {"01. symbol": "X", "08. previous close": "n/a"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(q.PreviousClose) || !math.IsNaN(q.High) || q.Volume != -1 || q.ChangePercent != "" {
		t.Errorf("expected missing values for sparse quote, got %+v", q)
	}
	for _, p := range []string{`{"Global Quote": {}}`, `{"Meta Data": {}}`, `{"Global Quote": 5}`} {
		if _, err := DecodeGlobalQuote(strings.NewReader(p)); !errors.Is(err, ErrInvalidSeries) {
			t.Errorf("payload %s: expected ErrInvalidSeries, got %v", p, err)
		}
	}
	if _, err := DecodeGlobalQuote(strings.NewReader(`{"Note": "slow down"}`)); !errors.Is(err, ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestDecodeRejectsMalformedPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	payloads := []string{
		`not json`,
		`{"Meta Data": {}}`,
		`{"Time Series (Daily)": {}}`,
		`{"Time Series (Daily)": {"2024-13-01": {"4. close": "1", "5. volume": "1"}}}`,
		`{"Time Series (Daily)": {"2024-01-02": {"4. close": "x", "5. volume": "1"}}}`,
		`{"Time Series (Daily)": {"2024-01-02": {"4. close": "1", "5. volume": "-5"}}}`,
	}
	for _, p := range payloads {
		if _, err := DecodeTimeSeries(strings.NewReader(p)); !errors.Is(err, ErrInvalidSeries) {
			t.Errorf("payload %s: expected ErrInvalidSeries, got %v", p, err)
		}
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	ok := Series{{Date: day("2024-01-01"), Close: 1, Volume: 1}, {Date: day("2024-01-02"), Close: 2, Volume: 0}}
	if err := ok.Validate(); err != nil {
		t.Errorf("expected valid series, got %v", err)
	}
	bad := []Series{
		nil,
		{{Date: day("2024-01-02")}, {Date: day("2024-01-01")}},
		{{Date: day("2024-01-02")}, {Date: day("2024-01-02")}},
		{{Date: day("2024-01-02"), Close: math.NaN()}},
	}
	for i, s := range bad {
		if err := s.Validate(); !errors.Is(err, ErrInvalidSeries) {
			t.Errorf("series %d: expected ErrInvalidSeries, got %v", i, err)
		}
	}
}

func TestAggregateYearly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	monthly := Series{
		{Date: day("2023-11-30"), Close: 158.56, Volume: 100},
		{Date: day("2023-12-29"), Close: 163.56, Volume: 201},
		{Date: day("2024-01-31"), Close: 183.66, Volume: 300},
		{Date: day("2024-02-29"), Close: 185.06, Volume: 400},
	}
	yearly := AggregateYearly(monthly)
	if len(yearly) != 2 {
		t.Fatalf("expected 2 years, got %d", len(yearly))
	}
	if !yearly[0].Date.Equal(day("2023-12-31")) || !yearly[1].Date.Equal(day("2024-12-31")) {
		t.Errorf("unexpected yearly dates %v, %v", yearly[0].Date, yearly[1].Date)
	}
	if math.Abs(yearly[0].Close-161.06) > 1e-9 || math.Abs(yearly[1].Close-184.36) > 1e-9 {
		t.Errorf("unexpected yearly closes %g, %g", yearly[0].Close, yearly[1].Close)
	}
	if yearly[0].Volume != 151 || yearly[1].Volume != 350 {
		t.Errorf("unexpected yearly volumes %d, %d", yearly[0].Volume, yearly[1].Volume)
	}
	if err := yearly.Validate(); err != nil {
		t.Error(err)
	}
	if AggregateYearly(nil) != nil {
		t.Errorf("expected nil for empty monthly series")
	}
}

func TestJoinSMA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	s := Series{{Date: day("2024-01-05")}, {Date: day("2024-01-12")}}
	rows := JoinSMA(s, []SMAPoint{{Date: day("2024-01-12"), Value: 160.5}})
	if rows[0].HasSMA || !rows[1].HasSMA || rows[1].SMA != 160.5 {
		t.Errorf("unexpected join result %+v", rows)
	}
}

func TestLoadSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	set, err := LoadSet(context.Background(), Sources{
		Symbol: "IBM",
		Series: map[Period]string{
			Weekly:  "testdata/weekly.json",
			Monthly: "testdata/monthly.json",
		},
		SMA: map[Period]string{
			Weekly:  "testdata/sma_weekly.json",
			Monthly: "testdata/sma_weekly.json",
		},
		Quote: "testdata/quote.json",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := set.Get(Daily); !errors.Is(err, ErrMissingSeries) {
		t.Errorf("expected ErrMissingSeries for daily, got %v", err)
	}
	yearly, err := set.Get(Yearly)
	if err != nil || len(yearly) != 2 {
		t.Fatalf("expected yearly series derived from monthly, got %d points, %v", len(yearly), err)
	}
	if set.Quote == nil || set.Quote.Volume != 4507142 {
		t.Errorf("expected quote to be loaded, got %+v", set.Quote)
	}
	rows, err := set.Rows(Weekly)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || !rows[4].HasSMA || rows[4].SMA != 181.1 || rows[0].HasSMA {
		t.Errorf("unexpected weekly rows %+v", rows)
	}
}

func TestLoadSetFailsOnMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "volsum")
	defer teardown()
	//
	_, err := LoadSet(context.Background(), Sources{
		Series: map[Period]string{
			Weekly: "testdata/weekly.json",
			Daily:  "testdata/does-not-exist.json",
		},
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
