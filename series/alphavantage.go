package series

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Alpha Vantage keys. Time series payloads carry their data under a key
// like "Time Series (Daily)" or "Weekly Time Series".
const (
	avTimeSeriesMarker = "Time Series"
	avSMAKey           = "Technical Analysis: SMA"
	avClose            = "4. close"
	avVolume           = "5. volume"
	avSMA              = "SMA"
)

// Keys under which Alpha Vantage reports problems instead of data.
var avMessageKeys = []string{"Error Message", "Note", "Information"}

// DecodeTimeSeries decodes an Alpha Vantage time series payload (functions
// TIME_SERIES_DAILY, TIME_SERIES_WEEKLY, TIME_SERIES_MONTHLY). The result is
// ordered oldest first and validated.
func DecodeTimeSeries(r io.Reader) (Series, error) {
	data, err := decodeSection(r, func(key string) bool {
		return strings.Contains(key, avTimeSeriesMarker)
	})
	if err != nil {
		return nil, err
	}
	s := make(Series, 0, len(data))
	for day, fields := range data {
		date, err := time.Parse(DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q: %v", ErrInvalidSeries, day, err)
		}
		cl, err := strconv.ParseFloat(fields[avClose], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: close at %s: %v", ErrInvalidSeries, day, err)
		}
		vol, err := parseVolume(fields[avVolume])
		if err != nil {
			return nil, fmt.Errorf("%w: volume at %s: %v", ErrInvalidSeries, day, err)
		}
		s = append(s, Point{Date: date, Close: cl, Volume: vol})
	}
	slices.SortFunc(s, func(a, b Point) int {
		return a.Date.Compare(b.Date)
	})
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("series: decoded %d points, %s … %s", len(s),
		s[0].Date.Format(DateLayout), s[len(s)-1].Date.Format(DateLayout))
	return s, nil
}

// DecodeSMA decodes an Alpha Vantage SMA payload, ordered oldest first.
func DecodeSMA(r io.Reader) ([]SMAPoint, error) {
	data, err := decodeSection(r, func(key string) bool {
		return key == avSMAKey
	})
	if err != nil {
		return nil, err
	}
	sma := make([]SMAPoint, 0, len(data))
	for day, fields := range data {
		date, err := time.Parse(DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("%w: SMA date %q: %v", ErrInvalidSeries, day, err)
		}
		v, err := strconv.ParseFloat(fields[avSMA], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: SMA at %s: %v", ErrInvalidSeries, day, err)
		}
		sma = append(sma, SMAPoint{Date: date, Value: v})
	}
	slices.SortFunc(sma, func(a, b SMAPoint) int {
		return a.Date.Compare(b.Date)
	})
	return sma, nil
}

// decodePayload decodes the top level of a payload and checks it for a
// message reported instead of data.
func decodePayload(r io.Reader) (map[string]json.RawMessage, error) {
	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeries, err)
	}
	for _, key := range avMessageKeys {
		if raw, ok := payload[key]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err != nil {
				msg = string(raw)
			}
			return nil, fmt.Errorf("%w: %s", ErrUpstream, msg)
		}
	}
	return payload, nil
}

// decodeSection decodes a payload and returns the date-keyed section
// selected by match.
func decodeSection(r io.Reader, match func(string) bool) (map[string]map[string]string, error) {
	payload, err := decodePayload(r)
	if err != nil {
		return nil, err
	}
	for key, raw := range payload {
		if !match(key) {
			continue
		}
		var section map[string]map[string]string
		if err := json.Unmarshal(raw, &section); err != nil {
			return nil, fmt.Errorf("%w: section %q: %v", ErrInvalidSeries, key, err)
		}
		return section, nil
	}
	return nil, fmt.Errorf("%w: payload has no data section", ErrInvalidSeries)
}

// parseVolume accepts integer volumes and, for adjusted series, fractional
// ones, which are rounded.
func parseVolume(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("volume %q is not finite", s)
	}
	return int64(math.Round(f)), nil
}
