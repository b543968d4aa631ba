package series

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

const (
	avQuoteKey       = "Global Quote"
	avQuoteSymbol    = "01. symbol"
	avQuoteHigh      = "03. high"
	avQuoteLow       = "04. low"
	avQuoteVolume    = "06. volume"
	avQuotePrevClose = "08. previous close"
	avQuoteChangePct = "10. change percent"
)

// Quote is the latest trading day of an instrument, as reported by the
// Alpha Vantage GLOBAL_QUOTE function. Numeric fields are NaN (or -1 for
// Volume) if the payload omits them or carries unusable values.
type Quote struct {
	Symbol        string
	PreviousClose float64
	High, Low     float64
	Volume        int64
	ChangePercent string // as delivered, e.g. "-0.4120%"
}

// DecodeGlobalQuote decodes an Alpha Vantage GLOBAL_QUOTE payload.
// An empty quote section, as returned for unknown symbols, is an error.
func DecodeGlobalQuote(r io.Reader) (Quote, error) {
	payload, err := decodePayload(r)
	if err != nil {
		return Quote{}, err
	}
	raw, ok := payload[avQuoteKey]
	if !ok {
		return Quote{}, fmt.Errorf("%w: payload has no quote", ErrInvalidSeries)
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Quote{}, fmt.Errorf("%w: quote: %v", ErrInvalidSeries, err)
	}
	if len(fields) == 0 {
		return Quote{}, fmt.Errorf("%w: empty quote", ErrInvalidSeries)
	}
	q := Quote{
		Symbol:        fields[avQuoteSymbol],
		PreviousClose: quoteFloat(fields[avQuotePrevClose]),
		High:          quoteFloat(fields[avQuoteHigh]),
		Low:           quoteFloat(fields[avQuoteLow]),
		Volume:        -1,
		ChangePercent: fields[avQuoteChangePct],
	}
	if v, err := parseVolume(fields[avQuoteVolume]); err == nil && v >= 0 {
		q.Volume = v
	}
	tracer().Debugf("series: decoded quote for %q, previous close %g", q.Symbol, q.PreviousClose)
	return q, nil
}

func quoteFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}
