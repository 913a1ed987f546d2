// Package series builds canonical price series from raw provider records and
// derives period-return figures from them.
package series

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/wynet321/fund-insight-backend/internal/envelope"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// displayLayout is the form chart consumers expect for date labels.
const displayLayout = "1/2/2006"

// missingDateLabel is emitted when no date resolves from a record. The label
// intentionally matches the upstream UI's output for absent dates; it must not
// be substituted with the current date.
const missingDateLabel = "undefined"

// parseLayouts are the wire formats a provider date value may arrive in.
var parseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Build converts raw records into a canonical price series.
//
// Dates resolve by precedence: the date field of a nested identity object,
// then priceDate, then date. Prices coerce to float64 and default to 0 when
// missing or unparsable; Build never fails on malformed records.
//
// Output order is input order. The provider is responsible for chronological
// ordering; an unsorted response yields an unsorted series, and period return
// and simulation figures are computed against that order as-is.
func Build(records []envelope.Record) []model.PricePoint {
	points := make([]model.PricePoint, 0, len(records))
	for _, rec := range records {
		points = append(points, model.PricePoint{
			Date:             dateLabel(rec),
			Price:            toFloat(rec["price"]),
			AccumulatedPrice: toFloat(rec["accumulatedPrice"]),
		})
	}
	return points
}

// PeriodReturn computes the percentage change in accumulated price between
// the first and last point of a series, rounded to two decimals. The rate is
// nil for series shorter than two points and when the first accumulated price
// is not positive (no meaningful base for the ratio).
func PeriodReturn(points []model.PricePoint) model.PeriodReturn {
	if len(points) < 2 {
		return model.PeriodReturn{}
	}
	first := points[0].AccumulatedPrice
	if first <= 0 {
		return model.PeriodReturn{}
	}
	last := points[len(points)-1].AccumulatedPrice
	rate := round2((last - first) / first * 100)
	return model.PeriodReturn{RatePercent: &rate}
}

// dateLabel resolves a record's display date. Values already in display form
// pass through unchanged; recognized wire formats and epoch-millisecond
// numbers are reformatted.
func dateLabel(rec envelope.Record) string {
	var value any
	if identity, isMap := rec["id"].(map[string]any); isMap && identity["date"] != nil {
		value = identity["date"]
	} else if rec["priceDate"] != nil {
		value = rec["priceDate"]
	} else {
		value = rec["date"]
	}
	if value == nil {
		return missingDateLabel
	}

	switch v := value.(type) {
	case string:
		for _, layout := range parseLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts.Format(displayLayout)
			}
		}
		if v == "" {
			return missingDateLabel
		}
		// Already a display string (or at least not a wire format we know).
		return v
	case float64:
		return time.UnixMilli(int64(v)).UTC().Format(displayLayout)
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return time.UnixMilli(ms).UTC().Format(displayLayout)
		}
	}
	return missingDateLabel
}

// toFloat coerces a raw numeric field. Provider payloads carry numbers as
// JSON numbers or as strings; anything else counts as absent and yields 0,
// never NaN and never an error.
func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return 0
}

// round2 rounds to two decimal places, the precision used for all percentage
// and monetary figures in responses.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
