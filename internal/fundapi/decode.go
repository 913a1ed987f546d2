package fundapi

import (
	"encoding/json"
	"strconv"

	"github.com/wynet321/fund-insight-backend/internal/envelope"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// fundFromRecord maps a loosely typed provider record to a Fund. Identifier
// fields may arrive as numbers; rate fields may arrive as strings or be
// absent entirely.
func fundFromRecord(rec envelope.Record) model.Fund {
	return model.Fund{
		ID:            stringField(rec, "id"),
		Name:          stringField(rec, "name"),
		Type:          stringField(rec, "type"),
		CompanyID:     stringField(rec, "companyId"),
		CompanyName:   stringField(rec, "companyName"),
		OneYearRate:   floatPtrField(rec, "oneYearRate"),
		ThreeYearRate: floatPtrField(rec, "threeYearRate"),
		FiveYearRate:  floatPtrField(rec, "fiveYearRate"),
		SevenYearRate: floatPtrField(rec, "sevenYearRate"),
		TenYearRate:   floatPtrField(rec, "tenYearRate"),
	}
}

// catalogEntryFromRecord maps a rate-listing record to a catalog entry. The
// row ID is assigned by the repository on upsert.
func catalogEntryFromRecord(rec envelope.Record) model.CatalogEntry {
	return model.CatalogEntry{
		FundID:        stringField(rec, "id"),
		Name:          stringField(rec, "name"),
		Type:          stringField(rec, "type"),
		CompanyName:   stringField(rec, "companyName"),
		OneYearRate:   floatPtrField(rec, "oneYearRate"),
		ThreeYearRate: floatPtrField(rec, "threeYearRate"),
		FiveYearRate:  floatPtrField(rec, "fiveYearRate"),
		SevenYearRate: floatPtrField(rec, "sevenYearRate"),
		TenYearRate:   floatPtrField(rec, "tenYearRate"),
	}
}

// stringField reads a field as its display string. Numbers lose no precision
// for the integer identifiers the provider uses.
func stringField(rec map[string]any, key string) string {
	switch v := rec[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// floatPtrField reads an optional numeric field, tolerating string-encoded
// numbers. Absent or unparsable values stay nil.
func floatPtrField(rec map[string]any, key string) *float64 {
	switch v := rec[key].(type) {
	case float64:
		return &v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

var _ Client = (*HTTPClient)(nil)

// intField reads an integer field, reporting whether it was present.
func intField(rec map[string]any, key string) (int, bool) {
	switch v := rec[key].(type) {
	case float64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
	}
	return 0, false
}
