package validation

import "fmt"

// YearRateColumns maps the listing sort keys to catalog columns. The map
// doubles as the allow-list for user-supplied sort fields; anything outside
// it is rejected before reaching SQL.
var YearRateColumns = map[string]string{
	"oneYearRate":   "one_year_rate",
	"threeYearRate": "three_year_rate",
	"fiveYearRate":  "five_year_rate",
	"sevenYearRate": "seven_year_rate",
	"tenYearRate":   "ten_year_rate",
}

// ValidateListQuery checks a catalog listing request.
func ValidateListQuery(yearField string, page, size int) error {
	errors := make(map[string]string)

	if _, ok := YearRateColumns[yearField]; !ok {
		errors["year"] = fmt.Sprintf("invalid year-rate field: %s", yearField)
	}
	if page < 0 {
		errors["page"] = "page must not be negative"
	}
	if size <= 0 || size > 200 {
		errors["size"] = "size must be between 1 and 200"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
