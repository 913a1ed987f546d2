package validation

import (
	"fmt"
	"strings"
	"time"
)

// ValidPeriod lists the granularities the provider's chart endpoint accepts.
var ValidPeriod = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "yearly": true,
}

// dateLayout is the inclusive range format the provider expects.
const dateLayout = "2006-01-02"

// ValidateChartQuery checks the fund identifier, granularity and date range
// of a chart-data request. Start and end are optional; when both are present
// the range must not be inverted.
func ValidateChartQuery(fundID, period, startDate, endDate string) error {
	errors := make(map[string]string)

	if strings.TrimSpace(fundID) == "" {
		errors["fundId"] = "fund ID is required"
	}
	if !ValidPeriod[period] {
		errors["period"] = fmt.Sprintf("invalid period: %s", period)
	}

	var start, end time.Time
	var err error
	if startDate != "" {
		if start, err = time.Parse(dateLayout, startDate); err != nil {
			errors["startDate"] = "start date must be in YYYY-MM-DD format"
		}
	}
	if endDate != "" {
		if end, err = time.Parse(dateLayout, endDate); err != nil {
			errors["endDate"] = "end date must be in YYYY-MM-DD format"
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errors["dateRange"] = "end date must not be before start date"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateSearchTerm rejects blank fund search input.
func ValidateSearchTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return &Error{Fields: map[string]string{"term": "fund ID or name is required"}}
	}
	return nil
}
