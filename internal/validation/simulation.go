package validation

import (
	"math"

	"github.com/wynet321/fund-insight-backend/internal/model"
)

// ValidateSimulationInput checks a recurring-investment request against a
// series of seriesLen points. Callers must surface the returned message and
// must not attempt the computation; retry is a user-initiated re-submission.
func ValidateSimulationInput(in model.SimulationInput, seriesLen int) error {
	errors := make(map[string]string)

	if in.DailyAmount <= 0 || math.IsNaN(in.DailyAmount) || math.IsInf(in.DailyAmount, 0) {
		errors["dailyAmount"] = "daily amount must be a positive number"
	}
	if in.Days <= 0 {
		errors["days"] = "days must be a positive integer"
	}
	if seriesLen == 0 {
		errors["series"] = "price series is empty"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
