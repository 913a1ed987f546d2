// Package request defines the JSON bodies accepted by the API.
package request

// SimulationRequest is the body of a fixed-investment simulation call.
type SimulationRequest struct {
	DailyAmount float64 `json:"dailyAmount"`
	Days        int     `json:"days"`
}
