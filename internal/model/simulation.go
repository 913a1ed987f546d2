package model

// SimulationInput describes a recurring investment strategy: DailyAmount
// invested on each of Days consecutive series points.
type SimulationInput struct {
	DailyAmount float64 `json:"dailyAmount"`
	Days        int     `json:"days"`
}

// SimulationResult is the outcome of simulating a recurring investment
// against a price series. Monetary figures are rounded to two decimals,
// TotalShares to four. Results are ephemeral: recomputed on every explicit
// request, never mutated in place.
type SimulationResult struct {
	ActualDays        int     `json:"actualDays"`
	TotalInvested     float64 `json:"totalInvested"`
	TotalShares       float64 `json:"totalShares"`
	FinalValue        float64 `json:"finalValue"`
	Profit            float64 `json:"profit"`
	ProfitRatePercent float64 `json:"profitRatePercent"`
}
