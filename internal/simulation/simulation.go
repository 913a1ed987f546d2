// Package simulation estimates the outcome of a recurring (dollar-cost-
// averaging) investment strategy against a canonical price series.
package simulation

import (
	"math"

	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/validation"
)

// Simulate invests in.DailyAmount on each of the first min(in.Days,
// len(points)) series points and values the position at the unit price of the
// last simulated day (not the accumulated price, and not the series end).
//
// Days whose price is not positive contribute zero shares but are still
// charged the daily amount.
//
// Returns a *validation.Error when the daily amount is not a positive finite
// number, days is not positive, or the series is empty. Pure: identical
// inputs always produce identical results.
func Simulate(points []model.PricePoint, in model.SimulationInput) (model.SimulationResult, error) {
	if err := validation.ValidateSimulationInput(in, len(points)); err != nil {
		return model.SimulationResult{}, err
	}

	actualDays := in.Days
	if actualDays > len(points) {
		actualDays = len(points)
	}

	var shares float64
	for _, p := range points[:actualDays] {
		if p.Price > 0 {
			shares += in.DailyAmount / p.Price
		}
	}

	invested := in.DailyAmount * float64(actualDays)
	finalValue := shares * points[actualDays-1].Price
	profit := finalValue - invested

	return model.SimulationResult{
		ActualDays:        actualDays,
		TotalInvested:     round2(invested),
		TotalShares:       round4(shares),
		FinalValue:        round2(finalValue),
		Profit:            round2(profit),
		ProfitRatePercent: round2(profit / invested * 100),
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round4(value float64) float64 {
	return math.Round(value*10000) / 10000
}
