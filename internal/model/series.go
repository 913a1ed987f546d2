package model

// PricePoint is one element of a canonical price series. A series is ordered
// exactly as the provider returned it; the builder never re-sorts
// (chronological order is the provider's responsibility).
//
// Date is display-formatted. Price and AccumulatedPrice are never negative and
// default to 0 when the raw record carried nothing parsable.
type PricePoint struct {
	Date             string  `json:"date"`
	Price            float64 `json:"price"`
	AccumulatedPrice float64 `json:"accumulatedPrice"`
}

// PeriodReturn is the percentage change in accumulated price between the first
// and last point of a series. RatePercent is nil when the series has fewer
// than two points or the first accumulated price is not positive.
type PeriodReturn struct {
	RatePercent *float64 `json:"ratePercent"`
}

// ChartData bundles a canonical series with its derived period return, the
// unit both the display layer and the simulator consume.
type ChartData struct {
	Series       []PricePoint `json:"series"`
	PeriodReturn PeriodReturn `json:"periodReturn"`
}
