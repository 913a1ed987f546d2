package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wynet321/fund-insight-backend/internal/api/request"
	"github.com/wynet321/fund-insight-backend/internal/api/response"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/service"
)

// ChartHandler handles HTTP requests for price history and simulation.
type ChartHandler struct {
	fundService *service.FundService
}

// NewChartHandler creates a new ChartHandler with the provided service dependency.
func NewChartHandler(fundService *service.FundService) *ChartHandler {
	return &ChartHandler{fundService: fundService}
}

// Data returns the normalized price series and period return for a fund.
//
// Endpoint: GET /api/chart/data/{fundID}?period=&startDate=&endDate=
// Response: 200 OK with series and period return
// Error: 400 on invalid period or date range, 502 when the provider fails
func (h *ChartHandler) Data(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundID")
	query := r.URL.Query()

	data, err := h.fundService.HistoricalSeries(
		r.Context(),
		fundID,
		query.Get("period"),
		query.Get("startDate"),
		query.Get("endDate"),
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, data)
}

// Simulate runs a fixed daily investment over a fund's price history.
//
// Endpoint: POST /api/chart/simulate/{fundID}?period=&startDate=&endDate=
// Body: SimulationRequest with dailyAmount and days
// Response: 200 OK with the simulation result
// Error: 400 on invalid body or parameters, 502 when the provider fails
func (h *ChartHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundID")
	query := r.URL.Query()

	var body request.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.fundService.SimulateInvestment(
		r.Context(),
		fundID,
		query.Get("period"),
		query.Get("startDate"),
		query.Get("endDate"),
		model.SimulationInput{DailyAmount: body.DailyAmount, Days: body.Days},
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
