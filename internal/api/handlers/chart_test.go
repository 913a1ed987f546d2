package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wynet321/fund-insight-backend/internal/api/handlers"
	"github.com/wynet321/fund-insight-backend/internal/api/request"
	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/service"
	"github.com/wynet321/fund-insight-backend/internal/testutil"
)

const chartFixture = `{"data": [
	{"priceDate": "2024-01-02", "price": "1.00", "accumulatedPrice": 1.00},
	{"priceDate": "2024-01-03", "price": "1.10", "accumulatedPrice": 1.10},
	{"priceDate": "2024-01-04", "price": "1.20", "accumulatedPrice": 1.20}
]}`

func TestChartHandler_Data(t *testing.T) {
	t.Run("returns normalized series with period return", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, chartFixture)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/chart/data/110011?period=daily",
			map[string]string{"fundID": "110011"},
		)
		w := httptest.NewRecorder()

		handler.Data(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var data model.ChartData
		if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(data.Series) != 3 {
			t.Fatalf("Expected 3 points, got %d", len(data.Series))
		}
		if data.Series[0].Date != "1/2/2024" {
			t.Errorf("Expected display date 1/2/2024, got %s", data.Series[0].Date)
		}
		if data.PeriodReturn.RatePercent == nil || *data.PeriodReturn.RatePercent != 20.00 {
			t.Errorf("Expected period return 20.00, got %v", data.PeriodReturn.RatePercent)
		}
	})

	t.Run("returns 400 on invalid period", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, chartFixture)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/chart/data/110011?period=hourly",
			map[string]string{"fundID": "110011"},
		)
		w := httptest.NewRecorder()

		handler.Data(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 502 when the provider fails", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithError(apperrors.ErrUpstreamUnavailable)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/chart/data/110011?period=daily",
			map[string]string{"fundID": "110011"},
		)
		w := httptest.NewRecorder()

		handler.Data(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}
	})
}

func TestChartHandler_Simulate(t *testing.T) {
	t.Run("runs simulation over the series", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, chartFixture)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithBody(
			http.MethodPost,
			"/api/chart/simulate/110011?period=daily",
			map[string]string{"fundID": "110011"},
			testutil.JSONBody(t, request.SimulationRequest{DailyAmount: 100, Days: 3}),
		)
		w := httptest.NewRecorder()

		handler.Simulate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.SimulationResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.ActualDays != 3 {
			t.Errorf("Expected 3 simulated days, got %d", result.ActualDays)
		}
		if result.TotalInvested != 300.00 {
			t.Errorf("Expected 300.00 invested, got %v", result.TotalInvested)
		}
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, chartFixture)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithBody(
			http.MethodPost,
			"/api/chart/simulate/110011?period=daily",
			map[string]string{"fundID": "110011"},
			strings.NewReader("{not json"),
		)
		w := httptest.NewRecorder()

		handler.Simulate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, chartFixture)
		handler := handlers.NewChartHandler(service.NewFundService(api))

		req := testutil.NewRequestWithBody(
			http.MethodPost,
			"/api/chart/simulate/110011?period=daily",
			map[string]string{"fundID": "110011"},
			testutil.JSONBody(t, request.SimulationRequest{DailyAmount: 0, Days: 3}),
		)
		w := httptest.NewRecorder()

		handler.Simulate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
