package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/service"
	"github.com/wynet321/fund-insight-backend/internal/testutil"
	"github.com/wynet321/fund-insight-backend/internal/validation"
)

func TestFundService_Search(t *testing.T) {
	t.Run("numeric term resolves by ID", func(t *testing.T) {
		api := testutil.NewMockFundAPI().
			WithFund(model.Fund{ID: "12", Name: "Growth Fund"})
		fs := service.NewFundService(api)

		fund, err := fs.Search(context.Background(), "12")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fund.Name != "Growth Fund" {
			t.Errorf("Expected 'Growth Fund', got %q", fund.Name)
		}
		if api.Calls["FundByID"] != 1 {
			t.Errorf("Expected 1 FundByID call, got %d", api.Calls["FundByID"])
		}
	})

	t.Run("numeric term falls back to name search on ID miss", func(t *testing.T) {
		api := testutil.NewMockFundAPI().
			WithFund(model.Fund{ID: "f-1", Name: "500 Index Fund"})
		fs := service.NewFundService(api)

		fund, err := fs.Search(context.Background(), "500")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fund.Name != "500 Index Fund" {
			t.Errorf("Expected name-search fallback hit, got %q", fund.Name)
		}
	})

	t.Run("name term uses first match", func(t *testing.T) {
		api := testutil.NewMockFundAPI().
			WithFund(model.Fund{ID: "1", Name: "Growth Fund"})
		fs := service.NewFundService(api)

		fund, err := fs.Search(context.Background(), "Growth")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fund.ID != "1" {
			t.Errorf("Expected fund '1', got %q", fund.ID)
		}
		if api.Calls["FundByID"] != 0 {
			t.Errorf("Expected no ID lookup for a name term, got %d", api.Calls["FundByID"])
		}
	})

	t.Run("company name is enriched, full name preferred", func(t *testing.T) {
		api := testutil.NewMockFundAPI().
			WithFund(model.Fund{ID: "12", Name: "Growth Fund", CompanyID: "7"}).
			WithCompany(model.Company{ID: "7", Name: "Example Asset Management", Abbr: "EAM"})
		fs := service.NewFundService(api)

		fund, err := fs.Search(context.Background(), "12")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fund.CompanyName != "Example Asset Management" {
			t.Errorf("Expected enriched company name, got %q", fund.CompanyName)
		}
	})

	t.Run("failed enrichment is not fatal", func(t *testing.T) {
		api := testutil.NewMockFundAPI().
			WithFund(model.Fund{ID: "12", Name: "Growth Fund", CompanyID: "missing"})
		fs := service.NewFundService(api)

		fund, err := fs.Search(context.Background(), "12")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if fund.CompanyName != "" {
			t.Errorf("Expected empty company name, got %q", fund.CompanyName)
		}
	})

	t.Run("blank term is a validation error", func(t *testing.T) {
		fs := service.NewFundService(testutil.NewMockFundAPI())

		_, err := fs.Search(context.Background(), "   ")
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Errorf("Expected validation error, got %v", err)
		}
	})

	t.Run("no match surfaces ErrFundNotFound", func(t *testing.T) {
		fs := service.NewFundService(testutil.NewMockFundAPI())

		_, err := fs.Search(context.Background(), "nothing")
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}

func TestFundService_HistoricalSeries(t *testing.T) {
	t.Run("normalizes, builds and derives period return", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t,
			`{"data":[
				{"date":"2023-01-02","price":"1.0","accumulatedPrice":"1.0"},
				{"date":"2023-01-03","price":"1.1","accumulatedPrice":"1.2"}
			]}`)
		fs := service.NewFundService(api)

		chart, err := fs.HistoricalSeries(context.Background(), "12", "daily", "2023-01-01", "2023-02-01")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(chart.Series) != 2 {
			t.Fatalf("Expected 2 points, got %d", len(chart.Series))
		}
		if chart.Series[0].Date != "1/2/2023" {
			t.Errorf("Expected display date 1/2/2023, got %q", chart.Series[0].Date)
		}
		if chart.PeriodReturn.RatePercent == nil || *chart.PeriodReturn.RatePercent != 20.00 {
			t.Errorf("Expected period return 20.00, got %v", chart.PeriodReturn.RatePercent)
		}
	})

	t.Run("unrecognized payload is no data, not failure", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithChartJSON(t, `{"status":"down"}`)
		fs := service.NewFundService(api)

		chart, err := fs.HistoricalSeries(context.Background(), "12", "daily", "", "")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(chart.Series) != 0 {
			t.Errorf("Expected empty series, got %d points", len(chart.Series))
		}
		if chart.PeriodReturn.RatePercent != nil {
			t.Errorf("Expected nil period return, got %v", *chart.PeriodReturn.RatePercent)
		}
	})

	t.Run("invalid period rejected before fetch", func(t *testing.T) {
		api := testutil.NewMockFundAPI()
		fs := service.NewFundService(api)

		_, err := fs.HistoricalSeries(context.Background(), "12", "hourly", "", "")
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if api.Calls["ChartData"] != 0 {
			t.Errorf("Expected no fetch after validation failure, got %d", api.Calls["ChartData"])
		}
	})

	t.Run("inverted date range rejected", func(t *testing.T) {
		fs := service.NewFundService(testutil.NewMockFundAPI())

		_, err := fs.HistoricalSeries(context.Background(), "12", "daily", "2023-03-01", "2023-01-01")
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := vErr.Fields["dateRange"]; !ok {
			t.Errorf("Expected dateRange failure, got %v", vErr.Fields)
		}
	})

	t.Run("transport failure is surfaced", func(t *testing.T) {
		api := testutil.NewMockFundAPI().WithError(apperrors.ErrUpstreamUnavailable)
		fs := service.NewFundService(api)

		_, err := fs.HistoricalSeries(context.Background(), "12", "daily", "", "")
		if !errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			t.Errorf("Expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}

func TestFundService_SimulateInvestment(t *testing.T) {
	api := testutil.NewMockFundAPI().WithChartJSON(t,
		`[
			{"date":"2023-01-02","price":1.0,"accumulatedPrice":1.0},
			{"date":"2023-01-03","price":1.1,"accumulatedPrice":1.1},
			{"date":"2023-01-04","price":1.2,"accumulatedPrice":1.2}
		]`)
	fs := service.NewFundService(api)

	result, err := fs.SimulateInvestment(context.Background(), "12", "daily", "", "", model.SimulationInput{
		DailyAmount: 100,
		Days:        2,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.ActualDays != 2 || result.TotalShares != 190.9091 {
		t.Errorf("Unexpected result: %+v", result)
	}
}
