package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/envelope"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/series"
	"github.com/wynet321/fund-insight-backend/internal/simulation"
	"github.com/wynet321/fund-insight-backend/internal/validation"
)

var numericTerm = regexp.MustCompile(`^\d+$`)

// FundService resolves funds and canonical price series against the upstream
// provider. It owns no state; every call fetches fresh and the resulting
// series replaces the previous one wholesale at the caller.
type FundService struct {
	client fundapi.Client
}

// NewFundService creates a new FundService backed by the given provider
// client.
func NewFundService(client fundapi.Client) *FundService {
	return &FundService{client: client}
}

// Search resolves a single fund from a free-form term. All-digit terms are
// treated as fund IDs first, with a name-search fallback when the ID lookup
// misses; anything else searches by name and uses the first (most relevant)
// match. The resolved fund is enriched with its company display name when the
// provider knows the company; enrichment failure is not fatal.
func (s *FundService) Search(ctx context.Context, term string) (model.Fund, error) {
	if err := validation.ValidateSearchTerm(term); err != nil {
		return model.Fund{}, err
	}
	trimmed := strings.TrimSpace(term)

	var fund model.Fund
	var err error
	if numericTerm.MatchString(trimmed) {
		fund, err = s.client.FundByID(ctx, trimmed)
		if errors.Is(err, apperrors.ErrFundNotFound) {
			fund, err = s.firstByName(ctx, trimmed)
		}
	} else {
		fund, err = s.firstByName(ctx, trimmed)
	}
	if err != nil {
		return model.Fund{}, err
	}

	s.enrichCompany(ctx, &fund)
	return fund, nil
}

func (s *FundService) firstByName(ctx context.Context, name string) (model.Fund, error) {
	funds, err := s.client.FundsByName(ctx, name)
	if err != nil {
		return model.Fund{}, err
	}
	if len(funds) == 0 {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	return funds[0], nil
}

// enrichCompany fills the company display name (full name preferred, abbr
// fallback). A failed company lookup leaves the fund as-is.
func (s *FundService) enrichCompany(ctx context.Context, fund *model.Fund) {
	if fund.CompanyName != "" || fund.CompanyID == "" {
		return
	}
	company, err := s.client.Company(ctx, fund.CompanyID)
	if err != nil {
		return
	}
	fund.CompanyName = company.DisplayName()
}

// HistoricalSeries fetches, normalizes and builds the canonical price series
// for a fund over an inclusive date range at the given granularity, together
// with its period return. An unrecognized or empty provider payload yields an
// empty series and a nil rate, which is "no data", not a failure.
func (s *FundService) HistoricalSeries(ctx context.Context, fundID, period, startDate, endDate string) (model.ChartData, error) {
	if err := validation.ValidateChartQuery(fundID, period, startDate, endDate); err != nil {
		return model.ChartData{}, err
	}

	payload, err := s.client.ChartData(ctx, fundID, period, startDate, endDate)
	if err != nil {
		return model.ChartData{}, err
	}

	points := series.Build(envelope.Records(payload))
	return model.ChartData{
		Series:       points,
		PeriodReturn: series.PeriodReturn(points),
	}, nil
}

// SimulateInvestment fetches the fund's series for the window and runs the
// recurring-investment simulation against it.
func (s *FundService) SimulateInvestment(ctx context.Context, fundID, period, startDate, endDate string, in model.SimulationInput) (model.SimulationResult, error) {
	chart, err := s.HistoricalSeries(ctx, fundID, period, startDate, endDate)
	if err != nil {
		return model.SimulationResult{}, err
	}
	return simulation.Simulate(chart.Series, in)
}
