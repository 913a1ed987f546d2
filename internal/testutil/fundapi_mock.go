package testutil

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// MockFundAPI is an in-memory implementation of fundapi.Client for testing.
// It serves configured fixtures instead of reaching the provider, and counts
// calls per operation.
type MockFundAPI struct {
	mu sync.Mutex

	Funds        map[string]model.Fund    // keyed by fund ID
	Companies    map[string]model.Company // keyed by company ID
	ChartPayload any                      // decoded JSON served by ChartData
	Suggestions  []model.Suggestion
	RatePages    map[string][]fundapi.RatePage // keyed by fund type, in page order

	// Err, when set, is returned by every operation.
	Err error

	Calls map[string]int
}

// NewMockFundAPI creates an empty mock.
func NewMockFundAPI() *MockFundAPI {
	return &MockFundAPI{
		Funds:     map[string]model.Fund{},
		Companies: map[string]model.Company{},
		RatePages: map[string][]fundapi.RatePage{},
		Calls:     map[string]int{},
	}
}

// WithFund registers a fund fixture.
func (m *MockFundAPI) WithFund(fund model.Fund) *MockFundAPI {
	m.Funds[fund.ID] = fund
	return m
}

// WithCompany registers a company fixture.
func (m *MockFundAPI) WithCompany(company model.Company) *MockFundAPI {
	m.Companies[company.ID] = company
	return m
}

// WithChartJSON decodes raw JSON and serves it from ChartData.
func (m *MockFundAPI) WithChartJSON(t *testing.T, raw string) *MockFundAPI {
	t.Helper()
	var payload any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("Failed to decode chart fixture: %v", err)
	}
	m.ChartPayload = payload
	return m
}

// WithError makes every operation fail with err.
func (m *MockFundAPI) WithError(err error) *MockFundAPI {
	m.Err = err
	return m
}

func (m *MockFundAPI) count(op string) {
	m.mu.Lock()
	m.Calls[op]++
	m.mu.Unlock()
}

// FundByID serves the registered fund or ErrFundNotFound.
func (m *MockFundAPI) FundByID(_ context.Context, id string) (model.Fund, error) {
	m.count("FundByID")
	if m.Err != nil {
		return model.Fund{}, m.Err
	}
	fund, ok := m.Funds[id]
	if !ok {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	return fund, nil
}

// FundsByName serves every registered fund whose name contains the term.
func (m *MockFundAPI) FundsByName(_ context.Context, name string) ([]model.Fund, error) {
	m.count("FundsByName")
	if m.Err != nil {
		return nil, m.Err
	}
	var funds []model.Fund
	for _, fund := range m.Funds {
		if strings.Contains(fund.Name, name) {
			funds = append(funds, fund)
		}
	}
	if len(funds) == 0 {
		return nil, apperrors.ErrFundNotFound
	}
	return funds, nil
}

// Company serves the registered company or ErrCompanyNotFound.
func (m *MockFundAPI) Company(_ context.Context, id string) (model.Company, error) {
	m.count("Company")
	if m.Err != nil {
		return model.Company{}, m.Err
	}
	company, ok := m.Companies[id]
	if !ok {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	return company, nil
}

// ChartData serves the configured payload.
func (m *MockFundAPI) ChartData(_ context.Context, _, _, _, _ string) (any, error) {
	m.count("ChartData")
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ChartPayload, nil
}

// Search serves the configured suggestion list.
func (m *MockFundAPI) Search(_ context.Context, _ string, limit int) ([]model.Suggestion, error) {
	m.count("Search")
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && len(m.Suggestions) > limit {
		return m.Suggestions[:limit], nil
	}
	return m.Suggestions, nil
}

// RatePage serves the configured pages per fund type; pages beyond the
// configured set are empty.
func (m *MockFundAPI) RatePage(_ context.Context, _, fundType string, page, _ int) (fundapi.RatePage, error) {
	m.count("RatePage")
	if m.Err != nil {
		return fundapi.RatePage{}, m.Err
	}
	pages := m.RatePages[fundType]
	if page >= len(pages) {
		return fundapi.RatePage{}, nil
	}
	return pages[page], nil
}

var _ fundapi.Client = (*MockFundAPI)(nil)
