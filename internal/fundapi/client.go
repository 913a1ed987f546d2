// Package fundapi is the HTTP client for the upstream fund-data provider.
//
// The provider's responses are loosely structured: payload arrays arrive in
// several envelope shapes and numeric fields may be serialized as strings.
// The client decodes bodies generically and leans on the envelope package and
// local coercion helpers instead of assuming well-typed JSON.
package fundapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wynet321/fund-insight-backend/internal/apperrors"
	"github.com/wynet321/fund-insight-backend/internal/envelope"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// Client is the provider operation surface consumed by services. The
// interface exists so tests can substitute a mock.
type Client interface {
	// FundByID resolves a single fund by its numeric identifier.
	FundByID(ctx context.Context, id string) (model.Fund, error)
	// FundsByName resolves funds by (partial) name, in provider relevance order.
	FundsByName(ctx context.Context, name string) ([]model.Fund, error)
	// Company resolves a fund management company by identifier.
	Company(ctx context.Context, id string) (model.Company, error)
	// ChartData fetches the raw historical price payload for a fund. The
	// result is the decoded JSON body, left for the envelope/series packages
	// to normalize.
	ChartData(ctx context.Context, fundID, period, startDate, endDate string) (any, error)
	// Search performs a free-text suggestion lookup.
	Search(ctx context.Context, keyword string, limit int) ([]model.Suggestion, error)
	// RatePage fetches one page of the per-type year-rate listing.
	RatePage(ctx context.Context, yearField, fundType string, page, size int) (RatePage, error)
}

// RatePage is one page of the provider's paged rate listing.
type RatePage struct {
	Entries    []model.CatalogEntry
	TotalItems int
}

// HTTPClient talks to the real provider.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a provider client rooted at baseURL (for example
// "http://localhost:9000/fund").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FundByID resolves a fund via GET /api/rate/period/{id}. The fund entity
// arrives data-wrapped; an empty wrapper means not found.
func (c *HTTPClient) FundByID(ctx context.Context, id string) (model.Fund, error) {
	payload, err := c.get(ctx, "/api/rate/period/"+url.PathEscape(id), nil)
	if err != nil {
		return model.Fund{}, err
	}
	rec := dataObject(payload)
	if rec == nil {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	return fundFromRecord(rec), nil
}

// FundsByName resolves funds via GET /api/rate/year/name/{name}. The wrapper
// may hold a single entity or an array; both normalize to a slice.
func (c *HTTPClient) FundsByName(ctx context.Context, name string) ([]model.Fund, error) {
	payload, err := c.get(ctx, "/api/rate/year/name/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	records := envelope.Records(payload)
	if len(records) == 0 {
		if rec := dataObject(payload); rec != nil {
			records = []envelope.Record{rec}
		}
	}
	if len(records) == 0 {
		return nil, apperrors.ErrFundNotFound
	}

	funds := make([]model.Fund, 0, len(records))
	for _, rec := range records {
		funds = append(funds, fundFromRecord(rec))
	}
	return funds, nil
}

// Company resolves a company via GET /api/company/{id}.
func (c *HTTPClient) Company(ctx context.Context, id string) (model.Company, error) {
	payload, err := c.get(ctx, "/api/company/"+url.PathEscape(id), nil)
	if err != nil {
		return model.Company{}, err
	}
	rec := dataObject(payload)
	if rec == nil {
		if direct, ok := payload.(map[string]any); ok {
			rec = direct
		}
	}
	if rec == nil || (stringField(rec, "name") == "" && stringField(rec, "abbr") == "") {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	return model.Company{
		ID:   stringField(rec, "id"),
		Name: stringField(rec, "name"),
		Abbr: stringField(rec, "abbr"),
	}, nil
}

// ChartData fetches GET /api/chart/data/{fundID}. The body is returned as
// decoded generic JSON; shape handling belongs to the normalizer, which
// treats anything unrecognized as "no data".
func (c *HTTPClient) ChartData(ctx context.Context, fundID, period, startDate, endDate string) (any, error) {
	query := url.Values{"period": {period}}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	return c.get(ctx, "/api/chart/data/"+url.PathEscape(fundID), query)
}

// Search performs GET /api/fund/search. Suggestion payloads arrive as a bare
// array or data-wrapped; any other shape resolves to an empty list rather
// than an error.
func (c *HTTPClient) Search(ctx context.Context, keyword string, limit int) ([]model.Suggestion, error) {
	query := url.Values{
		"keyword": {keyword},
		"limit":   {fmt.Sprintf("%d", limit)},
	}
	payload, err := c.get(ctx, "/api/fund/search", query)
	if err != nil {
		return nil, err
	}

	var records []envelope.Record
	switch kind, items := envelope.Detect(payload); kind {
	case envelope.Bare, envelope.DataWrapped:
		for _, item := range items {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
	default:
		// ContentWrapped is not a suggestion shape; treat like Unknown.
	}

	suggestions := make([]model.Suggestion, 0, len(records))
	for _, rec := range records {
		suggestions = append(suggestions, model.Suggestion{
			ID:          stringField(rec, "id"),
			Name:        stringField(rec, "name"),
			CompanyID:   stringField(rec, "companyId"),
			CompanyName: stringField(rec, "companyName"),
			Type:        stringField(rec, "type"),
		})
	}
	return suggestions, nil
}

// RatePage fetches GET /api/rate/{year}/{type}?page=&size=. The provider
// nests the paging envelope inside the data wrapper.
func (c *HTTPClient) RatePage(ctx context.Context, yearField, fundType string, page, size int) (RatePage, error) {
	path := fmt.Sprintf("/api/rate/%s/%s", strings.ToLower(yearField), url.PathEscape(fundType))
	query := url.Values{
		"page": {fmt.Sprintf("%d", page)},
		"size": {fmt.Sprintf("%d", size)},
	}
	payload, err := c.get(ctx, path, query)
	if err != nil {
		return RatePage{}, err
	}

	inner := any(nil)
	if m, ok := payload.(map[string]any); ok {
		inner = m["data"]
	}

	entries := make([]model.CatalogEntry, 0)
	for _, rec := range envelope.Records(inner) {
		entries = append(entries, catalogEntryFromRecord(rec))
	}

	total := len(entries)
	if m, ok := inner.(map[string]any); ok {
		if n, found := intField(m, "totalElements"); found {
			total = n
		}
	}
	return RatePage{Entries: entries, TotalItems: total}, nil
}

// get executes a GET request and decodes the JSON body generically.
func (c *HTTPClient) get(ctx context.Context, path string, query url.Values) (any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrFundNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamPayload, err)
	}
	return payload, nil
}

// dataObject returns the payload's data field when it wraps a single object.
func dataObject(payload any) envelope.Record {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	rec, _ := m["data"].(map[string]any)
	return rec
}
