package model

import "time"

// CatalogEntry is a locally cached fund row used by the year-rate comparison
// listing. Rows are replaced wholesale by the refresh job; UpdatedAt records
// the last successful refresh for the row.
type CatalogEntry struct {
	ID          string    `json:"-"`
	FundID      string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CompanyName string    `json:"companyName,omitempty"`
	UpdatedAt   time.Time `json:"-"`

	OneYearRate   *float64 `json:"oneYearRate,omitempty"`
	ThreeYearRate *float64 `json:"threeYearRate,omitempty"`
	FiveYearRate  *float64 `json:"fiveYearRate,omitempty"`
	SevenYearRate *float64 `json:"sevenYearRate,omitempty"`
	TenYearRate   *float64 `json:"tenYearRate,omitempty"`
}

// CatalogPage is one page of the rate-sorted comparison listing.
type CatalogPage struct {
	Content    []CatalogEntry `json:"content"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalItems int            `json:"totalItems"`
}
