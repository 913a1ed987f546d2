package testutil

import (
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// CatalogEntryBuilder provides a fluent interface for creating catalog entry
// fixtures.
//
// Example usage:
//
//	entry := testutil.NewCatalogEntry("12", "Growth Fund").
//	    WithType("mixed").
//	    WithOneYearRate(0.15).
//	    Entry()
type CatalogEntryBuilder struct {
	entry model.CatalogEntry
}

// NewCatalogEntry creates a builder with the given fund ID and name.
func NewCatalogEntry(fundID, name string) *CatalogEntryBuilder {
	return &CatalogEntryBuilder{
		entry: model.CatalogEntry{
			FundID: fundID,
			Name:   name,
			Type:   "mixed",
		},
	}
}

// WithType sets the fund type.
func (b *CatalogEntryBuilder) WithType(fundType string) *CatalogEntryBuilder {
	b.entry.Type = fundType
	return b
}

// WithCompanyName sets the company display name.
func (b *CatalogEntryBuilder) WithCompanyName(name string) *CatalogEntryBuilder {
	b.entry.CompanyName = name
	return b
}

// WithOneYearRate sets the one-year rate.
func (b *CatalogEntryBuilder) WithOneYearRate(rate float64) *CatalogEntryBuilder {
	b.entry.OneYearRate = &rate
	return b
}

// WithThreeYearRate sets the three-year rate.
func (b *CatalogEntryBuilder) WithThreeYearRate(rate float64) *CatalogEntryBuilder {
	b.entry.ThreeYearRate = &rate
	return b
}

// WithTenYearRate sets the ten-year rate.
func (b *CatalogEntryBuilder) WithTenYearRate(rate float64) *CatalogEntryBuilder {
	b.entry.TenYearRate = &rate
	return b
}

// Entry returns the built entry.
func (b *CatalogEntryBuilder) Entry() model.CatalogEntry {
	return b.entry
}

// RatePageOf wraps entries into a single provider rate page.
func RatePageOf(total int, entries ...model.CatalogEntry) fundapi.RatePage {
	return fundapi.RatePage{Entries: entries, TotalItems: total}
}

// Rate returns a pointer to a rate literal, for fund fixtures.
func Rate(v float64) *float64 {
	return &v
}
