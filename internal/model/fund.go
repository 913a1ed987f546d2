package model

// Fund represents a fund entity as resolved from the upstream provider.
// Year-rate fields carry the provider's cumulative return figures and may be
// absent for young funds.
type Fund struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	CompanyName string `json:"companyName,omitempty"`

	OneYearRate   *float64 `json:"oneYearRate,omitempty"`
	ThreeYearRate *float64 `json:"threeYearRate,omitempty"`
	FiveYearRate  *float64 `json:"fiveYearRate,omitempty"`
	SevenYearRate *float64 `json:"sevenYearRate,omitempty"`
	TenYearRate   *float64 `json:"tenYearRate,omitempty"`
}

// Company represents a fund management company. Name is the preferred display
// label; Abbr is the fallback when the full name is empty.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// DisplayName returns the preferred label for the company.
func (c Company) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Abbr
}

// Suggestion is a resolved fund entity offered by the search-as-you-type
// lookup. Ordering within a suggestion list is the provider's relevance order
// and is never re-sorted.
type Suggestion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyID   string `json:"companyId,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Type        string `json:"type,omitempty"`
}
