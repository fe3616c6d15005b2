// Package providers implements the seven analysis providers. Each one
// exposes a handful of read-only query operations keyed by company name.
// The payloads are best-effort typed mock data standing in for the real
// analysis backends; callers treat every operation as a remote call that
// may fail.
package providers

import "github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"

// Query carries the common parameters accepted by provider operations.
// Only CompanyName is required; the remaining filters narrow the query
// when an operation supports them.
type Query struct {
	CompanyName      string `json:"company_name"`
	Domain           string `json:"domain,omitempty"`
	Industry         string `json:"industry,omitempty"`
	Region           string `json:"region,omitempty"`
	Product          string `json:"product,omitempty"`
	IndividualName   string `json:"individual_name,omitempty"`
	Year             int    `json:"year,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	UseKnowledgeBase bool   `json:"use_knowledge_base,omitempty"`
}

func (q Query) validate() error {
	if q.CompanyName == "" {
		return apperr.Invalid("company_name is required")
	}
	return nil
}

// sources prefers the knowledge base over the default citation list when
// the caller asked for it.
func (q Query) sources(defaults ...string) []string {
	if q.UseKnowledgeBase {
		return []string{"Knowledge Base"}
	}
	return defaults
}

func (q Query) regionOr(fallback string) string {
	if q.Region != "" {
		return q.Region
	}
	return fallback
}

func (q Query) industryOr(fallback string) string {
	if q.Industry != "" {
		return q.Industry
	}
	return fallback
}
