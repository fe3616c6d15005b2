package models

import "time"

// RiskItem is a single identified risk; shared across the risk and
// compliance payloads.
type RiskItem struct {
	Risk        string   `json:"risk"     bson:"risk"`
	Severity    string   `json:"severity" bson:"severity"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Sources     []string `json:"sources,omitempty"     bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty"  bson:"confidence,omitempty"`
	CaseNumber  string   `json:"case_number,omitempty" bson:"case_number,omitempty"`
	DateFiled   string   `json:"date_filed,omitempty"  bson:"date_filed,omitempty"`
}

// RiskReport is the shape shared by the four risk-analysis operations.
type RiskReport struct {
	CompanyName string     `json:"company_name" bson:"company_name"`
	Industry    string     `json:"industry,omitempty" bson:"industry,omitempty"`
	Region      string     `json:"region,omitempty"   bson:"region,omitempty"`
	Risks       []RiskItem `json:"risks"             bson:"risks"`
	Summary     string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string   `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
