package models

import "time"

type Regulation struct {
	Regulation  string   `json:"regulation" bson:"regulation"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Applicable  bool     `json:"applicable"            bson:"applicable"`
	Sources     []string `json:"sources,omitempty"     bson:"sources,omitempty"`
}

// ComplianceOverview is the compliance-overview provider payload.
type ComplianceOverview struct {
	CompanyName string       `json:"company_name" bson:"company_name"`
	Industry    string       `json:"industry,omitempty" bson:"industry,omitempty"`
	Region      string       `json:"region,omitempty"   bson:"region,omitempty"`
	Regulations []Regulation `json:"regulations"       bson:"regulations"`
	Summary     string       `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string     `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time    `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type Violation struct {
	Violation   string   `json:"violation"  bson:"violation"`
	Regulation  string   `json:"regulation" bson:"regulation"`
	Date        string   `json:"date,omitempty" bson:"date,omitempty"`
	Severity    string   `json:"severity"       bson:"severity"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Sources     []string `json:"sources,omitempty"     bson:"sources,omitempty"`
	Resolved    bool     `json:"resolved"              bson:"resolved"`
}

// ViolationHistory is the violation-history provider payload.
type ViolationHistory struct {
	CompanyName string      `json:"company_name" bson:"company_name"`
	Industry    string      `json:"industry,omitempty" bson:"industry,omitempty"`
	Region      string      `json:"region,omitempty"   bson:"region,omitempty"`
	Violations  []Violation `json:"violations"        bson:"violations"`
	Summary     string      `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string    `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time   `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

// ComplianceRisk is the compliance-risk provider payload.
type ComplianceRisk struct {
	CompanyName string     `json:"company_name" bson:"company_name"`
	Industry    string     `json:"industry,omitempty" bson:"industry,omitempty"`
	Region      string     `json:"region,omitempty"   bson:"region,omitempty"`
	Risks       []RiskItem `json:"risks"             bson:"risks"`
	Summary     string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string   `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type RegionCompliance struct {
	Region          string       `json:"region" bson:"region"`
	Regulations     []Regulation `json:"regulations"      bson:"regulations"`
	ComplianceScore float64      `json:"compliance_score" bson:"compliance_score"`
	Sources         []string     `json:"sources,omitempty" bson:"sources,omitempty"`
}

// RegionalCompliance is the regional-compliance provider payload.
type RegionalCompliance struct {
	CompanyName        string             `json:"company_name" bson:"company_name"`
	Industry           string             `json:"industry,omitempty" bson:"industry,omitempty"`
	RegionalCompliance []RegionCompliance `json:"regional_compliance" bson:"regional_compliance"`
	Summary            string             `json:"summary,omitempty"   bson:"summary,omitempty"`
	Sources            []string           `json:"sources,omitempty"   bson:"sources,omitempty"`
	LastUpdated        time.Time          `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
