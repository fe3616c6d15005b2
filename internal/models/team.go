package models

import "time"

type TeamRoleBreakdown struct {
	Role       string   `json:"role"  bson:"role"`
	Count      int      `json:"count" bson:"count"`
	Percentage float64  `json:"percentage,omitempty" bson:"percentage,omitempty"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// TeamOverview is the team-overview provider payload.
type TeamOverview struct {
	CompanyName    string              `json:"company_name" bson:"company_name"`
	TotalEmployees int                 `json:"total_employees" bson:"total_employees"`
	RolesBreakdown []TeamRoleBreakdown `json:"roles_breakdown" bson:"roles_breakdown"`
	Locations      []string            `json:"locations,omitempty" bson:"locations,omitempty"`
	Sources        []string            `json:"sources,omitempty"   bson:"sources,omitempty"`
	LastUpdated    time.Time           `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type PerformanceMetric struct {
	Metric     string   `json:"metric" bson:"metric"`
	Value      float64  `json:"value"  bson:"value"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// IndividualPerformance is the individual-performance provider payload.
type IndividualPerformance struct {
	CompanyName        string              `json:"company_name"    bson:"company_name"`
	IndividualName     string              `json:"individual_name" bson:"individual_name"`
	Title              string              `json:"title,omitempty" bson:"title,omitempty"`
	TenureYears        float64             `json:"tenure_years,omitempty" bson:"tenure_years,omitempty"`
	PerformanceMetrics []PerformanceMetric `json:"performance_metrics" bson:"performance_metrics"`
	Sources            []string            `json:"sources,omitempty"      bson:"sources,omitempty"`
	LastUpdated        time.Time           `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type OrgChartEntry struct {
	Name          string   `json:"name"  bson:"name"`
	Title         string   `json:"title" bson:"title"`
	ReportsTo     string   `json:"reports_to,omitempty" bson:"reports_to,omitempty"`
	DirectReports []string `json:"direct_reports"       bson:"direct_reports"`
	Sources       []string `json:"sources,omitempty"    bson:"sources,omitempty"`
}

// OrgStructure is the org-structure provider payload.
type OrgStructure struct {
	CompanyName string          `json:"company_name" bson:"company_name"`
	OrgChart    []OrgChartEntry `json:"org_chart"    bson:"org_chart"`
	Sources     []string        `json:"sources,omitempty"      bson:"sources,omitempty"`
	LastUpdated time.Time       `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type TeamGrowthPoint struct {
	PeriodStart string   `json:"period_start" bson:"period_start"`
	PeriodEnd   string   `json:"period_end"   bson:"period_end"`
	Hires       int      `json:"hires"        bson:"hires"`
	Attrition   int      `json:"attrition"    bson:"attrition"`
	NetGrowth   int      `json:"net_growth"   bson:"net_growth"`
	Sources     []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// TeamGrowth is the team-growth provider payload.
type TeamGrowth struct {
	CompanyName          string            `json:"company_name" bson:"company_name"`
	TeamGrowthTimeseries []TeamGrowthPoint `json:"team_growth_timeseries" bson:"team_growth_timeseries"`
	TotalHires           int               `json:"total_hires"     bson:"total_hires"`
	TotalAttrition       int               `json:"total_attrition" bson:"total_attrition"`
	NetGrowth            int               `json:"net_growth"      bson:"net_growth"`
	Sources              []string          `json:"sources,omitempty"      bson:"sources,omitempty"`
	LastUpdated          time.Time         `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
