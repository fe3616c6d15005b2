package models

import "time"

type Partner struct {
	Name            string   `json:"name"   bson:"name"`
	Domain          string   `json:"domain" bson:"domain"`
	PartnershipType string   `json:"partnership_type" bson:"partnership_type"`
	Since           string   `json:"since,omitempty"   bson:"since,omitempty"`
	Sources         []string `json:"sources,omitempty" bson:"sources,omitempty"`
}

// PartnerList is the partner-list provider payload.
type PartnerList struct {
	CompanyName string    `json:"company_name" bson:"company_name"`
	Partners    []Partner `json:"partners"          bson:"partners"`
	Summary     string    `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string  `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type Alliance struct {
	Partner     string   `json:"partner"      bson:"partner"`
	ImpactArea  string   `json:"impact_area"  bson:"impact_area"`
	ImpactScore float64  `json:"impact_score" bson:"impact_score"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Sources     []string `json:"sources,omitempty"     bson:"sources,omitempty"`
}

// StrategicAlliances is the strategic-alliances provider payload.
type StrategicAlliances struct {
	CompanyName string     `json:"company_name" bson:"company_name"`
	Alliances   []Alliance `json:"alliances"         bson:"alliances"`
	Summary     string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string   `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type NetworkMetric struct {
	Metric     string   `json:"metric" bson:"metric"`
	Value      float64  `json:"value"  bson:"value"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// NetworkStrength is the network-strength provider payload.
type NetworkStrength struct {
	CompanyName    string          `json:"company_name" bson:"company_name"`
	NetworkMetrics []NetworkMetric `json:"network_metrics"   bson:"network_metrics"`
	Summary        string          `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources        []string        `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated    time.Time       `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type PartnershipTrendPoint struct {
	PeriodStart       string   `json:"period_start" bson:"period_start"`
	PeriodEnd         string   `json:"period_end"   bson:"period_end"`
	NewPartnerships   int      `json:"new_partnerships"   bson:"new_partnerships"`
	EndedPartnerships int      `json:"ended_partnerships" bson:"ended_partnerships"`
	NetGrowth         int      `json:"net_growth"         bson:"net_growth"`
	Sources           []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence        float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// PartnershipTrends is the partnership-trends provider payload.
type PartnershipTrends struct {
	CompanyName                 string                  `json:"company_name" bson:"company_name"`
	PartnershipTrendsTimeseries []PartnershipTrendPoint `json:"partnership_trends_timeseries" bson:"partnership_trends_timeseries"`
	Summary                     string                  `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources                     []string                `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated                 time.Time               `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
