package models

import "time"

type TrendPoint struct {
	PeriodStart string   `json:"period_start" bson:"period_start"`
	PeriodEnd   string   `json:"period_end"   bson:"period_end"`
	Value       float64  `json:"value"        bson:"value"`
	Metric      string   `json:"metric"       bson:"metric"`
	Sources     []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// MarketTrends is the market-trends provider payload.
type MarketTrends struct {
	Industry         string       `json:"industry" bson:"industry"`
	Region           string       `json:"region"   bson:"region"`
	TrendsTimeseries []TrendPoint `json:"trends_timeseries" bson:"trends_timeseries"`
	Summary          string       `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources          []string     `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated      time.Time    `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type Competitor struct {
	Name        string   `json:"name"   bson:"name"`
	Domain      string   `json:"domain" bson:"domain"`
	MarketShare float64  `json:"market_share,omitempty" bson:"market_share,omitempty"`
	Revenue     float64  `json:"revenue,omitempty"      bson:"revenue,omitempty"`
	GrowthRate  float64  `json:"growth_rate,omitempty"  bson:"growth_rate,omitempty"`
	Strengths   []string `json:"strengths,omitempty"    bson:"strengths,omitempty"`
	Weaknesses  []string `json:"weaknesses,omitempty"   bson:"weaknesses,omitempty"`
	Sources     []string `json:"sources,omitempty"      bson:"sources,omitempty"`
}

// CompetitiveAnalysis is the competitive-analysis provider payload.
type CompetitiveAnalysis struct {
	CompanyName    string       `json:"company_name" bson:"company_name"`
	Industry       string       `json:"industry"     bson:"industry"`
	Region         string       `json:"region"       bson:"region"`
	TopCompetitors []Competitor `json:"top_competitors"   bson:"top_competitors"`
	Summary        string       `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources        []string     `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated    time.Time    `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type ProjectionPoint struct {
	PeriodStart    string   `json:"period_start"    bson:"period_start"`
	PeriodEnd      string   `json:"period_end"      bson:"period_end"`
	ProjectedValue float64  `json:"projected_value" bson:"projected_value"`
	Metric         string   `json:"metric"          bson:"metric"`
	Sources        []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence     float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// GrowthProjections is the growth-projections provider payload.
type GrowthProjections struct {
	Industry              string            `json:"industry" bson:"industry"`
	Region                string            `json:"region"   bson:"region"`
	ProjectionsTimeseries []ProjectionPoint `json:"projections_timeseries" bson:"projections_timeseries"`
	Summary               string            `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources               []string          `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated           time.Time         `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type RegionalTrendPoint struct {
	Region      string   `json:"region"       bson:"region"`
	PeriodStart string   `json:"period_start" bson:"period_start"`
	PeriodEnd   string   `json:"period_end"   bson:"period_end"`
	Value       float64  `json:"value"        bson:"value"`
	Metric      string   `json:"metric"       bson:"metric"`
	Sources     []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// RegionalTrends is the regional-trends provider payload.
type RegionalTrends struct {
	Industry       string               `json:"industry" bson:"industry"`
	RegionalTrends []RegionalTrendPoint `json:"regional_trends"   bson:"regional_trends"`
	Summary        string               `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources        []string             `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated    time.Time            `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
