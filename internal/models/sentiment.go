package models

import "time"

type SentimentPoint struct {
	PeriodStart    string   `json:"period_start" bson:"period_start"`
	PeriodEnd      string   `json:"period_end"   bson:"period_end"`
	Positive       int      `json:"positive"     bson:"positive"`
	Negative       int      `json:"negative"     bson:"negative"`
	Neutral        int      `json:"neutral"      bson:"neutral"`
	SentimentScore float64  `json:"sentiment_score" bson:"sentiment_score"`
	Sources        []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence     float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// SentimentSummary is the sentiment-summary provider payload.
type SentimentSummary struct {
	CompanyName         string           `json:"company_name" bson:"company_name"`
	Product             string           `json:"product,omitempty" bson:"product,omitempty"`
	Region              string           `json:"region,omitempty"  bson:"region,omitempty"`
	SentimentScore      float64          `json:"sentiment_score"     bson:"sentiment_score"`
	SentimentBreakdown  map[string]int   `json:"sentiment_breakdown" bson:"sentiment_breakdown"`
	SentimentTimeseries []SentimentPoint `json:"sentiment_timeseries" bson:"sentiment_timeseries"`
	Summary             string           `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources             []string         `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated         time.Time        `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type FeedbackItem struct {
	Date       string   `json:"date" bson:"date"`
	Customer   string   `json:"customer,omitempty" bson:"customer,omitempty"`
	Feedback   string   `json:"feedback"  bson:"feedback"`
	Sentiment  string   `json:"sentiment" bson:"sentiment"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// CustomerFeedback is the customer-feedback provider payload.
type CustomerFeedback struct {
	CompanyName   string         `json:"company_name" bson:"company_name"`
	Product       string         `json:"product,omitempty" bson:"product,omitempty"`
	Region        string         `json:"region,omitempty"  bson:"region,omitempty"`
	FeedbackItems []FeedbackItem `json:"feedback_items"    bson:"feedback_items"`
	Summary       string         `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources       []string       `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated   time.Time      `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type ReputationPoint struct {
	PeriodStart     string   `json:"period_start" bson:"period_start"`
	PeriodEnd       string   `json:"period_end"   bson:"period_end"`
	ReputationScore float64  `json:"reputation_score" bson:"reputation_score"`
	Sources         []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence      float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// BrandReputation is the brand-reputation provider payload.
type BrandReputation struct {
	CompanyName          string            `json:"company_name" bson:"company_name"`
	Region               string            `json:"region,omitempty" bson:"region,omitempty"`
	ReputationScore      float64           `json:"reputation_score"      bson:"reputation_score"`
	ReputationTimeseries []ReputationPoint `json:"reputation_timeseries" bson:"reputation_timeseries"`
	Summary              string            `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources              []string          `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated          time.Time         `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type CompanySentiment struct {
	CompanyName    string  `json:"company_name"    bson:"company_name"`
	SentimentScore float64 `json:"sentiment_score" bson:"sentiment_score"`
}

// SentimentComparison is the sentiment-comparison provider payload.
type SentimentComparison struct {
	CompanyName string             `json:"company_name" bson:"company_name"`
	Region      string             `json:"region,omitempty" bson:"region,omitempty"`
	Comparison  []CompanySentiment `json:"comparison"        bson:"comparison"`
	Summary     string             `json:"summary,omitempty" bson:"summary,omitempty"`
	Sources     []string           `json:"sources,omitempty" bson:"sources,omitempty"`
	LastUpdated time.Time          `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
