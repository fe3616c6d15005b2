package models

import "time"

// RevenueTimeSeriesPoint is one revenue observation for a reporting period.
type RevenueTimeSeriesPoint struct {
	PeriodStart string   `json:"period_start" bson:"period_start"`
	PeriodEnd   string   `json:"period_end"   bson:"period_end"`
	Value       float64  `json:"value"        bson:"value"`
	Sources     []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// RevenueAnalysis is the revenue-analysis provider payload.
type RevenueAnalysis struct {
	CompanyName       string                   `json:"company_name" bson:"company_name"`
	Currency          string                   `json:"currency"     bson:"currency"`
	RevenueTimeseries []RevenueTimeSeriesPoint `json:"revenue_timeseries" bson:"revenue_timeseries"`
	TotalRevenue      float64                  `json:"total_revenue,omitempty" bson:"total_revenue,omitempty"`
	LastUpdated       time.Time                `json:"last_updated,omitempty"  bson:"last_updated,omitempty"`
}

type ExpenseCategoryBreakdown struct {
	Category   string   `json:"category" bson:"category"`
	Amount     float64  `json:"amount"   bson:"amount"`
	Currency   string   `json:"currency" bson:"currency"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

type ExpenseTimeSeriesPoint struct {
	PeriodStart string   `json:"period_start" bson:"period_start"`
	PeriodEnd   string   `json:"period_end"   bson:"period_end"`
	Category    string   `json:"category"     bson:"category"`
	Value       float64  `json:"value"        bson:"value"`
	Sources     []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence  float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// ExpenseAnalysis is the expense-analysis provider payload.
type ExpenseAnalysis struct {
	CompanyName       string                     `json:"company_name" bson:"company_name"`
	Year              int                        `json:"year,omitempty" bson:"year,omitempty"`
	Expenses          []ExpenseCategoryBreakdown `json:"expenses"           bson:"expenses"`
	ExpenseTimeseries []ExpenseTimeSeriesPoint   `json:"expense_timeseries" bson:"expense_timeseries"`
	TotalExpense      float64                    `json:"total_expense" bson:"total_expense"`
	Currency          string                     `json:"currency"      bson:"currency"`
	LastUpdated       time.Time                  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type ProfitMarginTimeSeriesPoint struct {
	PeriodStart     string   `json:"period_start" bson:"period_start"`
	PeriodEnd       string   `json:"period_end"   bson:"period_end"`
	GrossMargin     float64  `json:"gross_margin,omitempty"     bson:"gross_margin,omitempty"`
	OperatingMargin float64  `json:"operating_margin,omitempty" bson:"operating_margin,omitempty"`
	NetMargin       float64  `json:"net_margin,omitempty"       bson:"net_margin,omitempty"`
	Sources         []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence      float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// ProfitMargins is the profit-margins provider payload.
type ProfitMargins struct {
	CompanyName      string                        `json:"company_name" bson:"company_name"`
	Year             int                           `json:"year,omitempty" bson:"year,omitempty"`
	GrossMargin      float64                       `json:"gross_margin,omitempty"     bson:"gross_margin,omitempty"`
	OperatingMargin  float64                       `json:"operating_margin,omitempty" bson:"operating_margin,omitempty"`
	NetMargin        float64                       `json:"net_margin,omitempty"       bson:"net_margin,omitempty"`
	MarginTimeseries []ProfitMarginTimeSeriesPoint `json:"margin_timeseries" bson:"margin_timeseries"`
	Currency         string                        `json:"currency" bson:"currency"`
	Sources          []string                      `json:"sources,omitempty"      bson:"sources,omitempty"`
	LastUpdated      time.Time                     `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type ValuationTimeSeriesPoint struct {
	AsOfDate   string   `json:"as_of_date" bson:"as_of_date"`
	Valuation  float64  `json:"valuation"  bson:"valuation"`
	Sources    []string `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// ValuationEstimation is the valuation-estimation provider payload.
type ValuationEstimation struct {
	CompanyName         string                     `json:"company_name" bson:"company_name"`
	Valuation           float64                    `json:"valuation"    bson:"valuation"`
	Currency            string                     `json:"currency"     bson:"currency"`
	AsOfDate            string                     `json:"as_of_date,omitempty" bson:"as_of_date,omitempty"`
	ValuationTimeseries []ValuationTimeSeriesPoint `json:"valuation_timeseries" bson:"valuation_timeseries"`
	Sources             []string                   `json:"sources,omitempty"    bson:"sources,omitempty"`
	Confidence          float64                    `json:"confidence,omitempty" bson:"confidence,omitempty"`
	LastUpdated         time.Time                  `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}

type FundingRound struct {
	RoundType     string   `json:"round_type" bson:"round_type"`
	Amount        float64  `json:"amount"     bson:"amount"`
	Currency      string   `json:"currency"   bson:"currency"`
	Date          string   `json:"date,omitempty" bson:"date,omitempty"`
	LeadInvestors []string `json:"lead_investors,omitempty" bson:"lead_investors,omitempty"`
	Sources       []string `json:"sources,omitempty"        bson:"sources,omitempty"`
}

type FundingCumulativePoint struct {
	Date             string   `json:"date"              bson:"date"`
	CumulativeAmount float64  `json:"cumulative_amount" bson:"cumulative_amount"`
	Sources          []string `json:"sources,omitempty" bson:"sources,omitempty"`
}

// FundingHistory is the funding-history provider payload.
type FundingHistory struct {
	CompanyName                 string                   `json:"company_name" bson:"company_name"`
	FundingRounds               []FundingRound           `json:"funding_rounds" bson:"funding_rounds"`
	FundingCumulativeTimeseries []FundingCumulativePoint `json:"funding_cumulative_timeseries" bson:"funding_cumulative_timeseries"`
	TotalFunding                float64                  `json:"total_funding" bson:"total_funding"`
	Currency                    string                   `json:"currency"      bson:"currency"`
	LastUpdated                 time.Time                `json:"last_updated,omitempty" bson:"last_updated,omitempty"`
}
