package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// FinanceService answers revenue, expense, margin, valuation and funding
// queries for a company.
type FinanceService struct{}

func NewFinanceService() *FinanceService { return &FinanceService{} }

func (s *FinanceService) RevenueAnalysis(ctx context.Context, q Query) (*models.RevenueAnalysis, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RevenueAnalysis{
		CompanyName: q.CompanyName,
		Currency:    "USD",
		RevenueTimeseries: []models.RevenueTimeSeriesPoint{
			{
				PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", Value: 1200000,
				Sources:    q.sources("https://crunchbase.com/technova", "https://news.ycombinator.com/item?id=123456"),
				Confidence: 0.9,
			},
			{
				PeriodStart: "2023-04-01", PeriodEnd: "2023-06-30", Value: 1350000,
				Sources:    q.sources("https://crunchbase.com/technova"),
				Confidence: 0.85,
			},
		},
		TotalRevenue: 2550000,
		LastUpdated:  time.Now().UTC(),
	}, nil
}

func (s *FinanceService) ExpenseAnalysis(ctx context.Context, q Query) (*models.ExpenseAnalysis, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	year := q.Year
	if year == 0 {
		year = 2023
	}
	return &models.ExpenseAnalysis{
		CompanyName: q.CompanyName,
		Year:        year,
		Expenses: []models.ExpenseCategoryBreakdown{
			{Category: "R&D", Amount: 500000, Currency: "USD", Sources: q.sources("https://publicfilings.com/technova"), Confidence: 0.8},
			{Category: "Marketing", Amount: 300000, Currency: "USD", Sources: q.sources("https://publicfilings.com/technova"), Confidence: 0.7},
		},
		ExpenseTimeseries: []models.ExpenseTimeSeriesPoint{
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", Category: "R&D", Value: 120000, Sources: q.sources("https://publicfilings.com/technova"), Confidence: 0.8},
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", Category: "Marketing", Value: 80000, Sources: q.sources("https://publicfilings.com/technova"), Confidence: 0.7},
		},
		TotalExpense: 800000,
		Currency:     "USD",
		LastUpdated:  time.Now().UTC(),
	}, nil
}

func (s *FinanceService) ProfitMargins(ctx context.Context, q Query) (*models.ProfitMargins, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	year := q.Year
	if year == 0 {
		year = 2023
	}
	return &models.ProfitMargins{
		CompanyName:     q.CompanyName,
		Year:            year,
		GrossMargin:     0.55,
		OperatingMargin: 0.32,
		NetMargin:       0.21,
		MarginTimeseries: []models.ProfitMarginTimeSeriesPoint{
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", GrossMargin: 0.53, OperatingMargin: 0.30, NetMargin: 0.20, Sources: q.sources("https://finance.yahoo.com/technova"), Confidence: 0.8},
			{PeriodStart: "2023-04-01", PeriodEnd: "2023-06-30", GrossMargin: 0.57, OperatingMargin: 0.34, NetMargin: 0.22, Sources: q.sources("https://finance.yahoo.com/technova"), Confidence: 0.85},
		},
		Currency:    "USD",
		Sources:     q.sources("https://finance.yahoo.com/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *FinanceService) ValuationEstimation(ctx context.Context, q Query) (*models.ValuationEstimation, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.ValuationEstimation{
		CompanyName: q.CompanyName,
		Valuation:   15000000,
		Currency:    "USD",
		AsOfDate:    "2024-05-01",
		ValuationTimeseries: []models.ValuationTimeSeriesPoint{
			{AsOfDate: "2023-06-01", Valuation: 12000000, Sources: q.sources("https://techcrunch.com/technova-funding"), Confidence: 0.7},
			{AsOfDate: "2024-05-01", Valuation: 15000000, Sources: q.sources("https://techcrunch.com/technova-funding", "https://crunchbase.com/technova"), Confidence: 0.8},
		},
		Sources:     q.sources("https://techcrunch.com/technova-funding", "https://crunchbase.com/technova"),
		Confidence:  0.8,
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *FinanceService) FundingHistory(ctx context.Context, q Query) (*models.FundingHistory, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.FundingHistory{
		CompanyName: q.CompanyName,
		FundingRounds: []models.FundingRound{
			{RoundType: "Seed", Amount: 2000000, Currency: "USD", Date: "2022-01-15", LeadInvestors: []string{"Alpha Ventures"}, Sources: q.sources("https://crunchbase.com/technova")},
			{RoundType: "Series A", Amount: 5000000, Currency: "USD", Date: "2023-03-10", LeadInvestors: []string{"Beta Capital", "Gamma Partners"}, Sources: q.sources("https://techcrunch.com/technova-funding")},
		},
		FundingCumulativeTimeseries: []models.FundingCumulativePoint{
			{Date: "2022-01-15", CumulativeAmount: 2000000, Sources: q.sources("https://crunchbase.com/technova")},
			{Date: "2023-03-10", CumulativeAmount: 7000000, Sources: q.sources("https://techcrunch.com/technova-funding")},
		},
		TotalFunding: 7000000,
		Currency:     "USD",
		LastUpdated:  time.Now().UTC(),
	}, nil
}
