package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// MarketAnalysisService answers market trend and competition queries.
type MarketAnalysisService struct{}

func NewMarketAnalysisService() *MarketAnalysisService { return &MarketAnalysisService{} }

func (s *MarketAnalysisService) MarketTrends(ctx context.Context, q Query) (*models.MarketTrends, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.MarketTrends{
		Industry: q.industryOr("Cloud Computing"),
		Region:   q.regionOr("Global"),
		TrendsTimeseries: []models.TrendPoint{
			{PeriodStart: "2022-01-01", PeriodEnd: "2022-12-31", Value: 350, Metric: "Market Size (B USD)", Sources: q.sources("https://gartner.com/report1"), Confidence: 0.9},
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-12-31", Value: 400, Metric: "Market Size (B USD)", Sources: q.sources("https://gartner.com/report2"), Confidence: 0.92},
		},
		Summary:     "Cloud computing market is growing rapidly with a CAGR of 15%.",
		Sources:     q.sources("https://gartner.com/report1", "https://gartner.com/report2"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *MarketAnalysisService) CompetitiveAnalysis(ctx context.Context, q Query) (*models.CompetitiveAnalysis, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.CompetitiveAnalysis{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		TopCompetitors: []models.Competitor{
			{Name: "CloudX", Domain: "cloudx.com", MarketShare: 0.25, Revenue: 100000000, GrowthRate: 0.18, Strengths: []string{"Brand", "Scale"}, Weaknesses: []string{"Legacy tech"}, Sources: q.sources("https://cbinsights.com/cloudx")},
			{Name: "SkyNet", Domain: "skynet.com", MarketShare: 0.20, Revenue: 80000000, GrowthRate: 0.15, Strengths: []string{"AI capabilities"}, Weaknesses: []string{"Limited regions"}, Sources: q.sources("https://cbinsights.com/skynet")},
		},
		Summary:     q.CompanyName + " faces strong competition from CloudX and SkyNet.",
		Sources:     q.sources("https://cbinsights.com/cloudx", "https://cbinsights.com/skynet"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *MarketAnalysisService) GrowthProjections(ctx context.Context, q Query) (*models.GrowthProjections, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.GrowthProjections{
		Industry: q.industryOr("Cloud Computing"),
		Region:   q.regionOr("Global"),
		ProjectionsTimeseries: []models.ProjectionPoint{
			{PeriodStart: "2024-01-01", PeriodEnd: "2024-12-31", ProjectedValue: 460, Metric: "Market Size (B USD)", Sources: q.sources("https://forrester.com/projection2024"), Confidence: 0.93},
			{PeriodStart: "2025-01-01", PeriodEnd: "2025-12-31", ProjectedValue: 530, Metric: "Market Size (B USD)", Sources: q.sources("https://forrester.com/projection2025"), Confidence: 0.94},
		},
		Summary:     "Market size is projected to reach $530B by 2025.",
		Sources:     q.sources("https://forrester.com/projection2024", "https://forrester.com/projection2025"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *MarketAnalysisService) RegionalTrends(ctx context.Context, q Query) (*models.RegionalTrends, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RegionalTrends{
		Industry: q.industryOr("Cloud Computing"),
		RegionalTrends: []models.RegionalTrendPoint{
			{Region: "North America", PeriodStart: "2023-01-01", PeriodEnd: "2023-12-31", Value: 180, Metric: "Market Size (B USD)", Sources: q.sources("https://statista.com/na2023"), Confidence: 0.91},
			{Region: "Europe", PeriodStart: "2023-01-01", PeriodEnd: "2023-12-31", Value: 120, Metric: "Market Size (B USD)", Sources: q.sources("https://statista.com/eu2023"), Confidence: 0.89},
		},
		Summary:     "North America leads in market size, followed by Europe.",
		Sources:     q.sources("https://statista.com/na2023", "https://statista.com/eu2023"),
		LastUpdated: time.Now().UTC(),
	}, nil
}
