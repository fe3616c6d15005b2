package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// PartnershipNetworkService answers partner and alliance queries.
type PartnershipNetworkService struct{}

func NewPartnershipNetworkService() *PartnershipNetworkService {
	return &PartnershipNetworkService{}
}

func (s *PartnershipNetworkService) PartnerList(ctx context.Context, q Query) (*models.PartnerList, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.PartnerList{
		CompanyName: q.CompanyName,
		Partners: []models.Partner{
			{Name: "CloudX", Domain: "cloudx.com", PartnershipType: "Technology", Since: "2021-03-01", Sources: q.sources("https://cloudx.com/partners")},
			{Name: "DataBridge", Domain: "databridge.com", PartnershipType: "Channel", Since: "2022-07-15", Sources: q.sources("https://databridge.com/partners")},
		},
		Summary:     q.CompanyName + " has two major partners in technology and channel.",
		Sources:     q.sources("https://cloudx.com/partners", "https://databridge.com/partners"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *PartnershipNetworkService) StrategicAlliances(ctx context.Context, q Query) (*models.StrategicAlliances, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.StrategicAlliances{
		CompanyName: q.CompanyName,
		Alliances: []models.Alliance{
			{Partner: "CloudX", ImpactArea: "Product Integration", ImpactScore: 0.9, Description: "Joint cloud product offering.", Sources: q.sources("https://cloudx.com/alliances")},
			{Partner: "DataBridge", ImpactArea: "Market Expansion", ImpactScore: 0.8, Description: "Expanded reach in EMEA.", Sources: q.sources("https://databridge.com/alliances")},
		},
		Summary:     "Alliances have led to product integration and market expansion.",
		Sources:     q.sources("https://cloudx.com/alliances", "https://databridge.com/alliances"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *PartnershipNetworkService) NetworkStrength(ctx context.Context, q Query) (*models.NetworkStrength, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.NetworkStrength{
		CompanyName: q.CompanyName,
		NetworkMetrics: []models.NetworkMetric{
			{Metric: "Partner Count", Value: 12, Sources: q.sources("https://technova.com/network"), Confidence: 0.9},
			{Metric: "Industry Connections", Value: 35, Sources: q.sources("https://technova.com/network"), Confidence: 0.85},
		},
		Summary:     q.CompanyName + " has a strong network in the cloud industry.",
		Sources:     q.sources("https://technova.com/network"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *PartnershipNetworkService) PartnershipTrends(ctx context.Context, q Query) (*models.PartnershipTrends, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.PartnershipTrends{
		CompanyName: q.CompanyName,
		PartnershipTrendsTimeseries: []models.PartnershipTrendPoint{
			{PeriodStart: "2022-01-01", PeriodEnd: "2022-12-31", NewPartnerships: 3, EndedPartnerships: 1, NetGrowth: 2, Sources: q.sources("https://technova.com/partners"), Confidence: 0.8},
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-12-31", NewPartnerships: 4, EndedPartnerships: 0, NetGrowth: 4, Sources: q.sources("https://technova.com/partners"), Confidence: 0.85},
		},
		Summary:     "Partnerships are growing year over year.",
		Sources:     q.sources("https://technova.com/partners"),
		LastUpdated: time.Now().UTC(),
	}, nil
}
