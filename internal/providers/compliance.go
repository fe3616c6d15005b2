package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// RegulatoryComplianceService answers regulation and violation queries.
type RegulatoryComplianceService struct{}

func NewRegulatoryComplianceService() *RegulatoryComplianceService {
	return &RegulatoryComplianceService{}
}

func (s *RegulatoryComplianceService) ComplianceOverview(ctx context.Context, q Query) (*models.ComplianceOverview, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.ComplianceOverview{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Regulations: []models.Regulation{
			{Regulation: "GDPR", Description: "EU data privacy regulation.", Applicable: true, Sources: q.sources("https://gdpr.eu/")},
			{Regulation: "SOX", Description: "Sarbanes-Oxley Act.", Applicable: true, Sources: q.sources("https://sox.com/")},
			{Regulation: "HIPAA", Description: "US health data regulation.", Applicable: false, Sources: q.sources("https://hhs.gov/hipaa/")},
		},
		Summary:     "Key regulations include GDPR and SOX.",
		Sources:     q.sources("https://gdpr.eu/", "https://sox.com/"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RegulatoryComplianceService) ViolationHistory(ctx context.Context, q Query) (*models.ViolationHistory, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.ViolationHistory{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Violations: []models.Violation{
			{Violation: "Data Breach", Regulation: "GDPR", Date: "2022-05-10", Severity: "High", Description: "Unauthorized access to user data.", Sources: q.sources("https://databreaches.net/technova"), Resolved: true},
			{Violation: "Late SOX Filing", Regulation: "SOX", Date: "2023-01-15", Severity: "Medium", Description: "Delayed financial reporting.", Sources: q.sources("https://sox.com/technova-filing"), Resolved: false},
		},
		Summary:     "Two major violations in the last two years.",
		Sources:     q.sources("https://databreaches.net/technova", "https://sox.com/technova-filing"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RegulatoryComplianceService) ComplianceRisk(ctx context.Context, q Query) (*models.ComplianceRisk, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.ComplianceRisk{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Risks: []models.RiskItem{
			{Risk: "GDPR Fines", Severity: "High", Description: "Potential fines for non-compliance.", Sources: q.sources("https://gdpr.eu/fines/"), Confidence: 0.8},
			{Risk: "SOX Audit Failure", Severity: "Medium", Description: "Risk of failing SOX audit.", Sources: q.sources("https://sox.com/audit/"), Confidence: 0.7},
		},
		Summary:     "GDPR fines and SOX audit are the main compliance risks.",
		Sources:     q.sources("https://gdpr.eu/fines/", "https://sox.com/audit/"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RegulatoryComplianceService) RegionalCompliance(ctx context.Context, q Query) (*models.RegionalCompliance, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RegionalCompliance{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		RegionalCompliance: []models.RegionCompliance{
			{
				Region: "EU",
				Regulations: []models.Regulation{
					{Regulation: "GDPR", Description: "EU data privacy regulation.", Applicable: true, Sources: q.sources("https://gdpr.eu/")},
				},
				ComplianceScore: 0.85,
				Sources:         q.sources("https://gdpr.eu/"),
			},
			{
				Region: "US",
				Regulations: []models.Regulation{
					{Regulation: "SOX", Description: "Sarbanes-Oxley Act.", Applicable: true, Sources: q.sources("https://sox.com/")},
					{Regulation: "HIPAA", Description: "US health data regulation.", Applicable: false, Sources: q.sources("https://hhs.gov/hipaa/")},
				},
				ComplianceScore: 0.78,
				Sources:         q.sources("https://sox.com/", "https://hhs.gov/hipaa/"),
			},
		},
		Summary:     "EU compliance is higher than US compliance.",
		Sources:     q.sources("https://gdpr.eu/", "https://sox.com/", "https://hhs.gov/hipaa/"),
		LastUpdated: time.Now().UTC(),
	}, nil
}
