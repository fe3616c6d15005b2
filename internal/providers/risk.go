package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// RiskAnalysisService answers regulatory, market, operational and legal
// risk queries.
type RiskAnalysisService struct{}

func NewRiskAnalysisService() *RiskAnalysisService { return &RiskAnalysisService{} }

func (s *RiskAnalysisService) RegulatoryRisks(ctx context.Context, q Query) (*models.RiskReport, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RiskReport{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Risks: []models.RiskItem{
			{Risk: "Data residency rules", Severity: "High", Description: "Tightening cross-border data transfer requirements.", Sources: q.sources("https://gdpr.eu/"), Confidence: 0.85},
			{Risk: "AI regulation", Severity: "Medium", Description: "Upcoming AI Act obligations for model providers.", Sources: q.sources("https://artificialintelligenceact.eu/"), Confidence: 0.7},
		},
		Summary:     "Regulatory exposure is concentrated in data residency and AI rules.",
		Sources:     q.sources("https://gdpr.eu/", "https://artificialintelligenceact.eu/"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RiskAnalysisService) MarketRisks(ctx context.Context, q Query) (*models.RiskReport, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RiskReport{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Risks: []models.RiskItem{
			{Risk: "Price competition", Severity: "High", Description: "Hyperscalers discounting aggressively.", Sources: q.sources("https://cbinsights.com/cloud-pricing"), Confidence: 0.8},
			{Risk: "Demand slowdown", Severity: "Medium", Description: "Enterprise IT budgets under pressure.", Sources: q.sources("https://gartner.com/it-spend"), Confidence: 0.65},
		},
		Summary:     "Pricing pressure is the dominant market risk.",
		Sources:     q.sources("https://cbinsights.com/cloud-pricing", "https://gartner.com/it-spend"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RiskAnalysisService) OperationalRisks(ctx context.Context, q Query) (*models.RiskReport, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RiskReport{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Risks: []models.RiskItem{
			{Risk: "Key person dependency", Severity: "Medium", Description: "Engineering leadership concentrated in two people.", Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.75},
			{Risk: "Single-region infrastructure", Severity: "High", Description: "Production runs in one cloud region.", Sources: q.sources("https://technova.com/status"), Confidence: 0.9},
		},
		Summary:     "Infrastructure concentration is the main operational risk.",
		Sources:     q.sources("https://technova.com/status"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *RiskAnalysisService) LegalRisks(ctx context.Context, q Query) (*models.RiskReport, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.RiskReport{
		CompanyName: q.CompanyName,
		Industry:    q.industryOr("Cloud Computing"),
		Region:      q.regionOr("Global"),
		Risks: []models.RiskItem{
			{Risk: "Patent dispute", Severity: "Medium", Description: "Pending infringement claim on storage tiering.", Sources: q.sources("https://courtlistener.com/technova"), Confidence: 0.6, CaseNumber: "5:23-cv-01042", DateFiled: "2023-02-20"},
		},
		Summary:     "One pending patent dispute, exposure considered limited.",
		Sources:     q.sources("https://courtlistener.com/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}
