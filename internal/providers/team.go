package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// TeamService answers LinkedIn-style team composition queries.
type TeamService struct{}

func NewTeamService() *TeamService { return &TeamService{} }

func (s *TeamService) TeamOverview(ctx context.Context, q Query) (*models.TeamOverview, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.TeamOverview{
		CompanyName:    q.CompanyName,
		TotalEmployees: 120,
		RolesBreakdown: []models.TeamRoleBreakdown{
			{Role: "Engineering", Count: 60, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.95},
			{Role: "Product", Count: 20, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.9},
			{Role: "Sales", Count: 15, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.85},
			{Role: "Marketing", Count: 10, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.8},
			{Role: "Leadership", Count: 5, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.99},
		},
		Locations:   []string{"San Francisco", "Remote"},
		Sources:     q.sources("https://linkedin.com/company/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *TeamService) IndividualPerformance(ctx context.Context, q Query) (*models.IndividualPerformance, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	name := q.IndividualName
	if name == "" {
		name = "Jane Doe"
	}
	return &models.IndividualPerformance{
		CompanyName:    q.CompanyName,
		IndividualName: name,
		Title:          "VP of Engineering",
		TenureYears:    3.5,
		PerformanceMetrics: []models.PerformanceMetric{
			{Metric: "Endorsements", Value: 120, Sources: q.sources("https://linkedin.com/in/janedoe"), Confidence: 0.9},
			{Metric: "Connections", Value: 800, Sources: q.sources("https://linkedin.com/in/janedoe"), Confidence: 0.95},
			{Metric: "Articles Published", Value: 5, Sources: q.sources("https://linkedin.com/in/janedoe"), Confidence: 0.8},
		},
		Sources:     q.sources("https://linkedin.com/in/janedoe"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *TeamService) OrgStructure(ctx context.Context, q Query) (*models.OrgStructure, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.OrgStructure{
		CompanyName: q.CompanyName,
		OrgChart: []models.OrgChartEntry{
			{Name: "Jane Doe", Title: "VP of Engineering", ReportsTo: "CEO", DirectReports: []string{"John Smith", "Alice Lee"}, Sources: q.sources("https://linkedin.com/in/janedoe")},
			{Name: "John Smith", Title: "Engineering Manager", ReportsTo: "Jane Doe", DirectReports: []string{"Bob Brown"}, Sources: q.sources("https://linkedin.com/in/johnsmith")},
			{Name: "Alice Lee", Title: "Engineering Manager", ReportsTo: "Jane Doe", DirectReports: []string{}, Sources: q.sources("https://linkedin.com/in/alicelee")},
			{Name: "Bob Brown", Title: "Software Engineer", ReportsTo: "John Smith", DirectReports: []string{}, Sources: q.sources("https://linkedin.com/in/bobbrown")},
		},
		Sources:     q.sources("https://linkedin.com/company/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *TeamService) TeamGrowth(ctx context.Context, q Query) (*models.TeamGrowth, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.TeamGrowth{
		CompanyName: q.CompanyName,
		TeamGrowthTimeseries: []models.TeamGrowthPoint{
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", Hires: 10, Attrition: 2, NetGrowth: 8, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.9},
			{PeriodStart: "2023-04-01", PeriodEnd: "2023-06-30", Hires: 7, Attrition: 3, NetGrowth: 4, Sources: q.sources("https://linkedin.com/company/technova"), Confidence: 0.85},
		},
		TotalHires:     17,
		TotalAttrition: 5,
		NetGrowth:      12,
		Sources:        q.sources("https://linkedin.com/company/technova"),
		LastUpdated:    time.Now().UTC(),
	}, nil
}
