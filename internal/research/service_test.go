package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/providers"
)

type fakeReportStore struct {
	saved  []*models.CompanyReport
	latest *models.CompanyReport
	err    error
}

func (f *fakeReportStore) SaveSnapshot(ctx context.Context, r *models.CompanyReport) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeReportStore) Latest(ctx context.Context, company string) (*models.CompanyReport, error) {
	if f.latest == nil {
		return nil, apperr.NotFound(company, "no research snapshot for company")
	}
	return f.latest, nil
}

type fakeAgent struct {
	result *agent.Result
	err    error
}

func (f *fakeAgent) Run(ctx context.Context, req agent.Request) (*agent.Result, error) {
	return f.result, f.err
}

func (f *fakeAgent) RunStream(ctx context.Context, req agent.Request, emit func(string) error) (*agent.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := emit(f.result.Content); err != nil {
		return nil, err
	}
	return f.result, nil
}

func newTestService(reports ReportStore) *Service {
	return NewService(providers.NewSet(), reports, nil, nil, 4)
}

func TestFetchPartialFailure(t *testing.T) {
	fail := errors.New("provider down")
	call := func(ok bool, v string) func(context.Context, providers.Query) (*string, error) {
		return func(context.Context, providers.Query) (*string, error) {
			if !ok {
				return nil, fail
			}
			return &v, nil
		}
	}

	var a, b, c *string
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(2)
	fetch(g, ctx, "op_a", &a, call(true, "A"), providers.Query{})
	fetch(g, ctx, "op_b", &b, call(false, ""), providers.Query{})
	fetch(g, ctx, "op_c", &c, call(true, "C"), providers.Query{})
	require.NoError(t, g.Wait())

	require.NotNil(t, a)
	assert.Equal(t, "A", *a)
	assert.Nil(t, b)
	require.NotNil(t, c)
	assert.Equal(t, "C", *c)
}

func TestAnalyzeEmptyCompanyName(t *testing.T) {
	reports := &fakeReportStore{}
	svc := newTestService(reports)

	_, err := svc.Analyze(context.Background(), "   ", false)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.Empty(t, reports.saved, "no snapshot should be written for invalid input")
}

func TestAnalyzeAssemblesAllSections(t *testing.T) {
	reports := &fakeReportStore{}
	svc := newTestService(reports)

	report, err := svc.Analyze(context.Background(), "TechNova", false)
	require.NoError(t, err)

	assert.Equal(t, "TechNova", report.CompanyName)
	require.NotNil(t, report.Finance)
	assert.NotNil(t, report.Finance.Revenue)
	assert.NotNil(t, report.Finance.Funding)
	require.NotNil(t, report.Team)
	assert.NotNil(t, report.Team.OrgStructure)
	require.NotNil(t, report.MarketAnalysis)
	require.NotNil(t, report.PartnershipNetwork)
	require.NotNil(t, report.RegulatoryCompliance)
	require.NotNil(t, report.CustomerSentiment)
	require.NotNil(t, report.RiskAnalysis)
	assert.NotNil(t, report.RiskAnalysis.LegalRisks)

	require.Len(t, reports.saved, 1)
	assert.Same(t, report, reports.saved[0])
}

func TestAnalyzeSnapshotFailureIsBestEffort(t *testing.T) {
	reports := &fakeReportStore{err: errors.New("mongo down")}
	svc := newTestService(reports)

	report, err := svc.Analyze(context.Background(), "TechNova", false)
	require.NoError(t, err)
	assert.NotNil(t, report.Finance)
}

func TestAnalyzeKnowledgeBaseFlagReachesProviders(t *testing.T) {
	svc := newTestService(&fakeReportStore{})

	report, err := svc.Analyze(context.Background(), "TechNova", true)
	require.NoError(t, err)
	require.NotNil(t, report.Finance)
	require.NotNil(t, report.Finance.Revenue)
	for _, point := range report.Finance.Revenue.RevenueTimeseries {
		assert.Equal(t, []string{"Knowledge Base"}, point.Sources)
	}
	require.NotNil(t, report.CustomerSentiment)
	require.NotNil(t, report.CustomerSentiment.SentimentSummary)
	assert.Equal(t, []string{"Knowledge Base"}, report.CustomerSentiment.SentimentSummary.Sources)

	report, err = svc.Analyze(context.Background(), "TechNova", false)
	require.NoError(t, err)
	require.NotNil(t, report.Finance.Revenue)
	assert.NotEqual(t, []string{"Knowledge Base"}, report.Finance.Revenue.RevenueTimeseries[0].Sources)
}

func TestSummarize(t *testing.T) {
	reports := &fakeReportStore{
		latest: &models.CompanyReport{CompanyName: "TechNova"},
	}
	ag := &fakeAgent{result: &agent.Result{
		Content: "TechNova is growing fast with solid margins but open compliance questions.",
		Model:   "gpt-4o",
	}}
	parser := agent.NewOutputParser(staticCompleter(`{
		"company_name": "TechNova",
		"overview": "Fast-growing analytics company.",
		"highlights": ["Revenue up 30% QoQ"],
		"key_risks": ["Open GDPR review"],
		"recommendation": "Proceed to diligence."
	}`))

	svc := NewService(providers.NewSet(), reports, ag, parser, 4)
	summary, err := svc.Summarize(context.Background(), "TechNova")
	require.NoError(t, err)
	assert.Equal(t, "TechNova", summary.CompanyName)
	assert.Equal(t, []string{"Revenue up 30% QoQ"}, summary.Highlights)
	assert.Equal(t, "Proceed to diligence.", summary.Recommendation)
}

func TestSummarizeRunsResearchWhenNoSnapshot(t *testing.T) {
	reports := &fakeReportStore{}
	ag := &fakeAgent{result: &agent.Result{Content: "summary text"}}
	parser := agent.NewOutputParser(staticCompleter(`{
		"company_name": "Finlytics",
		"overview": "Compliance tooling for banks.",
		"highlights": [],
		"key_risks": [],
		"recommendation": "Watch."
	}`))

	svc := NewService(providers.NewSet(), reports, ag, parser, 4)
	summary, err := svc.Summarize(context.Background(), "Finlytics")
	require.NoError(t, err)
	assert.Equal(t, "Finlytics", summary.CompanyName)
	assert.Len(t, reports.saved, 1, "fresh research should have been persisted")
}

// staticCompleter satisfies agent.TextCompleter with a canned response.
type staticCompleter string

func (s staticCompleter) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	return string(s), nil
}
