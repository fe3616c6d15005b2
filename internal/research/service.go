package research

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/providers"
)

// ReportStore persists assembled research snapshots.
type ReportStore interface {
	SaveSnapshot(ctx context.Context, report *models.CompanyReport) error
	Latest(ctx context.Context, company string) (*models.CompanyReport, error)
}

// Service fans out over every provider operation and assembles the
// composite company report. Individual provider failures degrade to
// absent fields, never to a failed run.
type Service struct {
	providers providers.Set
	reports   ReportStore
	llm       agent.Agent
	parser    *agent.OutputParser
	limit     int
}

func NewService(p providers.Set, reports ReportStore, llm agent.Agent, parser *agent.OutputParser, concurrency int) *Service {
	if concurrency < 1 {
		concurrency = 4
	}
	return &Service{providers: p, reports: reports, llm: llm, parser: parser, limit: concurrency}
}

// fetch schedules one provider call. On failure the destination stays
// nil and the error is logged; the returned nil keeps sibling calls
// running.
func fetch[T any](g *errgroup.Group, ctx context.Context, op string, dst **T, call func(context.Context, providers.Query) (*T, error), q providers.Query) {
	g.Go(func() error {
		v, err := call(ctx, q)
		if err != nil {
			log.Printf("research: %s: %v", op, err)
			return nil
		}
		*dst = v
		return nil
	})
}

// Analyze runs every provider operation for the company with bounded
// concurrency and returns the assembled report. useKnowledgeBase is
// passed through unchanged on every provider call. The snapshot is
// persisted best-effort: a store failure is logged, not returned.
func (s *Service) Analyze(ctx context.Context, company string, useKnowledgeBase bool) (*models.CompanyReport, error) {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil, apperr.Invalid("company_name is required")
	}
	q := providers.Query{CompanyName: name, UseKnowledgeBase: useKnowledgeBase}

	var (
		fin   models.FinanceSection
		team  models.TeamSection
		mkt   models.MarketAnalysisSection
		part  models.PartnershipNetworkSection
		comp  models.RegulatoryComplianceSection
		sent  models.CustomerSentimentSection
		risks models.RiskAnalysisSection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	fetch(g, gctx, "revenue_analysis", &fin.Revenue, s.providers.Finance.RevenueAnalysis, q)
	fetch(g, gctx, "expense_analysis", &fin.Expenses, s.providers.Finance.ExpenseAnalysis, q)
	fetch(g, gctx, "profit_margins", &fin.Margins, s.providers.Finance.ProfitMargins, q)
	fetch(g, gctx, "valuation_estimation", &fin.Valuation, s.providers.Finance.ValuationEstimation, q)
	fetch(g, gctx, "funding_history", &fin.Funding, s.providers.Finance.FundingHistory, q)

	fetch(g, gctx, "team_overview", &team.TeamOverview, s.providers.Team.TeamOverview, q)
	fetch(g, gctx, "individual_performance", &team.IndividualPerformance, s.providers.Team.IndividualPerformance, q)
	fetch(g, gctx, "org_structure", &team.OrgStructure, s.providers.Team.OrgStructure, q)
	fetch(g, gctx, "team_growth", &team.TeamGrowth, s.providers.Team.TeamGrowth, q)

	fetch(g, gctx, "market_trends", &mkt.MarketTrends, s.providers.Market.MarketTrends, q)
	fetch(g, gctx, "competitive_analysis", &mkt.CompetitiveAnalysis, s.providers.Market.CompetitiveAnalysis, q)
	fetch(g, gctx, "growth_projections", &mkt.GrowthProjections, s.providers.Market.GrowthProjections, q)
	fetch(g, gctx, "regional_trends", &mkt.RegionalTrends, s.providers.Market.RegionalTrends, q)

	fetch(g, gctx, "partner_list", &part.PartnerList, s.providers.Partnership.PartnerList, q)
	fetch(g, gctx, "strategic_alliances", &part.StrategicAlliances, s.providers.Partnership.StrategicAlliances, q)
	fetch(g, gctx, "network_strength", &part.NetworkStrength, s.providers.Partnership.NetworkStrength, q)
	fetch(g, gctx, "partnership_trends", &part.PartnershipTrends, s.providers.Partnership.PartnershipTrends, q)

	fetch(g, gctx, "compliance_overview", &comp.ComplianceOverview, s.providers.Compliance.ComplianceOverview, q)
	fetch(g, gctx, "violation_history", &comp.ViolationHistory, s.providers.Compliance.ViolationHistory, q)
	fetch(g, gctx, "compliance_risk", &comp.ComplianceRisk, s.providers.Compliance.ComplianceRisk, q)
	fetch(g, gctx, "regional_compliance", &comp.RegionalCompliance, s.providers.Compliance.RegionalCompliance, q)

	fetch(g, gctx, "sentiment_summary", &sent.SentimentSummary, s.providers.Sentiment.SentimentSummary, q)
	fetch(g, gctx, "customer_feedback", &sent.CustomerFeedback, s.providers.Sentiment.CustomerFeedback, q)
	fetch(g, gctx, "brand_reputation", &sent.BrandReputation, s.providers.Sentiment.BrandReputation, q)
	fetch(g, gctx, "sentiment_comparison", &sent.SentimentComparison, s.providers.Sentiment.SentimentComparison, q)

	fetch(g, gctx, "regulatory_risks", &risks.RegulatoryRisks, s.providers.Risk.RegulatoryRisks, q)
	fetch(g, gctx, "market_risks", &risks.MarketRisks, s.providers.Risk.MarketRisks, q)
	fetch(g, gctx, "operational_risks", &risks.OperationalRisks, s.providers.Risk.OperationalRisks, q)
	fetch(g, gctx, "legal_risks", &risks.LegalRisks, s.providers.Risk.LegalRisks, q)

	g.Wait()

	report := &models.CompanyReport{CompanyName: name}
	if fin != (models.FinanceSection{}) {
		report.Finance = &fin
	}
	if team != (models.TeamSection{}) {
		report.Team = &team
	}
	if mkt != (models.MarketAnalysisSection{}) {
		report.MarketAnalysis = &mkt
	}
	if part != (models.PartnershipNetworkSection{}) {
		report.PartnershipNetwork = &part
	}
	if comp != (models.RegulatoryComplianceSection{}) {
		report.RegulatoryCompliance = &comp
	}
	if sent != (models.CustomerSentimentSection{}) {
		report.CustomerSentiment = &sent
	}
	if risks != (models.RiskAnalysisSection{}) {
		report.RiskAnalysis = &risks
	}

	if s.reports != nil {
		if err := s.reports.SaveSnapshot(ctx, report); err != nil {
			log.Printf("research: snapshot for %q not saved: %v", name, err)
		}
	}
	return report, nil
}

// Snapshot returns the last persisted report for a company.
func (s *Service) Snapshot(ctx context.Context, company string) (*models.CompanyReport, error) {
	name := strings.TrimSpace(company)
	if name == "" {
		return nil, apperr.Invalid("company_name is required")
	}
	return s.reports.Latest(ctx, name)
}

const summaryPrompt = `You are a venture analyst. Given a structured research report ` +
	`on a company, write an executive summary for an investment committee: a short ` +
	`overview, the strongest highlights, the key risks and a one-line recommendation. ` +
	`Only use facts present in the report.`

// Summarize digests a company's latest report into a typed executive
// summary. The free-text model answer is coerced through the output
// parser; non-conforming output fails with a parse error rather than
// being patched up.
func (s *Service) Summarize(ctx context.Context, company string) (*models.ExecutiveSummary, error) {
	report, err := s.Snapshot(ctx, company)
	if apperr.IsNotFound(err) {
		report, err = s.Analyze(ctx, company, false)
	}
	if err != nil {
		return nil, err
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	res, err := s.llm.Run(ctx, agent.Request{
		System:  summaryPrompt,
		History: []models.TraceMessage{{Role: models.SenderUser, Content: string(reportJSON)}},
	})
	if err != nil {
		return nil, fmt.Errorf("summary turn: %w", err)
	}

	summary := &models.ExecutiveSummary{CompanyName: report.CompanyName}
	if err := s.parser.Parse(ctx, res.Content, summary); err != nil {
		return nil, err
	}
	return summary, nil
}
