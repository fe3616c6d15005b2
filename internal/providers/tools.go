package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
)

var filterSchemas = map[string]map[string]any{
	"domain":          {"type": "string", "description": "Company web domain"},
	"industry":        {"type": "string", "description": "Industry to scope the analysis to"},
	"region":          {"type": "string", "description": "Geographic region filter"},
	"product":         {"type": "string", "description": "Product name filter"},
	"individual_name": {"type": "string", "description": "Person to analyze"},
	"year":            {"type": "integer", "description": "Fiscal year filter"},
	"start_date":      {"type": "string", "description": "Period start, YYYY-MM-DD"},
	"end_date":        {"type": "string", "description": "Period end, YYYY-MM-DD"},
}

func querySchema(filters ...string) map[string]any {
	props := map[string]any{
		"company_name":       map[string]any{"type": "string", "description": "Name of the company to analyze"},
		"use_knowledge_base": map[string]any{"type": "boolean", "description": "Answer from the internal knowledge base instead of public sources"},
	}
	for _, f := range filters {
		props[f] = filterSchemas[f]
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"company_name"},
	}
}

func queryTool[T any](name, desc string, params map[string]any, fn func(context.Context, Query) (*T, error)) agent.Tool {
	return agent.Tool{
		Name:        name,
		Description: desc,
		Parameters:  params,
		Run: func(ctx context.Context, args json.RawMessage) (any, error) {
			var q Query
			if len(args) > 0 {
				if err := json.Unmarshal(args, &q); err != nil {
					return nil, fmt.Errorf("%s: bad arguments: %w", name, err)
				}
			}
			return fn(ctx, q)
		},
	}
}

// ToolRegistry exposes every provider operation as a callable tool for
// the conversational agent.
func (p Set) ToolRegistry() *agent.Registry {
	reg := agent.NewRegistry()
	for _, t := range []agent.Tool{
		queryTool("revenue_analysis", "Revenue timeseries and totals for a company", querySchema("domain", "start_date", "end_date"), p.Finance.RevenueAnalysis),
		queryTool("expense_analysis", "Expense breakdown by category for a company", querySchema("domain", "year"), p.Finance.ExpenseAnalysis),
		queryTool("profit_margins", "Gross, operating and net margins for a company", querySchema("domain", "year"), p.Finance.ProfitMargins),
		queryTool("valuation_estimation", "Latest valuation estimate and history for a company", querySchema("domain"), p.Finance.ValuationEstimation),
		queryTool("funding_history", "Funding rounds and cumulative capital raised", querySchema("domain"), p.Finance.FundingHistory),

		queryTool("team_overview", "Headcount and role breakdown for a company", querySchema("domain"), p.Team.TeamOverview),
		queryTool("individual_performance", "Public performance signals for one person at a company", querySchema("domain", "individual_name"), p.Team.IndividualPerformance),
		queryTool("org_structure", "Reporting structure of a company's leadership", querySchema("domain"), p.Team.OrgStructure),
		queryTool("team_growth", "Hiring and attrition trends for a company", querySchema("domain", "start_date", "end_date"), p.Team.TeamGrowth),

		queryTool("market_trends", "Market size trends for a company's industry", querySchema("industry", "region", "start_date", "end_date"), p.Market.MarketTrends),
		queryTool("competitive_analysis", "Top competitors and their positioning", querySchema("domain", "industry", "region"), p.Market.CompetitiveAnalysis),
		queryTool("growth_projections", "Projected market growth for an industry", querySchema("industry", "region", "start_date", "end_date"), p.Market.GrowthProjections),
		queryTool("regional_trends", "Market size by geographic region", querySchema("industry", "region"), p.Market.RegionalTrends),

		queryTool("partner_list", "Known partners of a company", querySchema("domain"), p.Partnership.PartnerList),
		queryTool("strategic_alliances", "Strategic alliances and their impact", querySchema("domain"), p.Partnership.StrategicAlliances),
		queryTool("network_strength", "Partnership network strength metrics", querySchema("domain"), p.Partnership.NetworkStrength),
		queryTool("partnership_trends", "Partnership formation trends over time", querySchema("domain", "start_date", "end_date"), p.Partnership.PartnershipTrends),

		queryTool("compliance_overview", "Regulations applicable to a company", querySchema("industry", "region"), p.Compliance.ComplianceOverview),
		queryTool("violation_history", "Past regulatory violations of a company", querySchema("industry", "region"), p.Compliance.ViolationHistory),
		queryTool("compliance_risk", "Open compliance risks of a company", querySchema("industry", "region"), p.Compliance.ComplianceRisk),
		queryTool("regional_compliance", "Compliance posture broken down by region", querySchema("industry"), p.Compliance.RegionalCompliance),

		queryTool("sentiment_summary", "Aggregate customer sentiment for a company", querySchema("domain", "product", "region", "start_date", "end_date"), p.Sentiment.SentimentSummary),
		queryTool("customer_feedback", "Individual customer feedback items", querySchema("domain", "product", "region", "start_date", "end_date"), p.Sentiment.CustomerFeedback),
		queryTool("brand_reputation", "Brand reputation score and trend", querySchema("domain", "region", "start_date", "end_date"), p.Sentiment.BrandReputation),
		queryTool("sentiment_comparison", "Sentiment compared against competitors", querySchema("domain", "region"), p.Sentiment.SentimentComparison),

		queryTool("regulatory_risks", "Regulatory risks facing a company", querySchema("industry", "region"), p.Risk.RegulatoryRisks),
		queryTool("market_risks", "Market risks facing a company", querySchema("industry", "region"), p.Risk.MarketRisks),
		queryTool("operational_risks", "Operational risks facing a company", querySchema("industry", "region"), p.Risk.OperationalRisks),
		queryTool("legal_risks", "Legal disputes and litigation risks", querySchema("industry", "region"), p.Risk.LegalRisks),
	} {
		reg.Register(t)
	}
	return reg
}
