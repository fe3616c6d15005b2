package providers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/web"
)

// endpoint adapts one provider operation to an HTTP handler. The
// request body is the operation's query.
func endpoint[T any](fn func(context.Context, Query) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q Query
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			web.WriteError(w, apperr.Invalid("invalid request body"))
			return
		}
		res, err := fn(r.Context(), q)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, res)
	}
}

// Routes mounts one POST endpoint per provider operation.
func (p Set) Routes(r chi.Router) {
	r.Route("/finance", func(r chi.Router) {
		r.Post("/revenue_analysis", endpoint(p.Finance.RevenueAnalysis))
		r.Post("/expense_analysis", endpoint(p.Finance.ExpenseAnalysis))
		r.Post("/profit_margins", endpoint(p.Finance.ProfitMargins))
		r.Post("/valuation_estimation", endpoint(p.Finance.ValuationEstimation))
		r.Post("/funding_history", endpoint(p.Finance.FundingHistory))
	})

	r.Route("/linkedin-team", func(r chi.Router) {
		r.Post("/team_overview", endpoint(p.Team.TeamOverview))
		r.Post("/individual_performance", endpoint(p.Team.IndividualPerformance))
		r.Post("/org_structure", endpoint(p.Team.OrgStructure))
		r.Post("/team_growth", endpoint(p.Team.TeamGrowth))
	})

	r.Route("/market-analysis", func(r chi.Router) {
		r.Post("/market_trends", endpoint(p.Market.MarketTrends))
		r.Post("/competitive_analysis", endpoint(p.Market.CompetitiveAnalysis))
		r.Post("/growth_projections", endpoint(p.Market.GrowthProjections))
		r.Post("/regional_trends", endpoint(p.Market.RegionalTrends))
	})

	r.Route("/partnership-network", func(r chi.Router) {
		r.Post("/partner_list", endpoint(p.Partnership.PartnerList))
		r.Post("/strategic_alliances", endpoint(p.Partnership.StrategicAlliances))
		r.Post("/network_strength", endpoint(p.Partnership.NetworkStrength))
		r.Post("/partnership_trends", endpoint(p.Partnership.PartnershipTrends))
	})

	r.Route("/regulatory-compliance", func(r chi.Router) {
		r.Post("/compliance_overview", endpoint(p.Compliance.ComplianceOverview))
		r.Post("/violation_history", endpoint(p.Compliance.ViolationHistory))
		r.Post("/compliance_risk", endpoint(p.Compliance.ComplianceRisk))
		r.Post("/regional_compliance", endpoint(p.Compliance.RegionalCompliance))
	})

	r.Route("/customer-sentiment", func(r chi.Router) {
		r.Post("/sentiment_summary", endpoint(p.Sentiment.SentimentSummary))
		r.Post("/customer_feedback", endpoint(p.Sentiment.CustomerFeedback))
		r.Post("/brand_reputation", endpoint(p.Sentiment.BrandReputation))
		r.Post("/sentiment_comparison", endpoint(p.Sentiment.SentimentComparison))
	})

	r.Route("/risk-analysis", func(r chi.Router) {
		r.Post("/regulatory_risks", endpoint(p.Risk.RegulatoryRisks))
		r.Post("/market_risks", endpoint(p.Risk.MarketRisks))
		r.Post("/operational_risks", endpoint(p.Risk.OperationalRisks))
		r.Post("/legal_risks", endpoint(p.Risk.LegalRisks))
	})
}
