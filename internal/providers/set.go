package providers

// Set bundles the seven provider handles the orchestrator and the tool
// registry fan out over.
type Set struct {
	Finance     *FinanceService
	Team        *TeamService
	Market      *MarketAnalysisService
	Partnership *PartnershipNetworkService
	Compliance  *RegulatoryComplianceService
	Sentiment   *CustomerSentimentService
	Risk        *RiskAnalysisService
}

func NewSet() Set {
	return Set{
		Finance:     NewFinanceService(),
		Team:        NewTeamService(),
		Market:      NewMarketAnalysisService(),
		Partnership: NewPartnershipNetworkService(),
		Compliance:  NewRegulatoryComplianceService(),
		Sentiment:   NewCustomerSentimentService(),
		Risk:        NewRiskAnalysisService(),
	}
}
