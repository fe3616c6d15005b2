package models

// FinanceSection groups the finance provider's sub-results. A nil field
// means that provider call failed and was degraded to absent.
type FinanceSection struct {
	Revenue   *RevenueAnalysis     `json:"revenue"   bson:"revenue"`
	Expenses  *ExpenseAnalysis     `json:"expenses"  bson:"expenses"`
	Margins   *ProfitMargins       `json:"margins"   bson:"margins"`
	Valuation *ValuationEstimation `json:"valuation" bson:"valuation"`
	Funding   *FundingHistory      `json:"funding"   bson:"funding"`
}

type TeamSection struct {
	TeamOverview          *TeamOverview          `json:"team_overview"          bson:"team_overview"`
	IndividualPerformance *IndividualPerformance `json:"individual_performance" bson:"individual_performance"`
	OrgStructure          *OrgStructure          `json:"org_structure"          bson:"org_structure"`
	TeamGrowth            *TeamGrowth            `json:"team_growth"            bson:"team_growth"`
}

type MarketAnalysisSection struct {
	MarketTrends        *MarketTrends        `json:"market_trends"        bson:"market_trends"`
	CompetitiveAnalysis *CompetitiveAnalysis `json:"competitive_analysis" bson:"competitive_analysis"`
	GrowthProjections   *GrowthProjections   `json:"growth_projections"   bson:"growth_projections"`
	RegionalTrends      *RegionalTrends      `json:"regional_trends"      bson:"regional_trends"`
}

type PartnershipNetworkSection struct {
	PartnerList        *PartnerList        `json:"partner_list"        bson:"partner_list"`
	StrategicAlliances *StrategicAlliances `json:"strategic_alliances" bson:"strategic_alliances"`
	NetworkStrength    *NetworkStrength    `json:"network_strength"    bson:"network_strength"`
	PartnershipTrends  *PartnershipTrends  `json:"partnership_trends"  bson:"partnership_trends"`
}

type RegulatoryComplianceSection struct {
	ComplianceOverview *ComplianceOverview `json:"compliance_overview" bson:"compliance_overview"`
	ViolationHistory   *ViolationHistory   `json:"violation_history"   bson:"violation_history"`
	ComplianceRisk     *ComplianceRisk     `json:"compliance_risk"     bson:"compliance_risk"`
	RegionalCompliance *RegionalCompliance `json:"regional_compliance" bson:"regional_compliance"`
}

type CustomerSentimentSection struct {
	SentimentSummary    *SentimentSummary    `json:"sentiment_summary"    bson:"sentiment_summary"`
	CustomerFeedback    *CustomerFeedback    `json:"customer_feedback"    bson:"customer_feedback"`
	BrandReputation     *BrandReputation     `json:"brand_reputation"     bson:"brand_reputation"`
	SentimentComparison *SentimentComparison `json:"sentiment_comparison" bson:"sentiment_comparison"`
}

type RiskAnalysisSection struct {
	RegulatoryRisks  *RiskReport `json:"regulatory_risks"  bson:"regulatory_risks"`
	MarketRisks      *RiskReport `json:"market_risks"      bson:"market_risks"`
	OperationalRisks *RiskReport `json:"operational_risks" bson:"operational_risks"`
	LegalRisks       *RiskReport `json:"legal_risks"       bson:"legal_risks"`
}

// ExecutiveSummary is the typed digest of a company report produced by
// the summarization turn.
type ExecutiveSummary struct {
	CompanyName    string   `json:"company_name"   bson:"company_name"`
	Overview       string   `json:"overview"       bson:"overview"`
	Highlights     []string `json:"highlights"     bson:"highlights"`
	KeyRisks       []string `json:"key_risks"      bson:"key_risks"`
	Recommendation string   `json:"recommendation" bson:"recommendation"`
}

// CompanyReport is the composite research report assembled by the
// orchestrator. A nil section means every one of its provider calls
// failed. Reports are immutable once assembled.
type CompanyReport struct {
	CompanyName          string                       `json:"company_name"          bson:"company_name"`
	Finance              *FinanceSection              `json:"finance"               bson:"finance"`
	Team                 *TeamSection                 `json:"team"                  bson:"team"`
	MarketAnalysis       *MarketAnalysisSection       `json:"market_analysis"       bson:"market_analysis"`
	PartnershipNetwork   *PartnershipNetworkSection   `json:"partnership_network"   bson:"partnership_network"`
	RegulatoryCompliance *RegulatoryComplianceSection `json:"regulatory_compliance" bson:"regulatory_compliance"`
	CustomerSentiment    *CustomerSentimentSection    `json:"customer_sentiment"    bson:"customer_sentiment"`
	RiskAnalysis         *RiskAnalysisSection         `json:"risk_analysis"         bson:"risk_analysis"`
}
