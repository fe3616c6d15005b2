package providers

import (
	"context"
	"time"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// CustomerSentimentService answers sentiment and reputation queries.
type CustomerSentimentService struct{}

func NewCustomerSentimentService() *CustomerSentimentService {
	return &CustomerSentimentService{}
}

func (s *CustomerSentimentService) SentimentSummary(ctx context.Context, q Query) (*models.SentimentSummary, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	product := q.Product
	if product == "" {
		product = "NovaCloud"
	}
	return &models.SentimentSummary{
		CompanyName:        q.CompanyName,
		Product:            product,
		Region:             q.regionOr("Global"),
		SentimentScore:     0.72,
		SentimentBreakdown: map[string]int{"positive": 120, "negative": 30, "neutral": 50},
		SentimentTimeseries: []models.SentimentPoint{
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", Positive: 40, Negative: 10, Neutral: 15, SentimentScore: 0.7, Sources: q.sources("https://twitter.com/technova"), Confidence: 0.9},
			{PeriodStart: "2023-04-01", PeriodEnd: "2023-06-30", Positive: 80, Negative: 20, Neutral: 35, SentimentScore: 0.74, Sources: q.sources("https://reddit.com/r/technova"), Confidence: 0.88},
		},
		Summary:     "Overall sentiment is positive with a strong trend in Q2.",
		Sources:     q.sources("https://twitter.com/technova", "https://reddit.com/r/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *CustomerSentimentService) CustomerFeedback(ctx context.Context, q Query) (*models.CustomerFeedback, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	product := q.Product
	if product == "" {
		product = "NovaCloud"
	}
	return &models.CustomerFeedback{
		CompanyName: q.CompanyName,
		Product:     product,
		Region:      q.regionOr("Global"),
		FeedbackItems: []models.FeedbackItem{
			{Date: "2023-06-01", Customer: "Alice", Feedback: "Great product, easy to use!", Sentiment: "positive", Sources: q.sources("https://twitter.com/alice"), Confidence: 0.95},
			{Date: "2023-06-02", Customer: "Bob", Feedback: "Had some issues with support.", Sentiment: "negative", Sources: q.sources("https://reddit.com/u/bob"), Confidence: 0.8},
			{Date: "2023-06-03", Feedback: "Looking forward to new features.", Sentiment: "neutral", Sources: q.sources("https://producthunt.com/posts/novacloud"), Confidence: 0.85},
		},
		Summary:     "Feedback is mostly positive, with some requests for better support.",
		Sources:     q.sources("https://twitter.com/alice", "https://reddit.com/u/bob", "https://producthunt.com/posts/novacloud"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *CustomerSentimentService) BrandReputation(ctx context.Context, q Query) (*models.BrandReputation, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.BrandReputation{
		CompanyName:     q.CompanyName,
		Region:          q.regionOr("Global"),
		ReputationScore: 0.81,
		ReputationTimeseries: []models.ReputationPoint{
			{PeriodStart: "2023-01-01", PeriodEnd: "2023-03-31", ReputationScore: 0.78, Sources: q.sources("https://brandwatch.com/technova"), Confidence: 0.9},
			{PeriodStart: "2023-04-01", PeriodEnd: "2023-06-30", ReputationScore: 0.84, Sources: q.sources("https://brandwatch.com/technova"), Confidence: 0.92},
		},
		Summary:     "Brand reputation is improving quarter over quarter.",
		Sources:     q.sources("https://brandwatch.com/technova"),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *CustomerSentimentService) SentimentComparison(ctx context.Context, q Query) (*models.SentimentComparison, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	return &models.SentimentComparison{
		CompanyName: q.CompanyName,
		Region:      q.regionOr("Global"),
		Comparison: []models.CompanySentiment{
			{CompanyName: q.CompanyName, SentimentScore: 0.72},
			{CompanyName: "CloudX", SentimentScore: 0.65},
			{CompanyName: "SkyNet", SentimentScore: 0.58},
		},
		Summary:     q.CompanyName + " leads competitors on customer sentiment.",
		Sources:     q.sources("https://brandwatch.com/benchmark"),
		LastUpdated: time.Now().UTC(),
	}, nil
}
