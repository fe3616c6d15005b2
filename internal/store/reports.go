package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// ReportStore keeps the latest research snapshot per company. Each
// company gets its own collection so snapshots can be inspected and
// dropped independently.
type ReportStore struct {
	db *mongo.Database
}

func NewReportStore(db *mongo.Database) *ReportStore {
	return &ReportStore{db: db}
}

func reportCollection(company string) string {
	return "research_" + strings.ReplaceAll(strings.ToLower(company), " ", "_")
}

// SaveSnapshot upserts the report keyed on company name, replacing any
// earlier snapshot.
func (s *ReportStore) SaveSnapshot(ctx context.Context, report *models.CompanyReport) error {
	coll := s.db.Collection(reportCollection(report.CompanyName))
	filter := bson.M{"company_name": report.CompanyName}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, filter, report, opts); err != nil {
		return apperr.Persistence(report.CompanyName, err)
	}
	return nil
}

// Latest returns the stored snapshot for a company, or NotFound when no
// research has been persisted yet.
func (s *ReportStore) Latest(ctx context.Context, company string) (*models.CompanyReport, error) {
	coll := s.db.Collection(reportCollection(company))

	var report models.CompanyReport
	err := coll.FindOne(ctx, bson.M{"company_name": company}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound(company, "no research snapshot for company")
	}
	if err != nil {
		return nil, apperr.Persistence(company, err)
	}
	return &report, nil
}
