package research

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	NewHandler(svc).Routes(r)
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	reports := &fakeReportStore{}
	router := newTestRouter(newTestService(reports))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/TechNova/analysis", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.CompanyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "TechNova", report.CompanyName)
	assert.NotNil(t, report.Finance)
	assert.NotNil(t, report.RiskAnalysis)
	assert.Len(t, reports.saved, 1)
}

func TestAnalyzeEndpointKnowledgeBaseParam(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/TechNova/analysis?use_knowledge_base=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.CompanyReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.NotNil(t, report.Finance)
	require.NotNil(t, report.Finance.Revenue)
	assert.Equal(t, []string{"Knowledge Base"}, report.Finance.Revenue.RevenueTimeseries[0].Sources)
}

func TestAnalyzeEndpointBlankName(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/%20%20/analysis", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatestEndpointNoSnapshot(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/TechNova/analysis/latest", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/search?q=tech", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Companies []models.CompanyBaseInfo `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Companies, 1)
	assert.Equal(t, "TechNova", resp.Companies[0].Name)
}

func TestSearchEndpointNoQueryReturnsAll(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/companies/search", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Companies []models.CompanyBaseInfo `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(companyDirectory), len(resp.Companies))
}

func TestNewsEndpoint(t *testing.T) {
	router := newTestRouter(newTestService(&fakeReportStore{}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/news", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		News []models.NewsItem `json:"news"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.News)
}
