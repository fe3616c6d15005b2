package research

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/web"
)

// Handler serves company research and discovery endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/companies/search", h.Search)
	r.Get("/companies/{name}/analysis", h.Analyze)
	r.Get("/companies/{name}/analysis/latest", h.Latest)
	r.Get("/companies/{name}/analysis/summary", h.Summarize)
	r.Get("/news", h.News)
}

// Analyze runs the full research fan-out and returns the assembled
// report. Provider failures surface as null sections, not as errors.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	useKB := r.URL.Query().Get("use_knowledge_base") == "true"
	report, err := h.svc.Analyze(r.Context(), name, useKB)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, report)
}

// Latest returns the last persisted snapshot without re-running research.
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	report, err := h.svc.Snapshot(r.Context(), name)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, report)
}

// Summarize produces a typed executive summary of the latest report,
// running fresh research first when no snapshot exists.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	summary, err := h.svc.Summarize(r.Context(), name)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, summary)
}

// companyDirectory backs the search endpoint until a real registry is
// connected.
var companyDirectory = []models.CompanyBaseInfo{
	{Name: "TechNova", Logo: "https://cdn.ventureinsights.dev/logos/technova.png", Founder: "Alice Chen", Headquarters: "San Francisco, CA", FoundingDate: time.Date(2016, 3, 14, 0, 0, 0, 0, time.UTC), MembersCount: 312},
	{Name: "GreenGrid Energy", Logo: "https://cdn.ventureinsights.dev/logos/greengrid.png", Founder: "Marcus Okafor", Headquarters: "Austin, TX", FoundingDate: time.Date(2018, 7, 2, 0, 0, 0, 0, time.UTC), MembersCount: 145},
	{Name: "Finlytics", Logo: "https://cdn.ventureinsights.dev/logos/finlytics.png", Founder: "Priya Raman", Headquarters: "New York, NY", FoundingDate: time.Date(2019, 1, 21, 0, 0, 0, 0, time.UTC), MembersCount: 87},
	{Name: "MediSync Health", Logo: "https://cdn.ventureinsights.dev/logos/medisync.png", Founder: "Jonas Weber", Headquarters: "Boston, MA", FoundingDate: time.Date(2015, 10, 5, 0, 0, 0, 0, time.UTC), MembersCount: 534},
	{Name: "Cartwheel Logistics", Logo: "https://cdn.ventureinsights.dev/logos/cartwheel.png", Founder: "Sofia Martinez", Headquarters: "Chicago, IL", FoundingDate: time.Date(2020, 5, 11, 0, 0, 0, 0, time.UTC), MembersCount: 61},
}

// Search filters the company directory by a case-insensitive name match.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	matches := []models.CompanyBaseInfo{}
	for _, c := range companyDirectory {
		if q == "" || strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
		}
	}
	web.WriteJSON(w, http.StatusOK, map[string]interface{}{"companies": matches})
}

// News serves the venture news feed.
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	items := []models.NewsItem{
		{Title: "TechNova closes $95M Series C to expand AI analytics platform", Summary: "The round was led by Sequoia with participation from existing investors, valuing the company at $1.2B.", URL: "https://news.ventureinsights.dev/technova-series-c", Source: "VentureWire", PublishedAt: time.Date(2024, 11, 4, 9, 30, 0, 0, time.UTC)},
		{Title: "GreenGrid Energy partners with three Texas utilities", Summary: "The storage startup will deploy grid-scale batteries across 14 sites by 2026.", URL: "https://news.ventureinsights.dev/greengrid-utilities", Source: "Energy Daily", PublishedAt: time.Date(2024, 10, 28, 14, 0, 0, 0, time.UTC)},
		{Title: "Finlytics launches real-time compliance monitoring for mid-market banks", Summary: "The product automates evidence collection for SOC 2 and PCI audits.", URL: "https://news.ventureinsights.dev/finlytics-compliance", Source: "FinTech Brief", PublishedAt: time.Date(2024, 10, 19, 8, 15, 0, 0, time.UTC)},
		{Title: "MediSync Health receives FDA clearance for remote monitoring suite", Summary: "Clearance covers cardiac and respiratory telemetry for post-acute care.", URL: "https://news.ventureinsights.dev/medisync-fda", Source: "HealthTech Times", PublishedAt: time.Date(2024, 10, 2, 16, 45, 0, 0, time.UTC)},
	}
	web.WriteJSON(w, http.StatusOK, map[string]interface{}{"news": items})
}
