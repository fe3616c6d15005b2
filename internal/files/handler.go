// Package files serves company document storage backed by object
// storage. Documents are keyed <company>/<filename>.
package files

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/store"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/web"
)

// maxUploadBytes caps a single document upload.
const maxUploadBytes = 32 << 20

// ObjectStore defines the interface for document storage.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, string, error)
	Remove(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]store.ObjectInfo, error)
}

// Handler holds the document HTTP handlers.
type Handler struct {
	objects ObjectStore
}

func NewHandler(objects ObjectStore) *Handler {
	return &Handler{objects: objects}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/files", func(r chi.Router) {
		r.Post("/", h.Upload)
		r.Get("/{company}", h.List)
		r.Get("/{company}/{name}", h.Download)
		r.Delete("/{company}/{name}", h.Delete)
	})
}

// companyKey normalizes a company name into an object key prefix.
func companyKey(company string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(company)), " ", "_")
}

// Upload stores one multipart document under the company's prefix.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		web.WriteError(w, apperr.Invalid("invalid multipart form"))
		return
	}
	company := companyKey(r.FormValue("company"))
	if company == "" {
		web.WriteError(w, apperr.Invalid("company is required"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		web.WriteError(w, apperr.Invalid("file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		web.WriteError(w, fmt.Errorf("read upload: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := company + "/" + path.Base(header.Filename)
	if err := h.objects.Upload(r.Context(), key, data, contentType); err != nil {
		web.WriteError(w, apperr.Persistence(key, err))
		return
	}
	web.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"key":  key,
		"size": len(data),
	})
}

// List returns all documents stored for a company.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	company := companyKey(chi.URLParam(r, "company"))
	infos, err := h.objects.List(r.Context(), company+"/")
	if err != nil {
		web.WriteError(w, apperr.Persistence(company, err))
		return
	}
	if infos == nil {
		infos = []store.ObjectInfo{}
	}
	web.WriteJSON(w, http.StatusOK, map[string]interface{}{"files": infos})
}

// Download streams one document back to the client.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	company := companyKey(chi.URLParam(r, "company"))
	name := path.Base(chi.URLParam(r, "name"))
	key := company + "/" + name

	data, ct, err := h.objects.Download(r.Context(), key)
	if err != nil {
		web.WriteError(w, apperr.NotFound(key, "document not found"))
		return
	}
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	w.Write(data)
}

// Delete removes one document.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	company := companyKey(chi.URLParam(r, "company"))
	name := path.Base(chi.URLParam(r, "name"))
	key := company + "/" + name

	if err := h.objects.Remove(r.Context(), key); err != nil {
		web.WriteError(w, apperr.Persistence(key, err))
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
