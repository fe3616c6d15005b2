package files

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/store"
)

type fakeObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeObjectStore) Download(ctx context.Context, key string) ([]byte, string, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, "", apperr.NotFound(key, "object not found")
	}
	return data, f.types[key], nil
}

func (f *fakeObjectStore) Remove(ctx context.Context, key string) error {
	delete(f.objects, key)
	delete(f.types, key)
	return nil
}

func (f *fakeObjectStore) List(ctx context.Context, prefix string) ([]store.ObjectInfo, error) {
	var infos []store.ObjectInfo
	for key, data := range f.objects {
		if strings.HasPrefix(key, prefix) {
			infos = append(infos, store.ObjectInfo{
				Key:          key,
				Size:         int64(len(data)),
				ContentType:  f.types[key],
				LastModified: time.Now().UTC(),
			})
		}
	}
	return infos, nil
}

func newTestRouter(objects ObjectStore) http.Handler {
	r := chi.NewRouter()
	NewHandler(objects).Routes(r)
	return r
}

func multipartUpload(t *testing.T, company, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("company", company))
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/files/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadListDownload(t *testing.T) {
	objects := newFakeObjectStore()
	router := newTestRouter(objects)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "TechNova", "pitch_deck.pdf", "deck bytes"))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, objects.objects, "technova/pitch_deck.pdf")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/TechNova", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var listing struct {
		Files []store.ObjectInfo `json:"files"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Files, 1)
	assert.Equal(t, "technova/pitch_deck.pdf", listing.Files[0].Key)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/TechNova/pitch_deck.pdf", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deck bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pitch_deck.pdf")
}

func TestUploadRequiresCompany(t *testing.T) {
	router := newTestRouter(newFakeObjectStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "", "doc.txt", "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadUnknownDocument(t *testing.T) {
	router := newTestRouter(newFakeObjectStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/TechNova/missing.pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEmptyCompany(t *testing.T) {
	router := newTestRouter(newFakeObjectStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/files/Unknown", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"files":[]}`, rec.Body.String())
}
