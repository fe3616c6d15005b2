package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/web"
)

// Handler serves the chat thread and message endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/chat/threads", func(r chi.Router) {
		r.Get("/", h.ListThreads)
		r.Post("/", h.CreateThread)
		r.Get("/{id}", h.GetThread)
		r.Patch("/{id}", h.RenameThread)
		r.Delete("/{id}", h.DeleteThread)
		r.Post("/{id}/messages", h.SendMessage)
	})
}

func userID(r *http.Request) string {
	if v := r.Context().Value("user_id"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	owner := ""
	if q.Get("user_threads_only") == "true" {
		owner = userID(r)
	}

	list, err := h.svc.ListThreads(r.Context(), limit, offset, owner)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req models.CreateThreadRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, apperr.Invalid("invalid request body"))
			return
		}
	}
	t, err := h.svc.CreateThread(r.Context(), req.Title, userID(r))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetThread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) RenameThread(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteError(w, apperr.Invalid("invalid request body"))
		return
	}
	t, err := h.svc.RenameThread(r.Context(), chi.URLParam(r, "id"), req.Title)
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteThread(r.Context(), chi.URLParam(r, "id")); err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"message": "thread deleted"})
}

// SendMessage runs one conversational turn. With "stream": true in the
// body the reply is delivered as server-sent events; otherwise the
// completed assistant message is returned as one JSON document.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.WriteError(w, apperr.Invalid("invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	if req.Stream {
		h.streamTurn(w, r, id, req)
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), id, req, userID(r))
	if err != nil {
		web.WriteError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, msg)
}

// sseWriter writes server-sent events, setting the stream headers on
// the first event so earlier failures can still produce a plain JSON
// error response.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

func (s *sseWriter) event(data []byte) error {
	if !s.started {
		s.w.Header().Set("Content-Type", "text/event-stream")
		s.w.Header().Set("Cache-Control", "no-cache")
		s.w.Header().Set("Connection", "keep-alive")
		s.started = true
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (h *Handler) streamTurn(w http.ResponseWriter, r *http.Request, threadID string, req models.SendMessageRequest) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		// No incremental delivery available; fall back to buffered.
		msg, err := h.svc.SendMessage(r.Context(), threadID, req, userID(r))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, msg)
		return
	}

	sse := &sseWriter{w: w, flusher: flusher}
	emit := func(fragment string) error {
		payload, err := json.Marshal(map[string]string{"content": fragment})
		if err != nil {
			return err
		}
		return sse.event(payload)
	}

	msg, err := h.svc.SendMessageStream(r.Context(), threadID, req, userID(r), emit)
	if err != nil {
		if !sse.started {
			web.WriteError(w, err)
			return
		}
		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		sse.event(payload)
		sse.event([]byte("[DONE]"))
		return
	}

	full, err := json.Marshal(msg)
	if err == nil {
		sse.event(full)
	}
	sse.event([]byte("[DONE]"))
}
