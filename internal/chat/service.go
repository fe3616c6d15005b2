package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// systemPrompt frames the assistant for venture research turns.
const systemPrompt = `You are a venture research assistant. You help investors evaluate ` +
	`companies using the analysis tools available to you: finances, team, market, ` +
	`partnerships, compliance, sentiment and risk. Call tools to ground your answers ` +
	`in data; when a tool fails, say what is missing instead of inventing figures. ` +
	`Answer concisely and cite which analyses your conclusions come from.`

// ThreadStore is the persistence surface the chat service requires.
type ThreadStore interface {
	ListThreads(ctx context.Context, limit, offset int, createdBy string) ([]models.Thread, int64, error)
	InsertThread(ctx context.Context, t *models.Thread) error
	GetThread(ctx context.Context, id string) (*models.Thread, error)
	MessagesByThread(ctx context.Context, threadID string) ([]models.Message, error)
	UpdateThreadTitle(ctx context.Context, id, title string) (*models.Thread, error)
	DeleteThread(ctx context.Context, id string) error
	AppendMessage(ctx context.Context, msg *models.Message) error
}

// Service owns thread lifecycle and the conversational turn engine.
type Service struct {
	store ThreadStore
	agent agent.Agent
	tools *agent.Registry
}

func NewService(store ThreadStore, ag agent.Agent, tools *agent.Registry) *Service {
	return &Service{store: store, agent: ag, tools: tools}
}

// ListThreads returns one page of threads, newest activity first. The
// limit is clamped to [1, 100] and a negative offset is treated as 0.
func (s *Service) ListThreads(ctx context.Context, limit, offset int, userID string) (*models.ThreadList, error) {
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	threads, total, err := s.store.ListThreads(ctx, limit, offset, userID)
	if err != nil {
		return nil, err
	}
	return &models.ThreadList{Threads: threads, Total: total}, nil
}

// CreateThread opens a new empty thread. An empty title gets a
// timestamped default.
func (s *Service) CreateThread(ctx context.Context, title, userID string) (*models.Thread, error) {
	now := time.Now().UTC()
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Chat " + now.Format("Jan 2, 2006 15:04")
	}
	t := &models.Thread{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
	}
	if err := s.store.InsertThread(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetThread returns the thread with its full message history.
func (s *Service) GetThread(ctx context.Context, id string) (*models.ThreadWithMessages, error) {
	t, err := s.store.GetThread(ctx, id)
	if err != nil {
		return nil, err
	}
	msgs, err := s.store.MessagesByThread(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ThreadWithMessages{Thread: *t, Messages: msgs}, nil
}

// RenameThread updates a thread's title.
func (s *Service) RenameThread(ctx context.Context, id, title string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}
	return s.store.UpdateThreadTitle(ctx, id, title)
}

// DeleteThread removes a thread and all its messages.
func (s *Service) DeleteThread(ctx context.Context, id string) error {
	return s.store.DeleteThread(ctx, id)
}

// SendMessage runs one buffered turn: the user message is persisted,
// the agent produces a reply, the reply is persisted and returned. If
// the agent fails, the user message stays and the error propagates.
func (s *Service) SendMessage(ctx context.Context, threadID string, req models.SendMessageRequest, userID string) (*models.Message, error) {
	userMsg, history, err := s.beginTurn(ctx, threadID, req, userID)
	if err != nil {
		return nil, err
	}

	res, err := s.agent.Run(ctx, agent.Request{System: systemPrompt, History: history, Tools: s.tools})
	if err != nil {
		return nil, fmt.Errorf("agent turn: %w", err)
	}
	return s.finishTurn(ctx, userMsg.ThreadID, res)
}

// SendMessageStream runs one streaming turn, delivering content
// fragments through emit. The assistant message is persisted only after
// the full response has been delivered; an emit failure aborts the turn
// and nothing beyond the user message is stored.
func (s *Service) SendMessageStream(ctx context.Context, threadID string, req models.SendMessageRequest, userID string, emit func(fragment string) error) (*models.Message, error) {
	userMsg, history, err := s.beginTurn(ctx, threadID, req, userID)
	if err != nil {
		return nil, err
	}

	res, err := s.agent.RunStream(ctx, agent.Request{System: systemPrompt, History: history, Tools: s.tools}, emit)
	if err != nil {
		return nil, fmt.Errorf("agent turn: %w", err)
	}
	return s.finishTurn(ctx, userMsg.ThreadID, res)
}

// beginTurn validates the request, persists the user message and
// returns it along with the model-facing history ending in that
// message.
func (s *Service) beginTurn(ctx context.Context, threadID string, req models.SendMessageRequest, userID string) (*models.Message, []models.TraceMessage, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, nil, apperr.Invalid("content is required")
	}
	if _, err := s.store.GetThread(ctx, threadID); err != nil {
		return nil, nil, err
	}

	prior, err := s.store.MessagesByThread(ctx, threadID)
	if err != nil {
		return nil, nil, err
	}

	userMsg := &models.Message{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		Content:   req.Content,
		Sender:    models.SenderUser,
		Timestamp: time.Now().UTC(),
		Author:    userID,
	}
	if len(req.Attachments) > 0 {
		userMsg.Metadata = &models.MessageMetadata{Attachments: req.Attachments}
	}
	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		return nil, nil, err
	}

	history := make([]models.TraceMessage, 0, len(prior)+1)
	for _, m := range prior {
		if m.Sender != models.SenderUser && m.Sender != models.SenderAssistant {
			continue
		}
		history = append(history, models.TraceMessage{Role: m.Sender, Content: m.Content})
	}
	history = append(history, models.TraceMessage{Role: models.SenderUser, Content: req.Content})
	return userMsg, history, nil
}

// finishTurn persists and returns the assistant message for a completed
// agent result.
func (s *Service) finishTurn(ctx context.Context, threadID string, res *agent.Result) (*models.Message, error) {
	msg := &models.Message{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		Content:   res.Content,
		Sender:    models.SenderAssistant,
		Timestamp: time.Now().UTC(),
		Metadata: &models.MessageMetadata{
			References: referencesFromTools(res.ToolCalls),
			ToolCalls:  res.ToolCalls,
			Messages:   res.Trace,
			Model:      res.Model,
		},
	}
	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// referencesFromTools collects the source URLs cited in successful tool
// outputs so the assistant message carries its provenance. Non-URL
// sources such as knowledge-base markers are skipped.
func referencesFromTools(calls []models.ToolInvocation) []models.Reference {
	seen := map[string]bool{}
	var refs []models.Reference
	for _, call := range calls {
		if call.Output == "" || call.Error != "" {
			continue
		}
		var payload any
		if err := json.Unmarshal([]byte(call.Output), &payload); err != nil {
			continue
		}
		urls := collectSources(payload)
		sort.Strings(urls)
		for _, u := range urls {
			if !strings.HasPrefix(u, "http") || seen[u] {
				continue
			}
			seen[u] = true
			refs = append(refs, models.Reference{Title: call.Name, URL: u})
		}
	}
	return refs
}

// collectSources walks a decoded JSON value and gathers every string
// under a "sources" key, at any depth.
func collectSources(v any) []string {
	var out []string
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			if key == "sources" {
				items, ok := child.([]any)
				if !ok {
					continue
				}
				for _, item := range items {
					if s, ok := item.(string); ok {
						out = append(out, s)
					}
				}
				continue
			}
			out = append(out, collectSources(child)...)
		}
	case []any:
		for _, item := range val {
			out = append(out, collectSources(item)...)
		}
	}
	return out
}
