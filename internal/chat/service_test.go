package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/agent"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// fakeThreadStore is an in-memory ThreadStore that mirrors the real
// store's bookkeeping: appending a message bumps message_count and
// updates last_message.
type fakeThreadStore struct {
	threads    map[string]*models.Thread
	messages   map[string][]models.Message
	lastLimit  int
	lastOffset int
	appendErr  error
}

func newFakeThreadStore() *fakeThreadStore {
	return &fakeThreadStore{
		threads:  map[string]*models.Thread{},
		messages: map[string][]models.Message{},
	}
}

func (f *fakeThreadStore) ListThreads(ctx context.Context, limit, offset int, createdBy string) ([]models.Thread, int64, error) {
	f.lastLimit, f.lastOffset = limit, offset
	out := []models.Thread{}
	for _, t := range f.threads {
		if createdBy == "" || t.CreatedBy == createdBy {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeThreadStore) InsertThread(ctx context.Context, t *models.Thread) error {
	cp := *t
	f.threads[t.ID] = &cp
	return nil
}

func (f *fakeThreadStore) GetThread(ctx context.Context, id string) (*models.Thread, error) {
	t, ok := f.threads[id]
	if !ok {
		return nil, apperr.NotFound(id, "thread not found")
	}
	cp := *t
	return &cp, nil
}

func (f *fakeThreadStore) MessagesByThread(ctx context.Context, threadID string) ([]models.Message, error) {
	return append([]models.Message{}, f.messages[threadID]...), nil
}

func (f *fakeThreadStore) UpdateThreadTitle(ctx context.Context, id, title string) (*models.Thread, error) {
	t, ok := f.threads[id]
	if !ok {
		return nil, apperr.NotFound(id, "thread not found")
	}
	t.Title = title
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	return &cp, nil
}

func (f *fakeThreadStore) DeleteThread(ctx context.Context, id string) error {
	if _, ok := f.threads[id]; !ok {
		return apperr.NotFound(id, "thread not found")
	}
	delete(f.threads, id)
	delete(f.messages, id)
	return nil
}

func (f *fakeThreadStore) AppendMessage(ctx context.Context, msg *models.Message) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	t, ok := f.threads[msg.ThreadID]
	if !ok {
		return apperr.NotFound(msg.ThreadID, "thread not found")
	}
	f.messages[msg.ThreadID] = append(f.messages[msg.ThreadID], *msg)
	t.MessageCount++
	t.UpdatedAt = msg.Timestamp
	t.LastMessage = &models.LastMessage{
		Content:   msg.Content,
		Sender:    msg.Sender,
		Timestamp: msg.Timestamp,
		Author:    msg.Author,
	}
	return nil
}

// fakeAgent returns a fixed reply; RunStream delivers it in fixed-size
// fragments so streamed and buffered content can be compared.
type fakeAgent struct {
	reply     string
	toolCalls []models.ToolInvocation
	err       error
}

func (f *fakeAgent) Run(ctx context.Context, req agent.Request) (*agent.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &agent.Result{Content: f.reply, Model: "test-model", ToolCalls: f.toolCalls}, nil
}

func (f *fakeAgent) RunStream(ctx context.Context, req agent.Request, emit func(string) error) (*agent.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := 0; i < len(f.reply); i += 5 {
		end := i + 5
		if end > len(f.reply) {
			end = len(f.reply)
		}
		if err := emit(f.reply[i:end]); err != nil {
			return nil, err
		}
	}
	return &agent.Result{Content: f.reply, Model: "test-model", ToolCalls: f.toolCalls}, nil
}

func newTestService(store ThreadStore, ag agent.Agent) *Service {
	return NewService(store, ag, agent.NewRegistry())
}

func TestCreateThreadDefaultTitle(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{})

	th, err := svc.CreateThread(context.Background(), "  ", "user-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(th.Title, "Chat "), th.Title)
	assert.NotEmpty(t, th.ID)
	assert.Equal(t, "user-1", th.CreatedBy)
	assert.Equal(t, th.CreatedAt, th.UpdatedAt)
	assert.Zero(t, th.MessageCount)
}

func TestListThreadsClampsPagination(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{})
	ctx := context.Background()

	_, err := svc.ListThreads(ctx, 0, -3, "")
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, store.lastLimit)
	assert.Equal(t, 0, store.lastOffset)

	_, err = svc.ListThreads(ctx, 5000, 10, "")
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, store.lastLimit)
	assert.Equal(t, 10, store.lastOffset)
}

func TestGetThreadUnknown(t *testing.T) {
	svc := newTestService(newFakeThreadStore(), &fakeAgent{})
	_, err := svc.GetThread(context.Background(), "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestRenameThreadEmptyTitle(t *testing.T) {
	svc := newTestService(newFakeThreadStore(), &fakeAgent{})
	_, err := svc.RenameThread(context.Background(), "any", "   ")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
}

func TestSendMessage(t *testing.T) {
	store := newFakeThreadStore()
	ag := &fakeAgent{
		reply:     "TechNova's margins look healthy.",
		toolCalls: []models.ToolInvocation{{Name: "profit_margins", Arguments: `{"company_name":"TechNova"}`}},
	}
	svc := newTestService(store, ag)
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "Diligence", "user-1")
	require.NoError(t, err)

	reply, err := svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "How are the margins?"}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.SenderAssistant, reply.Sender)
	assert.Equal(t, ag.reply, reply.Content)
	require.NotNil(t, reply.Metadata)
	assert.Equal(t, "test-model", reply.Metadata.Model)
	assert.Equal(t, "profit_margins", reply.Metadata.ToolCalls[0].Name)

	msgs := store.messages[th.ID]
	require.Len(t, msgs, 2)
	assert.Equal(t, models.SenderUser, msgs[0].Sender)
	assert.Equal(t, models.SenderAssistant, msgs[1].Sender)

	updated := store.threads[th.ID]
	assert.Equal(t, 2, updated.MessageCount)
	require.NotNil(t, updated.LastMessage)
	assert.Equal(t, models.SenderAssistant, updated.LastMessage.Sender)
	assert.Equal(t, ag.reply, updated.LastMessage.Content)
}

func TestAssistantReferencesFromToolSources(t *testing.T) {
	store := newFakeThreadStore()
	ag := &fakeAgent{
		reply: "Revenue is growing quarter over quarter.",
		toolCalls: []models.ToolInvocation{
			{
				Name:      "revenue_analysis",
				Arguments: `{"company_name":"TechNova"}`,
				Output: `{"company_name":"TechNova","revenue_timeseries":[` +
					`{"value":1200000,"sources":["https://crunchbase.com/technova","Knowledge Base"]},` +
					`{"value":1350000,"sources":["https://crunchbase.com/technova"]}]}`,
			},
			{
				Name:      "market_trends",
				Arguments: `{"company_name":"TechNova"}`,
				Output:    `{"sources":["https://gartner.com/report1"]}`,
			},
			{Name: "team_overview", Arguments: `{}`, Error: "provider down"},
		},
	}
	svc := newTestService(store, ag)
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "Diligence", "user-1")
	require.NoError(t, err)

	reply, err := svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "How is revenue?"}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, reply.Metadata)
	assert.Equal(t, []models.Reference{
		{Title: "revenue_analysis", URL: "https://crunchbase.com/technova"},
		{Title: "market_trends", URL: "https://gartner.com/report1"},
	}, reply.Metadata.References, "URLs are deduplicated and non-URL sources dropped")
}

func TestSendMessageEmptyContent(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{reply: "x"})
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "", "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "  "}, "")
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.Empty(t, store.messages[th.ID])
}

func TestSendMessageUnknownThread(t *testing.T) {
	svc := newTestService(newFakeThreadStore(), &fakeAgent{reply: "x"})
	_, err := svc.SendMessage(context.Background(), "missing", models.SendMessageRequest{Content: "hi"}, "")
	assert.True(t, apperr.IsNotFound(err))
}

func TestSendMessageAgentFailureKeepsUserMessage(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{err: errors.New("model unavailable")})
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "", "")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "hello"}, "")
	require.Error(t, err)

	msgs := store.messages[th.ID]
	require.Len(t, msgs, 1)
	assert.Equal(t, models.SenderUser, msgs[0].Sender)
	assert.Equal(t, 1, store.threads[th.ID].MessageCount)
}

func TestStreamedContentMatchesBuffered(t *testing.T) {
	reply := "Streaming and buffered turns agree on the final assistant content."
	ctx := context.Background()

	buffered := newFakeThreadStore()
	svcBuf := newTestService(buffered, &fakeAgent{reply: reply})
	thBuf, err := svcBuf.CreateThread(ctx, "", "")
	require.NoError(t, err)
	bufMsg, err := svcBuf.SendMessage(ctx, thBuf.ID, models.SendMessageRequest{Content: "go"}, "")
	require.NoError(t, err)

	streamed := newFakeThreadStore()
	svcStr := newTestService(streamed, &fakeAgent{reply: reply})
	thStr, err := svcStr.CreateThread(ctx, "", "")
	require.NoError(t, err)

	var got strings.Builder
	strMsg, err := svcStr.SendMessageStream(ctx, thStr.ID, models.SendMessageRequest{Content: "go"}, "", func(fragment string) error {
		got.WriteString(fragment)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, bufMsg.Content, strMsg.Content)
	assert.Equal(t, strMsg.Content, got.String())
}

func TestStreamEmitFailureAbortsTurn(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{reply: "a long reply that streams in several fragments"})
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "", "")
	require.NoError(t, err)

	calls := 0
	_, err = svc.SendMessageStream(ctx, th.ID, models.SendMessageRequest{Content: "go"}, "", func(string) error {
		calls++
		if calls >= 2 {
			return errors.New("client went away")
		}
		return nil
	})
	require.Error(t, err)

	msgs := store.messages[th.ID]
	require.Len(t, msgs, 1, "assistant message must not be persisted after a broken stream")
	assert.Equal(t, models.SenderUser, msgs[0].Sender)
}

func TestDeleteThreadCascades(t *testing.T) {
	store := newFakeThreadStore()
	svc := newTestService(store, &fakeAgent{reply: "ok"})
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "", "")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "hi"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteThread(ctx, th.ID))
	assert.Empty(t, store.messages[th.ID])
	assert.True(t, apperr.IsNotFound(svc.DeleteThread(ctx, th.ID)))
}

func TestHistoryIncludesPriorTurns(t *testing.T) {
	store := newFakeThreadStore()
	ag := &recordingAgent{fakeAgent: fakeAgent{reply: "second answer"}}
	svc := newTestService(store, ag)
	ctx := context.Background()

	th, err := svc.CreateThread(ctx, "", "")
	require.NoError(t, err)

	store.messages[th.ID] = []models.Message{
		{ThreadID: th.ID, Sender: models.SenderUser, Content: "first question"},
		{ThreadID: th.ID, Sender: models.SenderAssistant, Content: "first answer"},
	}

	_, err = svc.SendMessage(ctx, th.ID, models.SendMessageRequest{Content: "second question"}, "")
	require.NoError(t, err)

	require.Len(t, ag.history, 3)
	assert.Equal(t, "first question", ag.history[0].Content)
	assert.Equal(t, models.SenderAssistant, ag.history[1].Role)
	assert.Equal(t, "second question", ag.history[2].Content)
}

type recordingAgent struct {
	fakeAgent
	history []models.TraceMessage
}

func (r *recordingAgent) Run(ctx context.Context, req agent.Request) (*agent.Result, error) {
	r.history = req.History
	return r.fakeAgent.Run(ctx, req)
}
