package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// maxToolRounds bounds the assistant→tool→assistant loop so a
// misbehaving model cannot spin forever.
const maxToolRounds = 8

// OpenAIAgent drives OpenAI chat completions with tool calling.
type OpenAIAgent struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIAgent(apiKey, model string, timeout time.Duration) *OpenAIAgent {
	return &OpenAIAgent{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: timeout,
	}
}

func (a *OpenAIAgent) newParams(req Request) openai.ChatCompletionNewParams {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, m := range req.History {
		switch m.Role {
		case models.SenderAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(a.model),
		Messages: msgs,
	}
	if req.Tools != nil {
		for _, t := range req.Tools.List() {
			params.Tools = append(params.Tools, openai.ChatCompletionToolParam{
				Function: openai.FunctionDefinitionParam{
					Name:        t.Name,
					Description: openai.String(t.Description),
					Parameters:  openai.FunctionParameters(t.Parameters),
				},
			})
		}
	}
	return params
}

// Run executes the buffered tool-call loop: the model responds, any
// tool calls are executed and fed back, and the loop ends on the first
// response without tool calls.
func (a *OpenAIAgent) Run(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := a.newParams(req)
	trace := baseTrace(req)
	var invocations []models.ToolInvocation

	for round := 0; round < maxToolRounds; round++ {
		completion, err := a.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return nil, apperr.Provider("openai", err)
		}
		if len(completion.Choices) == 0 {
			return nil, apperr.Provider("openai", errors.New("empty completion"))
		}
		msg := completion.Choices[0].Message

		if len(msg.ToolCalls) == 0 {
			trace = append(trace, models.TraceMessage{Role: models.SenderAssistant, Content: msg.Content})
			return &Result{
				Content:   msg.Content,
				Model:     a.model,
				ToolCalls: invocations,
				Trace:     trace,
			}, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		inv, toolMsgs := a.executeToolCalls(ctx, req.Tools, msg.ToolCalls)
		invocations = append(invocations, inv...)
		params.Messages = append(params.Messages, toolMsgs...)
		for _, i := range inv {
			trace = append(trace, models.TraceMessage{Role: models.SenderTool, Content: i.Name})
		}
	}
	return nil, apperr.Provider("openai", fmt.Errorf("tool loop exceeded %d rounds", maxToolRounds))
}

// RunStream streams every round and emits content deltas as they
// arrive. Tool-resolution rounds normally carry no content, so the
// fragments the consumer sees concatenate to the final answer.
func (a *OpenAIAgent) RunStream(ctx context.Context, req Request, emit func(string) error) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := a.newParams(req)
	trace := baseTrace(req)
	var invocations []models.ToolInvocation

	for round := 0; round < maxToolRounds; round++ {
		stream := a.client.Chat.Completions.NewStreaming(ctx, params)
		acc := openai.ChatCompletionAccumulator{}
		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)
			if len(chunk.Choices) == 0 {
				continue
			}
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				if err := emit(delta); err != nil {
					_ = stream.Close()
					return nil, err
				}
			}
		}
		if err := stream.Err(); err != nil {
			return nil, apperr.Provider("openai", err)
		}
		if len(acc.Choices) == 0 {
			return nil, apperr.Provider("openai", errors.New("empty completion"))
		}
		msg := acc.Choices[0].Message

		if len(msg.ToolCalls) == 0 {
			trace = append(trace, models.TraceMessage{Role: models.SenderAssistant, Content: msg.Content})
			return &Result{
				Content:   msg.Content,
				Model:     a.model,
				ToolCalls: invocations,
				Trace:     trace,
			}, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		inv, toolMsgs := a.executeToolCalls(ctx, req.Tools, msg.ToolCalls)
		invocations = append(invocations, inv...)
		params.Messages = append(params.Messages, toolMsgs...)
		for _, i := range inv {
			trace = append(trace, models.TraceMessage{Role: models.SenderTool, Content: i.Name})
		}
	}
	return nil, apperr.Provider("openai", fmt.Errorf("tool loop exceeded %d rounds", maxToolRounds))
}

// executeToolCalls runs each requested tool. A failing tool is reported
// back to the model as an error payload rather than fabricated output.
func (a *OpenAIAgent) executeToolCalls(
	ctx context.Context,
	reg *Registry,
	calls []openai.ChatCompletionMessageToolCall,
) ([]models.ToolInvocation, []openai.ChatCompletionMessageParamUnion) {
	invocations := make([]models.ToolInvocation, 0, len(calls))
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(calls))
	for _, tc := range calls {
		inv := models.ToolInvocation{Name: tc.Function.Name, Arguments: tc.Function.Arguments}
		var payload string
		if reg == nil {
			inv.Error = "no tools registered"
		} else {
			out, err := reg.Call(ctx, tc.Function.Name, json.RawMessage(tc.Function.Arguments))
			if err != nil {
				inv.Error = err.Error()
			} else {
				inv.Output = out
				payload = out
			}
		}
		if inv.Error != "" {
			errJSON, _ := json.Marshal(map[string]string{"error": inv.Error})
			payload = string(errJSON)
		}
		invocations = append(invocations, inv)
		msgs = append(msgs, openai.ToolMessage(payload, tc.ID))
	}
	return invocations, msgs
}

// CompleteJSON performs a single completion in JSON mode, used by the
// output parser.
func (a *OpenAIAgent) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", apperr.Provider("openai", err)
	}
	if len(completion.Choices) == 0 {
		return "", apperr.Provider("openai", errors.New("empty completion"))
	}
	return completion.Choices[0].Message.Content, nil
}

func baseTrace(req Request) []models.TraceMessage {
	trace := make([]models.TraceMessage, 0, len(req.History)+2)
	if req.System != "" {
		trace = append(trace, models.TraceMessage{Role: "system", Content: req.System})
	}
	trace = append(trace, req.History...)
	return trace
}
