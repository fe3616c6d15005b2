// Package agent runs tool-augmented LLM turns. The model backend is
// behind the Agent interface so the chat service can be exercised
// without a real model; OpenAIAgent is the production implementation.
package agent

import (
	"context"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/models"
)

// Request is one turn of generation: a system prompt, the accumulated
// conversation history and the tools the model may call.
type Request struct {
	System  string
	History []models.TraceMessage
	Tools   *Registry
}

// Result is a completed turn.
type Result struct {
	Content   string
	Model     string
	ToolCalls []models.ToolInvocation
	Trace     []models.TraceMessage
}

// Agent produces one assistant turn from a request. RunStream delivers
// content fragments through emit as they become available; when emit
// returns an error generation stops and no result is returned.
type Agent interface {
	Run(ctx context.Context, req Request) (*Result, error)
	RunStream(ctx context.Context, req Request, emit func(fragment string) error) (*Result, error)
}
