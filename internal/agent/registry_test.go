package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: name + " description",
		Parameters:  map[string]any{"type": "object"},
		Run: func(ctx context.Context, args json.RawMessage) (any, error) {
			return map[string]string{"tool": name}, nil
		},
	}
}

func TestRegistryOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool("alpha"))
	reg.Register(echoTool("beta"))
	reg.Register(echoTool("gamma"))

	names := []string{}
	for _, tool := range reg.List() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	reg := NewRegistry()
	reg.Register(echoTool("alpha"))
	reg.Register(echoTool("beta"))

	replacement := echoTool("alpha")
	replacement.Description = "updated"
	reg.Register(replacement)

	tools := reg.List()
	require.Len(t, tools, 2)
	assert.Equal(t, "alpha", tools[0].Name)
	assert.Equal(t, "updated", tools[0].Description)
}

func TestRegistryCall(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name: "lookup",
		Run: func(ctx context.Context, args json.RawMessage) (any, error) {
			var in struct {
				CompanyName string `json:"company_name"`
			}
			require.NoError(t, json.Unmarshal(args, &in))
			return map[string]string{"company": in.CompanyName}, nil
		},
	})

	out, err := reg.Call(context.Background(), "lookup", json.RawMessage(`{"company_name":"TechNova"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"company":"TechNova"}`, out)
}

func TestRegistryCallUnknownTool(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Call(context.Background(), "nope", nil)
	assert.ErrorContains(t, err, "unknown tool")
}

func TestRegistryCallToolError(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("upstream down")
	reg.Register(Tool{
		Name: "failing",
		Run: func(ctx context.Context, args json.RawMessage) (any, error) {
			return nil, boom
		},
	})

	_, err := reg.Call(context.Background(), "failing", nil)
	assert.ErrorIs(t, err, boom)
}
