package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
)

type fakeCompleter struct {
	response string
	err      error
	lastUser string
}

func (f *fakeCompleter) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	f.lastUser = user
	return f.response, f.err
}

type marginResult struct {
	CompanyName string  `json:"company_name"`
	NetMargin   float64 `json:"net_margin"`
}

func TestParse(t *testing.T) {
	llm := &fakeCompleter{response: `{"company_name":"TechNova","net_margin":0.21}`}
	p := NewOutputParser(llm)

	var out marginResult
	err := p.Parse(context.Background(), "TechNova's net margin came in around 21%", &out)
	require.NoError(t, err)
	assert.Equal(t, "TechNova", out.CompanyName)
	assert.InDelta(t, 0.21, out.NetMargin, 1e-9)
	assert.Contains(t, llm.lastUser, "Parse this content")
}

func TestParseNonConformingOutput(t *testing.T) {
	llm := &fakeCompleter{response: `{"company_name":"TechNova","surprise":true}`}
	p := NewOutputParser(llm)

	var out marginResult
	err := p.Parse(context.Background(), "whatever", &out)
	require.Error(t, err)
	assert.Equal(t, apperr.KindParse, apperr.KindOf(err))
}

func TestParseNotJSON(t *testing.T) {
	llm := &fakeCompleter{response: "Sure! Here is the JSON you asked for."}
	p := NewOutputParser(llm)

	var out marginResult
	err := p.Parse(context.Background(), "whatever", &out)
	require.Error(t, err)
	assert.Equal(t, apperr.KindParse, apperr.KindOf(err))
}

func TestParseCompleterError(t *testing.T) {
	boom := errors.New("model unavailable")
	p := NewOutputParser(&fakeCompleter{err: boom})

	var out marginResult
	err := p.Parse(context.Background(), "whatever", &out)
	assert.ErrorIs(t, err, boom)
}
