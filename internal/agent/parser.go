package agent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Ashishkumaraswamy/VentureInsights-Backend/internal/apperr"
)

const parserPrompt = `You are a strict output parser. Convert the given content into a ` +
	`single valid JSON object matching the requested schema exactly. All required ` +
	`fields must be present and correctly typed. Return only the JSON object, with ` +
	`no explanations or text outside it.`

// TextCompleter is the single LLM call the parser needs.
type TextCompleter interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// OutputParser coerces free-form LLM text into a typed result. A
// response that does not conform to the target schema is a parse
// failure, never silently coerced.
type OutputParser struct {
	llm TextCompleter
}

func NewOutputParser(llm TextCompleter) *OutputParser {
	return &OutputParser{llm: llm}
}

// Parse asks the model to restate content as JSON and decodes it
// strictly into target, which must be a pointer to the schema struct.
func (p *OutputParser) Parse(ctx context.Context, content string, target any) error {
	schema, err := json.Marshal(target)
	if err != nil {
		return apperr.Parse("output-parser", err)
	}
	user := "Schema example: " + string(schema) + "\n\nParse this content: " + content

	raw, err := p.llm.CompleteJSON(ctx, parserPrompt, user)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return apperr.Parse("output-parser", err)
	}
	return nil
}
