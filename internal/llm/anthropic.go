package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sozercan/inkwell/internal/config"
)

// Anthropic implements Provider on the Messages API. Tools are not sent as
// tool definitions; their schema is appended to the system prompt and the
// model answers with the arguments as JSON content.
type Anthropic struct {
	client *anthropic.Client
	cfg    *config.AnthropicConfig
}

func NewAnthropic(cfg *config.AnthropicConfig) (*Anthropic, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
	}
	client := anthropic.NewClient(anthropicopt.WithAPIKey(cfg.APIKey))
	return &Anthropic{client: &client, cfg: cfg}, nil
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:     a.cfg.Model,
		MaxTokens: a.cfg.MaxTokens,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.MaxTokens == 0 {
		options.MaxTokens = 1024
	}

	system := strings.Join(systemMessages, "\n\n")
	if len(options.Tools) > 0 {
		system += "\n\n" + toolInstructions(options.Tools)
	}

	response, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(options.Model),
		MaxTokens:   options.MaxTokens,
		Temperature: anthropic.Float(options.Temperature),
		System:      []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(strings.Join(userMessages, "\n\n"))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("API call failed: %w", err)
	}

	var responseText string
	for _, block := range response.Content {
		if block.Type == "text" {
			responseText += block.Text
		}
	}

	return &Response{
		Content: strings.TrimSpace(responseText),
		Usage: Usage{
			PromptTokens:     response.Usage.InputTokens,
			CompletionTokens: response.Usage.OutputTokens,
			TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
		},
	}, nil
}

func toolInstructions(tools []Tool) string {
	var b strings.Builder
	b.WriteString("Respond with only a JSON object, no prose and no code fences, holding the arguments for ")
	for i, t := range tools {
		if i > 0 {
			b.WriteString(" or ")
		}
		schema, _ := json.Marshal(t.Parameters)
		fmt.Fprintf(&b, "%s (%s) with schema %s", t.Name, t.Description, schema)
	}
	b.WriteString(".")
	return b.String()
}
