package llm

import "context"

type Provider interface {
	// Analyze takes system and user messages and returns a structured response
	Analyze(ctx context.Context, systemMessages []string, userMessages []string, opts ...Option) (*Response, error)

	Name() string
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
	Tools       []Tool
}

// Tool describes a function the model may call; Parameters is a JSON schema.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// WithTools offers tools to the model.
func WithTools(tools ...Tool) Option {
	return func(o *Options) {
		o.Tools = append(o.Tools, tools...)
	}
}

// FunctionResponse represents the structured response from a function call
type FunctionResponse struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type Response struct {
	Content      string
	FunctionCall *FunctionResponse
	Usage        Usage
}

// Payload returns the JSON the model produced: the function call arguments
// when it called a tool, the message content otherwise.
func (r *Response) Payload() string {
	if r.FunctionCall != nil {
		return r.FunctionCall.Arguments
	}
	return r.Content
}
