package sentiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sozercan/inkwell/internal/llm"
	"github.com/sozercan/inkwell/internal/nlp"
	"github.com/sozercan/inkwell/internal/tools"
)

const systemPrompt = `You are a sentiment scorer for a writing assistant.
Score the overall polarity of the user's text from -1.0 (very negative) to 1.0 (very positive)
and its subjectivity from 0.0 (objective) to 1.0 (subjective).
Report the scores by calling the report_sentiment function.`

// LLM scores sentiment with a language model.
type LLM struct {
	provider llm.Provider
}

func NewLLM(provider llm.Provider) *LLM {
	return &LLM{provider: provider}
}

func (s *LLM) ScoreSentiment(ctx context.Context, text string) (nlp.Sentiment, error) {
	resp, err := s.provider.Analyze(ctx,
		[]string{systemPrompt},
		[]string{text},
		llm.WithTools(tools.ReportSentiment),
	)
	if err != nil {
		slog.Error("LLM sentiment scoring failed", "provider", s.provider.Name(), "error", err)
		return nlp.Sentiment{}, fmt.Errorf("sentiment scoring failed: %w", err)
	}

	var args tools.SentimentArgs
	if err := tools.Decode(tools.ReportSentiment, resp.Payload(), &args); err != nil {
		return nlp.Sentiment{}, fmt.Errorf("sentiment scoring failed: %w", err)
	}
	slog.Debug("LLM sentiment scored", "polarity", args.Polarity, "tokens", resp.Usage.TotalTokens)

	return nlp.Sentiment{
		Polarity:     clamp(args.Polarity, -1, 1),
		Subjectivity: clamp(args.Subjectivity, 0, 1),
	}, nil
}
