package summary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sozercan/inkwell/internal/llm"
	"github.com/sozercan/inkwell/internal/nlp"
	"github.com/sozercan/inkwell/internal/tools"
)

const systemPrompt = `You are an extractive summarizer.
The user sends a numbered list of sentences. Choose exactly %d sentences that best summarize the document.
Report the zero-based indices of your choice by calling the select_sentences function.`

// LLM asks a language model which sentences to keep. The summary itself is
// always built from the original sentence text.
type LLM struct {
	tokenizer nlp.Tokenizer
	provider  llm.Provider
}

func NewLLM(tokenizer nlp.Tokenizer, provider llm.Provider) *LLM {
	return &LLM{tokenizer: tokenizer, provider: provider}
}

func (s *LLM) Summarize(ctx context.Context, text string, ratio float64) (string, error) {
	sentences, err := s.tokenizer.Tokenize(ctx, text)
	if err != nil {
		return "", fmt.Errorf("splitting sentences: %w", err)
	}
	if len(sentences) < 2 {
		return "", nlp.ErrTooFewSentences
	}
	k := int(float64(len(sentences)) * ratio)
	if k == 0 {
		return "", nil
	}

	var numbered strings.Builder
	for i, sent := range sentences {
		fmt.Fprintf(&numbered, "%d: %s\n", i, sent.Text)
	}

	resp, err := s.provider.Analyze(ctx,
		[]string{fmt.Sprintf(systemPrompt, k)},
		[]string{numbered.String()},
		llm.WithTools(tools.SelectSentences),
	)
	if err != nil {
		slog.Error("LLM sentence selection failed", "provider", s.provider.Name(), "error", err)
		return "", fmt.Errorf("sentence selection failed: %w", err)
	}

	var args tools.SelectionArgs
	if err := tools.Decode(tools.SelectSentences, resp.Payload(), &args); err != nil {
		return "", fmt.Errorf("sentence selection failed: %w", err)
	}

	picked := validIndices(args.Indices, len(sentences), k)
	texts := make([]string, len(picked))
	for i, idx := range picked {
		texts[i] = sentences[idx].Text
	}
	return strings.Join(texts, " "), nil
}

// validIndices drops out-of-range and repeated indices, keeps at most limit
// of them and returns them in document order.
func validIndices(indices []int, n, limit int) []int {
	seen := make(map[int]struct{}, len(indices))
	var out []int
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
		if len(out) == limit {
			break
		}
	}
	sort.Ints(out)
	return out
}
