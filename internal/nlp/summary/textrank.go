// Package summary builds extractive summaries: a subset of the input
// sentences, kept in document order.
package summary

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sozercan/inkwell/internal/nlp"
)

const (
	damping       = 0.85
	maxIterations = 100
	convergence   = 1e-6
)

// TextRank ranks sentences with PageRank over a graph whose edges are
// weighted by normalised word overlap.
type TextRank struct {
	tokenizer nlp.Tokenizer
}

func NewTextRank(tokenizer nlp.Tokenizer) *TextRank {
	return &TextRank{tokenizer: tokenizer}
}

func (t *TextRank) Summarize(ctx context.Context, text string, ratio float64) (string, error) {
	sentences, err := t.tokenizer.Tokenize(ctx, text)
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

	graph, ok := buildGraph(sentences)
	if !ok {
		return "", nil
	}
	scores := pageRank(graph)

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	picked := order[:k]
	sort.Ints(picked)

	texts := make([]string, len(picked))
	for i, idx := range picked {
		texts[i] = sentences[idx].Text
	}
	return strings.Join(texts, " "), nil
}

// buildGraph returns the symmetric weight matrix and whether any edge exists.
func buildGraph(sentences []nlp.Sentence) ([][]float64, bool) {
	words := make([]map[string]struct{}, len(sentences))
	for i, s := range sentences {
		words[i] = make(map[string]struct{})
		for _, tok := range s.Tokens {
			if tok.IsAlpha && !tok.IsStop {
				words[i][strings.ToLower(tok.Lemma)] = struct{}{}
			}
		}
	}

	graph := make([][]float64, len(sentences))
	for i := range graph {
		graph[i] = make([]float64, len(sentences))
	}
	hasEdge := false
	for i := range sentences {
		for j := i + 1; j < len(sentences); j++ {
			w := similarity(words[i], words[j])
			if w > 0 {
				graph[i][j], graph[j][i] = w, w
				hasEdge = true
			}
		}
	}
	return graph, hasEdge
}

func similarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	overlap := 0
	for w := range a {
		if _, ok := b[w]; ok {
			overlap++
		}
	}
	denom := math.Log(float64(len(a))) + math.Log(float64(len(b)))
	if overlap == 0 || denom <= 0 {
		return 0
	}
	return float64(overlap) / denom
}

func pageRank(graph [][]float64) []float64 {
	n := len(graph)
	outWeight := make([]float64, n)
	for i, row := range graph {
		for _, w := range row {
			outWeight[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1
	}
	next := make([]float64, n)
	for iter := 0; iter < maxIterations; iter++ {
		delta := 0.0
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				if graph[j][i] > 0 {
					sum += graph[j][i] / outWeight[j] * scores[j]
				}
			}
			next[i] = (1 - damping) + damping*sum
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < convergence {
			break
		}
	}
	return scores
}
