package signals

import (
	"math"
	"strings"

	"github.com/sozercan/inkwell/internal/nlp"
)

type Statistics struct {
	WordCount         int
	UniqueWordCount   int
	SentenceCount     int
	AvgSentenceLength float64
}

// ComputeStatistics counts words (tokens that are neither punctuation nor
// whitespace), distinct lowercased lemmas of alphabetic tokens, and the mean
// number of tokens per sentence. The mean is 0 without sentences.
func ComputeStatistics(sentences []nlp.Sentence) Statistics {
	stats := Statistics{SentenceCount: len(sentences)}
	unique := make(map[string]struct{})
	totalTokens := 0
	for _, s := range sentences {
		totalTokens += len(s.Tokens)
		for _, tok := range s.Tokens {
			if !tok.IsPunct && !tok.IsSpace {
				stats.WordCount++
			}
			if tok.IsAlpha {
				unique[strings.ToLower(tok.Lemma)] = struct{}{}
			}
		}
	}
	stats.UniqueWordCount = len(unique)
	if len(sentences) > 0 {
		stats.AvgSentenceLength = float64(totalTokens) / float64(len(sentences))
	}
	return stats
}

// ContentLemmas returns the lowercased lemma of every alphabetic,
// non-stopword token in document order.
func ContentLemmas(sentences []nlp.Sentence) []string {
	var lemmas []string
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if tok.IsAlpha && !tok.IsStop {
				lemmas = append(lemmas, strings.ToLower(tok.Lemma))
			}
		}
	}
	return lemmas
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
