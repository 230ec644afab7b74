// Package keywords ranks salient terms across the sentences of a document.
package keywords

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/sozercan/inkwell/internal/nlp"
)

var termPattern = regexp.MustCompile(`\b\w\w+\b`)

// TFIDF treats every sentence as a document. Terms are weighted with smooth
// idf over l2-normalised sentence vectors and ranked by their summed weight.
type TFIDF struct{}

func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

func (t *TFIDF) RankKeywords(ctx context.Context, sentences []string, maxFeatures int, excludeStopwords bool) ([]string, error) {
	if len(sentences) < 2 {
		return nil, nlp.ErrTooFewSentences
	}

	counts := make([]map[string]int, len(sentences))
	df := make(map[string]int)
	for i, s := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		counts[i] = make(map[string]int)
		for _, term := range termPattern.FindAllString(strings.ToLower(s), -1) {
			if excludeStopwords && nlp.IsStopword(term) {
				continue
			}
			if counts[i][term] == 0 {
				df[term]++
			}
			counts[i][term]++
		}
	}
	if len(df) == 0 {
		return []string{}, nil
	}

	n := float64(len(sentences))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	score := make(map[string]float64, len(df))
	for _, tf := range counts {
		var norm float64
		weights := make(map[string]float64, len(tf))
		for term, c := range tf {
			w := float64(c) * idf[term]
			weights[term] = w
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term, w := range weights {
			score[term] += w / norm
		}
	}

	terms := make([]string, 0, len(score))
	for term := range score {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if score[terms[i]] != score[terms[j]] {
			return score[terms[i]] > score[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)
	return terms, nil
}
