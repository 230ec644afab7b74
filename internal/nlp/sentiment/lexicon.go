// Package sentiment provides nlp.SentimentScorer implementations.
package sentiment

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/sozercan/inkwell/internal/nlp"
)

//go:embed lexicon.json
var lexiconJSON []byte

var wordPattern = regexp.MustCompile(`[A-Za-z']+`)

type lexiconEntry struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type lexiconFile struct {
	Words        map[string]lexiconEntry `json:"words"`
	Intensifiers map[string]float64      `json:"intensifiers"`
	Negations    []string                `json:"negations"`
}

// Lexicon scores text by averaging the polarity and subjectivity of the
// opinion words it contains. A preceding intensifier scales a word's
// scores; a preceding negation flips and halves its polarity.
type Lexicon struct {
	words        map[string]lexiconEntry
	intensifiers map[string]float64
	negations    map[string]struct{}
}

func NewLexicon() (*Lexicon, error) {
	var f lexiconFile
	if err := json.Unmarshal(lexiconJSON, &f); err != nil {
		return nil, fmt.Errorf("loading sentiment lexicon: %w", err)
	}
	l := &Lexicon{
		words:        f.Words,
		intensifiers: f.Intensifiers,
		negations:    make(map[string]struct{}, len(f.Negations)),
	}
	for _, n := range f.Negations {
		l.negations[n] = struct{}{}
	}
	return l, nil
}

func (l *Lexicon) ScoreSentiment(_ context.Context, text string) (nlp.Sentiment, error) {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var polarity, subjectivity float64
	hits := 0
	for i, w := range words {
		entry, ok := l.words[w]
		if !ok {
			continue
		}
		p, s := entry.Polarity, entry.Subjectivity

		j := i - 1
		if j >= 0 {
			if k, ok := l.intensifiers[words[j]]; ok {
				p *= k
				s *= k
				j--
			}
		}
		if j >= 0 && l.isNegation(words[j]) {
			p *= -0.5
		}

		polarity += p
		subjectivity += s
		hits++
	}
	if hits == 0 {
		return nlp.Sentiment{}, nil
	}

	return nlp.Sentiment{
		Polarity:     clamp(polarity/float64(hits), -1, 1),
		Subjectivity: clamp(subjectivity/float64(hits), 0, 1),
	}, nil
}

func (l *Lexicon) isNegation(w string) bool {
	if _, ok := l.negations[w]; ok {
		return true
	}
	return strings.HasSuffix(w, "n't")
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
