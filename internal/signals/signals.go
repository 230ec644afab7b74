// Package signals turns raw collaborator output into typed findings. Every
// interpreter is a pure function of its inputs and the thresholds.
package signals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sozercan/inkwell/apimodels"
	"github.com/sozercan/inkwell/internal/helpers"
	"github.com/sozercan/inkwell/internal/nlp"
)

const (
	negativeToneMessage    = "The text has a negative tone. Consider using more positive language."
	positiveToneMessage    = "The text has a very positive tone. Ensure it maintains professionalism."
	readabilityMessage     = "Average sentence length is high. Consider breaking long sentences into shorter ones."
	passiveVoiceMessage    = "High use of passive voice detected. Consider using active voice for clarity."
	sentenceVarietyMessage = "Many sentences start similarly. Vary your sentence beginnings for better flow."
	structureMessage       = "Consider expanding your content with more detailed explanations."
	entityCoverageMessage  = "Adding specific names, organizations, or locations can make your content more concrete."
)

// concreteEntityLabels are the entity kinds that make content concrete.
var concreteEntityLabels = map[string]struct{}{"PERSON": {}, "ORG": {}, "GPE": {}}

// GrammarSuggestions maps the first limit matches to Grammar suggestions
// carrying only the best replacement.
func GrammarSuggestions(matches []nlp.GrammarMatch, limit int) []apimodels.Suggestion {
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]apimodels.Suggestion, 0, len(matches))
	for _, m := range matches {
		s := apimodels.Suggestion{
			Type:    apimodels.SuggestionGrammar,
			Message: m.Message,
			Context: helpers.Ptr(m.Context),
			Offset:  helpers.Ptr(m.Offset),
			Length:  helpers.Ptr(m.Length),
		}
		if len(m.Replacements) > 0 {
			s.Replacement = helpers.Ptr(m.Replacements[0])
		}
		out = append(out, s)
	}
	return out
}

// GrammarFindings maps every match, keeping at most replacementLimit
// replacement candidates each.
func GrammarFindings(matches []nlp.GrammarMatch, replacementLimit int) []apimodels.GrammarFinding {
	out := make([]apimodels.GrammarFinding, 0, len(matches))
	for _, m := range matches {
		replacements := m.Replacements
		if len(replacements) > replacementLimit {
			replacements = replacements[:replacementLimit]
		}
		out = append(out, apimodels.GrammarFinding{
			Message:      m.Message,
			Replacements: append([]string{}, replacements...),
			Context:      m.Context,
			Offset:       m.Offset,
			Length:       m.Length,
			RuleID:       m.RuleID,
			Category:     m.Category,
		})
	}
	return out
}

func Tone(polarity float64, th Thresholds) *apimodels.Suggestion {
	switch {
	case polarity < th.NegativePolarity:
		return &apimodels.Suggestion{Type: apimodels.SuggestionTone, Message: negativeToneMessage}
	case polarity > th.PositivePolarity:
		return &apimodels.Suggestion{Type: apimodels.SuggestionTone, Message: positiveToneMessage}
	}
	return nil
}

func Readability(stats Statistics, th Thresholds) *apimodels.Suggestion {
	if stats.AvgSentenceLength > th.MaxAvgSentenceLength {
		return &apimodels.Suggestion{Type: apimodels.SuggestionReadability, Message: readabilityMessage}
	}
	return nil
}

// PassiveVoice flags documents averaging more than PassiveRatio passive
// subjects per sentence.
func PassiveVoice(sentences []nlp.Sentence, th Thresholds) *apimodels.Suggestion {
	passive := 0
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if tok.Dep == nlp.DepPassiveSubject {
				passive++
			}
		}
	}
	if float64(passive) > th.PassiveRatio*float64(len(sentences)) {
		return &apimodels.Suggestion{Type: apimodels.SuggestionStyle, Message: passiveVoiceMessage}
	}
	return nil
}

// StatisticsSuggestion is emitted unconditionally.
func StatisticsSuggestion(stats Statistics) apimodels.Suggestion {
	return apimodels.Suggestion{
		Type: apimodels.SuggestionStatistics,
		Message: fmt.Sprintf("Word count: %d | Unique words: %d | Sentences: %d",
			stats.WordCount, stats.UniqueWordCount, stats.SentenceCount),
	}
}

// Repetition lists lemmas of content words used more than RepetitionCount
// times, most frequent first, ties alphabetical.
func Repetition(sentences []nlp.Sentence, th Thresholds) *apimodels.Suggestion {
	freq := make(map[string]int)
	for _, lemma := range ContentLemmas(sentences) {
		freq[lemma]++
	}

	var repetitive []string
	for lemma, count := range freq {
		if count > th.RepetitionCount {
			repetitive = append(repetitive, lemma)
		}
	}
	if len(repetitive) == 0 {
		return nil
	}
	sort.Slice(repetitive, func(i, j int) bool {
		if freq[repetitive[i]] != freq[repetitive[j]] {
			return freq[repetitive[i]] > freq[repetitive[j]]
		}
		return repetitive[i] < repetitive[j]
	})
	if len(repetitive) > th.RepetitionListLimit {
		repetitive = repetitive[:th.RepetitionListLimit]
	}
	return &apimodels.Suggestion{
		Type:    apimodels.SuggestionWordChoice,
		Message: fmt.Sprintf("Words used frequently: %s. Consider using synonyms.", strings.Join(repetitive, ", ")),
	}
}

func SentenceVariety(sentences []nlp.Sentence, th Thresholds) *apimodels.Suggestion {
	var starts []string
	distinct := make(map[string]struct{})
	for _, s := range sentences {
		if len(s.Tokens) == 0 {
			continue
		}
		starts = append(starts, s.Tokens[0].Text)
		distinct[s.Tokens[0].Text] = struct{}{}
	}
	if float64(len(distinct)) < th.SentenceStartRatio*float64(len(starts)) {
		return &apimodels.Suggestion{Type: apimodels.SuggestionSentenceVariety, Message: sentenceVarietyMessage}
	}
	return nil
}

// AdverbDensity compares the adverb count with the content word count used
// by Repetition.
func AdverbDensity(sentences []nlp.Sentence, th Thresholds) *apimodels.Suggestion {
	adverbs := 0
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if tok.POS == nlp.POSAdverb {
				adverbs++
			}
		}
	}
	words := len(ContentLemmas(sentences))
	if float64(adverbs) > th.AdverbRatio*float64(words) {
		return &apimodels.Suggestion{
			Type:    apimodels.SuggestionStyle,
			Message: fmt.Sprintf("High use of adverbs (%d). Consider using stronger verbs instead.", adverbs),
		}
	}
	return nil
}

func Structure(sentenceCount int, th Thresholds) *apimodels.Recommendation {
	if sentenceCount < th.MinStructureSentence {
		return &apimodels.Recommendation{Type: apimodels.RecommendationStructure, Message: structureMessage}
	}
	return nil
}

func EntityCoverage(entities []nlp.Entity) *apimodels.Recommendation {
	for _, e := range entities {
		if _, ok := concreteEntityLabels[e.Label]; ok {
			return nil
		}
	}
	return &apimodels.Recommendation{Type: apimodels.RecommendationContent, Message: entityCoverageMessage}
}

// KeyPhrases keeps multi-word phrases, deduplicated in first-seen order.
func KeyPhrases(phrases []string, limit int) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range phrases {
		if len(strings.Fields(p)) < 2 {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func Entities(entities []nlp.Entity, limit int) []apimodels.Entity {
	if len(entities) > limit {
		entities = entities[:limit]
	}
	out := make([]apimodels.Entity, 0, len(entities))
	for _, e := range entities {
		out = append(out, apimodels.Entity{Text: e.Text, Label: e.Label})
	}
	return out
}
