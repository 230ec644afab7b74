// Package nlp defines the linguistic capabilities the analyzer consumes.
// Engines live in subpackages; the analyzer only sees these interfaces.
package nlp

import (
	"context"
	"errors"
)

// Coarse part-of-speech tags.
const (
	POSAdjective   = "ADJ"
	POSAdposition  = "ADP"
	POSAdverb      = "ADV"
	POSAuxiliary   = "AUX"
	POSConjunction = "CCONJ"
	POSDeterminer  = "DET"
	POSInterject   = "INTJ"
	POSNoun        = "NOUN"
	POSNumeral     = "NUM"
	POSParticle    = "PART"
	POSPronoun     = "PRON"
	POSProperNoun  = "PROPN"
	POSPunctuation = "PUNCT"
	POSSymbol      = "SYM"
	POSVerb        = "VERB"
	POSOther       = "X"
)

// Dependency roles the analyzer cares about.
const (
	DepPassiveSubject   = "nsubjpass"
	DepPassiveAuxiliary = "auxpass"
)

// ErrTooFewSentences is returned by engines that need at least two sentences.
var ErrTooFewSentences = errors.New("input must have more than one sentence")

type Token struct {
	Text    string
	Lemma   string
	POS     string
	Dep     string
	IsPunct bool
	IsSpace bool
	IsAlpha bool
	IsStop  bool
}

type Sentence struct {
	Text   string
	Tokens []Token
}

type Entity struct {
	Text  string
	Label string
}

// GrammarMatch is one rule violation reported by a grammar engine.
type GrammarMatch struct {
	Message      string
	Replacements []string
	Context      string
	Offset       int
	Length       int
	RuleID       string
	Category     string
}

type Sentiment struct {
	Polarity     float64
	Subjectivity float64
}

// Document is a single parse of a text: its sentences plus the noun phrase
// chunks and named entities found in them.
type Document struct {
	Sentences   []Sentence
	NounPhrases []string
	Entities    []Entity
}

// Tokenizer splits text into sentences of annotated tokens.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]Sentence, error)
}

// LinguisticProvider is the full feature provider: tokens, entities and
// noun phrase chunks. Parse returns all three from one pass.
type LinguisticProvider interface {
	Tokenizer
	Parse(ctx context.Context, text string) (Document, error)
	ExtractEntities(ctx context.Context, text string) ([]Entity, error)
	ExtractNounPhrases(ctx context.Context, text string) ([]string, error)
}

type GrammarChecker interface {
	CheckGrammar(ctx context.Context, text string) ([]GrammarMatch, error)
}

type SentimentScorer interface {
	ScoreSentiment(ctx context.Context, text string) (Sentiment, error)
}

// KeywordRanker selects salient terms across a set of sentences. It
// requires at least two sentences.
type KeywordRanker interface {
	RankKeywords(ctx context.Context, sentences []string, maxFeatures int, excludeStopwords bool) ([]string, error)
}

// Summarizer produces an extractive summary of roughly ratio × the input.
// An empty result is legitimate.
type Summarizer interface {
	Summarize(ctx context.Context, text string, ratio float64) (string, error)
}

// SentenceTexts returns the text of every sentence.
func SentenceTexts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}
