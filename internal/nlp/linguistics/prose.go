// Package linguistics provides the sentence, token, entity and noun phrase
// features for the analyzer, backed by the prose tagger.
package linguistics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"

	"github.com/sozercan/inkwell/internal/nlp"
)

// Prose is a nlp.LinguisticProvider. The tagger and entity models are
// loaded once and only read while tagging, so a Prose is safe for concurrent
// use.
type Prose struct {
	model *prose.Model
}

func NewProse() *Prose {
	slog.Info("Loading prose tagger and entity models")
	return &Prose{model: prose.ModelFromData("inkwell")}
}

// parse segments text and tags each sentence on its own so token
// boundaries never straddle sentences. Entities are extracted only when
// entities is set.
func (p *Prose) parse(ctx context.Context, text string, entities bool) (nlp.Document, error) {
	seg, err := prose.NewDocument(text,
		prose.UsingModel(p.model),
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nlp.Document{}, fmt.Errorf("segmenting text: %w", err)
	}

	var doc nlp.Document
	for _, s := range seg.Sentences() {
		if err := ctx.Err(); err != nil {
			return nlp.Document{}, err
		}
		sentText := strings.TrimSpace(s.Text)
		if sentText == "" {
			continue
		}
		sdoc, err := prose.NewDocument(sentText,
			prose.UsingModel(p.model),
			prose.WithSegmentation(false),
			prose.WithExtraction(entities),
		)
		if err != nil {
			return nlp.Document{}, fmt.Errorf("tagging sentence: %w", err)
		}

		toks := sdoc.Tokens()
		texts := make([]string, len(toks))
		tags := make([]string, len(toks))
		for i, tok := range toks {
			texts[i] = tok.Text
			tags[i] = tok.Tag
		}
		doc.Sentences = append(doc.Sentences, nlp.Sentence{Text: sentText, Tokens: annotate(texts, tags)})
		doc.NounPhrases = append(doc.NounPhrases, chunkNounPhrases(texts, tags)...)
		for _, e := range sdoc.Entities() {
			doc.Entities = append(doc.Entities, nlp.Entity{Text: e.Text, Label: e.Label})
		}
	}
	return doc, nil
}

func (p *Prose) Parse(ctx context.Context, text string) (nlp.Document, error) {
	return p.parse(ctx, text, true)
}

func (p *Prose) Tokenize(ctx context.Context, text string) ([]nlp.Sentence, error) {
	doc, err := p.parse(ctx, text, false)
	if err != nil {
		return nil, err
	}
	return doc.Sentences, nil
}

func (p *Prose) ExtractEntities(ctx context.Context, text string) ([]nlp.Entity, error) {
	doc, err := p.parse(ctx, text, true)
	if err != nil {
		return nil, fmt.Errorf("extracting entities: %w", err)
	}
	return doc.Entities, nil
}

func (p *Prose) ExtractNounPhrases(ctx context.Context, text string) ([]string, error) {
	doc, err := p.parse(ctx, text, false)
	if err != nil {
		return nil, err
	}
	return doc.NounPhrases, nil
}

// annotate builds nlp tokens from parallel word and Penn tag slices.
func annotate(texts, tags []string) []nlp.Token {
	tokens := make([]nlp.Token, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		tok := nlp.Token{
			Text:    text,
			POS:     coarsePOS(tags[i], lower),
			IsPunct: isPunct(text),
			IsSpace: strings.TrimSpace(text) == "",
			IsAlpha: isAlpha(text),
			IsStop:  nlp.IsStopword(lower),
		}
		switch {
		case tok.IsStop || !tok.IsAlpha:
			tok.Lemma = lower
		default:
			tok.Lemma = english.Stem(lower, false)
		}
		tokens[i] = tok
	}
	markPassive(tokens, tags)
	return tokens
}

var beForms = map[string]struct{}{
	"am": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "'s": {}, "'re": {},
}

func isBeForm(lower string) bool {
	_, ok := beForms[lower]
	return ok
}

// passiveAuxiliary returns the index of the be-form that makes token i a
// passive participle, or -1. The tagger often labels "-ed" participles as
// adjectives, so a JJ ending in "ed" counts when it directly follows the
// be-form.
func passiveAuxiliary(tokens []nlp.Token, tags []string, i int) int {
	j := i - 1
	switch {
	case tags[i] == "VBN":
		for j >= 0 && isAdverbTag(tags[j]) {
			j--
		}
	case tags[i] == "JJ" && strings.HasSuffix(strings.ToLower(tokens[i].Text), "ed"):
	default:
		return -1
	}
	if j < 0 || !isBeForm(strings.ToLower(tokens[j].Text)) {
		return -1
	}
	return j
}

// markPassive labels "be + past participle" constructions: the auxiliary
// gets auxpass and the nearest preceding nominal gets nsubjpass.
func markPassive(tokens []nlp.Token, tags []string) {
	for i := range tags {
		j := passiveAuxiliary(tokens, tags, i)
		if j < 0 {
			continue
		}
		tokens[j].Dep = nlp.DepPassiveAuxiliary

		for k := j - 1; k >= 0; k-- {
			if isClauseBoundary(tags[k]) {
				break
			}
			if isNominalTag(tags[k]) {
				if tokens[k].Dep == "" {
					tokens[k].Dep = nlp.DepPassiveSubject
				}
				break
			}
		}
	}
}

// chunkNounPhrases returns maximal runs of an optional determiner, any
// modifiers, and at least one noun, ending on the noun.
func chunkNounPhrases(texts, tags []string) []string {
	var phrases []string
	i := 0
	for i < len(tags) {
		start := i
		if isDeterminerTag(tags[i]) {
			i++
		}
		lastNoun := -1
		for i < len(tags) && (isModifierTag(tags[i]) || isNounTag(tags[i])) {
			if isNounTag(tags[i]) {
				lastNoun = i
			}
			i++
		}
		if lastNoun < 0 {
			if i == start {
				i++
			}
			continue
		}
		phrases = append(phrases, joinTokens(texts[start:lastNoun+1]))
		i = lastNoun + 1
	}
	return phrases
}

func joinTokens(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 && !strings.HasPrefix(w, "'") {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}

func coarsePOS(tag, lower string) string {
	switch tag {
	case "RB", "RBR", "RBS", "WRB":
		return nlp.POSAdverb
	case "NN", "NNS":
		return nlp.POSNoun
	case "NNP", "NNPS":
		return nlp.POSProperNoun
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		if isBeForm(lower) {
			return nlp.POSAuxiliary
		}
		return nlp.POSVerb
	case "MD":
		return nlp.POSAuxiliary
	case "JJ", "JJR", "JJS":
		return nlp.POSAdjective
	case "PRP", "PRP$", "WP", "WP$":
		return nlp.POSPronoun
	case "DT", "PDT", "WDT":
		return nlp.POSDeterminer
	case "IN":
		return nlp.POSAdposition
	case "CC":
		return nlp.POSConjunction
	case "CD":
		return nlp.POSNumeral
	case "TO", "RP", "POS":
		return nlp.POSParticle
	case "UH":
		return nlp.POSInterject
	case "SYM", "$", "#":
		return nlp.POSSymbol
	case ".", ",", ":", "``", "''", "(", ")", "-LRB-", "-RRB-", "HYPH", "NFP":
		return nlp.POSPunctuation
	}
	return nlp.POSOther
}

func isAdverbTag(tag string) bool {
	return tag == "RB" || tag == "RBR" || tag == "RBS"
}

func isNounTag(tag string) bool {
	return tag == "NN" || tag == "NNS" || tag == "NNP" || tag == "NNPS"
}

func isNominalTag(tag string) bool {
	return isNounTag(tag) || tag == "PRP" || tag == "WP"
}

func isDeterminerTag(tag string) bool {
	return tag == "DT" || tag == "PDT" || tag == "PRP$" || tag == "WP$"
}

func isModifierTag(tag string) bool {
	return tag == "JJ" || tag == "JJR" || tag == "JJS" || tag == "CD" || tag == "VBG" || tag == "POS"
}

func isClauseBoundary(tag string) bool {
	return tag == "." || tag == ":" || tag == "," || tag == "IN"
}

func isPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
