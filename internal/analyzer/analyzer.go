// Package analyzer composes the linguistic providers and the signal
// interpreters into the five analysis operations.
package analyzer

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sozercan/inkwell/apimodels"
	"github.com/sozercan/inkwell/internal/nlp"
	"github.com/sozercan/inkwell/internal/signals"
)

// Providers are the collaborators an Analyzer calls. Implementations must
// be safe for concurrent use.
type Providers struct {
	Linguistics nlp.LinguisticProvider
	Grammar     nlp.GrammarChecker
	Sentiment   nlp.SentimentScorer
	Keywords    nlp.KeywordRanker
	Summarizer  nlp.Summarizer
}

// Analyzer holds no per-request state; one instance serves every request.
type Analyzer struct {
	providers  Providers
	thresholds signals.Thresholds
}

func New(providers Providers, thresholds signals.Thresholds) *Analyzer {
	return &Analyzer{
		providers:  providers,
		thresholds: thresholds,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.AnalyzeResponse, error) {
	if err := requireLength(apimodels.OpAnalyze, req.Text, 1, msgNoText); err != nil {
		return nil, err
	}
	slog.Info("Starting analysis", "chars", utf8.RuneCountInString(req.Text))
	startTime := time.Now()

	matches, err := a.providers.Grammar.CheckGrammar(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpAnalyze, CollabGrammar, err)
	}
	suggestions := signals.GrammarSuggestions(matches, a.thresholds.AnalyzeGrammarLimit)

	sentiment, err := a.providers.Sentiment.ScoreSentiment(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpAnalyze, CollabSentiment, err)
	}

	sentences, err := a.providers.Linguistics.Tokenize(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpAnalyze, CollabLinguistics, err)
	}
	stats := signals.ComputeStatistics(sentences)

	suggestions = appendFinding(suggestions, signals.Tone(sentiment.Polarity, a.thresholds))
	suggestions = appendFinding(suggestions, signals.Readability(stats, a.thresholds))
	suggestions = appendFinding(suggestions, signals.PassiveVoice(sentences, a.thresholds))
	suggestions = append(suggestions, signals.StatisticsSuggestion(stats))

	slog.Info("Analysis complete", "suggestions", len(suggestions), "duration", time.Since(startTime).String())
	return &apimodels.AnalyzeResponse{
		Suggestions: suggestions,
		Sentiment: apimodels.Sentiment{
			Polarity:     sentiment.Polarity,
			Subjectivity: sentiment.Subjectivity,
		},
		Stats: apimodels.Stats{
			WordCount:         stats.WordCount,
			SentenceCount:     stats.SentenceCount,
			AvgSentenceLength: signals.Round2(stats.AvgSentenceLength),
		},
	}, nil
}

func (a *Analyzer) CheckGrammar(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.GrammarResponse, error) {
	if err := requireLength(apimodels.OpGrammar, req.Text, 1, msgNoText); err != nil {
		return nil, err
	}

	matches, err := a.providers.Grammar.CheckGrammar(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpGrammar, CollabGrammar, err)
	}
	slog.Debug("Grammar check complete", "matches", len(matches))

	return &apimodels.GrammarResponse{
		Suggestions: signals.GrammarFindings(matches, a.thresholds.GrammarReplacementLimit),
	}, nil
}

func (a *Analyzer) Recommend(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.RecommendResponse, error) {
	if err := requireLength(apimodels.OpRecommend, req.Text, a.thresholds.MinRecommendLength, msgTooShortRecommend); err != nil {
		return nil, err
	}

	doc, err := a.providers.Linguistics.Parse(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpRecommend, CollabLinguistics, err)
	}
	sentences, entities := doc.Sentences, doc.Entities

	keywords := []string{}
	if len(sentences) > 1 {
		ranked, err := a.providers.Keywords.RankKeywords(ctx, nlp.SentenceTexts(sentences), a.thresholds.KeywordLimit, true)
		if err != nil {
			return nil, a.failed(apimodels.OpRecommend, CollabKeywords, err)
		}
		keywords = append(keywords, ranked...)
	}

	recommendations := []apimodels.Recommendation{}
	if r := signals.Structure(len(sentences), a.thresholds); r != nil {
		recommendations = append(recommendations, *r)
	}
	if r := signals.EntityCoverage(entities); r != nil {
		recommendations = append(recommendations, *r)
	}

	return &apimodels.RecommendResponse{
		Recommendations: recommendations,
		KeyPhrases:      signals.KeyPhrases(doc.NounPhrases, a.thresholds.KeyPhraseLimit),
		Entities:        signals.Entities(entities, a.thresholds.EntityLimit),
		Keywords:        keywords,
	}, nil
}

// Summarize never surfaces a summarizer failure: an error or an empty
// summary falls back to the leading sentences of the text.
func (a *Analyzer) Summarize(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.SummaryResponse, error) {
	if err := requireLength(apimodels.OpSummarize, req.Text, a.thresholds.MinSummarizeLength, msgTooShortSummarize); err != nil {
		return nil, err
	}

	summary, err := a.providers.Summarizer.Summarize(ctx, req.Text, a.thresholds.SummaryRatio)
	switch {
	case err != nil:
		slog.Warn("Summarizer failed, using leading sentences", "error", err)
		summary = ""
	case summary == "":
		slog.Debug("Summarizer selected nothing, using leading sentences")
	}

	if summary == "" {
		sentences, err := a.providers.Linguistics.Tokenize(ctx, req.Text)
		if err != nil {
			return nil, a.failed(apimodels.OpSummarize, CollabLinguistics, err)
		}
		summary = leadingSentences(sentences, a.thresholds.FallbackSentences)
	}

	return &apimodels.SummaryResponse{
		Summary:        summary,
		OriginalLength: len(strings.Fields(req.Text)),
		SummaryLength:  len(strings.Fields(summary)),
	}, nil
}

func (a *Analyzer) CheckStyle(ctx context.Context, req apimodels.AnalysisRequest) (*apimodels.StyleResponse, error) {
	if err := requireLength(apimodels.OpStyleCheck, req.Text, 1, msgNoText); err != nil {
		return nil, err
	}

	sentences, err := a.providers.Linguistics.Tokenize(ctx, req.Text)
	if err != nil {
		return nil, a.failed(apimodels.OpStyleCheck, CollabLinguistics, err)
	}

	suggestions := []apimodels.Suggestion{}
	suggestions = appendFinding(suggestions, signals.Repetition(sentences, a.thresholds))
	suggestions = appendFinding(suggestions, signals.SentenceVariety(sentences, a.thresholds))
	suggestions = appendFinding(suggestions, signals.AdverbDensity(sentences, a.thresholds))

	return &apimodels.StyleResponse{Suggestions: suggestions}, nil
}

func (a *Analyzer) failed(op apimodels.Operation, collaborator string, err error) error {
	slog.Error("Collaborator failed", "operation", op, "collaborator", collaborator, "error", err)
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

// requireLength checks the trimmed rune length of text against minLen.
func requireLength(op apimodels.Operation, text string, minLen int, message string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n == 0 || n < minLen {
		return &ValidationError{Op: string(op), Message: message}
	}
	return nil
}

func appendFinding(list []apimodels.Suggestion, s *apimodels.Suggestion) []apimodels.Suggestion {
	if s == nil {
		return list
	}
	return append(list, *s)
}

func leadingSentences(sentences []nlp.Sentence, n int) string {
	if len(sentences) < n {
		n = len(sentences)
	}
	texts := make([]string, n)
	for i := 0; i < n; i++ {
		texts[i] = sentences[i].Text
	}
	return strings.Join(texts, " ")
}
