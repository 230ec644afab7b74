package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sozercan/inkwell/apimodels"
	"github.com/sozercan/inkwell/internal/helpers"
	"github.com/sozercan/inkwell/internal/nlp"
	"github.com/sozercan/inkwell/internal/signals"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeLinguistics struct {
	sentences []nlp.Sentence
	entities  []nlp.Entity
	phrases   []string
	err       error
	calls     int
}

func (f *fakeLinguistics) Tokenize(context.Context, string) ([]nlp.Sentence, error) {
	f.calls++
	return f.sentences, f.err
}

func (f *fakeLinguistics) Parse(context.Context, string) (nlp.Document, error) {
	f.calls++
	return nlp.Document{Sentences: f.sentences, NounPhrases: f.phrases, Entities: f.entities}, f.err
}

func (f *fakeLinguistics) ExtractEntities(context.Context, string) ([]nlp.Entity, error) {
	f.calls++
	return f.entities, f.err
}

func (f *fakeLinguistics) ExtractNounPhrases(context.Context, string) ([]string, error) {
	f.calls++
	return f.phrases, f.err
}

type fakeGrammar struct {
	matches []nlp.GrammarMatch
	err     error
	calls   int
}

func (f *fakeGrammar) CheckGrammar(context.Context, string) ([]nlp.GrammarMatch, error) {
	f.calls++
	return f.matches, f.err
}

type fakeSentiment struct {
	score nlp.Sentiment
	err   error
	calls int
}

func (f *fakeSentiment) ScoreSentiment(context.Context, string) (nlp.Sentiment, error) {
	f.calls++
	return f.score, f.err
}

type fakeKeywords struct {
	keywords []string
	calls    int
}

func (f *fakeKeywords) RankKeywords(_ context.Context, sentences []string, _ int, _ bool) ([]string, error) {
	f.calls++
	if len(sentences) < 2 {
		return nil, nlp.ErrTooFewSentences
	}
	return f.keywords, nil
}

type fakeSummarizer struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummarizer) Summarize(context.Context, string, float64) (string, error) {
	f.calls++
	return f.summary, f.err
}

type fakes struct {
	ling      *fakeLinguistics
	grammar   *fakeGrammar
	sentiment *fakeSentiment
	keywords  *fakeKeywords
	summary   *fakeSummarizer
}

func newFakes() *fakes {
	return &fakes{
		ling:      &fakeLinguistics{},
		grammar:   &fakeGrammar{},
		sentiment: &fakeSentiment{},
		keywords:  &fakeKeywords{},
		summary:   &fakeSummarizer{},
	}
}

func (f *fakes) analyzer() *Analyzer {
	return New(Providers{
		Linguistics: f.ling,
		Grammar:     f.grammar,
		Sentiment:   f.sentiment,
		Keywords:    f.keywords,
		Summarizer:  f.summary,
	}, signals.DefaultThresholds())
}

func (f *fakes) totalCalls() int {
	return f.ling.calls + f.grammar.calls + f.sentiment.calls + f.keywords.calls + f.summary.calls
}

// sentence builds a sentence of n distinct alphabetic words w0..wn-1.
func sentence(n int) nlp.Sentence {
	s := nlp.Sentence{}
	words := make([]string, n)
	for i := 0; i < n; i++ {
		w := fmt.Sprintf("w%d", i)
		words[i] = w
		s.Tokens = append(s.Tokens, nlp.Token{Text: w, Lemma: w, POS: nlp.POSNoun, IsAlpha: true})
	}
	s.Text = strings.Join(words, " ") + "."
	return s
}

func textSentence(text string) nlp.Sentence {
	s := nlp.Sentence{Text: text}
	for _, w := range strings.Fields(strings.TrimRight(text, ".")) {
		s.Tokens = append(s.Tokens, nlp.Token{Text: w, Lemma: strings.ToLower(w), IsAlpha: true, IsStop: nlp.IsStopword(w)})
	}
	return s
}

func req(text string) apimodels.AnalysisRequest {
	return apimodels.AnalysisRequest{Text: text}
}

func TestEmptyTextRejectedBeforeProviders(t *testing.T) {
	f := newFakes()
	a := f.analyzer()
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t "} {
		var errs []error
		_, err := a.Analyze(ctx, req(text))
		errs = append(errs, err)
		_, err = a.CheckGrammar(ctx, req(text))
		errs = append(errs, err)
		_, err = a.Recommend(ctx, req(text))
		errs = append(errs, err)
		_, err = a.Summarize(ctx, req(text))
		errs = append(errs, err)
		_, err = a.CheckStyle(ctx, req(text))
		errs = append(errs, err)

		for _, err := range errs {
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		}
		assert.Equal(t, msgNoText, errs[0].Error())
		assert.Equal(t, msgNoText, errs[1].Error())
		assert.Equal(t, msgTooShortRecommend, errs[2].Error())
		assert.Equal(t, msgTooShortSummarize, errs[3].Error())
		assert.Equal(t, msgNoText, errs[4].Error())
	}
	assert.Zero(t, f.totalCalls())
}

func TestMinimumLengths(t *testing.T) {
	ctx := context.Background()
	pad := func(n int) string { return "  " + strings.Repeat("é", n) + "\n" }

	f := newFakes()
	f.ling.sentences = []nlp.Sentence{sentence(3)}
	f.summary.summary = "kept"
	a := f.analyzer()

	_, err := a.Recommend(ctx, req(pad(49)))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, string(apimodels.OpRecommend), verr.Op)

	_, err = a.Recommend(ctx, req(pad(50)))
	require.NoError(t, err)

	_, err = a.Summarize(ctx, req(pad(99)))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, string(apimodels.OpSummarize), verr.Op)

	_, err = a.Summarize(ctx, req(pad(100)))
	require.NoError(t, err)
}

func TestAnalyzePayload(t *testing.T) {
	f := newFakes()
	f.grammar.matches = []nlp.GrammarMatch{{
		Message:      "Possible spelling mistake found.",
		Replacements: []string{"their", "there"},
		Context:      "...over thier heads...",
		Offset:       5,
		Length:       5,
		RuleID:       "MORFOLOGIK_RULE_EN_US",
		Category:     "TYPOS",
	}}
	f.sentiment.score = nlp.Sentiment{Polarity: -0.3, Subjectivity: 0.25}
	f.ling.sentences = []nlp.Sentence{sentence(30), sentence(20)}

	got, err := f.analyzer().Analyze(context.Background(), req("irrelevant to the fakes"))
	require.NoError(t, err)

	want := &apimodels.AnalyzeResponse{
		Suggestions: []apimodels.Suggestion{
			{
				Type:        apimodels.SuggestionGrammar,
				Message:     "Possible spelling mistake found.",
				Replacement: helpers.Ptr("their"),
				Context:     helpers.Ptr("...over thier heads..."),
				Offset:      helpers.Ptr(5),
				Length:      helpers.Ptr(5),
			},
			{
				Type:    apimodels.SuggestionStatistics,
				Message: "Word count: 50 | Unique words: 30 | Sentences: 2",
			},
		},
		Sentiment: apimodels.Sentiment{Polarity: -0.3, Subjectivity: 0.25},
		Stats:     apimodels.Stats{WordCount: 50, SentenceCount: 2, AvgSentenceLength: 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeSuggestionOrder(t *testing.T) {
	f := newFakes()
	for i := 0; i < 12; i++ {
		f.grammar.matches = append(f.grammar.matches, nlp.GrammarMatch{Message: fmt.Sprintf("m%d", i)})
	}
	f.sentiment.score = nlp.Sentiment{Polarity: -0.31}
	passive := sentence(22)
	passive.Tokens[0].Dep = nlp.DepPassiveSubject
	f.ling.sentences = []nlp.Sentence{sentence(30), passive}

	got, err := f.analyzer().Analyze(context.Background(), req("text"))
	require.NoError(t, err)

	var types []apimodels.SuggestionType
	for _, s := range got.Suggestions {
		types = append(types, s.Type)
	}
	want := append([]apimodels.SuggestionType{}, repeatType(apimodels.SuggestionGrammar, 10)...)
	want = append(want, apimodels.SuggestionTone, apimodels.SuggestionReadability, apimodels.SuggestionStyle, apimodels.SuggestionStatistics)
	assert.Equal(t, want, types)
	assert.Nil(t, got.Suggestions[0].Replacement)
	assert.Equal(t, "m9", got.Suggestions[9].Message)
	assert.Equal(t, 26.0, got.Stats.AvgSentenceLength)
}

func repeatType(t apimodels.SuggestionType, n int) []apimodels.SuggestionType {
	out := make([]apimodels.SuggestionType, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func TestAnalyzeMinimalInputStillReportsStatistics(t *testing.T) {
	f := newFakes()

	got, err := f.analyzer().Analyze(context.Background(), req("x"))
	require.NoError(t, err)
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, apimodels.SuggestionStatistics, got.Suggestions[0].Type)
	assert.Zero(t, got.Stats.AvgSentenceLength)
}

func TestCheckGrammarReturnsEveryMatch(t *testing.T) {
	f := newFakes()
	for i := 0; i < 12; i++ {
		f.grammar.matches = append(f.grammar.matches, nlp.GrammarMatch{
			Message:      fmt.Sprintf("m%d", i),
			Replacements: []string{"a", "b", "c", "d"},
		})
	}

	got, err := f.analyzer().CheckGrammar(context.Background(), req("text"))
	require.NoError(t, err)
	require.Len(t, got.Suggestions, 12)
	for _, s := range got.Suggestions {
		assert.Equal(t, []string{"a", "b", "c"}, s.Replacements)
	}
}

func TestCheckGrammarNoMatches(t *testing.T) {
	got, err := newFakes().analyzer().CheckGrammar(context.Background(), req("Fine text."))
	require.NoError(t, err)
	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
}

const longText = "Inkwell reviews drafts for editors and writers across several teams every week."

func TestRecommendSingleSentence(t *testing.T) {
	f := newFakes()
	f.ling.sentences = []nlp.Sentence{textSentence(longText)}
	f.ling.phrases = []string{"drafts", "several teams", "several teams", "every week"}
	f.keywords.keywords = []string{"should", "not", "appear"}

	got, err := f.analyzer().Recommend(context.Background(), req(longText))
	require.NoError(t, err)

	want := &apimodels.RecommendResponse{
		Recommendations: []apimodels.Recommendation{
			{Type: apimodels.RecommendationStructure, Message: "Consider expanding your content with more detailed explanations."},
			{Type: apimodels.RecommendationContent, Message: "Adding specific names, organizations, or locations can make your content more concrete."},
		},
		KeyPhrases: []string{"several teams", "every week"},
		Entities:   []apimodels.Entity{},
		Keywords:   []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recommend() mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, f.keywords.calls)
	assert.Equal(t, 1, f.ling.calls, "sentences, phrases and entities come from one parse")
}

func TestRecommendWithEntitiesAndKeywords(t *testing.T) {
	f := newFakes()
	f.ling.sentences = []nlp.Sentence{sentence(5), sentence(6), sentence(7)}
	for i := 0; i < 12; i++ {
		f.ling.entities = append(f.ling.entities, nlp.Entity{Text: fmt.Sprintf("Acme %d", i), Label: "ORG"})
	}
	f.keywords.keywords = []string{"drafts", "editors"}

	got, err := f.analyzer().Recommend(context.Background(), req(longText))
	require.NoError(t, err)
	assert.Empty(t, got.Recommendations)
	assert.NotNil(t, got.Recommendations)
	assert.Len(t, got.Entities, 10)
	assert.Equal(t, []string{"drafts", "editors"}, got.Keywords)
	assert.Equal(t, 1, f.keywords.calls)
}

const summaryText = "The first sentence opens the story. The second sentence adds detail. " +
	"The third sentence raises stakes. The fourth sentence ends it all."

func summaryFakes() *fakes {
	f := newFakes()
	for _, s := range strings.SplitAfter(summaryText, ". ") {
		f.ling.sentences = append(f.ling.sentences, textSentence(strings.TrimSpace(s)))
	}
	return f
}

func TestSummarizeUsesSummarizer(t *testing.T) {
	f := summaryFakes()
	f.summary.summary = "The third sentence raises stakes."

	got, err := f.analyzer().Summarize(context.Background(), req(summaryText))
	require.NoError(t, err)
	assert.Equal(t, &apimodels.SummaryResponse{
		Summary:        "The third sentence raises stakes.",
		OriginalLength: 22,
		SummaryLength:  5,
	}, got)
	assert.Zero(t, f.ling.calls)
}

func TestSummarizeFallsBack(t *testing.T) {
	want := "The first sentence opens the story. The second sentence adds detail. The third sentence raises stakes."

	tests := []struct {
		name    string
		summary string
		err     error
	}{
		{"empty summary", "", nil},
		{"summarizer error", "", errors.New("graph failure")},
		{"too few sentences", "", nlp.ErrTooFewSentences},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := summaryFakes()
			f.summary.summary, f.summary.err = tt.summary, tt.err

			got, err := f.analyzer().Summarize(context.Background(), req(summaryText))
			require.NoError(t, err)
			assert.Equal(t, want, got.Summary)
			assert.Equal(t, 16, got.SummaryLength)
			assert.LessOrEqual(t, got.SummaryLength, got.OriginalLength)
		})
	}
}

func TestSummarizeFallbackWithFewSentences(t *testing.T) {
	f := newFakes()
	f.ling.sentences = []nlp.Sentence{textSentence("Only one."), textSentence("And two.")}
	text := strings.Repeat("word ", 30)

	got, err := f.analyzer().Summarize(context.Background(), req(text))
	require.NoError(t, err)
	assert.Equal(t, "Only one. And two.", got.Summary)
}

func TestCheckStyle(t *testing.T) {
	f := newFakes()
	same := func(extra ...string) nlp.Sentence {
		return textSentence("Writers " + strings.Join(extra, " ") + " draft.")
	}
	f.ling.sentences = []nlp.Sentence{
		same("always"), same("often"), same("quickly"), same("really"),
	}
	for i, s := range f.ling.sentences {
		s.Tokens[1].POS = nlp.POSAdverb
		f.ling.sentences[i] = s
	}

	got, err := f.analyzer().CheckStyle(context.Background(), req("text"))
	require.NoError(t, err)

	want := &apimodels.StyleResponse{Suggestions: []apimodels.Suggestion{
		{Type: apimodels.SuggestionWordChoice, Message: "Words used frequently: draft, writers. Consider using synonyms."},
		{Type: apimodels.SuggestionSentenceVariety, Message: "Many sentences start similarly. Vary your sentence beginnings for better flow."},
		{Type: apimodels.SuggestionStyle, Message: "High use of adverbs (4). Consider using stronger verbs instead."},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CheckStyle() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckStyleNoFindings(t *testing.T) {
	f := newFakes()
	f.ling.sentences = []nlp.Sentence{textSentence("Short.")}

	got, err := f.analyzer().CheckStyle(context.Background(), req("Short."))
	require.NoError(t, err)
	assert.NotNil(t, got.Suggestions)
	assert.Empty(t, got.Suggestions)
}

func TestCollaboratorFailures(t *testing.T) {
	boom := errors.New("languagetool returned status 503")
	ctx := context.Background()

	f := newFakes()
	f.grammar.err = boom
	_, err := f.analyzer().Analyze(ctx, req("text"))
	var cerr *CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CollabGrammar, cerr.Collaborator)
	assert.Equal(t, boom.Error(), err.Error())
	assert.ErrorIs(t, err, boom)

	f = newFakes()
	f.sentiment.err = errors.New("scorer down")
	_, err = f.analyzer().Analyze(ctx, req("text"))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CollabSentiment, cerr.Collaborator)

	f = newFakes()
	f.ling.err = errors.New("tagger down")
	_, err = f.analyzer().CheckStyle(ctx, req("text"))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, CollabLinguistics, cerr.Collaborator)
	assert.Equal(t, "tagger down", err.Error())
}

func TestOperationsAreIdempotent(t *testing.T) {
	f := summaryFakes()
	f.grammar.matches = []nlp.GrammarMatch{{Message: "m", Replacements: []string{"r"}}}
	f.sentiment.score = nlp.Sentiment{Polarity: 0.7, Subjectivity: 0.9}
	f.ling.phrases = []string{"the story", "the story", "more detail"}
	f.keywords.keywords = []string{"sentence", "story"}
	a := f.analyzer()
	ctx := context.Background()

	type call func() (any, error)
	calls := map[string]call{
		"analyze":   func() (any, error) { return a.Analyze(ctx, req(summaryText)) },
		"grammar":   func() (any, error) { return a.CheckGrammar(ctx, req(summaryText)) },
		"recommend": func() (any, error) { return a.Recommend(ctx, req(summaryText)) },
		"summarize": func() (any, error) { return a.Summarize(ctx, req(summaryText)) },
		"style":     func() (any, error) { return a.CheckStyle(ctx, req(summaryText)) },
	}
	for name, c := range calls {
		t.Run(name, func(t *testing.T) {
			first, err := c()
			require.NoError(t, err)
			second, err := c()
			require.NoError(t, err)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("second call differs (-first +second):\n%s", diff)
			}
		})
	}
}
