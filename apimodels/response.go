package apimodels

type SuggestionType string

const (
	SuggestionGrammar         SuggestionType = "Grammar"
	SuggestionTone            SuggestionType = "Tone"
	SuggestionReadability     SuggestionType = "Readability"
	SuggestionStyle           SuggestionType = "Style"
	SuggestionStatistics      SuggestionType = "Statistics"
	SuggestionWordChoice      SuggestionType = "Word Choice"
	SuggestionSentenceVariety SuggestionType = "Sentence Variety"
)

// Suggestion is a single typed finding. The optional fields are only set
// for findings anchored to a span of the input, i.e. grammar matches.
type Suggestion struct {
	Type        SuggestionType `json:"type"`
	Message     string         `json:"message"`
	Replacement *string        `json:"replacement,omitempty"`
	Context     *string        `json:"context,omitempty"`
	Offset      *int           `json:"offset,omitempty"`
	Length      *int           `json:"length,omitempty"`
}

type GrammarFinding struct {
	Message      string   `json:"message"`
	Replacements []string `json:"replacements"`
	Context      string   `json:"context"`
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	RuleID       string   `json:"rule"`
	Category     string   `json:"category"`
}

type RecommendationType string

const (
	RecommendationStructure RecommendationType = "Structure"
	RecommendationContent   RecommendationType = "Content"
)

type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type Stats struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

type AnalyzeResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Sentiment   Sentiment    `json:"sentiment"`
	Stats       Stats        `json:"stats"`
}

type GrammarResponse struct {
	Suggestions []GrammarFinding `json:"suggestions"`
}

type RecommendResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
	KeyPhrases      []string         `json:"key_phrases"`
	Entities        []Entity         `json:"entities"`
	Keywords        []string         `json:"keywords"`
}

type SummaryResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

type StyleResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ErrorBody builds the failure payload for op: the error message plus the
// operation's natural result field, empty rather than null.
func ErrorBody(op Operation, message string) map[string]any {
	body := map[string]any{"error": message}
	switch op {
	case OpGrammar:
		body["suggestions"] = []GrammarFinding{}
	case OpRecommend:
		body["recommendations"] = []Recommendation{}
	case OpSummarize:
		body["summary"] = ""
	default:
		body["suggestions"] = []Suggestion{}
	}
	return body
}
