package signals

// Default thresholds. Comparisons against them are strict.
const (
	DefaultNegativePolarity     = -0.3
	DefaultPositivePolarity     = 0.5
	DefaultMaxAvgSentenceLength = 25.0
	DefaultPassiveRatio         = 0.3
	DefaultRepetitionCount      = 3
	DefaultSentenceStartRatio   = 0.7
	DefaultAdverbRatio          = 0.05
	DefaultMinRecommendLength   = 50
	DefaultMinSummarizeLength   = 100
	DefaultMinStructureSentence = 3
	DefaultSummaryRatio         = 0.3
	DefaultFallbackSentences    = 3

	DefaultAnalyzeGrammarLimit     = 10
	DefaultGrammarReplacementLimit = 3
	DefaultRepetitionListLimit     = 5
	DefaultKeyPhraseLimit          = 10
	DefaultEntityLimit             = 10
	DefaultKeywordLimit            = 10
)

// Thresholds holds every tunable cut-off used by the interpreters and the
// aggregators. The zero value is not useful; start from DefaultThresholds.
type Thresholds struct {
	NegativePolarity     float64 `mapstructure:"negative_polarity"`
	PositivePolarity     float64 `mapstructure:"positive_polarity"`
	MaxAvgSentenceLength float64 `mapstructure:"max_avg_sentence_length"`
	PassiveRatio         float64 `mapstructure:"passive_ratio"`
	RepetitionCount      int     `mapstructure:"repetition_count"`
	SentenceStartRatio   float64 `mapstructure:"sentence_start_ratio"`
	AdverbRatio          float64 `mapstructure:"adverb_ratio"`
	MinRecommendLength   int     `mapstructure:"min_recommend_length"`
	MinSummarizeLength   int     `mapstructure:"min_summarize_length"`
	MinStructureSentence int     `mapstructure:"min_structure_sentences"`
	SummaryRatio         float64 `mapstructure:"summary_ratio"`
	FallbackSentences    int     `mapstructure:"fallback_sentences"`

	AnalyzeGrammarLimit     int `mapstructure:"analyze_grammar_limit"`
	GrammarReplacementLimit int `mapstructure:"grammar_replacement_limit"`
	RepetitionListLimit     int `mapstructure:"repetition_list_limit"`
	KeyPhraseLimit          int `mapstructure:"key_phrase_limit"`
	EntityLimit             int `mapstructure:"entity_limit"`
	KeywordLimit            int `mapstructure:"keyword_limit"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		NegativePolarity:        DefaultNegativePolarity,
		PositivePolarity:        DefaultPositivePolarity,
		MaxAvgSentenceLength:    DefaultMaxAvgSentenceLength,
		PassiveRatio:            DefaultPassiveRatio,
		RepetitionCount:         DefaultRepetitionCount,
		SentenceStartRatio:      DefaultSentenceStartRatio,
		AdverbRatio:             DefaultAdverbRatio,
		MinRecommendLength:      DefaultMinRecommendLength,
		MinSummarizeLength:      DefaultMinSummarizeLength,
		MinStructureSentence:    DefaultMinStructureSentence,
		SummaryRatio:            DefaultSummaryRatio,
		FallbackSentences:       DefaultFallbackSentences,
		AnalyzeGrammarLimit:     DefaultAnalyzeGrammarLimit,
		GrammarReplacementLimit: DefaultGrammarReplacementLimit,
		RepetitionListLimit:     DefaultRepetitionListLimit,
		KeyPhraseLimit:          DefaultKeyPhraseLimit,
		EntityLimit:             DefaultEntityLimit,
		KeywordLimit:            DefaultKeywordLimit,
	}
}
