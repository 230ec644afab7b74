package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sozercan/inkwell/internal/signals"
)

// ConfigFileEnv names the environment variable pointing at an optional
// config file.
const ConfigFileEnv = "INKWELL_CONFIG"

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Log          LogConfig          `mapstructure:"log"`
	LanguageTool LanguageToolConfig `mapstructure:"languagetool"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Anthropic    AnthropicConfig    `mapstructure:"anthropic"`
	Providers    ProvidersConfig    `mapstructure:"providers"`
	Thresholds   signals.Thresholds `mapstructure:"thresholds"`
}

type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	Host           string        `mapstructure:"host"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LanguageToolConfig struct {
	URL           string        `mapstructure:"url"`
	Language      string        `mapstructure:"language"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxConcurrent int           `mapstructure:"max_concurrent"`
}

type OpenAIConfig struct {
	Provider       string `mapstructure:"provider"`
	APIKey         string `mapstructure:"api_key"`
	APIEndpoint    string `mapstructure:"endpoint"`
	Model          string `mapstructure:"model"`
	DeploymentName string `mapstructure:"deployment"`
	APIVersion     string `mapstructure:"api_version"`
}

type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int64  `mapstructure:"max_tokens"`
}

// ProvidersConfig selects the engine behind each swappable capability.
type ProvidersConfig struct {
	Sentiment  string `mapstructure:"sentiment"`
	Summarizer string `mapstructure:"summarizer"`
}

const (
	ProviderLexicon   = "lexicon"
	ProviderTextRank  = "textrank"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5001")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("languagetool.url", "http://localhost:8010/v2/check")
	v.SetDefault("languagetool.language", "en-US")
	v.SetDefault("languagetool.timeout", "45s")
	v.SetDefault("languagetool.max_concurrent", 4)

	v.SetDefault("openai.provider", "openai")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.endpoint", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.deployment", "gpt-4o")
	v.SetDefault("openai.api_version", "2023-05-15")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "claude-3-5-haiku-latest")
	v.SetDefault("anthropic.max_tokens", 1024)

	v.SetDefault("providers.sentiment", ProviderLexicon)
	v.SetDefault("providers.summarizer", ProviderTextRank)

	th := signals.DefaultThresholds()
	v.SetDefault("thresholds.negative_polarity", th.NegativePolarity)
	v.SetDefault("thresholds.positive_polarity", th.PositivePolarity)
	v.SetDefault("thresholds.max_avg_sentence_length", th.MaxAvgSentenceLength)
	v.SetDefault("thresholds.passive_ratio", th.PassiveRatio)
	v.SetDefault("thresholds.repetition_count", th.RepetitionCount)
	v.SetDefault("thresholds.sentence_start_ratio", th.SentenceStartRatio)
	v.SetDefault("thresholds.adverb_ratio", th.AdverbRatio)
	v.SetDefault("thresholds.min_recommend_length", th.MinRecommendLength)
	v.SetDefault("thresholds.min_summarize_length", th.MinSummarizeLength)
	v.SetDefault("thresholds.min_structure_sentences", th.MinStructureSentence)
	v.SetDefault("thresholds.summary_ratio", th.SummaryRatio)
	v.SetDefault("thresholds.fallback_sentences", th.FallbackSentences)
	v.SetDefault("thresholds.analyze_grammar_limit", th.AnalyzeGrammarLimit)
	v.SetDefault("thresholds.grammar_replacement_limit", th.GrammarReplacementLimit)
	v.SetDefault("thresholds.repetition_list_limit", th.RepetitionListLimit)
	v.SetDefault("thresholds.key_phrase_limit", th.KeyPhraseLimit)
	v.SetDefault("thresholds.entity_limit", th.EntityLimit)
	v.SetDefault("thresholds.keyword_limit", th.KeywordLimit)
}

// LoadConfig reads defaults, then the optional config file at path (falling
// back to $INKWELL_CONFIG), then environment variables: key a.b_c is read
// from A_B_C.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks provider selections against the credentials they need.
func (c *Config) Validate() error {
	var errs []error

	switch c.Providers.Sentiment {
	case ProviderLexicon, ProviderOpenAI, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("unknown sentiment provider %q", c.Providers.Sentiment))
	}
	switch c.Providers.Summarizer {
	case ProviderTextRank, ProviderOpenAI, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("unknown summarizer provider %q", c.Providers.Summarizer))
	}

	if c.uses(ProviderOpenAI) && c.OpenAI.APIKey == "" {
		errs = append(errs, errors.New("openai provider selected but OPENAI_API_KEY is not set"))
	}
	if c.uses(ProviderAnthropic) && c.Anthropic.APIKey == "" {
		errs = append(errs, errors.New("anthropic provider selected but ANTHROPIC_API_KEY is not set"))
	}
	if c.LanguageTool.URL == "" {
		errs = append(errs, errors.New("languagetool.url cannot be empty"))
	}

	return errors.Join(errs...)
}

func (c *Config) uses(provider string) bool {
	return c.Providers.Sentiment == provider || c.Providers.Summarizer == provider
}
