package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/inkwell/internal/config"
	"github.com/sozercan/inkwell/internal/nlp/linguistics"
	"github.com/sozercan/inkwell/internal/nlp/sentiment"
	"github.com/sozercan/inkwell/internal/nlp/summary"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestNewWithLocalProviders(t *testing.T) {
	a, err := New(loadDefaults(t))
	require.NoError(t, err)
	assert.NotNil(t, a)
}

func TestSelectLocalProviders(t *testing.T) {
	cfg := loadDefaults(t)
	llms := &llmCache{cfg: cfg}

	scorer, err := selectSentiment(cfg, llms)
	require.NoError(t, err)
	assert.IsType(t, &sentiment.Lexicon{}, scorer)

	s, err := selectSummarizer(cfg, linguistics.NewProse(), llms)
	require.NoError(t, err)
	assert.IsType(t, &summary.TextRank{}, s)
	assert.Empty(t, llms.providers)
}

func TestSelectLLMProvidersShareClient(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Providers.Sentiment = config.ProviderAnthropic
	cfg.Providers.Summarizer = config.ProviderAnthropic
	cfg.Anthropic.APIKey = "test-key"
	llms := &llmCache{cfg: cfg}

	scorer, err := selectSentiment(cfg, llms)
	require.NoError(t, err)
	assert.IsType(t, &sentiment.LLM{}, scorer)

	s, err := selectSummarizer(cfg, linguistics.NewProse(), llms)
	require.NoError(t, err)
	assert.IsType(t, &summary.LLM{}, s)
	assert.Len(t, llms.providers, 1)
}

func TestLLMCacheUnknownProvider(t *testing.T) {
	_, err := (&llmCache{cfg: loadDefaults(t)}).get("mystery")
	assert.ErrorContains(t, err, "mystery")
}
