package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sozercan/inkwell/internal/signals"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "http://localhost:8010/v2/check", cfg.LanguageTool.URL)
	assert.Equal(t, ProviderLexicon, cfg.Providers.Sentiment)
	assert.Equal(t, ProviderTextRank, cfg.Providers.Summarizer)
	assert.Equal(t, signals.DefaultThresholds(), cfg.Thresholds)
}

func TestLoadConfigDoesNotLog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LANGUAGETOOL_URL", "http://lt:8081/v2/check")
	t.Setenv("THRESHOLDS_PASSIVE_RATIO", "0.5")
	t.Setenv("THRESHOLDS_REPETITION_COUNT", "4")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "http://lt:8081/v2/check", cfg.LanguageTool.URL)
	assert.Equal(t, 0.5, cfg.Thresholds.PassiveRatio)
	assert.Equal(t, 4, cfg.Thresholds.RepetitionCount)
	assert.Equal(t, signals.DefaultAdverbRatio, cfg.Thresholds.AdverbRatio)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inkwell.yaml")
	content := []byte(`
server:
  port: "7000"
thresholds:
  max_avg_sentence_length: 20
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Thresholds.MaxAvgSentenceLength)
	assert.Equal(t, signals.DefaultNegativePolarity, cfg.Thresholds.NegativePolarity)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRequiresKeysForRemoteProviders(t *testing.T) {
	t.Setenv("PROVIDERS_SENTIMENT", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.Providers.Sentiment)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	t.Setenv("PROVIDERS_SUMMARIZER", "gensim")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gensim")
}
