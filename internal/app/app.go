// Package app wires configured providers into an analyzer.
package app

import (
	"fmt"
	"log/slog"

	"github.com/sozercan/inkwell/internal/analyzer"
	"github.com/sozercan/inkwell/internal/config"
	"github.com/sozercan/inkwell/internal/languagetool"
	"github.com/sozercan/inkwell/internal/llm"
	"github.com/sozercan/inkwell/internal/nlp"
	"github.com/sozercan/inkwell/internal/nlp/keywords"
	"github.com/sozercan/inkwell/internal/nlp/linguistics"
	"github.com/sozercan/inkwell/internal/nlp/sentiment"
	"github.com/sozercan/inkwell/internal/nlp/summary"
)

// New builds the analyzer described by cfg. Remote LLM clients are created
// once and shared between the capabilities that select them.
func New(cfg *config.Config) (*analyzer.Analyzer, error) {
	grammar, err := languagetool.NewClient(cfg.LanguageTool)
	if err != nil {
		return nil, fmt.Errorf("creating grammar checker: %w", err)
	}

	ling := linguistics.NewProse()
	llms := &llmCache{cfg: cfg}

	scorer, err := selectSentiment(cfg, llms)
	if err != nil {
		return nil, err
	}
	summarizer, err := selectSummarizer(cfg, ling, llms)
	if err != nil {
		return nil, err
	}

	slog.Info("Analyzer ready",
		"grammar", cfg.LanguageTool.URL,
		"sentiment", cfg.Providers.Sentiment,
		"summarizer", cfg.Providers.Summarizer,
	)
	return analyzer.New(analyzer.Providers{
		Linguistics: ling,
		Grammar:     grammar,
		Sentiment:   scorer,
		Keywords:    keywords.NewTFIDF(),
		Summarizer:  summarizer,
	}, cfg.Thresholds), nil
}

func selectSentiment(cfg *config.Config, llms *llmCache) (nlp.SentimentScorer, error) {
	switch cfg.Providers.Sentiment {
	case config.ProviderOpenAI, config.ProviderAnthropic:
		p, err := llms.get(cfg.Providers.Sentiment)
		if err != nil {
			return nil, err
		}
		return sentiment.NewLLM(p), nil
	default:
		lex, err := sentiment.NewLexicon()
		if err != nil {
			return nil, err
		}
		return lex, nil
	}
}

func selectSummarizer(cfg *config.Config, tokenizer nlp.Tokenizer, llms *llmCache) (nlp.Summarizer, error) {
	switch cfg.Providers.Summarizer {
	case config.ProviderOpenAI, config.ProviderAnthropic:
		p, err := llms.get(cfg.Providers.Summarizer)
		if err != nil {
			return nil, err
		}
		return summary.NewLLM(tokenizer, p), nil
	default:
		return summary.NewTextRank(tokenizer), nil
	}
}

type llmCache struct {
	cfg       *config.Config
	providers map[string]llm.Provider
}

func (c *llmCache) get(name string) (llm.Provider, error) {
	if p, ok := c.providers[name]; ok {
		return p, nil
	}

	var (
		p   llm.Provider
		err error
	)
	switch name {
	case config.ProviderOpenAI:
		p, err = llm.NewOpenAI(&c.cfg.OpenAI)
	case config.ProviderAnthropic:
		p, err = llm.NewAnthropic(&c.cfg.Anthropic)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", name, err)
	}

	if c.providers == nil {
		c.providers = make(map[string]llm.Provider)
	}
	c.providers[name] = p
	return p, nil
}
