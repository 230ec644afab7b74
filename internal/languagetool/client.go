// Package languagetool is a nlp.GrammarChecker backed by a LanguageTool
// server's /v2/check endpoint.
package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sozercan/inkwell/internal/config"
	"github.com/sozercan/inkwell/internal/nlp"
)

type Client struct {
	endpoint   string
	language   string
	httpClient *http.Client
	sem        *semaphore.Weighted
}

func NewClient(cfg config.LanguageToolConfig) (*Client, error) {
	slog.Info("Creating LanguageTool client", "endpoint", cfg.URL, "language", cfg.Language)
	if cfg.URL == "" {
		return nil, fmt.Errorf("LanguageTool endpoint cannot be empty")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid LanguageTool endpoint: %w", err)
	}

	language := cfg.Language
	if language == "" {
		language = "en-US"
	}

	c := &Client{
		endpoint:   cfg.URL,
		language:   language,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.MaxConcurrent > 0 {
		c.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	return c, nil
}

type checkResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Context struct {
			Text string `json:"text"`
		} `json:"context"`
		Rule struct {
			ID       string `json:"id"`
			Category struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"category"`
		} `json:"rule"`
	} `json:"matches"`
}

// CheckGrammar returns every match in server order.
func (c *Client) CheckGrammar(ctx context.Context, text string) ([]nlp.GrammarMatch, error) {
	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer c.sem.Release(1)
	}

	vals := url.Values{}
	vals.Set("language", c.language)
	vals.Set("text", text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(vals.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("LanguageTool request failed", "error", err)
		return nil, fmt.Errorf("languagetool request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading languagetool response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("languagetool returned status %d", resp.StatusCode)
	}

	var lt checkResponse
	if err := json.Unmarshal(body, &lt); err != nil {
		return nil, fmt.Errorf("decoding languagetool response: %w", err)
	}

	matches := make([]nlp.GrammarMatch, 0, len(lt.Matches))
	for _, m := range lt.Matches {
		replacements := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			replacements = append(replacements, r.Value)
		}
		matches = append(matches, nlp.GrammarMatch{
			Message:      m.Message,
			Replacements: replacements,
			Context:      m.Context.Text,
			Offset:       m.Offset,
			Length:       m.Length,
			RuleID:       m.Rule.ID,
			Category:     m.Rule.Category.ID,
		})
	}

	slog.Debug("LanguageTool check completed", "matches", len(matches), "duration", time.Since(start))
	return matches, nil
}
