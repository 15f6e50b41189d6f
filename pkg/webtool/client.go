// Package webtool wraps the Tavily search API and a URL text extractor
// for the web-flavoured research and RAG tools.
package webtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rainzero1960/paperscout/pkg/config"
)

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Client calls the search API and fetches pages for extraction.
type Client struct {
	cfg        *config.WebToolConfig
	httpClient *http.Client
}

// NewClient creates a client.
func NewClient(cfg *config.WebToolConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Enabled reports whether the search API is configured.
func (c *Client) Enabled() bool {
	return c.cfg.SearchAPIKey != ""
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// Search queries the web search API.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("web search is not configured")
	}

	payload, err := json.Marshal(searchRequest{
		APIKey:     c.cfg.SearchAPIKey,
		Query:      query,
		MaxResults: c.cfg.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(c.cfg.SearchBaseURL, "/")+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search API HTTP %d: %s", resp.StatusCode, string(body))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return parsed.Results, nil
}

// extractMaxChars bounds extracted page text fed back to the LLM.
const extractMaxChars = 15000

// Extract fetches a URL and flattens the page to readable text.
func (c *Client) Extract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create extract request: %w", err)
	}
	req.Header.Set("User-Agent", "paperscout/1.0 (web content fetcher)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	doc.Find("script, style, nav, footer, header, aside, iframe").Remove()

	var b strings.Builder
	if title := strings.TrimSpace(doc.Find("title").Text()); title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	doc.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	})

	text := strings.TrimSpace(b.String())
	if len(text) > extractMaxChars {
		text = text[:extractMaxChars] + "\n\n[以下省略]"
	}
	if text == "" {
		return "", fmt.Errorf("no readable content at %s", url)
	}
	return text, nil
}
