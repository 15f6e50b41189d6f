// Package paper fetches scholarly-paper metadata from arXiv abstract
// pages. Full text is fetched lazily from the HTML rendering when a
// flow actually needs it.
package paper

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Metadata is the parsed abstract-page content for one paper.
type Metadata struct {
	// ExternalID is the arXiv identifier, e.g. "2401.00001".
	ExternalID  string
	Title       string
	Authors     string
	Abstract    string
	PublishedAt time.Time
	URL         string
}

// Client fetches and parses arXiv pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client. baseURL overrides the arXiv host in
// tests; empty means the real site.
func NewClient(timeout time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://arxiv.org"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// arxivIDRe matches modern arXiv identifiers with an optional version.
var arxivIDRe = regexp.MustCompile(`(\d{4}\.\d{4,5})(v\d+)?`)

// ParseExternalID extracts the arXiv id from an abs/pdf/html URL or a
// bare identifier. The version suffix is dropped so one paper maps to
// one external_id.
func ParseExternalID(raw string) (string, error) {
	m := arxivIDRe.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("no arXiv identifier in %q", raw)
	}
	return m[1], nil
}

// Fetch downloads and parses the abstract page for the paper named by
// rawURL (any abs/pdf URL form or a bare id).
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Metadata, error) {
	id, err := ParseExternalID(rawURL)
	if err != nil {
		return nil, err
	}

	pageURL := fmt.Sprintf("%s/abs/%s", c.baseURL, id)
	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{ExternalID: id, URL: pageURL}

	meta.Title = cleanPrefixed(doc.Find("h1.title").First().Text(), "Title:")
	if meta.Title == "" {
		return nil, fmt.Errorf("abstract page for %s has no title", id)
	}

	var authors []string
	doc.Find("div.authors a").Each(func(_ int, s *goquery.Selection) {
		if name := strings.TrimSpace(s.Text()); name != "" {
			authors = append(authors, name)
		}
	})
	meta.Authors = strings.Join(authors, ", ")

	meta.Abstract = cleanPrefixed(doc.Find("blockquote.abstract").First().Text(), "Abstract:")

	if dateline := strings.TrimSpace(doc.Find("div.dateline").First().Text()); dateline != "" {
		meta.PublishedAt = parseDateline(dateline)
	}

	return meta, nil
}

// FetchFullText downloads the HTML rendering of the paper and flattens
// it to text. Not every paper has one; callers fall back to the
// abstract on error.
func (c *Client) FetchFullText(ctx context.Context, externalID string) (string, error) {
	doc, err := c.fetchDocument(ctx, fmt.Sprintf("%s/html/%s", c.baseURL, externalID))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, nav, footer, header").Remove()

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	})

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("HTML rendering for %s is empty", externalID)
	}
	return text, nil
}

func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "paperscout/1.0 (paper metadata fetcher)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// cleanPrefixed strips a label prefix like "Title:" and collapses the
// whitespace arXiv sprinkles through the markup.
func cleanPrefixed(text, prefix string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, prefix)
	return strings.Join(strings.Fields(text), " ")
}

// parseDateline pulls the submission date out of "(Submitted on 2 Jan
// 2024)" style datelines; zero time when the format is unrecognised.
var datelineRe = regexp.MustCompile(`(\d{1,2} [A-Z][a-z]{2} \d{4})`)

func parseDateline(dateline string) time.Time {
	m := datelineRe.FindStringSubmatch(dateline)
	if m == nil {
		return time.Time{}
	}
	t, err := time.Parse("2 Jan 2006", m[1])
	if err != nil {
		return time.Time{}
	}
	return t
}
