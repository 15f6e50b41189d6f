package ragagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/vector"
	"github.com/rainzero1960/paperscout/pkg/webtool"
)

// Tool names exposed to the model.
const (
	ToolCorpusSearch = "corpus_search"
	ToolWebSearch    = "web_search"
	ToolWebExtract   = "web_extract"
)

// Reference kinds.
const (
	RefPaper = "paper"
	RefWeb   = "web"
)

// Reference is one source surfaced by a tool during a run.
type Reference struct {
	Kind    string `json:"kind"`
	PaperID string `json:"paper_id,omitempty"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// ToolResult is the outcome of one tool execution: the text fed back to
// the model and the sources it surfaced.
type ToolResult struct {
	Output     string
	References []Reference
}

// Tool is one callable tool.
type Tool interface {
	Definition() llm.ToolDefinition
	Execute(ctx context.Context, argsJSON string) (*ToolResult, error)
}

// ToolSet is an ordered collection of tools keyed by name.
type ToolSet struct {
	byName map[string]Tool
	order  []llm.ToolDefinition
}

// NewToolSet builds a set from tools. Later duplicates win.
func NewToolSet(tools ...Tool) *ToolSet {
	ts := &ToolSet{byName: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		def := t.Definition()
		if _, exists := ts.byName[def.Name]; !exists {
			ts.order = append(ts.order, def)
		}
		ts.byName[def.Name] = t
	}
	return ts
}

// Definitions returns the tool definitions in registration order.
func (ts *ToolSet) Definitions() []llm.ToolDefinition {
	return ts.order
}

// Execute dispatches one tool call. An unknown tool name is an error;
// the loop turns it into a tool message so the model can recover.
func (ts *ToolSet) Execute(ctx context.Context, call llm.ToolCall) (*ToolResult, error) {
	tool, ok := ts.byName[call.Name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", call.Name)
	}
	return tool.Execute(ctx, call.Arguments)
}

type queryArgs struct {
	Query string `json:"query"`
}

type urlArgs struct {
	URL string `json:"url"`
}

// snippetLen bounds per-result snippets kept for the reference list.
const snippetLen = 200

// snippet cuts on a rune boundary so multi-byte text stays valid UTF-8.
func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= snippetLen {
		return s
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CorpusSearchTool retrieves from the user's vectorised summaries,
// restricted to the paper ids the session is scoped to.
type CorpusSearchTool struct {
	indexer  *vector.Indexer
	userID   string
	paperIDs []string
	topK     int
}

// NewCorpusSearchTool scopes corpus search to one user. An empty
// paperIDs searches the user's whole corpus.
func NewCorpusSearchTool(indexer *vector.Indexer, userID string, paperIDs []string, topK int) *CorpusSearchTool {
	if topK <= 0 {
		topK = 5
	}
	return &CorpusSearchTool{indexer: indexer, userID: userID, paperIDs: paperIDs, topK: topK}
}

func (t *CorpusSearchTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        ToolCorpusSearch,
		Description: "ユーザーの論文コーパスから、クエリに関連する論文要約を検索します。",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "検索クエリ",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *CorpusSearchTool) Execute(ctx context.Context, argsJSON string) (*ToolResult, error) {
	var args queryArgs
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, fmt.Errorf("parse corpus_search arguments: %w", err)
	}
	if strings.TrimSpace(args.Query) == "" {
		return nil, fmt.Errorf("corpus_search requires a query")
	}

	hits, err := t.indexer.Query(ctx, args.Query, t.topK, vector.ForUserPapers(t.userID, t.paperIDs))
	if err != nil {
		return nil, fmt.Errorf("corpus search: %w", err)
	}
	if len(hits) == 0 {
		return &ToolResult{Output: "該当する論文は見つかりませんでした。"}, nil
	}

	var b strings.Builder
	result := &ToolResult{}
	for i, hit := range hits {
		paperID := hit.Document.Metadata[vector.MetaPaperID]
		fmt.Fprintf(&b, "[%d] paper_id=%s (類似度 %.3f)\n%s\n\n", i+1, paperID, hit.Score, hit.Document.Content)
		result.References = append(result.References, Reference{
			Kind:    RefPaper,
			PaperID: paperID,
			Snippet: snippet(hit.Document.Content),
		})
	}
	result.Output = strings.TrimSpace(b.String())
	return result, nil
}

// WebSearchTool runs a web search via the configured search API.
type WebSearchTool struct {
	client *webtool.Client
}

func NewWebSearchTool(client *webtool.Client) *WebSearchTool {
	return &WebSearchTool{client: client}
}

func (t *WebSearchTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        ToolWebSearch,
		Description: "Webを検索し、関連ページのタイトル・URL・抜粋を返します。",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "検索クエリ",
				},
			},
			"required": []string{"query"},
		},
	}
}

func (t *WebSearchTool) Execute(ctx context.Context, argsJSON string) (*ToolResult, error) {
	var args queryArgs
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, fmt.Errorf("parse web_search arguments: %w", err)
	}
	if strings.TrimSpace(args.Query) == "" {
		return nil, fmt.Errorf("web_search requires a query")
	}

	results, err := t.client.Search(ctx, args.Query)
	if err != nil {
		return nil, fmt.Errorf("web search: %w", err)
	}
	if len(results) == 0 {
		return &ToolResult{Output: "検索結果はありませんでした。"}, nil
	}

	var b strings.Builder
	out := &ToolResult{}
	for i, r := range results {
		fmt.Fprintf(&b, "[%d] %s\nURL: %s\n%s\n\n", i+1, r.Title, r.URL, r.Content)
		out.References = append(out.References, Reference{
			Kind:    RefWeb,
			Title:   r.Title,
			URL:     r.URL,
			Snippet: snippet(r.Content),
		})
	}
	out.Output = strings.TrimSpace(b.String())
	return out, nil
}

// WebExtractTool fetches a URL and returns its readable text.
type WebExtractTool struct {
	client *webtool.Client
}

func NewWebExtractTool(client *webtool.Client) *WebExtractTool {
	return &WebExtractTool{client: client}
}

func (t *WebExtractTool) Definition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name:        ToolWebExtract,
		Description: "指定したURLのページ本文を取得します。",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"url": map[string]any{
					"type":        "string",
					"description": "取得するページのURL",
				},
			},
			"required": []string{"url"},
		},
	}
}

func (t *WebExtractTool) Execute(ctx context.Context, argsJSON string) (*ToolResult, error) {
	var args urlArgs
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return nil, fmt.Errorf("parse web_extract arguments: %w", err)
	}
	if strings.TrimSpace(args.URL) == "" {
		return nil, fmt.Errorf("web_extract requires a url")
	}

	text, err := t.client.Extract(ctx, args.URL)
	if err != nil {
		return nil, fmt.Errorf("web extract: %w", err)
	}
	return &ToolResult{
		Output: text,
		References: []Reference{{
			Kind:    RefWeb,
			URL:     args.URL,
			Snippet: snippet(text),
		}},
	}, nil
}
