package tagging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/rainzero1960/paperscout/pkg/config"
	"github.com/rainzero1960/paperscout/pkg/llm"
	"github.com/rainzero1960/paperscout/pkg/prompt"
)

// ErrNoValidTags is returned when every attempt failed to yield at
// least two vocabulary tags. Callers leave the link's tags empty.
var ErrNoValidTags = errors.New("no valid tags produced")

// routeAttempts is the per-route attempt budget: three on the primary,
// then three on the fallback.
const routeAttempts = 3

// Tagger drives the tagging prompt through the gateway.
type Tagger struct {
	gateway  *llm.Gateway
	resolver *prompt.Resolver
}

// NewTagger creates a tagger.
func NewTagger(gateway *llm.Gateway, resolver *prompt.Resolver) *Tagger {
	return &Tagger{gateway: gateway, resolver: resolver}
}

// GenerateTags labels a summary body with vocabulary tags. An answer
// that parses to fewer than two valid tags counts as a failed attempt.
func (t *Tagger) GenerateTags(ctx context.Context, userID, summaryBody string) ([]string, error) {
	resolved, err := t.resolver.Resolve(ctx, prompt.Request{
		Type:   prompt.TypeTagging,
		UserID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve tagging prompt: %w", err)
	}

	system := resolved.Body + "\n\n" + RulesText()
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: summaryBody},
	}

	routes := []config.ModelSpec{t.gateway.DefaultSpec(), t.gateway.FallbackSpec()}
	var lastErr error
	for _, spec := range routes {
		for attempt := 1; attempt <= routeAttempts; attempt++ {
			result, err := t.gateway.Invoke(ctx, messages, spec, &llm.Options{MaxRetries: 1})
			if err != nil {
				lastErr = err
				if ctx.Err() != nil {
					return nil, err
				}
				continue
			}

			tags := ParseCSVLine(result.Text)
			if len(tags) >= 2 {
				return tags, nil
			}
			lastErr = fmt.Errorf("answer yielded %d valid tags: %q", len(tags), result.Text)
			slog.Warn("Tagging answer rejected",
				"route", spec.String(), "attempt", attempt, "error", lastErr)
		}
	}
	return nil, fmt.Errorf("%w: %w", ErrNoValidTags, lastErr)
}

// ParseCSVLine parses the model's single-line CSV answer: whitespace
// around items is tolerated, unknown tags are discarded, duplicates
// collapse to the canonical form.
func ParseCSVLine(answer string) []string {
	// Models occasionally wrap the line in a code fence or add prose;
	// take the first line that yields known tags.
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "`"))
		if line == "" {
			continue
		}
		var tags []string
		seen := map[string]bool{}
		for _, raw := range strings.Split(line, ",") {
			tag, ok := Canonical(raw)
			if !ok || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
		if len(tags) > 0 {
			return tags
		}
	}
	return nil
}

// ParseTagList splits a stored comma-separated tag column.
func ParseTagList(stored string) []string {
	var out []string
	for _, raw := range strings.Split(stored, ",") {
		tag := strings.TrimSpace(raw)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// JoinTags renders tags back into the stored column form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// MergeWithLevelTags combines freshly generated content tags with the
// level tags already on the link, preserving user annotations.
func MergeWithLevelTags(existing string, generated []string) string {
	var kept []string
	for _, tag := range ParseTagList(existing) {
		if IsLevelTag(tag) {
			kept = append(kept, tag)
		}
	}
	seen := map[string]bool{}
	for _, tag := range kept {
		seen[tag] = true
	}
	merged := kept
	for _, tag := range generated {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	sort.Strings(merged)
	return JoinTags(merged)
}

// HasContentTags reports whether the stored tags contain anything
// beyond level tags; tagging is skipped in that case unless forced.
func HasContentTags(stored string) bool {
	for _, tag := range ParseTagList(stored) {
		if !IsLevelTag(tag) {
			return true
		}
	}
	return false
}
