package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rainzero1960/paperscout/pkg/config"
)

// Gateway routes invocations to the primary provider with retry and
// fixed backoff, and flips to the fallback route after repeated
// failures. Safe for concurrent use; provider handles are shared.
type Gateway struct {
	cfg       *config.LLMConfig
	providers map[config.ProviderType]Provider

	// consecutive primary failures across calls; at FailThreshold new
	// calls start directly on the fallback route.
	mu           sync.Mutex
	primaryFails int
}

// NewGateway creates a gateway over the given providers. Providers for
// both the primary and fallback routes must be registered.
func NewGateway(cfg *config.LLMConfig, providers ...Provider) (*Gateway, error) {
	m := make(map[config.ProviderType]Provider, len(providers))
	for _, p := range providers {
		m[p.Type()] = p
	}
	if _, ok := m[cfg.Primary.Provider]; !ok {
		return nil, fmt.Errorf("no provider registered for primary route %s", cfg.Primary)
	}
	if _, ok := m[cfg.Fallback.Provider]; !ok {
		return nil, fmt.Errorf("no provider registered for fallback route %s", cfg.Fallback)
	}
	return &Gateway{cfg: cfg, providers: m}, nil
}

// Invoke calls the configured route for spec with retry, timeout, and
// fallback. On success the Result reports which route actually produced
// the text. On exhaustion it returns an error wrapping
// ErrAllRetriesFailed and the final CallError.
func (g *Gateway) Invoke(ctx context.Context, messages []Message, spec config.ModelSpec, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	primaryAttempts := opts.MaxRetries
	if primaryAttempts <= 0 {
		primaryAttempts = g.cfg.MaxRetries
	}

	routes := []struct {
		spec     config.ModelSpec
		attempts int
		fallback bool
	}{
		{spec: spec, attempts: primaryAttempts},
		{spec: g.cfg.Fallback, attempts: g.cfg.FallbackRetries, fallback: true},
	}

	// A route already at the failure threshold is skipped in favour of
	// the fallback; new failures keep counting.
	if g.primaryExhausted() && spec == g.cfg.Primary {
		slog.Warn("Primary LLM route at failure threshold, starting on fallback",
			"primary", spec.String(), "fallback", g.cfg.Fallback.String())
		routes = routes[1:]
	}

	var lastErr error
	for _, route := range routes {
		provider, ok := g.providers[route.spec.Provider]
		if !ok {
			lastErr = &CallError{
				Kind:     KindFatal,
				Provider: string(route.spec.Provider),
				Model:    route.spec.Model,
				Err:      fmt.Errorf("no provider registered"),
			}
			continue
		}

		// Skip the fallback leg unless the primary failed enough times
		// to cross the threshold.
		if route.fallback && !g.primaryExhausted() {
			break
		}

		result, err := g.invokeRoute(ctx, provider, messages, route.spec, route.attempts, opts)
		if err == nil {
			result.UsedFallback = route.fallback
			return result, nil
		}
		lastErr = err

		// A cancelled context will not improve on a different route.
		if ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllRetriesFailed, lastErr)
}

// invokeRoute runs up to attempts tries against one provider/model with
// the fixed backoff between tries.
func (g *Gateway) invokeRoute(ctx context.Context, provider Provider, messages []Message, spec config.ModelSpec, attempts int, opts *Options) (*Result, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = g.cfg.CallTimeout
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		result, err := provider.Generate(attemptCtx, messages, spec.Model, opts)
		cancel()

		if err == nil {
			result.Provider = spec.Provider
			result.Model = spec.Model
			if spec == g.cfg.Primary {
				g.recordPrimarySuccess()
			}
			return result, nil
		}
		if spec == g.cfg.Primary {
			g.recordPrimaryFailure()
		}

		kind := classify(err)
		lastErr = &CallError{
			Kind:     kind,
			Provider: string(spec.Provider),
			Model:    spec.Model,
			Err:      err,
		}

		slog.Warn("LLM attempt failed",
			"route", spec.String(),
			"attempt", attempt,
			"of", attempts,
			"kind", string(kind),
			"error", err)

		if kind == KindFatal {
			return nil, lastErr
		}
		if attempt == attempts {
			break
		}
		if ctx.Err() != nil {
			return nil, lastErr
		}

		select {
		case <-time.After(g.cfg.RetryBackoff):
		case <-ctx.Done():
			return nil, lastErr
		}
	}

	return nil, lastErr
}

// InvokeStructured invokes the route in JSON mode and unmarshals the
// response into out. A response that fails to parse is treated as a
// transient error: the call is retried up to the route's attempt budget.
func (g *Gateway) InvokeStructured(ctx context.Context, messages []Message, spec config.ModelSpec, opts *Options, out any) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	jsonOpts := *opts
	jsonOpts.JSONMode = true

	attempts := jsonOpts.MaxRetries
	if attempts <= 0 {
		attempts = g.cfg.MaxRetries
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := g.Invoke(ctx, messages, spec, &jsonOpts)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(stripCodeFence(result.Text)), out); err == nil {
			return result, nil
		} else {
			lastErr = &CallError{
				Kind:     KindTransient,
				Provider: string(result.Provider),
				Model:    result.Model,
				Err:      fmt.Errorf("structured output validation: %w", err),
			}
			slog.Warn("Structured output failed validation, retrying",
				"route", spec.String(), "attempt", attempt, "error", err)
		}
		if ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllRetriesFailed, lastErr)
}

// DefaultSpec returns the configured primary route.
func (g *Gateway) DefaultSpec() config.ModelSpec {
	return g.cfg.Primary
}

// FallbackSpec returns the configured fallback route.
func (g *Gateway) FallbackSpec() config.ModelSpec {
	return g.cfg.Fallback
}

func (g *Gateway) primaryExhausted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.primaryFails >= g.cfg.FailThreshold
}

func (g *Gateway) recordPrimaryFailure() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.primaryFails++
}

func (g *Gateway) recordPrimarySuccess() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.primaryFails = 0
}

// stripCodeFence removes a wrapping markdown code block, which several
// models emit around JSON even in JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
