// Package completion adapts text-completion providers to ports.Completer.
package completion

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// mockReply is what the mock provider answers when nothing is queued.
const mockReply = "Focus on one core skill at a time and build a small project with it this week. Share it in your portfolio so mentors can give you feedback."

type Config struct {
	Provider     string
	Model        string
	BaseURL      string
	OpenAIKey    string
	AnthropicKey string
	GeminiKey    string
	Timeout      time.Duration
	Retry        RetryConfig
}

// NewProvider builds the configured provider.
// Wrapping order: caller → timeout → retry → instrumentation → base.
func NewProvider(ctx context.Context, cfg Config, log zerolog.Logger) (ports.Completer, error) {
	var (
		base ports.Completer
		err  error
	)
	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, cfg.BaseURL)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.AnthropicKey, cfg.Model, cfg.BaseURL)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model)
	case "mock":
		m := NewMockProvider()
		m.Default = mockReply
		base = m
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithInstrumentation(base, log.With().Str("component", "completion").Logger())
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout), nil
}
