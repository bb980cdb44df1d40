package completion

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

// instrumented records latency and token usage of every provider call.
type instrumented struct {
	inner ports.Completer
	log   zerolog.Logger
}

func WithInstrumentation(p ports.Completer, log zerolog.Logger) ports.Completer {
	return &instrumented{inner: p, log: log}
}

func (i *instrumented) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	start := time.Now()
	res, err := i.inner.Complete(ctx, req)
	elapsed := time.Since(start)

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.CompletionDuration.WithLabelValues(i.inner.ModelID(), result).Observe(elapsed.Seconds())

	evt := i.log.Debug()
	if err != nil {
		evt = i.log.Warn().Err(err)
	}
	if res != nil {
		metrics.CompletionTokensTotal.WithLabelValues("input").Add(float64(res.Usage.InputTokens))
		metrics.CompletionTokensTotal.WithLabelValues("output").Add(float64(res.Usage.OutputTokens))
		evt = evt.Int("input_tokens", res.Usage.InputTokens).Int("output_tokens", res.Usage.OutputTokens)
	}
	evt.Str("model", i.inner.ModelID()).
		Int("turns", len(req.Messages)).
		Dur("latency", elapsed).
		Msg("completion call")

	return res, err
}

func (i *instrumented) ModelID() string { return i.inner.ModelID() }

// timeoutProvider bounds each request, retries included.
type timeoutProvider struct {
	inner   ports.Completer
	timeout time.Duration
}

// WithTimeout wraps p with a per-request deadline. Zero disables it.
func WithTimeout(p ports.Completer, d time.Duration) ports.Completer {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Complete(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
