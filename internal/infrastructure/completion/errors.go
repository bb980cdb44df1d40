package completion

import (
	"fmt"
	"net/http"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider unavailable: %v", e.Err)
	}
	return "completion provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered without usable text.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid completion response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrBadRequest indicates the provider rejected the request itself
// (bad key, unknown model, oversized prompt). It is never retried.
type ErrBadRequest struct {
	Status int
	Err    error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("completion request rejected (%d): %v", e.Status, e.Err)
}

func (e *ErrBadRequest) Unwrap() error { return e.Err }

// classifyStatus maps an HTTP status from a provider SDK error.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case status >= http.StatusInternalServerError || status == 0:
		return &ErrProviderUnavailable{Err: err}
	case status >= http.StatusBadRequest:
		return &ErrBadRequest{Status: status, Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so callers can pin exact ids.
func resolveModel(name string, models map[string]string, fallback string) string {
	if name == "" {
		name = fallback
	}
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
