package ports

import (
	"context"

	"github.com/futureproof/careerguide/internal/core/domain"
)

// CompletionRequest is a single text-completion call.
type CompletionRequest struct {
	System      string
	Messages    []domain.ChatTurn
	Temperature float64
	MaxTokens   int
}

type CompletionUsage struct {
	InputTokens  int
	OutputTokens int
}

type CompletionResult struct {
	Text  string
	Model string
	Usage CompletionUsage
}

// Completer is an external text-completion provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	// ModelID returns the model the provider is configured to use.
	ModelID() string
}
