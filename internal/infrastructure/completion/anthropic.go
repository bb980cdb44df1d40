package completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

var anthropicModels = map[string]string{
	"claude-sonnet": "claude-sonnet-4-20250514",
	"claude-haiku":  "claude-haiku-4-5-20251001",
}

const defaultAnthropicModel = "claude-haiku"

type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(apiKey, model, baseURL string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)

	return &AnthropicProvider{
		client: &client,
		model:  resolveModel(model, anthropicModels, defaultAnthropicModel),
	}, nil
}

func (p *AnthropicProvider) Complete(ctx context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  buildAnthropicMessages(req.Messages),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, mapAnthropicError(err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return &ports.CompletionResult{
				Text:  block.Text,
				Model: string(msg.Model),
				Usage: ports.CompletionUsage{
					InputTokens:  int(msg.Usage.InputTokens),
					OutputTokens: int(msg.Usage.OutputTokens),
				},
			}, nil
		}
	}
	return nil, &ErrInvalidResponse{Err: errors.New("no text content in Anthropic response")}
}

func (p *AnthropicProvider) ModelID() string { return p.model }

func buildAnthropicMessages(turns []domain.ChatTurn) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(turns))
	for i, t := range turns {
		role := anthropic.MessageParamRoleUser
		if t.Role == domain.ChatRoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		out[i] = anthropic.MessageParam{
			Role:    role,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(t.Content)},
		}
	}
	return out
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.StatusCode, err)
	}
	return &ErrProviderUnavailable{Err: err}
}
