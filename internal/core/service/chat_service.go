package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

const (
	DefaultChatTemperature = 0.7
	DefaultChatMaxTokens   = 500
)

const advisorPreamble = "You are FutureProof, an AI career advisor helping users with skill development, role exploration, and learning guidance."

const advisorGuidance = `Your role is to:
1. Provide personalized career guidance based on their profile
2. Help them understand learning paths and next steps
3. Answer questions about skills, roles, and career development
4. Suggest resources and actionable steps
5. Be encouraging and motivational

Keep responses concise (2-3 sentences), actionable, and relevant to their goals. If asked about specific technical topics, provide practical examples.`

// ChatConfig tunes completion calls. Zero values fall back to the defaults.
type ChatConfig struct {
	Temperature float64
	MaxTokens   int
}

type chatService struct {
	completer ports.Completer
	cfg       ChatConfig
	log       zerolog.Logger
}

func NewChatService(completer ports.Completer, cfg ChatConfig, log zerolog.Logger) ports.ChatService {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultChatTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultChatMaxTokens
	}
	return &chatService{completer: completer, cfg: cfg, log: log}
}

// Ask relays history to the completion provider and returns the reply.
// Provider failures are reported as domain.ErrCompletionFailed.
func (s *chatService) Ask(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error) {
	if len(history) == 0 {
		return "", invalidField("messages", "messages must contain at least 1 item(s)")
	}

	res, err := s.completer.Complete(ctx, ports.CompletionRequest{
		System:      BuildSystemPrompt(profile),
		Messages:    history,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err == nil && strings.TrimSpace(res.Text) == "" {
		err = fmt.Errorf("empty completion from %s", s.completer.ModelID())
	}
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int("turns", len(history)).Msg("chat completion failed")
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return res.Text, nil
}

// BuildSystemPrompt renders the advisor instruction, embedding the profile
// when one is known.
func BuildSystemPrompt(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(advisorPreamble)
	b.WriteString("\n")
	if p != nil {
		b.WriteString("\nUser Profile:\n")
		fmt.Fprintf(&b, "- Current Field: %s\n", p.CurrentField)
		fmt.Fprintf(&b, "- Career Goal: %s\n", orDefault(p.CareerGoal, "Exploring options"))
		fmt.Fprintf(&b, "- Skills: %s\n", orDefault(strings.Join(p.SelectedSkills, ", "), "Not specified"))
		fmt.Fprintf(&b, "- Learning Style: %s\n", orDefault(p.LearningStyle, "Not specified"))
		fmt.Fprintf(&b, "- Experience Level: %s\n", orDefault(p.ExperienceLevel, "Not specified"))
	}
	b.WriteString("\n")
	b.WriteString(advisorGuidance)
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
