package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestBuildSystemPrompt(t *testing.T) {
	plain := BuildSystemPrompt(nil)
	if strings.Contains(plain, "User Profile") {
		t.Fatalf("prompt without a profile must not mention one:\n%s", plain)
	}
	if !strings.HasPrefix(plain, advisorPreamble) || !strings.HasSuffix(plain, advisorGuidance) {
		t.Fatalf("unexpected prompt:\n%s", plain)
	}

	withProfile := BuildSystemPrompt(&domain.UserProfile{CurrentField: "Teaching", SelectedSkills: []string{"SQL", "Excel"}})
	for _, want := range []string{
		"- Current Field: Teaching",
		"- Career Goal: Exploring options",
		"- Skills: SQL, Excel",
		"- Learning Style: Not specified",
		"- Experience Level: Not specified",
	} {
		if !strings.Contains(withProfile, want) {
			t.Fatalf("prompt missing %q:\n%s", want, withProfile)
		}
	}
}

func TestChatService_Ask(t *testing.T) {
	c := &stubCompleter{text: "Start with SQL."}
	svc := NewChatService(c, ChatConfig{}, nopLog())

	history := []domain.ChatTurn{{Role: domain.ChatRoleUser, Content: "Where do I start?"}}
	reply, err := svc.Ask(context.Background(), history, nil)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply != "Start with SQL." {
		t.Fatalf("unexpected reply %q", reply)
	}

	req := c.calls[0]
	if req.Temperature != DefaultChatTemperature || req.MaxTokens != DefaultChatMaxTokens {
		t.Fatalf("expected default tuning, got %+v", req)
	}
	if len(req.Messages) != 1 || req.System == "" {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestChatService_Failures(t *testing.T) {
	history := []domain.ChatTurn{{Role: domain.ChatRoleUser, Content: "hi"}}

	tests := []struct {
		name string
		c    *stubCompleter
	}{
		{"provider error", &stubCompleter{err: errBackend}},
		{"blank reply", &stubCompleter{text: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewChatService(tt.c, ChatConfig{}, nopLog())
			if _, err := svc.Ask(context.Background(), history, nil); !errors.Is(err, domain.ErrCompletionFailed) {
				t.Fatalf("expected ErrCompletionFailed, got %v", err)
			}
		})
	}

	svc := NewChatService(&stubCompleter{text: "x"}, ChatConfig{}, nopLog())
	var ve *domain.ValidationError
	if _, err := svc.Ask(context.Background(), nil, nil); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for empty history, got %v", err)
	}
}

func TestChatSession_SendsFullHistory(t *testing.T) {
	var seen []domain.ChatTurn
	chat := &stubChatService{askFn: func(_ context.Context, history []domain.ChatTurn, _ *domain.UserProfile) (string, error) {
		seen = history
		return "Try a small project.", nil
	}}
	s := NewChatSession(chat, nil)

	msg, err := s.Send(context.Background(), "  What next? ")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if msg.Role != domain.ChatRoleAssistant || msg.Text != "Try a small project." {
		t.Fatalf("unexpected reply %+v", msg)
	}
	if len(seen) != 2 || seen[0].Content != domain.ChatGreeting || seen[1].Content != "What next?" {
		t.Fatalf("expected greeting and question in history, got %+v", seen)
	}
	if got := s.Messages(); len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
}

func TestChatSession_Apology(t *testing.T) {
	chat := &stubChatService{askFn: func(context.Context, []domain.ChatTurn, *domain.UserProfile) (string, error) {
		return "", domain.ErrCompletionFailed
	}}
	s := NewChatSession(chat, nil)

	msg, err := s.Send(context.Background(), "hello")
	if !errors.Is(err, domain.ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}
	if msg.Text != domain.ChatApology {
		t.Fatalf("expected apology, got %q", msg.Text)
	}

	if _, err := s.Send(context.Background(), "   "); err == nil {
		t.Fatal("blank text must be rejected")
	}
	if got := s.Messages(); len(got) != 3 {
		t.Fatalf("expected greeting, question and apology, got %d messages", len(got))
	}
}

func TestChatSession_Busy(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	chat := &stubChatService{askFn: func(context.Context, []domain.ChatTurn, *domain.UserProfile) (string, error) {
		close(started)
		<-release
		return "done", nil
	}}
	s := NewChatSession(chat, nil)

	errc := make(chan error, 1)
	go func() {
		_, err := s.Send(context.Background(), "first")
		errc <- err
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first request never reached the chat service")
	}

	if _, err := s.Send(context.Background(), "second"); !errors.Is(err, domain.ErrChatBusy) {
		t.Fatalf("expected ErrChatBusy, got %v", err)
	}

	close(release)
	if err := <-errc; err != nil {
		t.Fatalf("first Send: %v", err)
	}
}
