package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// ChatSession is one conversation held in memory. It allows a single
// request in flight at a time.
type ChatSession struct {
	mu       sync.Mutex
	chat     ports.ChatService
	profile  *domain.UserProfile
	messages []domain.ChatMessage
	busy     bool
	now      func() time.Time
}

// NewChatSession starts a conversation with the advisor greeting.
func NewChatSession(chat ports.ChatService, profile *domain.UserProfile) *ChatSession {
	s := &ChatSession{chat: chat, profile: profile, now: time.Now}
	s.messages = []domain.ChatMessage{s.message(domain.ChatRoleAssistant, domain.ChatGreeting)}
	return s
}

// Messages returns a copy of the conversation so far.
func (s *ChatSession) Messages() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatMessage(nil), s.messages...)
}

// Send appends text as a user message and waits for the reply. On failure
// the apology is appended and returned together with the error.
func (s *ChatSession) Send(ctx context.Context, text string) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, invalidField("text", "text is required")
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrChatBusy
	}
	s.busy = true
	s.messages = append(s.messages, s.message(domain.ChatRoleUser, text))
	history := make([]domain.ChatTurn, 0, len(s.messages))
	for _, m := range s.messages {
		history = append(history, domain.ChatTurn{Role: m.Role, Content: m.Text})
	}
	s.mu.Unlock()

	reply, err := s.chat.Ask(ctx, history, s.profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		reply = domain.ChatApology
	}
	msg := s.message(domain.ChatRoleAssistant, reply)
	s.messages = append(s.messages, msg)
	return msg, err
}

func (s *ChatSession) message(role domain.ChatRole, text string) domain.ChatMessage {
	return domain.ChatMessage{ID: uuid.NewString(), Role: role, Text: text, Timestamp: s.now().UTC()}
}
