package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/infrastructure/catalog"
)

const testNS = "0123456789abcdef0123456789abcdef"

var errBackend = errors.New("backend down")

// ---------------------------------------------------------------------------
// In-memory stub KV store
// ---------------------------------------------------------------------------

type stubKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error // if set, Get returns this error
	setErr error // if set, Set returns this error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (s *stubKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *stubKV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = append([]byte(nil), value...)
	s.ttls[key] = ttl
	return nil
}

func (s *stubKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *stubKV) Ping(context.Context) error { return s.getErr }

// ---------------------------------------------------------------------------
// Stub completer
// ---------------------------------------------------------------------------

type stubCompleter struct {
	text  string
	err   error
	calls []ports.CompletionRequest
}

func (c *stubCompleter) Complete(_ context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	c.calls = append(c.calls, req)
	if c.err != nil {
		return nil, c.err
	}
	return &ports.CompletionResult{Text: c.text, Model: "stub"}, nil
}

func (c *stubCompleter) ModelID() string { return "stub" }

// ---------------------------------------------------------------------------
// Stub chat service
// ---------------------------------------------------------------------------

type stubChatService struct {
	askFn func(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error)
}

func (s *stubChatService) Ask(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error) {
	return s.askFn(ctx, history, profile)
}

func testCatalog() ports.Catalog {
	return catalog.MustLoad()
}

func nopLog() zerolog.Logger { return zerolog.Nop() }

func validInput() domain.AssessmentInput {
	return domain.AssessmentInput{
		Name:            "Ada",
		CurrentField:    "Marketing",
		SelectedSkills:  []string{"Communication", "Excel"},
		Interests:       []string{"Analytics"},
		ExperienceLevel: "intermediate",
	}
}
