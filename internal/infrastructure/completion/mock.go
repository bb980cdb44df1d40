package completion

import (
	"context"
	"sync"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Text string
	Err  error
}

// MockProvider is a deterministic Completer. It returns canned responses in
// FIFO order and records every request. Once the queue is empty it answers
// with Default, or ErrProviderUnavailable when Default is empty.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Default   string
	Calls     []ports.CompletionRequest
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Complete(_ context.Context, req ports.CompletionRequest) (*ports.CompletionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if m.Default == "" {
			return nil, &ErrProviderUnavailable{}
		}
		return &ports.CompletionResult{Text: m.Default, Model: "mock"}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &ports.CompletionResult{Text: resp.Text, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
