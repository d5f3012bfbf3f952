package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider replays a scripted queue of responses. Tests use it to stand
// in for a real provider, and TUTORIN_LLM_PROVIDER=mock runs the whole app
// against it offline.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse

	// Calls records every request in order, for assertions on what the
	// coach actually sent.
	Calls []Request
}

// MockResponse is one scripted reply. Set Err to make the call fail instead.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// NewMockProvider builds a mock preloaded with the given replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// AddResponse appends one more scripted reply.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// Generate pops the next scripted reply. An exhausted queue reads as a
// provider outage, which conveniently also exercises the error paths.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.queue) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// CallCount returns how many times Generate ran.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
