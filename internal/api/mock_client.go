package api

import (
	"context"
	"sync"

	"github.com/diogo/mindmate/internal/models"
)

// MockChatClient is a mock implementation of ChatClient for testing
type MockChatClient struct {
	// Mock return values
	Result *models.ReplyResult
	Err    error

	// ChatFunc, when set, replaces Result/Err
	ChatFunc func(ctx context.Context, message string) (*models.ReplyResult, error)

	mu       sync.Mutex
	messages []string
}

// Ensure MockChatClient implements ChatClient
var _ ChatClient = (*MockChatClient)(nil)

// Chat records the message and returns the configured result
func (m *MockChatClient) Chat(ctx context.Context, message string) (*models.ReplyResult, error) {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	fn := m.ChatFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, message)
	}
	return m.Result, m.Err
}

// Calls returns how many requests were made
func (m *MockChatClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// Messages returns the messages sent, in order
func (m *MockChatClient) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

// NewMockReply returns a mock that answers every message with reply
func NewMockReply(reply string, crisis bool) *MockChatClient {
	return &MockChatClient{
		Result: &models.ReplyResult{Reply: reply, HasReply: true, Crisis: crisis},
	}
}
