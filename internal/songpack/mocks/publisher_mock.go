package mocks

import (
	"context"
	"sync"
)

// MockPublisher はPublisherのモック実装です
type MockPublisher struct {
	Error error
	Root  string
	Files []string
	Calls int

	mu sync.Mutex
}

// Publish はモック実装です
func (m *MockPublisher) Publish(ctx context.Context, root string, files []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	m.Root = root
	m.Files = append([]string(nil), files...)
	return m.Error
}
