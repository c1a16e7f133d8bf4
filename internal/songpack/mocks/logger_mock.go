package mocks

import (
	"fmt"
	"sync"
)

// MockLogger は出力されたメッセージを記録するLoggerのモック実装です
type MockLogger struct {
	Messages []string
	Warnings []string

	mu sync.Mutex
}

// Printf はメッセージを記録します
func (l *MockLogger) Printf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, fmt.Sprintf(format, a...))
}

// Warnf は警告を記録します
func (l *MockLogger) Warnf(format string, a ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, a...))
}
