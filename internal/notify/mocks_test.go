// Package notify_test provides a mock Sender for dispatcher tests.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"errors"
	"sync"
)

// MockSender records every notification it is asked to send.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	RequestID string
	SendError error
	SendFunc  func(context.Context, Notification) (string, error)

	// Call tracking
	Calls            []Notification
	CallCount        int
	LastNotification Notification
}

// NewMockSender creates a mock sender that succeeds with request ID "req-1"
func NewMockSender() *MockSender {
	return &MockSender{
		RequestID: "req-1",
		Calls:     make([]Notification, 0),
	}
}

// WithSendError configures the mock to fail every Send
func (m *MockSender) WithSendError(err error) *MockSender {
	m.SendError = err
	return m
}

// WithSendFunc configures a custom send function
func (m *MockSender) WithSendFunc(fn func(context.Context, Notification) (string, error)) *MockSender {
	m.SendFunc = fn
	return m
}

// Send records the call and returns the configured result
func (m *MockSender) Send(ctx context.Context, n Notification) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, n)
	m.CallCount++
	m.LastNotification = n

	if m.SendFunc != nil {
		return m.SendFunc(ctx, n)
	}
	if m.SendError != nil {
		return "", m.SendError
	}
	return m.RequestID, nil
}

// Called reports whether Send was called at least once
func (m *MockSender) Called() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount > 0
}

// ErrMockSend is the error used for failing deliveries in tests
var ErrMockSend = errors.New("mock send error")
