package notify

import (
	"context"

	"github.com/claude-notify/claude-notify/internal/pushover"
)

// Sender delivers a notification and returns the provider's request ID.
type Sender interface {
	Send(ctx context.Context, n Notification) (string, error)
}

// PushoverSender delivers notifications through the Pushover API.
type PushoverSender struct {
	client *pushover.Client
	token  string
	user   string
}

// NewPushoverSender creates a sender for the given application token and user key.
func NewPushoverSender(client *pushover.Client, token, user string) *PushoverSender {
	return &PushoverSender{client: client, token: token, user: user}
}

// Send posts n once. Delivery is at most once; failures are not retried.
func (s *PushoverSender) Send(ctx context.Context, n Notification) (string, error) {
	resp, err := s.client.Send(ctx, pushover.Message{
		Token:   s.token,
		User:    s.user,
		Message: n.Message,
		Title:   n.Title,
	})
	if resp != nil {
		return resp.Request, err
	}
	return "", err
}
