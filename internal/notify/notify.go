package notify

import (
	"fmt"

	"github.com/claude-notify/claude-notify/internal/hook"
	"github.com/claude-notify/claude-notify/internal/transcript"
)

// ProductName prefixes every notification title.
const ProductName = "Claude Code"

// Notification is a single message to deliver.
type Notification struct {
	// Title is "<product> - <hook event>", e.g. "Claude Code - Stop"
	Title string

	// Message is "<project>: <last user message>"
	Message string
}

// NewNotification builds the notification for a hook event and the last user message.
func NewNotification(event hook.Event, rec *transcript.Record) Notification {
	return Notification{
		Title:   Title(event.HookEventName),
		Message: fmt.Sprintf("%s: %s", rec.Project(), rec.Content),
	}
}

// Title returns the notification title for a hook event name.
func Title(hookEventName string) string {
	return fmt.Sprintf("%s - %s", ProductName, hookEventName)
}

// Attempt describes one delivery attempt, successful or not.
type Attempt struct {
	Event        hook.Event
	Project      string
	Notification Notification
	RequestID    string
	Err          error
}

// Recorder is told about every delivery attempt.
type Recorder interface {
	Record(a Attempt)
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(a Attempt)

// Record calls f(a).
func (f RecorderFunc) Record(a Attempt) { f(a) }
