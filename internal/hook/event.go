// Package hook decodes the event Claude Code passes to a hook on stdin.
package hook

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	clierrors "github.com/claude-notify/claude-notify/internal/errors"
)

// Event is the hook payload. All fields are required.
type Event struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	HookEventName  string `json:"hook_event_name"`
	StopHookActive bool   `json:"stop_hook_active"`
}

var requiredStrings = []string{"session_id", "transcript_path", "hook_event_name"}

// Read consumes r to EOF and parses the result with Parse.
func Read(r io.Reader) (Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Event{}, fmt.Errorf("reading stdin: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a hook payload.
// Values must have the exact JSON type; nothing is coerced.
func Parse(data []byte) (Event, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Event{}, clierrors.NoStdinInput()
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Event{}, clierrors.InvalidStdinJSON(err)
	}

	if err := Validate(raw); err != nil {
		return Event{}, clierrors.InvalidInput(err)
	}

	fields := raw.(map[string]interface{})
	return Event{
		SessionID:      fields["session_id"].(string),
		TranscriptPath: fields["transcript_path"].(string),
		HookEventName:  fields["hook_event_name"].(string),
		StopHookActive: fields["stop_hook_active"].(bool),
	}, nil
}

// Validate checks that raw is an object with the Event fields and types.
// The error names the first offending field.
func Validate(raw interface{}) error {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return errors.New("Invalid input: expected JSON object")
	}

	for _, name := range requiredStrings {
		s, ok := fields[name].(string)
		if !ok || s == "" {
			return fmt.Errorf("Invalid input: %s is required and must be a string", name)
		}
	}

	if _, ok := fields["stop_hook_active"].(bool); !ok {
		return errors.New("Invalid input: stop_hook_active is required and must be a boolean")
	}

	return nil
}
