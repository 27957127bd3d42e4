// Package transcript reads Claude Code session transcripts.
//
// A transcript is an append-only JSONL file that interleaves user turns,
// assistant turns, tool calls and system notices. Only the most recent
// user-authored message matters to the notifier, so records are produced
// from the end of the file backwards.
package transcript

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Record is one logged message.
type Record struct {
	Type      string
	Role      string
	Content   string
	Timestamp string
	CWD       string
}

// IsUserMessage reports whether the record is a message typed by the user.
func (r Record) IsUserMessage() bool {
	return r.Type == "user" && r.Role == "user"
}

// Time parses the record timestamp (RFC 3339 with optional fractional seconds).
func (r Record) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, r.Timestamp)
}

// Project returns the last path segment of the working directory.
func (r Record) Project() string {
	if r.CWD == "" {
		return ""
	}
	return filepath.Base(r.CWD)
}

// line keeps every field raw so a record with an oddly typed field is still
// considered rather than skipped.
type line struct {
	Type      json.RawMessage `json:"type"`
	Message   json.RawMessage `json:"message"`
	Timestamp json.RawMessage `json:"timestamp"`
	CWD       json.RawMessage `json:"cwd"`
}

type message struct {
	Role    json.RawMessage `json:"role"`
	Content json.RawMessage `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Records yields the parseable records of a JSONL transcript, last line first.
// Blank lines and lines that are not JSON objects are skipped. Fields of the
// wrong type read as empty.
func Records(data []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
		for i := len(lines) - 1; i >= 0; i-- {
			raw := bytes.TrimSpace(lines[i])
			if len(raw) == 0 {
				continue
			}

			var l line
			if err := json.Unmarshal(raw, &l); err != nil {
				continue
			}

			var msg message
			_ = json.Unmarshal(l.Message, &msg)

			rec := Record{
				Type:      rawString(l.Type),
				Role:      rawString(msg.Role),
				Content:   textContent(msg.Content),
				Timestamp: rawString(l.Timestamp),
				CWD:       rawString(l.CWD),
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// rawString returns raw as a string, or "" when it holds another JSON type.
func rawString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// textContent flattens message content, which is either a string or an
// array of content blocks. Only text blocks contribute.
func textContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var blocks []contentBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return ""
	}
	texts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Type == "text" && b.Text != "" {
			texts = append(texts, b.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// LastUserMessage returns the last user message in the transcript at path.
// It returns nil, nil when the file has no user message.
// A file that cannot be read is an error.
func LastUserMessage(path string) (*Record, error) {
	data, err := os.ReadFile(expandHome(path)) // #nosec G304 -- path comes from the hook event
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	for rec := range Records(data) {
		if rec.IsUserMessage() {
			return &rec, nil
		}
	}
	return nil, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
