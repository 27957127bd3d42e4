package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Writer appends entries to the history file with automatic pruning.
type Writer struct {
	// StateDir is the directory containing the history file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain.
	MaxEntries int

	log zerolog.Logger
	now func() time.Time
}

// NewWriter creates a new history writer.
// Write failures are reported through log and never returned.
func NewWriter(stateDir string, maxEntries int, log zerolog.Logger) *Writer {
	return &Writer{
		StateDir:   stateDir,
		MaxEntries: maxEntries,
		log:        log,
		now:        time.Now,
	}
}

// LogEntry adds a new entry to the history file.
// It loads the existing history, appends the new entry, prunes if needed, and saves.
// Errors are non-fatal: they are logged as warnings and don't fail the hook.
func (w *Writer) LogEntry(entry HistoryEntry) {
	if err := w.logEntryInternal(entry); err != nil {
		w.log.Warn().Err(err).Str("state_dir", w.StateDir).Msg("failed to log history")
	}
}

// logEntryInternal handles the actual logging logic.
func (w *Writer) logEntryInternal(entry HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = w.now()
	}

	history, err := LoadHistory(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	history.Entries = append(history.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(history.Entries) > w.MaxEntries {
		excess := len(history.Entries) - w.MaxEntries
		history.Entries = history.Entries[excess:]
	}

	if err := SaveHistory(w.StateDir, history); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	return nil
}

// LogDelivery is a convenience method to log one delivery attempt.
// A nil deliveryErr records a sent notification.
func (w *Writer) LogDelivery(sessionID, hookEvent, project, title, message, requestID string, deliveryErr error) {
	entry := HistoryEntry{
		SessionID: sessionID,
		HookEvent: hookEvent,
		Project:   project,
		Title:     title,
		Message:   message,
		Status:    StatusSent,
		Request:   requestID,
	}
	if deliveryErr != nil {
		entry.Status = StatusFailed
		entry.Error = deliveryErr.Error()
	}
	w.LogEntry(entry)
}
