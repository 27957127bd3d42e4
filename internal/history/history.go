// Package history keeps a log of delivered and failed notifications.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// HistoryFileName is the name of the history file.
	HistoryFileName = "history.yaml"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
)

// Status constants for history entries.
const (
	// StatusSent indicates the notification was accepted by the provider.
	StatusSent = "sent"
	// StatusFailed indicates the notification was rejected or never reached the provider.
	StatusFailed = "failed"
)

// HistoryEntry represents a single delivery attempt.
type HistoryEntry struct {
	// ID is a random UUID.
	ID string `yaml:"id"`
	// Timestamp is when the attempt was made (RFC3339 format in YAML).
	Timestamp time.Time `yaml:"timestamp"`
	// SessionID is the Claude Code session that triggered the hook.
	SessionID string `yaml:"session_id,omitempty"`
	// HookEvent is the hook event name (e.g., "Stop", "Notification").
	HookEvent string `yaml:"hook_event"`
	// Project is the last path segment of the session working directory.
	Project string `yaml:"project,omitempty"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	// Status is sent or failed.
	Status string `yaml:"status"`
	// Error is the delivery error for failed attempts.
	Error string `yaml:"error,omitempty"`
	// Request is the provider request ID, when one was returned.
	Request string `yaml:"request,omitempty"`
}

// HistoryFile represents the YAML file containing all history entries.
type HistoryFile struct {
	// Entries is ordered oldest first; new entries are appended at the end.
	Entries []HistoryEntry `yaml:"entries"`
}

// DefaultStateDir returns the directory holding the history file:
// $XDG_STATE_HOME/claude-notify, or ~/.local/state/claude-notify.
func DefaultStateDir() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "claude-notify"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "state", "claude-notify"), nil
}

// LoadHistory loads the history file from the given state directory.
// Returns empty history if file doesn't exist.
// Handles corrupted files by backing them up and creating a fresh history.
func LoadHistory(stateDir string) (*HistoryFile, error) {
	historyPath := filepath.Join(stateDir, HistoryFileName)

	data, err := os.ReadFile(historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &HistoryFile{Entries: []HistoryEntry{}}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var history HistoryFile
	if err := yaml.Unmarshal(data, &history); err != nil {
		if backupErr := backupCorruptedFile(historyPath); backupErr != nil {
			return nil, fmt.Errorf("backing up corrupted history file: %w", backupErr)
		}
		return &HistoryFile{Entries: []HistoryEntry{}}, nil
	}

	if history.Entries == nil {
		history.Entries = []HistoryEntry{}
	}

	return &history, nil
}

// backupCorruptedFile renames a corrupted file with a .backup suffix.
func backupCorruptedFile(path string) error {
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return fmt.Errorf("renaming corrupted file to backup: %w", err)
	}
	return nil
}

// SaveHistory saves the history file to the given state directory using atomic writes.
// Creates parent directories if needed.
func SaveHistory(stateDir string, history *HistoryFile) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	historyPath := filepath.Join(stateDir, HistoryFileName)
	tmpPath := historyPath + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("writing temp history file: %w", err)
	}

	if err := os.Rename(tmpPath, historyPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp history file: %w", err)
	}

	return nil
}

// ClearHistory removes all entries from the history file.
func ClearHistory(stateDir string) error {
	return SaveHistory(stateDir, &HistoryFile{Entries: []HistoryEntry{}})
}

// Last returns the newest n entries, oldest first. n <= 0 returns all entries.
func (h *HistoryFile) Last(n int) []HistoryEntry {
	if n <= 0 || n >= len(h.Entries) {
		return h.Entries
	}
	return h.Entries[len(h.Entries)-n:]
}
