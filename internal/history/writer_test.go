package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_LogDelivery(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err        error
		wantStatus string
		wantError  string
	}{
		"sent": {
			wantStatus: StatusSent,
		},
		"failed": {
			err:        errors.New("Pushover API error: user key is invalid"),
			wantStatus: StatusFailed,
			wantError:  "Pushover API error: user key is invalid",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()
			w := NewWriter(stateDir, 10, zerolog.Nop())
			w.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }

			w.LogDelivery("s1", "Stop", "myproj", "Claude Code - Stop", "myproj: hi", "req-1", tc.err)

			history, err := LoadHistory(stateDir)
			require.NoError(t, err)
			require.Len(t, history.Entries, 1)

			entry := history.Entries[0]
			assert.Equal(t, tc.wantStatus, entry.Status)
			assert.Equal(t, tc.wantError, entry.Error)
			assert.Equal(t, "Stop", entry.HookEvent)
			assert.Equal(t, "req-1", entry.Request)
			assert.True(t, entry.Timestamp.Equal(w.now()))

			_, err = uuid.Parse(entry.ID)
			assert.NoError(t, err, "entry ID should be a UUID")
		})
	}
}

func TestWriter_Pruning(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existingEntries int
		maxEntries      int
		wantEntries     int
	}{
		"no pruning needed": {
			existingEntries: 5,
			maxEntries:      10,
			wantEntries:     6,
		},
		"prune oldest when max exceeded": {
			existingEntries: 10,
			maxEntries:      10,
			wantEntries:     10,
		},
		"zero means unlimited": {
			existingEntries: 3,
			maxEntries:      0,
			wantEntries:     4,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stateDir := t.TempDir()
			existing := &HistoryFile{}
			for i := 0; i < tc.existingEntries; i++ {
				existing.Entries = append(existing.Entries, HistoryEntry{ID: uuid.NewString(), Status: StatusSent})
			}
			require.NoError(t, SaveHistory(stateDir, existing))

			w := NewWriter(stateDir, tc.maxEntries, zerolog.Nop())
			w.LogEntry(HistoryEntry{ID: "newest", Status: StatusSent})

			history, err := LoadHistory(stateDir)
			require.NoError(t, err)
			assert.Len(t, history.Entries, tc.wantEntries)
			assert.Equal(t, "newest", history.Entries[len(history.Entries)-1].ID)
		})
	}
}

func TestWriter_FailureIsNotFatal(t *testing.T) {
	t.Parallel()

	// A regular file where the state directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	w := NewWriter(filepath.Join(blocker, "state"), 10, zerolog.Nop())
	assert.NotPanics(t, func() {
		w.LogEntry(HistoryEntry{Status: StatusSent})
	})
	assert.Error(t, w.logEntryInternal(HistoryEntry{Status: StatusSent}))
}
