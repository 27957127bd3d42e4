package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-notify/claude-notify/internal/claude"
	"github.com/claude-notify/claude-notify/internal/config"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/history"
)

func TestInit(t *testing.T) {
	tests := map[string]struct {
		existing  string
		args      []string
		wantErr   string
		wantOut   string
		wantKey   string
		wantBusy  float64
		unchanged bool
	}{
		"creates config from flags": {
			args:     []string{"--api-key", "abc123", "--user-key", "xyz789", "--busy-time", "45"},
			wantOut:  "created at",
			wantKey:  "abc123",
			wantBusy: 45,
		},
		"keeps existing config without force": {
			existing:  testConfig,
			args:      []string{"--api-key", "new123", "--user-key", "new789"},
			wantOut:   "already exists",
			unchanged: true,
		},
		"force overwrites": {
			existing: testConfig,
			args:     []string{"--api-key", "new123", "--user-key", "new789", "--force"},
			wantOut:  "created at",
			wantKey:  "new123",
			wantBusy: config.DefaultBusyTime,
		},
		"rejects invalid key": {
			args:    []string{"--api-key", "not-valid!", "--user-key", "xyz789"},
			wantErr: "Invalid configuration",
		},
		"missing keys when not interactive": {
			args:    []string{},
			wantErr: "Invalid configuration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, tt.existing)

			stdout, _, err := f.run(t, "", append([]string{"init"}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.NoFileExists(t, f.configPath)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.wantOut)

			if tt.unchanged {
				data, err := os.ReadFile(f.configPath)
				require.NoError(t, err)
				assert.Equal(t, tt.existing, string(data))
				return
			}

			info, err := os.Stat(f.configPath)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			cfg, err := config.Load(f.configPath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cfg.APIKey)
			assert.Equal(t, tt.wantBusy, cfg.BusyTime)
		})
	}
}

func TestInstall(t *testing.T) {
	f := newFixture(t, testConfig)
	settings := filepath.Join(f.dir, ".claude", "settings.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(settings), 0755))
	require.NoError(t, os.WriteFile(settings, []byte(`{"model": "opus"}`), 0644))

	stdout, _, err := f.run(t, "", "install", "--settings", settings)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Stop hook")
	assert.Contains(t, stdout, "Notification hook")

	stdout, _, err = f.run(t, "", "install", "--settings", settings)
	require.NoError(t, err)
	assert.Contains(t, stdout, "already registered")

	s, err := claude.Load(settings)
	require.NoError(t, err)
	for _, event := range claude.DefaultEvents {
		assert.True(t, s.HasHook(event, claude.DefaultCommand), event)
	}
	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"model": "opus"`)
}

func TestInstall_MalformedSettings(t *testing.T) {
	f := newFixture(t, testConfig)
	settings := filepath.Join(f.dir, "settings.json")
	require.NoError(t, os.WriteFile(settings, []byte(`{broken`), 0644))

	_, _, err := f.run(t, "", "install", "--settings", settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings file")
}

func TestInstall_NoEvents(t *testing.T) {
	f := newFixture(t, testConfig)
	settings := filepath.Join(f.dir, "settings.json")

	_, _, err := f.run(t, "", "install", "--settings", settings, "--event=")
	require.Error(t, err)

	cliErr := clierrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, clierrors.Argument, cliErr.Category)
	assert.Contains(t, cliErr.Usage, "install")
	assert.NoFileExists(t, settings)
}

func TestInstall_HooksNotArray(t *testing.T) {
	f := newFixture(t, testConfig)
	settings := filepath.Join(f.dir, "settings.json")
	original := `{"hooks": {"Stop": "say done"}}`
	require.NoError(t, os.WriteFile(settings, []byte(original), 0644))

	_, _, err := f.run(t, "", "install", "--settings", settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an array")

	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.Equal(t, original, string(data), "settings file must not be rewritten")
}

func TestDoctor(t *testing.T) {
	f := newFixture(t, testConfig)
	settings := filepath.Join(f.dir, "settings.json")

	stdout, _, err := f.run(t, "", "doctor", "--settings", settings)
	require.Error(t, err, "hooks are not registered yet")
	assert.Contains(t, stdout, "✓ Configuration")
	assert.Contains(t, stdout, "✗ Stop hook")
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestTestCommand(t *testing.T) {
	f := newFixture(t, testConfig)

	_, stderr, err := f.run(t, "", "test", "--message", "ping")
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.stub.calls.Load())
	assert.Equal(t, "Claude Code - Test", f.stub.lastMessage().Title)
	assert.Contains(t, f.stub.lastMessage().Message, ": ping")
	assert.Contains(t, stderr, "Test notification sent (request req-1)")
}

func TestTestCommand_Failure(t *testing.T) {
	f := newFixture(t, testConfig)
	f.stub.response = `{"status":0,"errors":["application token is invalid"]}`

	_, stderr, err := f.run(t, "", "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application token is invalid")
	assert.Contains(t, stderr, "Test notification failed")
}

func TestHistoryCommand(t *testing.T) {
	f := newFixture(t, testConfig)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, history.SaveHistory(f.stateDir, &history.HistoryFile{Entries: []history.HistoryEntry{
		{ID: uuid.NewString(), Timestamp: base, HookEvent: "Stop", Message: "a: one", Status: history.StatusSent},
		{ID: uuid.NewString(), Timestamp: base.Add(time.Minute), HookEvent: "Notification", Message: "a: two", Status: history.StatusFailed, Error: "boom"},
		{ID: uuid.NewString(), Timestamp: base.Add(2 * time.Minute), HookEvent: "Stop", Message: "a: three", Status: history.StatusSent},
	}}))

	tests := map[string]struct {
		args        []string
		contains    []string
		notContains []string
	}{
		"all entries": {
			contains: []string{"a: one", "a: two", "a: three", "boom"},
		},
		"limit": {
			args:        []string{"-n", "1"},
			contains:    []string{"a: three"},
			notContains: []string{"a: one", "a: two"},
		},
		"status filter": {
			args:        []string{"--status", "failed"},
			contains:    []string{"a: two"},
			notContains: []string{"a: one", "a: three"},
		},
		"no match": {
			args:     []string{"--status", "queued"},
			contains: []string{"No matching entries for status 'queued'."},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := f.run(t, "", append([]string{"history"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, stdout, s)
			}
		})
	}

	t.Run("clear", func(t *testing.T) {
		stdout, _, err := f.run(t, "", "history", "--clear")
		require.NoError(t, err)
		assert.Contains(t, stdout, "History cleared.")

		stdout, _, err = f.run(t, "", "history")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No history available.")
	})

	t.Run("clear with filter", func(t *testing.T) {
		_, _, err := f.run(t, "", "history", "--clear", "--status", "sent")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid flag combination")
	})

	t.Run("negative limit", func(t *testing.T) {
		_, _, err := f.run(t, "", "history", "-n", "-1")
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t, "")
	stdout, _, err := f.run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "claude-notify version")
	assert.Contains(t, stdout, "Go version:")
}

func TestUninstall(t *testing.T) {
	tests := map[string]struct {
		args        []string
		stdin       string
		wantConfig  bool
		wantHistory bool
		wantOut     string
	}{
		"hooks only": {
			wantConfig:  true,
			wantHistory: true,
			wantOut:     "removed from",
		},
		"purge with yes": {
			args:    []string{"--purge", "--yes"},
			wantOut: "Removed configuration file",
		},
		"purge declined": {
			args:        []string{"--purge"},
			stdin:       "n\n",
			wantConfig:  true,
			wantHistory: true,
			wantOut:     "Aborted.",
		},
		"purge confirmed": {
			args:    []string{"--purge"},
			stdin:   "y\n",
			wantOut: "Removed delivery history",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, testConfig)
			settings := filepath.Join(f.dir, "settings.json")
			require.NoError(t, history.SaveHistory(f.stateDir, &history.HistoryFile{}))

			_, _, err := f.run(t, "", "install", "--settings", settings)
			require.NoError(t, err)

			stdout, _, err := f.run(t, tt.stdin, append([]string{"uninstall", "--settings", settings}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.wantOut)

			s, err := claude.Load(settings)
			require.NoError(t, err)
			assert.False(t, s.HasHook("Stop", claude.DefaultCommand))

			assert.Equal(t, tt.wantConfig, config.Exists(f.configPath))
			_, statErr := os.Stat(f.stateDir)
			assert.Equal(t, tt.wantHistory, statErr == nil)
		})
	}
}
