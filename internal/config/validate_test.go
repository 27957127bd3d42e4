package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cfg  Configuration
		want []string
	}{
		"valid": {
			cfg:  Configuration{APIKey: "abc123", UserKey: "xyz789", BusyTime: 20, HistoryLimit: 100},
			want: nil,
		},
		"busy time of exactly one second": {
			cfg:  Configuration{APIKey: "abc123", UserKey: "xyz789", BusyTime: 1},
			want: nil,
		},
		"unicode letters are rejected": {
			cfg:  Configuration{APIKey: "ábc123", UserKey: "xyz789", BusyTime: 20},
			want: []string{"PUSHOVER_API_KEY: PUSHOVER_API_KEY must contain only alphanumeric characters"},
		},
		"whitespace is rejected": {
			cfg:  Configuration{APIKey: "abc123", UserKey: "xyz 789", BusyTime: 20},
			want: []string{"PUSHOVER_USER_KEY: PUSHOVER_USER_KEY must contain only alphanumeric characters"},
		},
		"fractional busy time below one": {
			cfg:  Configuration{APIKey: "abc123", UserKey: "xyz789", BusyTime: 0.5},
			want: []string{"BUSY_TIME: BUSY_TIME must be at least 1 second"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Validate(&tc.cfg))
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "claude-notify.json")
	cfg := &Configuration{APIKey: "abc123", UserKey: "xyz789", BusyTime: 30, HistoryLimit: 10}

	require.NoError(t, Write(path, cfg))
	assert.True(t, Exists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
