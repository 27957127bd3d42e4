// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// envPrefix matches every variable claude-notify reads for overrides.
const envPrefix = "CLAUDE_NOTIFY_"

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// ClearNotifyEnv blanks every CLAUDE_NOTIFY_* variable for the duration of
// the test, so a developer's environment can't leak into config loading.
// Empty values are ignored by the loader. Tests using it cannot run in parallel.
func ClearNotifyEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) {
			t.Setenv(name, "")
		}
	}
}

// TranscriptLine is one user message in a fixture transcript.
type TranscriptLine struct {
	Content string
	Age     time.Duration
	CWD     string
}

// WriteTranscript writes a JSONL transcript with one user record per line,
// each followed by an assistant reply, and returns its path.
func WriteTranscript(t *testing.T, dir string, lines ...TranscriptLine) string {
	t.Helper()

	var b strings.Builder
	for _, l := range lines {
		ts := time.Now().Add(-l.Age).UTC().Format(time.RFC3339Nano)
		b.WriteString(`{"type":"user","message":{"role":"user","content":` + quote(l.Content) +
			`},"timestamp":"` + ts + `","cwd":` + quote(l.CWD) + "}\n")
		b.WriteString(`{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"ok"}]}}` + "\n")
	}

	path := filepath.Join(dir, "transcript.jsonl")
	WriteFile(t, path, b.String())
	return path
}

// quote returns s as a JSON string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
