package claude

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// HookStatus represents whether a hook is registered for an event.
type HookStatus int

const (
	// StatusConfigured indicates the command is registered for the event.
	StatusConfigured HookStatus = iota
	// StatusMissing indicates the settings file does not exist.
	StatusMissing
	// StatusNotRegistered indicates the settings file exists but lacks the hook.
	StatusNotRegistered
)

// String returns a human-readable representation of the status.
func (s HookStatus) String() string {
	switch s {
	case StatusConfigured:
		return "Configured"
	case StatusMissing:
		return "Missing"
	case StatusNotRegistered:
		return "NotRegistered"
	default:
		return "Unknown"
	}
}

// HookCheckResult contains the result of checking one event's registration.
type HookCheckResult struct {
	Event    string
	Status   HookStatus
	Message  string
	FilePath string
}

// HookType is the hook type used for shell command hooks.
const HookType = "command"

// DefaultCommand is the command registered when none is given.
const DefaultCommand = "claude-notify"

// DefaultEvents are the hook events registered by install.
var DefaultEvents = []string{"Stop", "Notification"}

// SettingsFileName is the name of the Claude settings file.
const SettingsFileName = "settings.json"

// SettingsDir is the directory containing Claude settings.
const SettingsDir = ".claude"

// DefaultPath returns ~/.claude/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, SettingsDir, SettingsFileName), nil
}

// Settings represents a Claude settings file with flexible JSON structure.
// Uses map[string]interface{} to preserve unknown fields during modification.
type Settings struct {
	data     map[string]interface{}
	filePath string
}

// Load reads and parses Claude settings from path.
// Returns a Settings instance even if the file doesn't exist (with empty data).
// Returns an error only for actual failures like permission errors or malformed JSON.
func Load(path string) (*Settings, error) {
	s := &Settings{
		data:     make(map[string]interface{}),
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.data); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if s.data == nil {
		s.data = make(map[string]interface{})
	}

	return s, nil
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Exists returns true if the settings file exists on disk.
func (s *Settings) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// getHooks returns the hooks object, creating it if necessary.
// A "hooks" value that is not an object is left untouched and reported.
func (s *Settings) getHooks() (map[string]interface{}, error) {
	raw, present := s.data["hooks"]
	if !present || raw == nil {
		hooks := make(map[string]interface{})
		s.data["hooks"] = hooks
		return hooks, nil
	}
	hooks, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("\"hooks\" in %s is not an object", s.filePath)
	}
	return hooks, nil
}

// HasHook reports whether any matcher group for event runs command.
func (s *Settings) HasHook(event, command string) bool {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		return false
	}
	groups, _ := hooks[event].([]interface{})
	for _, g := range groups {
		group, ok := g.(map[string]interface{})
		if !ok {
			continue
		}
		entries, _ := group["hooks"].([]interface{})
		for _, e := range entries {
			entry, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			if entry["type"] == HookType && entry["command"] == command {
				return true
			}
		}
	}
	return false
}

// AddHook registers command for event if not already present.
// Returns true when the settings changed. An event whose value is not an
// array is an error and the settings are not modified.
func (s *Settings) AddHook(event, command string) (bool, error) {
	if s.HasHook(event, command) {
		return false, nil
	}

	hooks, err := s.getHooks()
	if err != nil {
		return false, err
	}
	var groups []interface{}
	if existing := hooks[event]; existing != nil {
		var ok bool
		if groups, ok = existing.([]interface{}); !ok {
			return false, fmt.Errorf("\"hooks.%s\" in %s is not an array", event, s.filePath)
		}
	}
	groups = append(groups, map[string]interface{}{
		"matcher": "",
		"hooks": []interface{}{
			map[string]interface{}{
				"type":    HookType,
				"command": command,
			},
		},
	})
	hooks[event] = groups
	return true, nil
}

// AddHooks registers command for each event, skipping events that already have it.
// Returns the events that were actually added. Calling it twice has the same
// effect as calling it once.
func (s *Settings) AddHooks(events []string, command string) ([]string, error) {
	var added []string
	for _, event := range events {
		ok, err := s.AddHook(event, command)
		if err != nil {
			return added, err
		}
		if ok {
			added = append(added, event)
		}
	}
	return added, nil
}

// RemoveHook deletes every command hook for event that runs command.
// Matcher groups left without hooks are dropped, and so is the event when it
// has no groups left. Returns true when the settings changed.
func (s *Settings) RemoveHook(event, command string) bool {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		return false
	}
	groups, _ := hooks[event].([]interface{})

	changed := false
	kept := make([]interface{}, 0, len(groups))
	for _, g := range groups {
		group, ok := g.(map[string]interface{})
		if !ok {
			kept = append(kept, g)
			continue
		}
		entries, _ := group["hooks"].([]interface{})
		remaining := make([]interface{}, 0, len(entries))
		for _, e := range entries {
			if entry, ok := e.(map[string]interface{}); ok && entry["type"] == HookType && entry["command"] == command {
				changed = true
				continue
			}
			remaining = append(remaining, e)
		}
		if len(remaining) == 0 && len(entries) > 0 {
			continue
		}
		group["hooks"] = remaining
		kept = append(kept, group)
	}

	if !changed {
		return false
	}
	if len(kept) == 0 {
		delete(hooks, event)
	} else {
		hooks[event] = kept
	}
	return true
}

// RemoveHooks unregisters command from each event and returns the events
// that changed.
func (s *Settings) RemoveHooks(events []string, command string) []string {
	var removed []string
	for _, event := range events {
		if s.RemoveHook(event, command) {
			removed = append(removed, event)
		}
	}
	return removed
}

// Check reports the registration status of command for event.
func (s *Settings) Check(event, command string) HookCheckResult {
	if !s.Exists() {
		return HookCheckResult{
			Event:   event,
			Status:  StatusMissing,
			Message: fmt.Sprintf("%s not found (run 'claude-notify install' to configure)", s.filePath),
		}
	}

	if !s.HasHook(event, command) {
		return HookCheckResult{
			Event:    event,
			Status:   StatusNotRegistered,
			Message:  fmt.Sprintf("%s hook not registered (run 'claude-notify install' to fix)", event),
			FilePath: s.filePath,
		}
	}

	return HookCheckResult{
		Event:    event,
		Status:   StatusConfigured,
		Message:  fmt.Sprintf("%s hook runs %q", event, command),
		FilePath: s.filePath,
	}
}

// Save writes the settings to disk using atomic write (temp file + rename).
// Creates the parent directory if it doesn't exist.
// Written JSON is pretty-printed with indentation for human readability.
func (s *Settings) Save() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	// Add trailing newline for POSIX compliance
	data = append(data, '\n')

	return atomicWrite(s.filePath, data)
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	tmpPath = ""
	return nil
}
