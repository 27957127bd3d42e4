// Package config loads and validates the claude-notify configuration file.
//
// Configuration is read with koanf from a single JSON file, with environment
// variables (CLAUDE_NOTIFY_*) layered on top, and validated with
// go-playground/validator. Every failure is returned as a *errors.CLIError so
// the entry point can print a complete diagnostic.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	clierrors "github.com/claude-notify/claude-notify/internal/errors"
)

// Config keys as they appear in the JSON file.
const (
	KeyAPIKey       = "PUSHOVER_API_KEY"
	KeyUserKey      = "PUSHOVER_USER_KEY"
	KeyBusyTime     = "BUSY_TIME"
	KeyHistoryLimit = "HISTORY_LIMIT"
)

// EnvPrefix is the prefix of environment variables that override file values.
// CLAUDE_NOTIFY_BUSY_TIME=45 overrides BUSY_TIME.
const EnvPrefix = "CLAUDE_NOTIFY_"

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "CLAUDE_NOTIFY_CONFIG"

// Configuration represents the claude-notify configuration.
type Configuration struct {
	APIKey       string  `koanf:"PUSHOVER_API_KEY" json:"PUSHOVER_API_KEY" validate:"required,alphanum"`
	UserKey      string  `koanf:"PUSHOVER_USER_KEY" json:"PUSHOVER_USER_KEY" validate:"required,alphanum"`
	BusyTime     float64 `koanf:"BUSY_TIME" json:"BUSY_TIME" validate:"min=1"`
	HistoryLimit int     `koanf:"HISTORY_LIMIT" json:"HISTORY_LIMIT" validate:"min=0"`
}

// BusyDuration returns the busy window as a duration.
func (c *Configuration) BusyDuration() time.Duration {
	return time.Duration(math.Round(c.BusyTime * float64(time.Second)))
}

// DefaultPath returns the config file location: $CLAUDE_NOTIFY_CONFIG if set,
// otherwise ~/.config/claude-notify.json.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", clierrors.NewConfigError("cannot determine home directory: "+err.Error(),
			"Set "+EnvConfigPath+" to the path of your configuration file")
	}
	return filepath.Join(home, ".config", "claude-notify.json"), nil
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result.
// Priority: Environment variables > Config file > Defaults
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, clierrors.ConfigFileNotFound(path)
		}
		return nil, clierrors.ConfigReadError(path, err)
	}

	fp := file.Provider(path)
	data, err := fp.ReadBytes()
	if err != nil {
		return nil, clierrors.ConfigReadError(path, err)
	}
	var raw interface{}
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return nil, clierrors.ConfigParseError(path, err)
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, clierrors.InvalidConfig(path, []string{"expected JSON object"})
	}
	if err := k.Load(fp, json.Parser()); err != nil {
		return nil, clierrors.ConfigReadError(path, err)
	}

	// Override with environment variables (highest priority)
	k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil)

	if problems := checkTypes(k); len(problems) > 0 {
		return nil, clierrors.InvalidConfig(path, problems)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, clierrors.InvalidConfig(path, []string{err.Error()})
	}

	if problems := Validate(&cfg); len(problems) > 0 {
		return nil, clierrors.InvalidConfig(path, problems)
	}

	return &cfg, nil
}

// envTransform maps CLAUDE_NOTIFY_BUSY_TIME to BUSY_TIME.
// Variables that don't name a config key, or are empty, are skipped.
// Numeric keys are parsed; a value that doesn't parse is kept as a string
// so the type check reports it.
func envTransform(name, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	key := strings.TrimPrefix(name, EnvPrefix)
	if _, ok := GetDefaults()[key]; ok {
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return key, n
		}
		return key, value
	}
	if key == KeyAPIKey || key == KeyUserKey {
		return key, value
	}
	return "", nil
}
