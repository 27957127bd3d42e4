package errors

import (
	"fmt"
	"path/filepath"
)

// CredentialsURL is where users obtain Pushover tokens.
const CredentialsURL = "https://pushover.net/"

// ExampleConfig returns the lines of a valid configuration file.
func ExampleConfig() []string {
	return []string{
		"{",
		`  "PUSHOVER_API_KEY": "your_app_token_here",`,
		`  "PUSHOVER_USER_KEY": "your_user_key_here",`,
		`  "BUSY_TIME": 20`,
		"}",
	}
}

// configRequirements lists the rules shown for a schema violation.
var configRequirements = []string{
	"PUSHOVER_API_KEY: Required, must be alphanumeric (app token)",
	"PUSHOVER_USER_KEY: Required, must be alphanumeric (user key)",
	"BUSY_TIME: Optional, minimum delay in seconds (default: 20)",
	"HISTORY_LIMIT: Optional, delivery history entries to keep, 0 disables (default: 100)",
}

// ConfigFileNotFound reports a missing configuration file.
func ConfigFileNotFound(path string) *CLIError {
	details := append([]string{"Example configuration:"}, ExampleConfig()...)
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("Configuration file not found at %s", path),
		Details:  details,
		Remediation: []string{
			fmt.Sprintf("Create %s with your Pushover API credentials (or run 'claude-notify init')", path),
			fmt.Sprintf("Get your credentials from: %s", CredentialsURL),
		},
	}
}

// ConfigReadError reports a configuration file that exists but cannot be read.
func ConfigReadError(path string, err error) *CLIError {
	return &CLIError{
		Category:    Configuration,
		Message:     fmt.Sprintf("Error reading configuration file %s: %v", path, err),
		Remediation: []string{"Check the file permissions"},
		Err:         err,
	}
}

// ConfigParseError reports a configuration file with invalid JSON syntax.
func ConfigParseError(path string, err error) *CLIError {
	details := append([]string{"Example valid configuration:"}, ExampleConfig()...)
	return &CLIError{
		Category: Configuration,
		Message:  "Invalid JSON in configuration file",
		Details:  details,
		Remediation: []string{
			fmt.Sprintf("Check %s and ensure it is valid JSON (%v)", path, err),
		},
		Err: err,
	}
}

// InvalidConfig reports schema violations, one numbered line per problem.
// Each problem is "FIELD: message".
func InvalidConfig(path string, problems []string) *CLIError {
	details := []string{"The following configuration errors were found:"}
	for i, p := range problems {
		details = append(details, fmt.Sprintf("  %d. %s", i+1, p))
	}
	details = append(details, "", "Expected configuration format:")
	details = append(details, ExampleConfig()...)
	details = append(details, "", "Requirements:")
	for _, r := range configRequirements {
		details = append(details, "- "+r)
	}

	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("Invalid configuration in %s", path),
		Details:  details,
		Remediation: []string{
			fmt.Sprintf("Get your credentials from: %s", CredentialsURL),
		},
	}
}

// NoStdinInput reports an empty hook payload.
func NoStdinInput() *CLIError {
	return NewArgumentError(
		"No input received from stdin",
		"claude-notify is meant to be run as a Claude Code hook (see 'claude-notify install')",
	)
}

// InvalidStdinJSON reports a hook payload that is not valid JSON.
func InvalidStdinJSON(err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("Invalid input: %v", err),
		Err:      err,
	}
}

// InvalidInput reports a hook payload with the wrong shape.
func InvalidInput(err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Err:      err,
	}
}

// TranscriptUnreadable reports a transcript file that could not be read.
func TranscriptUnreadable(err error) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  err.Error(),
		Err:      err,
	}
}

// DeliveryFailed reports a notification that was not accepted.
func DeliveryFailed(err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("Error sending notification: %v", err),
		Err:      err,
	}
}

// InvalidFlagCombination reports flags that cannot be used together.
func InvalidFlagCombination(flags, reason string) *CLIError {
	return NewArgumentError(fmt.Sprintf("invalid flag combination %s: %s", flags, reason))
}

// FileNotWritable reports a file that could not be written.
func FileNotWritable(path string, err error) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     fmt.Sprintf("cannot write %s: %v", path, err),
		Remediation: []string{"Check the permissions of " + filepath.Dir(path)},
		Err:         err,
	}
}

