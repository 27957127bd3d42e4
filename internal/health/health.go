// Package health runs the checks behind `claude-notify doctor`.
package health

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/claude-notify/claude-notify/internal/claude"
	"github.com/claude-notify/claude-notify/internal/config"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Options selects the files and hook command to check.
type Options struct {
	ConfigPath   string
	SettingsPath string
	Command      string
	Events       []string
}

// add appends a check and clears Passed if it failed.
func (r *HealthReport) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	if !c.Passed {
		r.Passed = false
	}
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(opts Options) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0),
		Passed: true,
	}

	report.add(CheckConfig(opts.ConfigPath))
	for _, c := range CheckHooks(opts.SettingsPath, opts.Events, opts.Command) {
		report.add(c)
	}
	report.add(CheckCommand(opts.Command))

	return report
}

// CheckConfig loads and validates the config file.
func CheckConfig(path string) CheckResult {
	if _, err := config.Load(path); err != nil {
		return CheckResult{
			Name:    "Configuration",
			Passed:  false,
			Message: err.Error(),
		}
	}

	return CheckResult{
		Name:    "Configuration",
		Passed:  true,
		Message: fmt.Sprintf("Configuration valid (%s)", path),
	}
}

// CheckHooks checks that command is registered for each event in the Claude settings file.
func CheckHooks(settingsPath string, events []string, command string) []CheckResult {
	settings, err := claude.Load(settingsPath)
	if err != nil {
		return []CheckResult{{
			Name:    "Claude settings",
			Passed:  false,
			Message: err.Error(),
		}}
	}

	results := make([]CheckResult, 0, len(events))
	for _, event := range events {
		res := settings.Check(event, command)
		results = append(results, CheckResult{
			Name:    event + " hook",
			Passed:  res.Status == claude.StatusConfigured,
			Message: res.Message,
		})
	}
	return results
}

// CheckCommand checks that the hook command resolves on PATH.
func CheckCommand(command string) CheckResult {
	name := command
	if fields := strings.Fields(command); len(fields) > 0 {
		name = fields[0]
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return CheckResult{
			Name:    "Hook command",
			Passed:  false,
			Message: fmt.Sprintf("%s not found in PATH", name),
		}
	}

	return CheckResult{
		Name:    "Hook command",
		Passed:  true,
		Message: fmt.Sprintf("%s found at %s", name, path),
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output strings.Builder

	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&output, "✓ %s: %s\n", check.Name, check.Message)
		} else {
			fmt.Fprintf(&output, "✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output.String()
}
