// Package uninstall removes the files claude-notify creates outside Claude's settings.
package uninstall

import (
	"os"
)

// TargetType represents the type of an uninstall target
type TargetType string

const (
	// TypeConfigFile indicates the configuration file
	TypeConfigFile TargetType = "config_file"
	// TypeStateDir indicates the delivery history directory
	TypeStateDir TargetType = "state_dir"
)

// UninstallTarget represents a file or directory to be removed during uninstall
type UninstallTarget struct {
	Path        string     // Absolute path to the target
	Type        TargetType // Type of target: config_file or state_dir
	Description string     // Human-readable description for display
	Exists      bool       // Whether the target currently exists
}

// UninstallResult represents the result of attempting to remove a target
type UninstallResult struct {
	Target  UninstallTarget // The target that was processed
	Success bool            // Whether removal succeeded
	Error   error           // Error if removal failed
}

// GetUninstallTargets returns the config file and state directory as targets,
// with Exists populated.
func GetUninstallTargets(configPath, stateDir string) []UninstallTarget {
	return []UninstallTarget{
		{
			Path:        configPath,
			Type:        TypeConfigFile,
			Description: "configuration file",
			Exists:      fileExists(configPath),
		},
		{
			Path:        stateDir,
			Type:        TypeStateDir,
			Description: "delivery history",
			Exists:      dirExists(stateDir),
		},
	}
}

// RemoveTargets removes the specified targets and returns the results.
// It continues after individual failures and reports all results.
// Missing files are handled gracefully (not considered an error).
func RemoveTargets(targets []UninstallTarget) []UninstallResult {
	results := make([]UninstallResult, 0, len(targets))

	for _, target := range targets {
		// Skip if target doesn't exist - this is not an error
		if !target.Exists {
			results = append(results, UninstallResult{
				Target:  target,
				Success: true,
			})
			continue
		}

		var err error
		if target.Type == TypeConfigFile {
			err = os.Remove(target.Path)
		} else {
			err = os.RemoveAll(target.Path)
		}

		results = append(results, UninstallResult{
			Target:  target,
			Success: err == nil,
			Error:   err,
		})
	}

	return results
}

// fileExists checks if a file exists at the given path
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// dirExists checks if a directory exists at the given path
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
