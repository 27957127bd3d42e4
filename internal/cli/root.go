// claude-notify - Pushover notifications for Claude Code hooks
// Source: https://github.com/claude-notify/claude-notify

// Package cli provides the Cobra command tree for claude-notify.
// Running the binary without a subcommand handles one Claude Code hook
// invocation; the subcommands set up, check and exercise that hook.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/config"
	"github.com/claude-notify/claude-notify/internal/history"
	"github.com/claude-notify/claude-notify/internal/logging"
	"github.com/claude-notify/claude-notify/internal/pushover"
)

// app carries what the commands share: resolved flags and injectable collaborators.
type app struct {
	configPath string
	debug      bool

	// pushoverOpts configure the Pushover client; tests point it at httptest.
	pushoverOpts []pushover.Option
	// stateDir overrides the history location when set.
	stateDir string
}

// NewRootCmd builds the claude-notify command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-notify",
		Short: "Pushover notifications for Claude Code hooks",
		Long: `claude-notify sends a Pushover notification when Claude Code finishes a
response or needs attention, but only if you've been away for a while.

Run without a subcommand it acts as a Claude Code hook: it reads the hook
event from stdin, finds the last user message in the session transcript and
notifies you when that message is older than BUSY_TIME seconds.

Source: https://github.com/claude-notify/claude-notify`,
		Example: `  # Create ~/.config/claude-notify.json
  claude-notify init

  # Register the Stop and Notification hooks in ~/.claude/settings.json
  claude-notify install

  # Check the setup and send a test notification
  claude-notify doctor
  claude-notify test`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				path, err := config.DefaultPath()
				if err != nil {
					return err
				}
				a.configPath = path
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHook(cmd)
		},
	}

	rootCmd.AddGroup(&cobra.Group{ID: GroupSetup, Title: "Setup:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupDiagnostics, Title: "Diagnostics:"})
	rootCmd.SetHelpCommandGroupID(GroupDiagnostics)
	rootCmd.SetCompletionCommandGroupID(GroupDiagnostics)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"Path to config file (default $"+config.EnvConfigPath+" or ~/.config/claude-notify.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newInitCmd(a),
		newInstallCmd(a),
		newUninstallCmd(a),
		newDoctorCmd(a),
		newTestCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Command group IDs for organizing help output
const (
	GroupSetup       = "setup"
	GroupDiagnostics = "diagnostics"
)

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// logger returns the diagnostics logger for cmd.
func (a *app) logger(cmd *cobra.Command) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), a.debug)
}

// historyDir returns the state directory for delivery history.
func (a *app) historyDir() (string, error) {
	if a.stateDir != "" {
		return a.stateDir, nil
	}
	return history.DefaultStateDir()
}

// stdinIsTerminal reports whether cmd reads from an interactive terminal.
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && isTerminal(f)
}
