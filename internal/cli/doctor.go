package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/claude"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/health"
)

func newDoctorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Aliases: []string{"doc"},
		Short:   "Check the configuration and hook registration (doc)",
		Long: `Run health checks for claude-notify.

This command checks:
  - the configuration file loads and validates
  - the Stop and Notification hooks are registered in Claude settings
  - the hook command is on PATH

Each check displays a checkmark if passed or an X with the reason if failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
	cmd.GroupID = GroupDiagnostics
	cmd.Flags().String("settings", "", "Path to Claude settings file (default ~/.claude/settings.json)")
	cmd.Flags().String("command", claude.DefaultCommand, "Command the hook should run")
	return cmd
}

func (a *app) runDoctor(cmd *cobra.Command) error {
	command, _ := cmd.Flags().GetString("command")
	path, err := settingsPath(cmd)
	if err != nil {
		return err
	}

	report := health.RunHealthChecks(health.Options{
		ConfigPath:   a.configPath,
		SettingsPath: path,
		Command:      command,
		Events:       claude.DefaultEvents,
	})

	fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

	if !report.Passed {
		failed := 0
		for _, c := range report.Checks {
			if !c.Passed {
				failed++
			}
		}
		return clierrors.NewPrerequisiteError(
			fmt.Sprintf("%d of %d checks failed", failed, len(report.Checks)),
			"Run 'claude-notify init' to create the config",
			"Run 'claude-notify install' to register the hooks",
		)
	}
	return nil
}
