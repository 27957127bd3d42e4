package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/claude"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
)

func newInstallCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register claude-notify as a Claude Code hook",
		Long: `Register claude-notify as a command hook in Claude Code's settings.json.

Existing settings and hooks are preserved. Running install again is a no-op.`,
		Example: `  # Register for Stop and Notification in ~/.claude/settings.json
  claude-notify install

  # Register only the Stop hook in a project's settings
  claude-notify install --event Stop --settings .claude/settings.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd)
		},
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().StringSlice("event", claude.DefaultEvents, "Hook event to register (repeatable)")
	cmd.Flags().String("settings", "", "Path to Claude settings file (default ~/.claude/settings.json)")
	cmd.Flags().String("command", claude.DefaultCommand, "Command the hook runs")
	return cmd
}

func (a *app) runInstall(cmd *cobra.Command) error {
	events, _ := cmd.Flags().GetStringSlice("event")
	command, _ := cmd.Flags().GetString("command")
	path, err := settingsPath(cmd)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return clierrors.NewArgumentErrorWithUsage("at least one --event is required", cmd.UseLine(),
			"Pass --event Stop --event Notification, or omit --event for the defaults")
	}

	settings, err := claude.Load(path)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration, fmt.Sprintf("Fix or remove %s", path))
	}

	added, err := settings.AddHooks(events, command)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration, fmt.Sprintf("Fix the hooks section of %s", path))
	}
	out := cmd.OutOrStdout()
	if len(added) == 0 {
		fmt.Fprintf(out, "%s %s: already registered in %s\n", cGreen("✓"), cBold("Hooks"), cDim(path))
		return nil
	}

	if err := settings.Save(); err != nil {
		return clierrors.FileNotWritable(path, err)
	}

	for _, event := range added {
		fmt.Fprintf(out, "%s %s: registered %q in %s\n", cGreen("✓"), cBold(event+" hook"), command, cDim(path))
	}
	return nil
}

// settingsPath returns the --settings flag value or the default settings path.
func settingsPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("settings"); p != "" {
		return p, nil
	}
	return claude.DefaultPath()
}
