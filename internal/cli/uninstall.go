package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/claude"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/uninstall"
)

func newUninstallCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Unregister the claude-notify hooks",
		Long: `Remove the claude-notify command hooks from Claude Code's settings.json.
Other settings and hooks are left untouched.

With --purge, the configuration file and the delivery history are removed
too. The command prompts for confirmation before purging; use --yes to skip
the prompt.`,
		Example: `  # Remove the hooks only
  claude-notify uninstall

  # Remove the hooks, config file and history without asking
  claude-notify uninstall --purge --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUninstall(cmd)
		},
	}
	cmd.GroupID = GroupSetup
	cmd.Flags().StringSlice("event", claude.DefaultEvents, "Hook event to unregister (repeatable)")
	cmd.Flags().String("settings", "", "Path to Claude settings file (default ~/.claude/settings.json)")
	cmd.Flags().String("command", claude.DefaultCommand, "Command the hook runs")
	cmd.Flags().Bool("purge", false, "Also remove the config file and delivery history")
	cmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func (a *app) runUninstall(cmd *cobra.Command) error {
	events, _ := cmd.Flags().GetStringSlice("event")
	command, _ := cmd.Flags().GetString("command")
	purge, _ := cmd.Flags().GetBool("purge")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	path, err := settingsPath(cmd)
	if err != nil {
		return err
	}

	settings, err := claude.Load(path)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration, fmt.Sprintf("Fix or remove %s", path))
	}

	removed := settings.RemoveHooks(events, command)
	if len(removed) == 0 {
		fmt.Fprintf(out, "%s %s: none registered in %s\n", cGreen("✓"), cBold("Hooks"), cDim(path))
	} else {
		if err := settings.Save(); err != nil {
			return clierrors.FileNotWritable(path, err)
		}
		for _, event := range removed {
			fmt.Fprintf(out, "%s %s: removed from %s\n", cGreen("✓"), cBold(event+" hook"), cDim(path))
		}
	}

	if !purge {
		return nil
	}

	stateDir, err := a.historyDir()
	if err != nil {
		return err
	}
	targets := uninstall.GetUninstallTargets(a.configPath, stateDir)

	var existing []uninstall.UninstallTarget
	for _, t := range targets {
		if t.Exists {
			existing = append(existing, t)
		}
	}
	if len(existing) == 0 {
		fmt.Fprintln(out, "No claude-notify files found to remove.")
		return nil
	}

	fmt.Fprintln(out, "\nThe following will be removed:")
	for _, t := range existing {
		fmt.Fprintf(out, "  - %s: %s\n", t.Description, t.Path)
	}

	if !yes && !promptYesNo(cmd, "Remove these files?") {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	failed := 0
	for _, r := range uninstall.RemoveTargets(existing) {
		if r.Success {
			fmt.Fprintf(out, "%s Removed %s\n", cGreen("✓"), r.Target.Description)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s Failed to remove %s: %v\n", cRed("✗"), r.Target.Description, r.Error)
	}
	if failed > 0 {
		return clierrors.NewRuntimeError(fmt.Sprintf("failed to remove %d of %d targets", failed, len(existing)))
	}
	return nil
}

// promptYesNo prompts the user for a yes/no answer
func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}
