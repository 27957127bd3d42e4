package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View notification delivery history",
		Long: `View a log of notification attempts with timestamp, status, hook event and
message. History is kept in $XDG_STATE_HOME/claude-notify/history.yaml and
pruned to HISTORY_LIMIT entries.`,
		Example: `  # Show the last 10 attempts
  claude-notify history -n 10

  # Show only failures
  claude-notify history --status failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHistory(cmd)
		},
	}
	cmd.GroupID = GroupDiagnostics
	cmd.Flags().IntP("limit", "n", 0, "Limit to last N entries (most recent)")
	cmd.Flags().Bool("clear", false, "Clear all history")
	cmd.Flags().String("status", "", "Filter by status (sent, failed)")
	return cmd
}

func (a *app) runHistory(cmd *cobra.Command) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	statusFilter, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	out := cmd.OutOrStdout()

	if limit < 0 {
		return fmt.Errorf("limit must be positive, got %d", limit)
	}
	if clearFlag && (statusFilter != "" || limit > 0) {
		return clierrors.InvalidFlagCombination("--clear with --status or --limit", "--clear always removes every entry")
	}

	stateDir, err := a.historyDir()
	if err != nil {
		return err
	}

	if clearFlag {
		if err := history.ClearHistory(stateDir); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	histFile, err := history.LoadHistory(stateDir)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	entries := filterEntries(histFile, statusFilter, limit)
	if len(entries) == 0 {
		if statusFilter != "" {
			fmt.Fprintf(out, "No matching entries for status '%s'.\n", statusFilter)
		} else {
			fmt.Fprintln(out, "No history available.")
		}
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintln(out, formatEntry(entry))
	}
	return nil
}

// filterEntries applies the status filter, then keeps the newest limit entries.
func filterEntries(h *history.HistoryFile, statusFilter string, limit int) []history.HistoryEntry {
	filtered := &history.HistoryFile{}
	for _, entry := range h.Entries {
		if statusFilter != "" && entry.Status != statusFilter {
			continue
		}
		filtered.Entries = append(filtered.Entries, entry)
	}
	return filtered.Last(limit)
}

// formatEntry renders one history line.
func formatEntry(entry history.HistoryEntry) string {
	timestamp := entry.Timestamp.Local().Format("2006-01-02 15:04:05")

	status := fmt.Sprintf("%-6s", entry.Status)
	switch entry.Status {
	case history.StatusSent:
		status = cGreen(status)
	case history.StatusFailed:
		status = cRed(status)
	}

	event := entry.HookEvent
	if event == "" {
		event = "-"
	}

	line := fmt.Sprintf("%s  %s  %-12s  %s", cCyan(timestamp), status, event, entry.Message)
	if entry.Error != "" {
		line += "  " + cDim(entry.Error)
	}
	return line
}
