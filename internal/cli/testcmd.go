package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/config"
	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/notify"
	"github.com/claude-notify/claude-notify/internal/progress"
	"github.com/claude-notify/claude-notify/internal/pushover"
)

// TestEventName is the hook event name shown in test notification titles.
const TestEventName = "Test"

func newTestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test notification",
		Long: `Send a test notification with the current configuration, ignoring the
busy window. Use it to confirm your Pushover credentials work.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTest(cmd)
		},
	}
	cmd.GroupID = GroupDiagnostics
	cmd.Flags().StringP("message", "m", "Test notification from claude-notify", "Message text")
	return cmd
}

func (a *app) runTest(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	text, _ := cmd.Flags().GetString("message")

	project := "claude-notify"
	if wd, err := os.Getwd(); err == nil {
		project = filepath.Base(wd)
	}
	n := notify.Notification{
		Title:   notify.Title(TestEventName),
		Message: fmt.Sprintf("%s: %s", project, text),
	}

	display := progress.NewProgressDisplay(cmd.ErrOrStderr(), errCapabilities(cmd))
	display.Start("Sending test notification")

	sender := notify.NewPushoverSender(pushover.NewClient(a.pushoverOpts...), cfg.APIKey, cfg.UserKey)
	requestID, err := sender.Send(cmd.Context(), n)
	if err != nil {
		display.Fail("Test notification failed", err)
		return clierrors.DeliveryFailed(err)
	}

	display.Succeed(fmt.Sprintf("Test notification sent (request %s)", requestID))
	return nil
}

// errCapabilities detects the terminal behind cmd's stderr.
func errCapabilities(cmd *cobra.Command) progress.TerminalCapabilities {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		return progress.DetectTerminalCapabilities(f)
	}
	return progress.TerminalCapabilities{}
}
