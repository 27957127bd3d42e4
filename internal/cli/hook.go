package cli

import (
	"github.com/spf13/cobra"

	"github.com/claude-notify/claude-notify/internal/config"
	"github.com/claude-notify/claude-notify/internal/history"
	"github.com/claude-notify/claude-notify/internal/hook"
	"github.com/claude-notify/claude-notify/internal/notify"
	"github.com/claude-notify/claude-notify/internal/pushover"
)

// runHook handles one hook invocation: config, stdin event, dispatch.
func (a *app) runHook(cmd *cobra.Command) error {
	log := a.logger(cmd)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	event, err := hook.Read(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Debug().
		Str("session_id", event.SessionID).
		Str("hook_event", event.HookEventName).
		Str("transcript", event.TranscriptPath).
		Bool("stop_hook_active", event.StopHookActive).
		Msg("hook event received")

	sender := notify.NewPushoverSender(pushover.NewClient(a.pushoverOpts...), cfg.APIKey, cfg.UserKey)
	opts := []notify.Option{notify.WithLogger(log)}

	if cfg.HistoryLimit > 0 {
		if dir, err := a.historyDir(); err != nil {
			log.Warn().Err(err).Msg("delivery history disabled")
		} else {
			opts = append(opts, notify.WithRecorder(historyRecorder(history.NewWriter(dir, cfg.HistoryLimit, log))))
		}
	}

	dispatcher := notify.NewDispatcher(cfg.BusyDuration(), sender, opts...)
	return dispatcher.Dispatch(cmd.Context(), event)
}

// historyRecorder appends every delivery attempt to the history file.
func historyRecorder(w *history.Writer) notify.Recorder {
	return notify.RecorderFunc(func(at notify.Attempt) {
		w.LogDelivery(
			at.Event.SessionID,
			at.Event.HookEventName,
			at.Project,
			at.Notification.Title,
			at.Notification.Message,
			at.RequestID,
			at.Err,
		)
	})
}
