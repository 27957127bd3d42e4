// Package notify decides whether a finished Claude Code turn is worth a push
// notification and sends it.
//
// The decision is based on the last message the user typed in the session
// transcript: if it is older than the busy window, the user has likely walked
// away and gets notified. A missing user message or a user who is still within
// the busy window produce no notification and no error.
//
// # Usage
//
//	sender := notify.NewPushoverSender(pushover.NewClient(), cfg.APIKey, cfg.UserKey)
//	d := notify.NewDispatcher(cfg.BusyDuration(), sender, notify.WithLogger(log))
//	if err := d.Dispatch(ctx, event); err != nil {
//		// print and exit 1
//	}
package notify
