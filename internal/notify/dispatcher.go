package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	clierrors "github.com/claude-notify/claude-notify/internal/errors"
	"github.com/claude-notify/claude-notify/internal/hook"
	"github.com/claude-notify/claude-notify/internal/transcript"
)

// Dispatcher turns a hook event into at most one notification.
type Dispatcher struct {
	busyTime time.Duration
	sender   Sender
	recorder Recorder
	now      func() time.Time
	scan     func(path string) (*transcript.Record, error)
	log      zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the current time source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithRecorder registers a recorder for delivery attempts.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithLogger sets the logger used for skip decisions.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// NewDispatcher creates a dispatcher that notifies once the last user message
// is at least busyTime old.
func NewDispatcher(busyTime time.Duration, sender Sender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		busyTime: busyTime,
		sender:   sender,
		now:      time.Now,
		scan:     transcript.LastUserMessage,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch handles one hook event.
//
// It returns nil without sending when the transcript holds no user message or
// when the user is still within the busy window. An unreadable transcript and a
// rejected delivery are returned as errors.
func (d *Dispatcher) Dispatch(ctx context.Context, event hook.Event) error {
	rec, err := d.scan(event.TranscriptPath)
	if err != nil {
		return clierrors.TranscriptUnreadable(err)
	}
	if rec == nil {
		d.log.Debug().Str("transcript", event.TranscriptPath).Msg("no user message found, skipping")
		return nil
	}

	if elapsed, busy := d.stillBusy(rec); busy {
		d.log.Debug().
			Dur("elapsed", elapsed).
			Dur("busy_time", d.busyTime).
			Msg("user is still within the busy window, skipping")
		return nil
	}

	n := NewNotification(event, rec)
	requestID, err := d.sender.Send(ctx, n)

	if d.recorder != nil {
		d.recorder.Record(Attempt{
			Event:        event,
			Project:      rec.Project(),
			Notification: n,
			RequestID:    requestID,
			Err:          err,
		})
	}

	if err != nil {
		return clierrors.DeliveryFailed(err)
	}

	d.log.Debug().Str("request", requestID).Str("title", n.Title).Msg("notification sent")
	return nil
}

// stillBusy reports whether the record is younger than the busy window.
// An elapsed time equal to the window is not busy. A timestamp that cannot be
// parsed never suppresses the notification.
func (d *Dispatcher) stillBusy(rec *transcript.Record) (time.Duration, bool) {
	ts, err := rec.Time()
	if err != nil {
		d.log.Warn().Err(err).Str("timestamp", rec.Timestamp).Msg("unparseable message timestamp")
		return 0, false
	}
	elapsed := d.now().Sub(ts)
	return elapsed, elapsed < d.busyTime
}
