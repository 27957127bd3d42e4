// Package progress_test tests progress display rendering and symbol selection.
// Related: internal/progress/display.go
// Tags: progress, display, spinner, tty
package progress_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/claude-notify/claude-notify/internal/progress"
	"github.com/stretchr/testify/assert"
)

func TestProgressDisplay_NonTTY(t *testing.T) {
	tests := map[string]struct {
		run  func(p *progress.ProgressDisplay)
		want string
	}{
		"start prints message once": {
			run:  func(p *progress.ProgressDisplay) { p.Start("Sending test notification") },
			want: "Sending test notification\n",
		},
		"success uses ASCII mark": {
			run:  func(p *progress.ProgressDisplay) { p.Succeed("Notification sent") },
			want: "[OK] Notification sent\n",
		},
		"failure includes error": {
			run:  func(p *progress.ProgressDisplay) { p.Fail("Notification failed", errors.New("boom")) },
			want: "[FAIL] Notification failed: boom\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := progress.NewProgressDisplay(&buf, progress.TerminalCapabilities{})
			tt.run(p)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestProgressDisplay_TTYLifecycle(t *testing.T) {
	var buf bytes.Buffer
	p := progress.NewProgressDisplay(&buf, progress.TerminalCapabilities{
		IsTTY:           true,
		SupportsUnicode: true,
	})

	p.Start("Sending")
	p.Succeed("Sent")

	assert.Contains(t, buf.String(), "✓ Sent")
	assert.NotPanics(t, p.StopSpinner)
}

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps progress.TerminalCapabilities
		want progress.ProgressSymbols
	}{
		"unicode": {
			caps: progress.TerminalCapabilities{SupportsUnicode: true},
			want: progress.ProgressSymbols{Checkmark: "✓", Failure: "✗", SpinnerSet: 14},
		},
		"ascii": {
			caps: progress.TerminalCapabilities{},
			want: progress.ProgressSymbols{Checkmark: "[OK]", Failure: "[FAIL]", SpinnerSet: 9},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, progress.SelectSymbols(tt.caps))
		})
	}
}

func TestDetectTerminalCapabilities_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	caps := progress.DetectTerminalCapabilities(f)
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
	assert.Equal(t, 0, caps.Width)
}
