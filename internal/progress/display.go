package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay shows one running step at a time.
type ProgressDisplay struct {
	capabilities TerminalCapabilities
	out          io.Writer
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewProgressDisplay creates a display writing to out with the given terminal capabilities.
func NewProgressDisplay(out io.Writer, caps TerminalCapabilities) *ProgressDisplay {
	return &ProgressDisplay{
		capabilities: caps,
		out:          out,
		symbols:      SelectSymbols(caps),
	}
}

// Start begins displaying msg. On a terminal a spinner animates next to it;
// otherwise msg is printed once.
func (p *ProgressDisplay) Start(msg string) {
	p.StopSpinner()

	if p.capabilities.IsTTY {
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(p.out),
		)
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
		return
	}

	fmt.Fprintln(p.out, msg)
}

// Succeed stops the spinner and prints msg with a checkmark.
func (p *ProgressDisplay) Succeed(msg string) {
	p.StopSpinner()
	fmt.Fprintf(p.out, "%s %s\n", checkmark(p.symbols, p.capabilities.SupportsColor), msg)
}

// Fail stops the spinner and prints msg with a failure mark.
func (p *ProgressDisplay) Fail(msg string, err error) {
	p.StopSpinner()
	fmt.Fprintf(p.out, "%s %s: %v\n", failureMark(p.symbols, p.capabilities.SupportsColor), msg, err)
}

// StopSpinner stops the spinner without showing completion/failure
func (p *ProgressDisplay) StopSpinner() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
