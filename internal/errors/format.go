package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	detailColor = color.New(color.Faint)
	fixColor    = color.New(color.FgYellow)
)

// FormatError renders err with colors for terminal output.
func FormatError(err *CLIError) string {
	return format(err, true)
}

// FormatErrorPlain renders err without ANSI escape codes.
func FormatErrorPlain(err *CLIError) string {
	return format(err, false)
}

func format(err *CLIError, colored bool) string {
	if err == nil {
		return ""
	}

	paint := func(c *color.Color, s string) string {
		if !colored {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", paint(errorColor, "✗ "+err.Category.String()+":"), err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Details) > 0 {
		b.WriteString("\n")
		for _, line := range err.Details {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "  %s\n", paint(detailColor, line))
		}
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", paint(fixColor, "To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// PrintError writes err to stderr.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes err to w. Colors follow fatih/color's terminal detection.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		if color.NoColor {
			fmt.Fprint(w, FormatErrorPlain(cliErr))
			return
		}
		fmt.Fprint(w, FormatError(cliErr))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
