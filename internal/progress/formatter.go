package progress

import "github.com/fatih/color"

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	if supportsColor && symbols.Checkmark == "✓" {
		c := color.New(color.FgGreen)
		c.EnableColor()
		return c.Sprint(symbols.Checkmark)
	}
	return symbols.Checkmark
}

// failureMark returns the appropriate failure symbol
func failureMark(symbols ProgressSymbols, supportsColor bool) string {
	if supportsColor && symbols.Failure == "✗" {
		c := color.New(color.FgRed)
		c.EnableColor()
		return c.Sprint(symbols.Failure)
	}
	return symbols.Failure
}
