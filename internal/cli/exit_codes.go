package cli

// Exit codes for claude-notify. Claude Code treats any non-zero hook exit as
// a failure and shows stderr to the user.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
