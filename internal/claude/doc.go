// Package claude manages hook registration in Claude Code's settings.json.
//
// The package supports:
//   - Loading settings into a generic map so unknown fields survive a rewrite
//   - Checking whether a command hook is registered for an event
//   - Registering the hook idempotently
//   - Atomic file writes to prevent corruption
package claude
