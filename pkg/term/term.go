// Package term holds the platform collaborators of the sgr library:
// terminal detection and the one-time Windows opt-in for interpreting
// escape sequences.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal, including
// Cygwin/MSYS2 pseudo-terminals on Windows.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlatformEnableError reports that the console could not be switched to
// virtual terminal processing. It is recoverable: callers should report
// it and continue, with escape sequences rendered inertly.
type PlatformEnableError struct {
	Err error
}

// Error implements the error interface.
func (e *PlatformEnableError) Error() string {
	return "enable virtual terminal processing: " + e.Err.Error()
}

// Unwrap exposes the underlying console error.
func (e *PlatformEnableError) Unwrap() error {
	return e.Err
}

// EnableVirtualTerminal opts the process's console into interpreting
// ANSI escape sequences. On platforms whose terminals interpret them
// natively it is a no-op. Failure returns a *PlatformEnableError and is
// never fatal.
func EnableVirtualTerminal() error {
	return enableVirtualTerminal()
}
