/*
Package sgr produces ANSI SGR (Select Graphic Rendition) escape sequences
and guarantees that styled output is followed by a reset sequence.

# Tokens

An SGR value is an immutable style token holding a validated parameter
payload. Tokens come from the package catalog (Bold, Underline, FgRed,
BgWhite, ...), from the 16-color constructors Fg and Bg, or from the
24-bit constructors FgRGB and BgRGB:

	red, err := sgr.FgRGB(255, 0, 0)

Tokens combine into a single escape sequence with Combine:

	sgr.Combine(sgr.Bold, sgr.FgRed, sgr.BgWhite).String()
	// "\x1b[1;31;47m"

# Auto-resetting writers

Writer wraps an output sink and owns the obligation to restore the
terminal's default rendition. Once a styled token has been written, the
reset sequence is emitted exactly once when the writer is closed:

	w, err := sgr.Styled(os.Stdout, sgr.Bold)
	defer w.Close()
	w.Print("Bold string")
	// stdout receives "\x1b[1mBold string\x1b[0m"

For single styled segments the one-shot helpers do the bookkeeping:

	sgr.Fprintln(os.Stdout, sgr.Underline, "Underlined text")

Writing the Reset token explicitly discharges the obligation, so Close
emits nothing further. Writing a second non-reset token overrides the
first at the terminal level; it does not merge styles. Use Combine when
several renditions must apply at once.

# Process shutdown

RestoreOnExit returns a cleanup function that writes a reset sequence to
the standard sinks; defer it from main so an interrupted chain of styled
writes never leaves the terminal in a stale rendition.

Writers are not safe for concurrent use of the same sink. The sequences
themselves are only produced, never interpreted; on Windows consoles see
package term for the one-time opt-in that makes them take effect.
*/
package sgr
