package sgr

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer wraps an output sink and owns the obligation to restore the
// terminal's default rendition. Once a non-reset token has been written
// through it, Close emits the reset sequence exactly once.
//
// A Writer is not safe for concurrent use, and writing to the underlying
// sink directly while a styled segment is open interleaves escape
// sequences unpredictably; route all output for the segment through the
// Writer.
type Writer struct {
	w     io.Writer
	armed bool
}

// NewWriter returns a writer for w with no pending reset obligation.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Styled writes the token to w and returns the session that now owns the
// reset obligation. The returned writer is always usable; a non-nil error
// is the sink's write failure, in which case no obligation was taken.
func Styled(w io.Writer, s SGR) (*Writer, error) {
	sw := NewWriter(w)
	err := sw.WriteSGR(s)
	return sw, err
}

// WriteSGR renders the token into the sink. A reset token discharges the
// pending obligation; any other token arms it. Writing a second non-reset
// token overrides the previous rendition at the terminal, it does not
// merge styles (use Combine for that), and the single obligation simply
// stays armed.
func (sw *Writer) WriteSGR(s SGR) error {
	if _, err := io.WriteString(sw.w, s.String()); err != nil {
		return err
	}
	sw.armed = !s.IsReset()
	return nil
}

// Write passes plain bytes through to the sink verbatim. It implements
// io.Writer so a Writer can stand in wherever the sink could.
func (sw *Writer) Write(p []byte) (int, error) {
	return sw.w.Write(p)
}

// Print writes the operands to the sink in fmt.Fprint style.
func (sw *Writer) Print(a ...any) error {
	_, err := fmt.Fprint(sw.w, a...)
	return err
}

// Printf writes the formatted string to the sink.
func (sw *Writer) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(sw.w, format, a...)
	return err
}

// Println writes the operands followed by a newline to the sink.
func (sw *Writer) Println(a ...any) error {
	_, err := fmt.Fprintln(sw.w, a...)
	return err
}

// Close discharges the reset obligation: if a styled write is pending,
// the reset sequence is written and the obligation cleared. Closing an
// idle or already-closed writer is a no-op, so the reset is emitted at
// most once per session no matter how many owners call Close. A failed
// reset write is returned but not retried.
func (sw *Writer) Close() error {
	if !sw.armed {
		return nil
	}
	sw.armed = false
	_, err := io.WriteString(sw.w, Reset.String())
	return err
}

// Fprint writes the token, the operands and the reset sequence to w.
func Fprint(w io.Writer, s SGR, a ...any) error {
	return styledSegment(w, s, func(sw *Writer) error { return sw.Print(a...) })
}

// Fprintf writes the token, the formatted string and the reset sequence
// to w.
func Fprintf(w io.Writer, s SGR, format string, a ...any) error {
	return styledSegment(w, s, func(sw *Writer) error { return sw.Printf(format, a...) })
}

// Fprintln writes the token, the operands, the reset sequence and a
// trailing newline to w. The newline follows the reset so the rendition
// never bleeds onto the next line.
func Fprintln(w io.Writer, s SGR, a ...any) error {
	if err := Fprint(w, s, a...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Sprint returns the token, the operands and the reset sequence as one
// string.
func Sprint(s SGR, a ...any) string {
	var b strings.Builder
	_ = Fprint(&b, s, a...)
	return b.String()
}

// Sprintf returns the token, the formatted string and the reset sequence
// as one string.
func Sprintf(s SGR, format string, a ...any) string {
	var b strings.Builder
	_ = Fprintf(&b, s, format, a...)
	return b.String()
}

// styledSegment runs body inside a session and closes it on every path,
// mirroring the scoped-ownership discipline of Writer itself.
func styledSegment(w io.Writer, s SGR, body func(*Writer) error) error {
	sw, err := Styled(w, s)
	if err != nil {
		return err
	}
	bodyErr := body(sw)
	closeErr := sw.Close()
	if bodyErr != nil {
		return bodyErr
	}
	return closeErr
}

// RestoreOnExit returns a cleanup function that writes one reset sequence
// to each sink, defaulting to stdout and stderr. Defer it from main so a
// process that dies mid-segment still leaves the terminal in its default
// rendition:
//
//	defer sgr.RestoreOnExit()()
//
// Write failures are ignored; this is a best-effort courtesy to the
// terminal, not a transport guarantee.
func RestoreOnExit(sinks ...io.Writer) func() {
	if len(sinks) == 0 {
		sinks = []io.Writer{os.Stdout, os.Stderr}
	}
	return func() {
		for _, w := range sinks {
			_, _ = io.WriteString(w, Reset.String())
		}
	}
}
