package sgr

import (
	"strconv"
	"strings"
)

// Code is a named non-color rendition parameter from the standard SGR
// catalog.
type Code int

// Standard rendition codes. Frame, Encircle and Overline are rarely
// supported by terminal emulators.
const (
	CodeReset     Code = 0
	CodeBold      Code = 1
	CodeFaint     Code = 2
	CodeItalic    Code = 3
	CodeUnderline Code = 4
	CodeBlinkSlow Code = 5
	CodeBlinkFast Code = 6
	CodeReverse   Code = 7
	CodeConceal   Code = 8
	CodeStrike    Code = 9
	CodeFrame     Code = 51
	CodeEncircle  Code = 52
	CodeOverline  Code = 53
)

const (
	escape     = "\x1b["
	terminator = "m"

	resetParams = "0"
)

// SGR is an immutable style token: one or more rendition parameters that
// render to a single escape sequence. The zero value renders to the empty
// parameter list and should not be written to a terminal; always obtain
// tokens from the catalog or the constructors.
type SGR struct {
	params string
}

// New returns a token for the given rendition code.
func New(code Code) SGR {
	return SGR{params: strconv.Itoa(int(code))}
}

// Combine merges tokens into one token whose escape sequence applies all
// renditions at once, in argument order.
func Combine(tokens ...SGR) SGR {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.params == "" {
			continue
		}
		parts = append(parts, t.params)
	}
	return SGR{params: strings.Join(parts, ";")}
}

// String renders the wire format: ESC '[' params 'm'.
func (s SGR) String() string {
	return escape + s.params + terminator
}

// Params returns the raw semicolon-separated parameter payload.
func (s SGR) Params() string {
	return s.params
}

// IsReset reports whether the token is the reset token.
func (s SGR) IsReset() bool {
	return s.params == resetParams
}

// Token catalog for the standard rendition codes.
var (
	Reset     = New(CodeReset)
	Bold      = New(CodeBold)
	Faint     = New(CodeFaint)
	Italic    = New(CodeItalic)
	Underline = New(CodeUnderline)
	BlinkSlow = New(CodeBlinkSlow)
	BlinkFast = New(CodeBlinkFast)
	Reverse   = New(CodeReverse)
	Conceal   = New(CodeConceal)
	Strike    = New(CodeStrike)
	Frame     = New(CodeFrame)
	Encircle  = New(CodeEncircle)
	Overline  = New(CodeOverline)
)
