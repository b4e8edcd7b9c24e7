package sgr

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendersWireFormat(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"reset", CodeReset, "\x1b[0m"},
		{"bold", CodeBold, "\x1b[1m"},
		{"faint", CodeFaint, "\x1b[2m"},
		{"italic", CodeItalic, "\x1b[3m"},
		{"underline", CodeUnderline, "\x1b[4m"},
		{"blink slow", CodeBlinkSlow, "\x1b[5m"},
		{"blink fast", CodeBlinkFast, "\x1b[6m"},
		{"reverse", CodeReverse, "\x1b[7m"},
		{"conceal", CodeConceal, "\x1b[8m"},
		{"strike", CodeStrike, "\x1b[9m"},
		{"frame", CodeFrame, "\x1b[51m"},
		{"encircle", CodeEncircle, "\x1b[52m"},
		{"overline", CodeOverline, "\x1b[53m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code).String())
		})
	}
}

func TestCombine(t *testing.T) {
	t.Run("bold plus underline", func(t *testing.T) {
		assert.Equal(t, "\x1b[1;4m", Combine(Bold, Underline).String())
	})

	t.Run("order is preserved", func(t *testing.T) {
		assert.Equal(t, "4;1", Combine(Underline, Bold).Params())
	})

	t.Run("associative", func(t *testing.T) {
		left := Combine(Combine(Bold, FgRed), BgWhite)
		right := Combine(Bold, Combine(FgRed, BgWhite))
		flat := Combine(Bold, FgRed, BgWhite)
		assert.Equal(t, flat.Params(), left.Params())
		assert.Equal(t, flat.Params(), right.Params())
	})

	t.Run("zero-value tokens are skipped", func(t *testing.T) {
		assert.Equal(t, "1", Combine(SGR{}, Bold, SGR{}).Params())
	})
}

func TestIsReset(t *testing.T) {
	assert.True(t, Reset.IsReset())
	assert.False(t, Bold.IsReset())
	assert.False(t, Combine(Reset, Bold).IsReset())
}

func TestCatalogPayloads(t *testing.T) {
	// Every catalog token must carry a non-empty payload of
	// semicolon-separated non-negative integers.
	catalog := map[string]SGR{
		"Reset": Reset, "Bold": Bold, "Faint": Faint, "Italic": Italic,
		"Underline": Underline, "BlinkSlow": BlinkSlow, "BlinkFast": BlinkFast,
		"Reverse": Reverse, "Conceal": Conceal, "Strike": Strike,
		"Frame": Frame, "Encircle": Encircle, "Overline": Overline,
	}
	for name, token := range catalog {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, token.Params())
			for _, part := range strings.Split(token.Params(), ";") {
				n, err := strconv.Atoi(part)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, n, 0)
			}
		})
	}
}

func TestRoundTripNamedCodes(t *testing.T) {
	// Rendering a named code and re-parsing the payload recovers the code.
	codes := []Code{
		CodeReset, CodeBold, CodeFaint, CodeItalic, CodeUnderline,
		CodeBlinkSlow, CodeBlinkFast, CodeReverse, CodeConceal, CodeStrike,
		CodeFrame, CodeEncircle, CodeOverline,
	}
	for _, code := range codes {
		token := New(code)
		payload := strings.TrimSuffix(strings.TrimPrefix(token.String(), "\x1b["), "m")
		n, err := strconv.Atoi(payload)
		require.NoError(t, err)
		assert.Equal(t, code, Code(n))
	}
}
