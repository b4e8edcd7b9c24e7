package sgr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedColors(t *testing.T) {
	tests := []struct {
		name  string
		token SGR
		want  string
	}{
		{"red foreground", Fg(Red), "\x1b[31m"},
		{"red background", Bg(Red), "\x1b[41m"},
		{"white foreground", FgWhite, "\x1b[37m"},
		{"white background", BgWhite, "\x1b[47m"},
		{"bright black foreground", FgBrightBlack, "\x1b[90m"},
		{"bright white foreground", FgBrightWhite, "\x1b[97m"},
		{"bright black background", BgBrightBlack, "\x1b[100m"},
		{"bright white background", BgBrightWhite, "\x1b[107m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.String())
		})
	}
}

func TestBackgroundOffset(t *testing.T) {
	// Background payload is always foreground code + 10.
	colors := []Color{
		Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
		BrightBlack, BrightRed, BrightGreen, BrightYellow,
		BrightBlue, BrightMagenta, BrightCyan, BrightWhite,
	}
	for _, c := range colors {
		assert.Equal(t, fmt.Sprintf("%d", int(c)), Fg(c).Params())
		assert.Equal(t, fmt.Sprintf("%d", int(c)+10), Bg(c).Params())
	}
}

func TestRGBRendering(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		wantFg  string
		wantBg  string
	}{
		{"pure red", 255, 0, 0, "\x1b[38;2;255;0;0m", "\x1b[48;2;255;0;0m"},
		{"black", 0, 0, 0, "\x1b[38;2;0;0;0m", "\x1b[48;2;0;0;0m"},
		{"white", 255, 255, 255, "\x1b[38;2;255;255;255m", "\x1b[48;2;255;255;255m"},
		{"mixed", 18, 52, 86, "\x1b[38;2;18;52;86m", "\x1b[48;2;18;52;86m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, err := FgRGB(tt.r, tt.g, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFg, fg.String())

			bg, err := BgRGB(tt.r, tt.g, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBg, bg.String())
		})
	}
}

func TestRGBValidation(t *testing.T) {
	tests := []struct {
		name        string
		r, g, b     int
		wantChannel string
		wantValue   int
	}{
		{"red below range", -1, 0, 0, "r", -1},
		{"green below range", 0, -1, 0, "g", -1},
		{"blue below range", 0, 0, -1, "b", -1},
		{"red above range", 256, 0, 0, "r", 256},
		{"green above range", 0, 300, 0, "g", 300},
		{"blue above range", 0, 0, 1000, "b", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, construct := range []func(r, g, b int) (SGR, error){FgRGB, BgRGB} {
				token, err := construct(tt.r, tt.g, tt.b)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColorComponent))

				var compErr *InvalidColorComponentError
				require.ErrorAs(t, err, &compErr)
				assert.Equal(t, tt.wantChannel, compErr.Channel)
				assert.Equal(t, tt.wantValue, compErr.Value)

				// No partial token is produced.
				assert.Equal(t, SGR{}, token)
			}
		})
	}
}

func TestRGBBoundaries(t *testing.T) {
	// 0 and 255 are both valid.
	_, err := FgRGB(0, 255, 0)
	assert.NoError(t, err)
	_, err = BgRGB(255, 0, 255)
	assert.NoError(t, err)
}
