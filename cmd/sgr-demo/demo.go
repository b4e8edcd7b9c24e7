package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sgr/pkg/sgr"
)

// heading prints a section title in bold underline.
func heading(w io.Writer, title string) error {
	return styledLine(w, sgr.Combine(sgr.Bold, sgr.Underline), title)
}

// styledLine writes one styled line, falling back to plain text when
// escape sequences are disabled.
func styledLine(w io.Writer, token sgr.SGR, text string) error {
	if !colorEnabled() {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return sgr.Fprintln(w, token, text)
}

// styledChunk writes a styled segment without a newline.
func styledChunk(w io.Writer, token sgr.SGR, text string) error {
	if !colorEnabled() {
		_, err := fmt.Fprint(w, text)
		return err
	}
	return sgr.Fprint(w, token, text)
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Demonstrate the common rendition codes",
	Long:  `Print text using the widely supported rendition codes: bold, underline and reverse.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := heading(out, "Testing common SGR codes:"); err != nil {
			return err
		}
		lines := []struct {
			token sgr.SGR
			text  string
		}{
			{sgr.Bold, "Bold text"},
			{sgr.Underline, "Underlined text"},
			{sgr.Reverse, "Reversed text"},
		}
		for _, l := range lines {
			if err := styledLine(out, l.token, l.text); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(out)
		return err
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Demonstrate the 16 indexed colors",
	Long:  `Print text using the 3/4-bit foreground and background colors, normal and bright.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := heading(out, "Testing colors:"); err != nil {
			return err
		}
		lines := []struct {
			token sgr.SGR
			text  string
		}{
			{sgr.FgRed, "Red foreground"},
			{sgr.BgCyan, "Cyan background"},
			{sgr.Combine(sgr.FgWhite, sgr.BgBlack), "White foreground, black background"},
			{sgr.FgBlue, "Blue foreground"},
			{sgr.FgBrightGreen, "Bright green foreground"},
		}
		for _, l := range lines {
			if err := styledLine(out, l.token, l.text); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(out)
		return err
	},
}

var truecolorCmd = &cobra.Command{
	Use:   "truecolor",
	Short: "Demonstrate 24-bit colors",
	Long: `Sweep the RGB cube in 51-step channel increments and print each color
as a bold hex label in that color.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := heading(out, "Testing 24-bit color:"); err != nil {
			return err
		}
		for r := 0; r <= 255; r += 51 {
			for g := 0; g <= 255; g += 51 {
				for b := 0; b <= 255; b += 51 {
					token, err := sgr.FgRGB(r, g, b)
					if err != nil {
						return err
					}
					label := fmt.Sprintf("0x%06x", r<<16|g<<8|b)
					if err := styledChunk(out, sgr.Combine(token, sgr.Bold), label); err != nil {
						return err
					}
					if _, err := fmt.Fprint(out, " "); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		return nil
	},
}

var exoticCmd = &cobra.Command{
	Use:   "exotic",
	Short: "Demonstrate rarely supported codes",
	Long: `Print text using rendition codes many terminal emulators ignore:
faint, italic, blink, conceal, strikethrough, frame, encircle, overline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := heading(out, "Testing unusual codes:"); err != nil {
			return err
		}
		lines := []struct {
			token  sgr.SGR
			text   string
			suffix string
		}{
			{sgr.Faint, "Faint", ""},
			{sgr.Italic, "Italic", ""},
			{sgr.BlinkSlow, "Blinking slowly", ""},
			{sgr.BlinkFast, "Blinking quickly", ""},
			{sgr.Conceal, "Concealed", " (concealed)"},
			{sgr.Strike, "Crossed out", ""},
			{sgr.Frame, "Framed", ""},
			{sgr.Encircle, "Encircled", ""},
			{sgr.Overline, "Overlined", ""},
		}
		for _, l := range lines {
			if err := styledChunk(out, l.token, l.text); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(out, l.suffix); err != nil {
				return err
			}
		}
		return nil
	},
}
