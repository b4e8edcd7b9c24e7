package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/sgr/pkg/logging"
	"github.com/arthur-debert/sgr/pkg/palette"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch [palette-file]",
	Short: "Render a palette as colored blocks",
	Long: `Render each color of a palette as a background-colored block next to
its name. With no argument the built-in VGA palette is used; otherwise
the argument is a YAML palette file mapping names to r/g/b values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.swatch")
		out := cmd.OutOrStdout()

		pal := palette.Default()
		if len(args) == 1 {
			loaded, err := palette.Load(args[0])
			if err != nil {
				return err
			}
			pal = loaded
			logger.Info().Str("file", args[0]).Int("colors", len(pal)).Msg("Loaded palette")
		}

		for _, name := range pal.Names() {
			block, err := pal.Background(name)
			if err != nil {
				return err
			}
			if err := styledChunk(out, block, "      "); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
				return err
			}
		}
		return nil
	},
}
