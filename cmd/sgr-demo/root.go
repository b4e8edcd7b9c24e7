package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sgr/internal/version"
	"github.com/arthur-debert/sgr/pkg/logging"
	"github.com/arthur-debert/sgr/pkg/term"
)

var (
	verbosity  int
	forceColor bool

	rootCmd = &cobra.Command{
		Use:   "sgr-demo",
		Short: "Showcase ANSI SGR escape sequences",
		Long: `sgr-demo exercises the sgr library: it prints text using the standard
rendition codes, the 16 indexed colors and 24-bit RGB colors, always
restoring the terminal's default rendition afterwards.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			// Windows consoles need a one-time opt-in before they
			// interpret the sequences. Failing is fine; the demo then
			// prints them inertly.
			if err := term.EnableVirtualTerminal(); err != nil {
				log.Warn().Err(err).Msg("Could not enable virtual terminal processing, sequences will be rendered inertly")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "force-color", false, "Emit escape sequences even when stdout is not a terminal")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(truecolorCmd)
	rootCmd.AddCommand(exoticCmd)
	rootCmd.AddCommand(swatchCmd)
}

// colorEnabled reports whether the demo should emit escape sequences at
// all: either stdout is a terminal or the user forced it.
func colorEnabled() bool {
	return forceColor || term.IsTerminal(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for sgr-demo`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sgr-demo version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(sgr-demo completion bash)

Zsh:
  $ sgr-demo completion zsh > "${fpath[1]}/_sgr-demo"

Fish:
  $ sgr-demo completion fish | source

PowerShell:
  PS> sgr-demo completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
