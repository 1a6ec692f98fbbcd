// Package cli provides the command-line interface for Yasbtint.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/yasbtint/internal/version"
)

var (
	// Global verbosity flag
	rootVerbose bool

	// Pipeline logger shared by all commands, set up in PersistentPreRun
	logger hclog.Logger
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "yasbtint",
		Short: "Derive a YASB accent colour from the current wallpaper",
		Long: `Yasbtint reads the current desktop wallpaper, generates a colour palette
with pywal and writes the best accent colour into YASB's stylesheet and
widget configuration.

The accent is picked from the palette's priority slots: the first colour
whose luminance sits in a legible mid-range band with enough contrast
against the background wins, with a deterministic closest-luminance
fallback. YASB's own file watchers pick the rewritten files up.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(rootVerbose)
		},
	}

	root.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(newApplyCmd())
	root.AddCommand(versionCmd)

	return root
}

// newLogger builds the pipeline logger. Debug tracing sits behind --verbose;
// colour is only used when stderr is a terminal.
func newLogger(verbose bool) hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}

	colorMode := hclog.ColorOff
	if term.IsTerminal(int(os.Stderr.Fd())) {
		colorMode = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "yasbtint",
		Output: os.Stderr,
		Level:  level,
		Color:  colorMode,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
