package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/101shaan/BlitzForge/internal/log"
)

// Version is set by main.go
var Version = "dev"

var verbose bool

// rootCmd is the base command. Invoked bare it runs the full chart
// generation, matching the single-optional-argument contract:
// blitzviz [hash-rate-ghs].
var rootCmd = &cobra.Command{
	Use:   "blitzviz [hash-rate-ghs]",
	Short: "Password crack-time chart generator",
	Long: `blitzviz renders the BlitzForge presentation charts: brute-force
crack-time estimates for an assumed hash rate, written as PNG files
into ./graphs/.

The optional positional argument is the attack rate in billions of
hashes per second (default 5.0). A value that fails to parse is
reported and replaced by the default; generation still runs.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging to stderr")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Silence Cobra's default error/usage printing - we handle it ourselves
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.EnableVerboseLogging()
		}
	}
}

// Execute runs the CLI application. The process exits 0 on every path:
// the original tool defines no failure exit code, so errors are
// reported to stderr and swallowed here.
func Execute(version string) {
	Version = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
