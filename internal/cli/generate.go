package cli

import (
	"github.com/spf13/cobra"

	"github.com/101shaan/BlitzForge/internal/chart"
	"github.com/101shaan/BlitzForge/internal/format"
	"github.com/101shaan/BlitzForge/internal/log"
)

func init() {
	generateCmd.SilenceErrors = true
	generateCmd.SilenceUsage = true
	rootCmd.AddCommand(generateCmd)
}

// generateCmd is the explicit form of the default invocation.
var generateCmd = &cobra.Command{
	Use:   "generate [hash-rate-ghs]",
	Short: "Render all five charts into ./graphs/",
	Long: `Render the full chart set for the given hash rate:

  crack_time_by_length.png   Time vs password length
  weak_vs_strong.png         Weak vs strong comparison
  algorithm_comparison.png   Algorithm speed comparison
  keyspace_growth.png        Exponential keyspace growth
  real_world_times.png       Real-world cracking scenarios

Examples:
  # Default 5.0 GH/s
  blitzviz generate

  # Custom rate of 12.5 billion hashes/second
  blitzviz generate 12.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	reporter := NewReporter(cmd.ErrOrStderr())
	hashRate := resolveHashRate(args, reporter)

	generator, err := chart.NewGenerator(hashRate, chart.DefaultOutputDir, chart.Dark())
	if err != nil {
		return err
	}

	paths, err := generator.GenerateAll()
	for _, p := range paths {
		reporter.Successf("saved %s", p)
	}
	if err != nil {
		log.Error("chart generation aborted", log.Err(err))
		return err
	}

	reporter.Successf("all %d charts generated in ./%s/", len(paths), chart.DefaultOutputDir)
	return nil
}

// resolveHashRate applies the parse-or-default policy for the optional
// positional argument. The substitution happens here, visibly, not
// inside the parser.
func resolveHashRate(args []string, reporter *Reporter) float64 {
	hashRate := DefaultHashRateGH * 1e9
	if len(args) == 0 {
		reporter.Infof("using default hash rate: %s", format.Rate(hashRate))
		return hashRate
	}

	parsed, err := ParseHashRate(args[0])
	if err != nil {
		reporter.Infof("invalid hash rate %q, using default %s", args[0], format.Rate(hashRate))
		return hashRate
	}

	reporter.Infof("using custom hash rate: %s", format.Rate(parsed))
	return parsed
}
