package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/101shaan/BlitzForge/internal/format"
	"github.com/101shaan/BlitzForge/internal/strength"
)

func init() {
	estimateCmd.SilenceErrors = true
	estimateCmd.SilenceUsage = true
	rootCmd.AddCommand(estimateCmd)
}

var estimateCmd = &cobra.Command{
	Use:   "estimate <password> [hash-rate-ghs]",
	Short: "Estimate brute-force crack time for one password",
	Long: `Estimate how long a brute-force attack would take against a single
password at the given hash rate. The password is classified by the
character sets it uses; it is never hashed, cracked, or stored.

Examples:
  blitzviz estimate "hunter2"
  blitzviz estimate "Tr0ub4dor&3" 12.5`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEstimate,
}

func runEstimate(cmd *cobra.Command, args []string) error {
	reporter := NewReporter(cmd.ErrOrStderr())
	hashRate := resolveHashRate(args[1:], reporter)

	assessment, err := strength.Assess(args[0], hashRate)
	if err != nil {
		return err
	}

	crackTime, err := format.Duration(assessment.CrackSeconds)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "length:       %d\n", assessment.Length)
	fmt.Fprintf(out, "charset pool: %d\n", assessment.PoolSize)
	fmt.Fprintf(out, "keyspace:     %s\n", assessment.Keyspace.String())
	fmt.Fprintf(out, "entropy:      %.1f bits\n", assessment.EntropyBits)
	fmt.Fprintf(out, "zxcvbn score: %d/4\n", assessment.Score)
	fmt.Fprintf(out, "crack time:   %s @ %s\n", crackTime, format.Rate(hashRate))
	return nil
}
