// =============================================================================
// Daily Sales Summary - Validate Command
// =============================================================================
//
// This file defines the 'validate' command. It parses every invoice in the
// invoices directory and reports each file's outcome. Unlike the root
// command, it does not stop at the first invalid invoice, and it never
// writes a report.
//
// COMMAND USAGE:
//   salesummary validate [--invoices-dir <path>]
//
// OUTPUT:
//   ✓ 001.txt
//   ✗ 002.txt: invalid Item 'pizza' in '002.txt'
//
//   Invoices: 2, valid: 1, invalid: 1
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/daily-sales-summary/internal/config"
	"github.com/ginjaninja78/daily-sales-summary/internal/pipeline"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every invoice without writing a report",
	Long: `Parse and validate every .txt invoice in the invoices directory.
Each file is reported as valid or invalid; the command exits non-zero when at
least one invoice is invalid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := cfg.NewLogger()
		if err != nil {
			return err
		}
		return runValidate(cfg, logger, cmd.OutOrStdout())
	},
}

// init registers the validate command with the root command.
func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks all invoices and prints one line per file.
//
// RETURNS:
//   - nil when every invoice is valid (including an empty directory).
//   - An error naming the number of invalid invoices otherwise.
func runValidate(cfg *config.Config, logger logrus.FieldLogger, stdout io.Writer) error {
	results, err := pipeline.New(cfg, logger).Check()
	if err != nil {
		return err
	}

	var invalid int
	for _, r := range results {
		if r.Error != nil {
			invalid++
			fmt.Fprintf(stdout, "  ✗ %s: %v\n", r.Name, r.Error)
			continue
		}
		fmt.Fprintf(stdout, "  ✓ %s\n", r.Name)
	}

	fmt.Fprintf(stdout, "\nInvoices: %d, valid: %d, invalid: %d\n", len(results), len(results)-invalid, invalid)

	if invalid > 0 {
		return fmt.Errorf("%d of %d invoice(s) failed validation", invalid, len(results))
	}
	return nil
}
