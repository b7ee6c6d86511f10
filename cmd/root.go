// =============================================================================
// Daily Sales Summary - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the root
// command without a subcommand builds the daily sales summary.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesummary)          - Build the summary report
//   ├── validateCmd (validate)     - Check every invoice, write nothing
//   ├── generateCmd (generate)     - Write random sample invoices
//   └── versionCmd (version)       - Display the application version
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose, --invoices-dir)
//   2. Resolving the configuration (defaults < config file < flags)
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/daily-sales-summary/internal/config"
	"github.com/ginjaninja78/daily-sales-summary/internal/pipeline"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// invoicesDir is the directory containing invoice .txt files.
var invoicesDir string

// outPath is the destination of the text report.
var outPath string

// xlsxOut is the destination of the optional spreadsheet export.
var xlsxOut string

// metricsFile is the destination of the optional Prometheus textfile.
var metricsFile string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salesummary",
	Short: "Daily Sales Summary - Build a daily sales report from invoice files",
	Long: `salesummary reads every .txt invoice in a directory, validates each one,
and writes a daily sales summary with order counts per kind (in-restaurant or
takeaway) and quantities per menu item.

The report is written to a file and printed to standard output. The run stops
at the first invalid invoice and writes nothing in that case.

Example Usage:
  salesummary                                    # invoices/ -> summary.txt
  salesummary --invoices-dir ./day1 --out r.txt  # custom paths
  salesummary validate                           # check invoices only
  salesummary generate --count 20                # create sample invoices`,

	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := cfg.NewLogger()
		if err != nil {
			return err
		}
		return runSummary(cfg, logger, cmd.OutOrStdout())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global and root-only flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file (a missing default file is ignored)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)

	rootCmd.PersistentFlags().StringVar(
		&invoicesDir,
		"invoices-dir",
		config.DefaultInvoicesDir,
		"Directory containing invoice .txt files",
	)

	// ==========================================================================
	// LOCAL FLAGS
	// ==========================================================================

	rootCmd.Flags().StringVar(
		&outPath,
		"out",
		config.DefaultOut,
		"Path to write the daily summary file",
	)

	rootCmd.Flags().StringVar(
		&xlsxOut,
		"xlsx-out",
		"",
		"Also write the summary as an XLSX workbook to this path",
	)

	rootCmd.Flags().StringVar(
		&metricsFile,
		"metrics-file",
		"",
		"Write Prometheus textfile metrics for the run to this path",
	)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// resolveConfig loads the configuration file and applies explicitly set flags
// on top of it. The default config file may be absent; a file named with
// --config must exist.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(cfgFile, flags.Changed("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flags.Changed("invoices-dir") {
		cfg.InvoicesDir = invoicesDir
	}
	if flags.Changed("out") {
		cfg.Out = outPath
	}
	if flags.Changed("xlsx-out") {
		cfg.XLSXOut = xlsxOut
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}

	return cfg, nil
}

// runSummary runs the pipeline and prints the report followed by the
// confirmation line.
func runSummary(cfg *config.Config, logger logrus.FieldLogger, stdout io.Writer) error {
	result, err := pipeline.New(cfg, logger).Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, result.Report)
	fmt.Fprintf(stdout, "Summary written to: %s\n", result.OutputPath)
	if result.XLSXPath != "" {
		fmt.Fprintf(stdout, "Spreadsheet written to: %s\n", result.XLSXPath)
	}

	return nil
}
