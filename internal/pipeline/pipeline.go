// =============================================================================
// Daily Sales Summary - Pipeline Module
// =============================================================================
//
// This module orchestrates one run of the daily summary.
//
// PIPELINE:
//   1. Discover and read the invoice files (sorted by name)
//   2. Parse and validate each invoice into an Order
//   3. Aggregate all Orders into summary counts
//   4. Format the text report
//   5. Write the report file
//   6. Optionally write the XLSX export and the metrics textfile
//
// FAILURE MODEL:
//   Files are processed sequentially. The first invalid invoice aborts the
//   run before anything is written; no partial summary is ever produced.
//   A TotalPrice mismatch is only a warning.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/daily-sales-summary/internal/config"
	"github.com/ginjaninja78/daily-sales-summary/internal/invoice"
	"github.com/ginjaninja78/daily-sales-summary/internal/metrics"
	"github.com/ginjaninja78/daily-sales-summary/internal/report"
	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
	"github.com/ginjaninja78/daily-sales-summary/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURES
// =============================================================================

// Result represents the outcome of a successful run.
type Result struct {
	// RunID identifies the run in log entries.
	RunID string

	// Report is the rendered report text.
	Report string

	// OutputPath is the absolute path of the written report.
	OutputPath string

	// XLSXPath is the absolute path of the spreadsheet export.
	// Empty when the export is disabled.
	XLSXPath string

	// Counts is the aggregate the report was rendered from.
	Counts summary.Counts

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// InvoicesRead is the number of invoice files read.
	InvoicesRead int

	// PriceMismatches is the number of invoices whose total was flagged.
	PriceMismatches int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// FileResult is the validation outcome of one invoice file.
type FileResult struct {
	// Name is the invoice file name.
	Name string

	// Order is the parsed order. It is nil if Error is set.
	Order *types.Order

	// Error is the validation error, if any.
	Error error
}

// =============================================================================
// PIPELINE STRUCTURE
// =============================================================================

// Pipeline runs the daily summary for one configuration.
type Pipeline struct {
	cfg     *config.Config
	files   *utils.FileManager
	parser  *invoice.Parser
	metrics *metrics.Registry
	log     logrus.FieldLogger
	runID   string
}

// New creates a Pipeline. Every log entry it writes carries a fresh run_id.
//
// PARAMETERS:
//   - cfg: The resolved configuration (defaults, file and flags applied).
//   - log: The logger; total mismatch warnings are written here.
func New(cfg *config.Config, log logrus.FieldLogger) *Pipeline {
	runID := uuid.New().String()
	runLog := log.WithField("run_id", runID)

	return &Pipeline{
		cfg:     cfg,
		files:   utils.NewFileManager(cfg.InvoicesDir),
		parser:  invoice.NewParser(runLog),
		metrics: metrics.NewRegistry(),
		log:     runLog,
		runID:   runID,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the full pipeline.
//
// RETURNS:
//   - The Result of the run.
//   - The first error encountered. Invoice errors come from the validation
//     package; a missing directory is a *utils.DirectoryNotFoundError.
func (p *Pipeline) Run() (*Result, error) {
	startTime := time.Now()
	result := &Result{RunID: p.runID}

	// =========================================================================
	// STEP 1-2: LOAD AND PARSE INVOICES
	// =========================================================================

	p.log.WithField("invoices_dir", p.cfg.InvoicesDir).Info("Processing invoices")

	orders, err := p.LoadOrders()
	if err != nil {
		return nil, err
	}

	result.Stats.InvoicesRead = len(orders)
	for _, order := range orders {
		if order.TotalMismatch() {
			result.Stats.PriceMismatches++
		}
	}

	// =========================================================================
	// STEP 3-4: AGGREGATE AND FORMAT
	// =========================================================================

	result.Counts = summary.Aggregate(orders)
	result.Report = report.Format(result.Counts)

	p.log.WithFields(logrus.Fields{
		"orders":     result.Counts.TotalOrders,
		"in":         result.Counts.Orders(types.KindIn),
		"out":        result.Counts.Orders(types.KindOut),
		"mismatches": result.Stats.PriceMismatches,
	}).Debug("Aggregated orders")

	// =========================================================================
	// STEP 5: WRITE REPORT
	// =========================================================================

	outputPath, err := utils.WriteReport(result.Report, p.cfg.Out)
	if err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	result.OutputPath = outputPath
	p.log.WithField("path", outputPath).Info("Wrote summary")

	// =========================================================================
	// STEP 6: OPTIONAL OUTPUTS
	// =========================================================================

	if p.cfg.XLSXOut != "" {
		xlsxPath, err := report.WriteXLSX(result.Counts, p.cfg.XLSXOut)
		if err != nil {
			return nil, fmt.Errorf("failed to write xlsx export: %w", err)
		}
		result.XLSXPath = xlsxPath
		p.log.WithField("path", xlsxPath).Info("Wrote xlsx export")
	}

	result.Stats.ProcessingTime = time.Since(startTime)

	if p.cfg.MetricsFile != "" {
		if err := p.writeMetrics(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// LoadOrders reads and parses every invoice, stopping at the first failure.
func (p *Pipeline) LoadOrders() ([]types.Order, error) {
	invoices, err := p.files.LoadInvoices()
	if err != nil {
		return nil, err
	}

	orders := make([]types.Order, 0, len(invoices))
	for _, inv := range invoices {
		order, err := p.parser.Parse(inv.Text, inv.Name)
		if err != nil {
			return nil, err
		}
		p.log.WithFields(logrus.Fields{
			"source":   inv.Name,
			"kind":     order.Kind.String(),
			"item":     order.Item.String(),
			"quantity": order.Quantity,
		}).Debug("Parsed invoice")
		orders = append(orders, *order)
	}

	return orders, nil
}

// Check parses every invoice without stopping at failures and without
// writing anything.
//
// RETURNS:
//   - One FileResult per invoice file, in discovery order.
//   - An error only if the invoices cannot be listed or read.
func (p *Pipeline) Check() ([]FileResult, error) {
	invoices, err := p.files.LoadInvoices()
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, 0, len(invoices))
	for _, inv := range invoices {
		order, err := p.parser.Parse(inv.Text, inv.Name)
		results = append(results, FileResult{Name: inv.Name, Order: order, Error: err})
	}

	return results, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// writeMetrics records result in the metrics registry and writes the textfile.
func (p *Pipeline) writeMetrics(result *Result) error {
	p.metrics.InvoicesRead.Add(float64(result.Stats.InvoicesRead))
	p.metrics.PriceMismatches.Add(float64(result.Stats.PriceMismatches))
	p.metrics.ObserveCounts(result.Counts)
	p.metrics.ObserveRun(result.Stats.ProcessingTime, time.Now())

	if err := p.metrics.WriteTextfile(p.cfg.MetricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	p.log.WithField("path", p.cfg.MetricsFile).Debug("Wrote metrics")
	return nil
}
