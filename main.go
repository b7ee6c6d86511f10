// =============================================================================
// Daily Sales Summary - Main Entry Point
// =============================================================================
//
// This is the main entry point for the salesummary CLI. It delegates command
// execution to the cmd package.
//
// USAGE:
//   salesummary             - Build the daily summary from invoices/
//   salesummary validate    - Check invoices without writing a report
//   salesummary generate    - Write random sample invoices
//   salesummary version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, validation, aggregation and report rendering
//   - pkg/       : File system utilities (invoice discovery, report output)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/daily-sales-summary/cmd"
)

func main() {
	cmd.Execute()
}
