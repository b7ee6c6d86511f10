// =============================================================================
// Daily Sales Summary - XLSX Export
// =============================================================================
//
// This module writes the same counts as the text report into a spreadsheet
// for users who import the daily summary into a workbook.
//
// SHEET STRUCTURE ("Summary"):
//
//   | Section              | Item    | Unit    | Quantity |
//   |----------------------|---------|---------|----------|
//   | Orders In-Restaurant | Hummous | dishes  | 0        |
//   | ...                  | ...     | ...     | ...      |
//   | Orders Takeaway      | Water   | bottles | 0        |
//   |                      |         |         |          |
//   | Orders In-Restaurant | Total   | orders  | 1        |
//   | Orders Takeaway      | Total   | orders  | 1        |
//   | Total orders         |         |         | 2        |
//
// =============================================================================

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

// SheetName is the name of the worksheet holding the summary.
const SheetName = "Summary"

// xlsxHeader is the first row of the sheet.
var xlsxHeader = []interface{}{"Section", "Item", "Unit", "Quantity"}

// WriteXLSX writes counts to a new workbook at path, replacing any existing
// file. Missing parent directories are created.
//
// RETURNS:
//   - The absolute path of the written workbook.
//   - An error if the workbook cannot be built or saved.
func WriteXLSX(counts summary.Counts, path string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with "Sheet1"; rename it instead of adding a sheet.
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := xlsxRows(counts)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(absPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return absPath, nil
}

// xlsxRows builds every sheet row, header first.
func xlsxRows(counts summary.Counts) [][]interface{} {
	rows := [][]interface{}{xlsxHeader}

	for _, kind := range types.Kinds {
		for _, item := range types.Menu {
			rows = append(rows, []interface{}{
				kind.Title(), item.DisplayName(), item.Unit(), counts.Quantity(kind, item),
			})
		}
	}

	// Blank spacer row before the totals.
	rows = append(rows, []interface{}{})

	for _, kind := range types.Kinds {
		rows = append(rows, []interface{}{kind.Title(), "Total", "orders", counts.Orders(kind)})
	}
	rows = append(rows, []interface{}{"Total orders", "", "", counts.TotalOrders})

	return rows
}
