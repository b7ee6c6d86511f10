// =============================================================================
// Daily Sales Summary - Report Formatter
// =============================================================================
//
// This module renders aggregated counts into the fixed-layout text report.
//
// REPORT STRUCTURE:
//
//   Daily Sales Summary:
//   --------------------
//   Total orders: 2
//                                          <- blank line
//   Orders In-Restaurant: 1
//   Hummous (dishes): 0
//   Fool (dishes): 0
//   Falafel (portions): 3
//   Tea (cups): 0
//   Cola (cans): 0
//   Water (bottles): 0
//                                          <- two blank lines
//
//   Orders Takeaway: 1
//   ... same item lines for takeaway ...
//
// Items are always listed in menu display order, including items with a
// zero count. The text ends with a single newline.
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

const (
	// Title is the first line of the report.
	Title = "Daily Sales Summary:"

	// Rule is the separator line under the title.
	Rule = "--------------------"
)

// =============================================================================
// FORMATTING FUNCTIONS
// =============================================================================

// Format renders counts as report text. The output depends only on counts.
func Format(counts summary.Counts) string {
	var buffer strings.Builder

	buffer.WriteString(Title + "\n")
	buffer.WriteString(Rule + "\n")
	buffer.WriteString(fmt.Sprintf("Total orders: %d\n", counts.TotalOrders))
	buffer.WriteString("\n")

	for i, kind := range types.Kinds {
		if i > 0 {
			buffer.WriteString("\n\n")
		}
		writeSection(&buffer, counts, kind)
	}

	return buffer.String()
}

// writeSection writes the heading and item lines of one order kind.
// Every line, including the last, ends with a newline.
func writeSection(buffer *strings.Builder, counts summary.Counts, kind types.OrderKind) {
	buffer.WriteString(fmt.Sprintf("%s: %d\n", kind.Title(), counts.Orders(kind)))

	for _, item := range types.Menu {
		buffer.WriteString(fmt.Sprintf("%s (%s): %d\n",
			item.DisplayName(),
			item.Unit(),
			counts.Quantity(kind, item),
		))
	}
}
