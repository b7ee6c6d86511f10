// =============================================================================
// Daily Sales Summary - Shared Types
// =============================================================================
//
// This package contains the order model shared across the pipeline. Types
// defined here are used by:
//   - invoice     (produces Orders)
//   - validation  (checks raw fields and builds Orders)
//   - summary     (folds Orders into counts)
//   - report      (renders counts per kind and menu item)
//
// MENU:
//   The menu is fixed. MenuItem and OrderKind are closed enumerations and all
//   lookup tables below are read-only after package initialization.
//
// =============================================================================

package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ORDER KIND
// =============================================================================

// OrderKind classifies an order as dine-in or takeaway.
type OrderKind int

const (
	// KindIn is a dine-in order ("in").
	KindIn OrderKind = iota

	// KindOut is a takeaway order ("out").
	KindOut

	// KindCount is the number of order kinds. It sizes per-kind arrays.
	KindCount = 2
)

// Kinds lists every order kind in report order.
var Kinds = [KindCount]OrderKind{KindIn, KindOut}

// String returns the invoice spelling of the kind ("in" or "out").
func (k OrderKind) String() string {
	switch k {
	case KindIn:
		return "in"
	case KindOut:
		return "out"
	default:
		return "unknown"
	}
}

// Title returns the report section heading for the kind.
func (k OrderKind) Title() string {
	switch k {
	case KindIn:
		return "Orders In-Restaurant"
	case KindOut:
		return "Orders Takeaway"
	default:
		return "Orders"
	}
}

// ParseOrderKind maps an invoice OrderType value to an OrderKind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOrderKind(s string) (OrderKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in":
		return KindIn, true
	case "out":
		return KindOut, true
	default:
		return 0, false
	}
}

// =============================================================================
// MENU ITEMS
// =============================================================================

// MenuItem is one of the fixed orderable products.
type MenuItem int

const (
	Hummous MenuItem = iota
	Fool
	Falafel
	Tea
	Cola
	Water

	// MenuItemCount is the number of menu items. It sizes per-item arrays.
	MenuItemCount = 6
)

// Menu lists every menu item in report display order.
var Menu = [MenuItemCount]MenuItem{Hummous, Fool, Falafel, Tea, Cola, Water}

// menuNames holds the invoice spelling of each item, indexed by MenuItem.
var menuNames = [MenuItemCount]string{"hummous", "fool", "falafel", "tea", "cola", "water"}

// menuUnits holds the display unit of each item, indexed by MenuItem.
var menuUnits = [MenuItemCount]string{"dishes", "dishes", "portions", "cups", "cans", "bottles"}

// String returns the lower-case invoice spelling of the item.
func (m MenuItem) String() string {
	if !m.valid() {
		return "unknown"
	}
	return menuNames[m]
}

// Unit returns the unit label shown next to the item in the report.
func (m MenuItem) Unit() string {
	if !m.valid() {
		return ""
	}
	return menuUnits[m]
}

// DisplayName returns the capitalized item name, e.g. "Falafel".
func (m MenuItem) DisplayName() string {
	name := m.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (m MenuItem) valid() bool {
	return m >= 0 && int(m) < MenuItemCount
}

// ParseMenuItem maps an invoice Item value to a MenuItem.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMenuItem(s string) (MenuItem, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range menuNames {
		if n == name {
			return MenuItem(i), true
		}
	}
	return 0, false
}

// =============================================================================
// ORDER
// =============================================================================

// PriceTolerance is the largest accepted difference between TotalPrice and
// Quantity * PricePerItem before an invoice is flagged.
var PriceTolerance = decimal.RequireFromString("0.01")

// Order represents one validated invoice.
// Orders are immutable once built by the validator.
type Order struct {
	// Kind is dine-in or takeaway.
	Kind OrderKind

	// Item is the ordered menu item.
	Item MenuItem

	// Quantity is the number of units ordered. No sign or range constraint.
	Quantity int

	// PricePerItem is the unit price as written on the invoice.
	PricePerItem decimal.Decimal

	// TotalPrice is the invoice total as written. It is never recomputed.
	TotalPrice decimal.Decimal

	// Source is the originating file name, used in diagnostics.
	Source string
}

// ExpectedTotal returns Quantity * PricePerItem.
func (o Order) ExpectedTotal() decimal.Decimal {
	return o.PricePerItem.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// TotalMismatch reports whether TotalPrice differs from ExpectedTotal by more
// than PriceTolerance. A difference of exactly the tolerance is accepted.
func (o Order) TotalMismatch() bool {
	return o.ExpectedTotal().Sub(o.TotalPrice).Abs().GreaterThan(PriceTolerance)
}
