// Package summary folds validated orders into the counts shown in the daily
// sales report.
package summary

import "github.com/ginjaninja78/daily-sales-summary/internal/types"

// Counts is the working aggregate of one run.
// The zero value has every count at zero, for every kind and menu item.
// Counts is comparable with ==.
type Counts struct {
	// TotalOrders is the number of orders folded in.
	TotalOrders int

	// ByKind is the number of orders per kind, indexed by types.OrderKind.
	ByKind [types.KindCount]int

	// Quantities is the summed quantity per kind and item, indexed by
	// types.OrderKind then types.MenuItem.
	Quantities [types.KindCount][types.MenuItemCount]int
}

// Aggregate folds orders into a fresh Counts. The result does not depend on
// the order of the slice.
func Aggregate(orders []types.Order) Counts {
	var c Counts
	for _, o := range orders {
		c.Add(o)
	}
	return c
}

// Add folds one order into c.
func (c *Counts) Add(o types.Order) {
	c.TotalOrders++
	c.ByKind[o.Kind]++
	c.Quantities[o.Kind][o.Item] += o.Quantity
}

// Orders returns the number of orders of the given kind.
func (c Counts) Orders(kind types.OrderKind) int {
	return c.ByKind[kind]
}

// Quantity returns the summed quantity of item under kind.
func (c Counts) Quantity(kind types.OrderKind, item types.MenuItem) int {
	return c.Quantities[kind][item]
}
