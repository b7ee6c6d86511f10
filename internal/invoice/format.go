package invoice

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

// Format renders an Order as invoice text. Parsing the output with the same
// source yields an equal Order.
func Format(order types.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "OrderType: %s\n", order.Kind)
	fmt.Fprintf(&b, "Item: %s\n", order.Item)
	fmt.Fprintf(&b, "Quantity: %d\n", order.Quantity)
	fmt.Fprintf(&b, "PricePerItem: %s\n", formatPrice(order.PricePerItem))
	fmt.Fprintf(&b, "TotalPrice: %s\n", formatPrice(order.TotalPrice))
	return b.String()
}

// formatPrice prints at least two decimal places without dropping precision.
func formatPrice(d decimal.Decimal) string {
	places := max(-d.Exponent(), 2)
	return d.StringFixed(places)
}
