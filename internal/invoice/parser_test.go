package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/daily-sales-summary/internal/invoice"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
	"github.com/ginjaninja78/daily-sales-summary/internal/validation"
)

const falafelInvoice = `OrderType: in
Item: falafel
Quantity: 3
PricePerItem: 2.50
TotalPrice: 7.50
`

func TestParseFields(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{
			name: "keys lower-cased and values trimmed",
			text: "  OrderType  :   In  \nITEM:tea",
			want: map[string]string{"ordertype": "In", "item": "tea"},
		},
		{
			name: "split on first separator only",
			text: "Note: pick up at 12:30",
			want: map[string]string{"note": "pick up at 12:30"},
		},
		{
			name: "lines without separator ignored",
			text: "Invoice #42\n\nQuantity: 2\nthank you",
			want: map[string]string{"quantity": "2"},
		},
		{
			name: "last occurrence wins",
			text: "Item: tea\nitem: cola",
			want: map[string]string{"item": "cola"},
		},
		{
			name: "crlf and bare cr line endings",
			text: "Item: tea\r\nQuantity: 1\rTotalPrice: 1.00",
			want: map[string]string{"item": "tea", "quantity": "1", "totalprice": "1.00"},
		},
		{
			name: "empty value kept",
			text: "Item:",
			want: map[string]string{"item": ""},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.ParseFields(tt.text))
		})
	}
}

func TestParse_ValidInvoice(t *testing.T) {
	order, err := invoice.NewParser(nil).Parse(falafelInvoice, "001.txt")
	require.NoError(t, err)

	assert.Equal(t, types.KindIn, order.Kind)
	assert.Equal(t, types.Falafel, order.Item)
	assert.Equal(t, 3, order.Quantity)
	assert.True(t, order.PricePerItem.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("7.50")))
	assert.Equal(t, "001.txt", order.Source)
}

func TestParse_KeysCaseInsensitiveAnyOrder(t *testing.T) {
	text := "totalprice: 2.00\nPRICEPERITEM: 1.00\nquantity: 2\nITEM: TEA\norderTYPE: OUT\n"

	order, err := invoice.NewParser(nil).Parse(text, "002.txt")
	require.NoError(t, err)
	assert.Equal(t, types.KindOut, order.Kind)
	assert.Equal(t, types.Tea, order.Item)
	assert.Equal(t, 2, order.Quantity)
}

func TestParse_RoundTrip(t *testing.T) {
	orders := []types.Order{
		{Kind: types.KindIn, Item: types.Hummous, Quantity: 1, PricePerItem: decimal.RequireFromString("3.5"), TotalPrice: decimal.RequireFromString("3.5")},
		{Kind: types.KindOut, Item: types.Water, Quantity: 12, PricePerItem: decimal.RequireFromString("0.755"), TotalPrice: decimal.RequireFromString("9.06")},
		{Kind: types.KindOut, Item: types.Cola, Quantity: -2, PricePerItem: decimal.RequireFromString("1.50"), TotalPrice: decimal.RequireFromString("-3.00")},
	}

	p := invoice.NewParser(nil)
	for _, want := range orders {
		t.Run(want.Item.String(), func(t *testing.T) {
			got, err := p.Parse(invoice.Format(want), "rt.txt")
			require.NoError(t, err)
			assert.Equal(t, want.Kind, got.Kind)
			assert.Equal(t, want.Item, got.Item)
			assert.Equal(t, want.Quantity, got.Quantity)
			assert.True(t, want.PricePerItem.Equal(got.PricePerItem), "price per item %s != %s", want.PricePerItem, got.PricePerItem)
			assert.True(t, want.TotalPrice.Equal(got.TotalPrice), "total %s != %s", want.TotalPrice, got.TotalPrice)
		})
	}
}

func TestParse_MissingQuantityAndTotal(t *testing.T) {
	text := "OrderType: in\nItem: falafel\nPricePerItem: 2.50\n"

	_, err := invoice.NewParser(nil).Parse(text, "003.txt")

	var missing *validation.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"quantity", "totalprice"}, missing.Fields)
}

func TestParse_InvalidEnums(t *testing.T) {
	_, err := invoice.NewParser(nil).Parse(
		"OrderType: dine-in\nItem: falafel\nQuantity: 1\nPricePerItem: 1\nTotalPrice: 1\n", "a.txt")
	var kindErr *validation.InvalidOrderTypeError
	assert.ErrorAs(t, err, &kindErr)

	_, err = invoice.NewParser(nil).Parse(
		"OrderType: in\nItem: pizza\nQuantity: 1\nPricePerItem: 1\nTotalPrice: 1\n", "b.txt")
	var itemErr *validation.InvalidItemError
	assert.ErrorAs(t, err, &itemErr)
}

func TestParse_ToleranceBoundary(t *testing.T) {
	tests := []struct {
		total    string
		wantWarn bool
	}{
		{"6.02", true},
		{"6.01", false},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			text := "OrderType: in\nItem: fool\nQuantity: 2\nPricePerItem: 3.00\nTotalPrice: " + tt.total + "\n"

			order, err := invoice.NewParser(logger).Parse(text, "fool.txt")
			require.NoError(t, err)
			require.NotNil(t, order)

			if tt.wantWarn {
				require.Len(t, hook.Entries, 1)
				assert.Contains(t, hook.LastEntry().Message, "fool.txt")
			} else {
				assert.Empty(t, hook.Entries)
			}
		})
	}
}
