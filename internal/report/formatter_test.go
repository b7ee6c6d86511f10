package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/daily-sales-summary/internal/report"
	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

const twoOrderReport = `Daily Sales Summary:
--------------------
Total orders: 2

Orders In-Restaurant: 1
Hummous (dishes): 0
Fool (dishes): 0
Falafel (portions): 3
Tea (cups): 0
Cola (cans): 0
Water (bottles): 0


Orders Takeaway: 1
Hummous (dishes): 0
Fool (dishes): 0
Falafel (portions): 0
Tea (cups): 2
Cola (cans): 0
Water (bottles): 0
`

const emptyReport = `Daily Sales Summary:
--------------------
Total orders: 0

Orders In-Restaurant: 0
Hummous (dishes): 0
Fool (dishes): 0
Falafel (portions): 0
Tea (cups): 0
Cola (cans): 0
Water (bottles): 0


Orders Takeaway: 0
Hummous (dishes): 0
Fool (dishes): 0
Falafel (portions): 0
Tea (cups): 0
Cola (cans): 0
Water (bottles): 0
`

func twoOrderCounts() summary.Counts {
	return summary.Aggregate([]types.Order{
		{Kind: types.KindIn, Item: types.Falafel, Quantity: 3},
		{Kind: types.KindOut, Item: types.Tea, Quantity: 2},
	})
}

func TestFormat_TwoOrders(t *testing.T) {
	assert.Equal(t, twoOrderReport, report.Format(twoOrderCounts()))
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, emptyReport, report.Format(summary.Counts{}))
}

func TestFormat_Idempotent(t *testing.T) {
	counts := twoOrderCounts()
	assert.Equal(t, report.Format(counts), report.Format(counts))
}
