package summary_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/daily-sales-summary/internal/summary"
	"github.com/ginjaninja78/daily-sales-summary/internal/types"
)

func order(kind types.OrderKind, item types.MenuItem, qty int) types.Order {
	return types.Order{Kind: kind, Item: item, Quantity: qty}
}

func TestAggregate_Empty(t *testing.T) {
	c := summary.Aggregate(nil)

	assert.Equal(t, summary.Counts{}, c)
	assert.Zero(t, c.TotalOrders)
	for _, kind := range types.Kinds {
		assert.Zero(t, c.Orders(kind))
		for _, item := range types.Menu {
			assert.Zero(t, c.Quantity(kind, item))
		}
	}
}

func TestAggregate_Counts(t *testing.T) {
	c := summary.Aggregate([]types.Order{
		order(types.KindIn, types.Falafel, 3),
		order(types.KindOut, types.Tea, 2),
		order(types.KindIn, types.Falafel, 4),
		order(types.KindIn, types.Water, 1),
	})

	assert.Equal(t, 4, c.TotalOrders)
	assert.Equal(t, 3, c.Orders(types.KindIn))
	assert.Equal(t, 1, c.Orders(types.KindOut))
	assert.Equal(t, 7, c.Quantity(types.KindIn, types.Falafel))
	assert.Equal(t, 1, c.Quantity(types.KindIn, types.Water))
	assert.Equal(t, 2, c.Quantity(types.KindOut, types.Tea))
	assert.Zero(t, c.Quantity(types.KindOut, types.Falafel))
	assert.Zero(t, c.Quantity(types.KindIn, types.Tea))
}

func TestAggregate_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	orders := make([]types.Order, 50)
	for i := range orders {
		orders[i] = order(
			types.Kinds[rng.IntN(types.KindCount)],
			types.Menu[rng.IntN(types.MenuItemCount)],
			rng.IntN(10)-2,
		)
	}
	want := summary.Aggregate(orders)

	for i := 0; i < 20; i++ {
		shuffled := append([]types.Order(nil), orders...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, summary.Aggregate(shuffled))
	}
}

func TestCountsAdd_MatchesAggregate(t *testing.T) {
	orders := []types.Order{
		order(types.KindOut, types.Cola, 5),
		order(types.KindIn, types.Hummous, 2),
	}

	var c summary.Counts
	for _, o := range orders {
		c.Add(o)
	}
	assert.Equal(t, summary.Aggregate(orders), c)
}
