package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthPct(t *testing.T) {
	tests := []struct {
		name     string
		cur      int64
		prev     int64
		expected float64
	}{
		{"zero previous", 500, 0, 0},
		{"both zero", 0, 0, 0},
		{"doubled", 200, 100, 100},
		{"dropped to zero", 0, 100, -100},
		{"repeating fraction", 1, 3, -66.7},
		{"half rounds up", 2001, 2000, 0.1},
		{"negative half rounds away from zero", 1999, 2000, -0.1},
		{"half", 15, 10, 50},
		{"twenty percent of a million", 1200000, 1000000, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, growthPct(tt.cur, tt.prev))
		})
	}
}

func TestPerformanceRatios(t *testing.T) {
	assert.Equal(t, 0.0, ratioPct(3, 0))
	assert.Equal(t, 75.0, ratioPct(3, 4))
	assert.Equal(t, 33.3, ratioPct(1, 3))

	assert.Equal(t, int64(0), averageOrderValue(1000, 0))
	assert.Equal(t, int64(6000), averageOrderValue(18000, 3))
	// 1000/3 = 333.33, 2000/3 = 666.67
	assert.Equal(t, int64(333), averageOrderValue(1000, 3))
	assert.Equal(t, int64(667), averageOrderValue(2000, 3))

	assert.Equal(t, 0.0, inventoryTurnover(10, 0))
	assert.Equal(t, 0.1, inventoryTurnover(4, 40))
	assert.Equal(t, 0.33, inventoryTurnover(1, 3))
}

func TestTopProducts(t *testing.T) {
	r := &reducer{loc: time.UTC}
	red := r.reduce(context.Background(), []entity.Order{
		{
			ID: 1, CreatedAt: at(time.March, 1), TotalAmount: 1,
			Items: []entity.OrderItem{
				{ProductID: 10, UnitPrice: 100, Quantity: 1, ProductName: "a"},
				{ProductID: 20, UnitPrice: 300, Quantity: 1, ProductName: "b"},
				{ProductID: 30, UnitPrice: 100, Quantity: 1, ProductName: "c"},
				{ProductID: 40, UnitPrice: 50, Quantity: 1, ProductName: "d"},
			},
		},
	})

	top := topProducts(red, 3)
	require.Len(t, top, 3)
	assert.Equal(t, 20, top[0].ProductID)
	// equal revenue keeps first-seen order
	assert.Equal(t, 10, top[1].ProductID)
	assert.Equal(t, 30, top[2].ProductID)

	assert.Len(t, topProducts(red, 10), 4)
	assert.Empty(t, topProducts(red, 0))
}

func TestBucketLabel(t *testing.T) {
	d := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mar", bucketLabel(d, entity.GranularityMonth, false))
	assert.Equal(t, "Mar 2024", bucketLabel(d, entity.GranularityMonth, true))
	assert.Equal(t, "Mar 04", bucketLabel(d, entity.GranularityDay, false))
	assert.Equal(t, "Mar 04, 2024", bucketLabel(d, entity.GranularityWeek, true))
}

func TestSalesSeriesSpansYears(t *testing.T) {
	r := &reducer{loc: time.UTC, granularity: entity.GranularityMonth}
	red := r.reduce(context.Background(), []entity.Order{
		{ID: 2, CreatedAt: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC), TotalAmount: 20},
		{ID: 1, CreatedAt: time.Date(2023, time.December, 30, 0, 0, 0, 0, time.UTC), TotalAmount: 10},
	})

	series := salesSeries(red, entity.GranularityMonth)
	require.Len(t, series, 2)
	assert.Equal(t, "Dec 2023", series[0].Label)
	assert.Equal(t, int64(10), series[0].Revenue)
	assert.Equal(t, "Jan 2024", series[1].Label)
}

func TestRecentOrders(t *testing.T) {
	orders := []entity.Order{
		{ID: 1, CreatedAt: at(time.March, 1), Customer: &entity.CustomerRef{ID: 1, Email: "a@b.c"}},
		{ID: 2, CreatedAt: at(time.March, 3), GuestName: "Ann", GuestEmail: "ann@x.y"},
		{ID: 3, CreatedAt: at(time.March, 2)},
	}

	recent := recentOrders(orders, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, 2, recent[0].ID)
	assert.Equal(t, "Ann", recent[0].Customer)
	assert.Equal(t, 3, recent[1].ID)
	assert.Equal(t, entity.GuestLabel, recent[1].Customer)

	// input is left untouched
	assert.Equal(t, 1, orders[0].ID)
}

func TestComposeEmpty(t *testing.T) {
	empty := (&reducer{loc: time.UTC}).reduce(context.Background(), nil)
	s := compose(composeInput{
		current:     empty,
		previous:    empty,
		granularity: entity.GranularityMonth,
		topN:        5,
		recentN:     5,
	})

	assert.Zero(t, s.Overview)
	assert.Zero(t, s.Performance)
	assert.NotNil(t, s.SalesData)
	assert.Empty(t, s.SalesData)
	assert.NotNil(t, s.TopProducts)
	assert.NotNil(t, s.RecentOrders)
	assert.NotNil(t, s.Warnings)
}
