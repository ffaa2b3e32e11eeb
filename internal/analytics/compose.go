package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// composeInput is everything the composer needs; it holds no references
// back into the fetch layer.
type composeInput struct {
	period      entity.Period
	current     *reduction
	previous    *reduction
	products    entity.ProductCounts
	customers   int
	stock       int64
	recent      []entity.Order
	granularity entity.Granularity
	topN        int
	recentN     int
}

func compose(in composeInput) *entity.Snapshot {
	cur, prev := in.current, in.previous

	s := &entity.Snapshot{
		Period: in.period,
		Overview: entity.Overview{
			CurrentRevenue:  cur.revenue,
			RevenueGrowth:   growthPct(cur.revenue, prev.revenue),
			CurrentOrders:   cur.orders,
			OrderGrowth:     growthPct(int64(cur.orders), int64(prev.orders)),
			ProductCount:    in.products.Total,
			ProductGrowth:   growthPct(int64(in.products.Total), int64(in.products.Before)),
			ActiveCustomers: cur.activeCustomers(),
			CustomerGrowth:  growthPct(int64(cur.activeCustomers()), int64(prev.activeCustomers())),
		},
		SalesData:    salesSeries(cur, in.granularity),
		TopProducts:  topProducts(cur, in.topN),
		RecentOrders: recentOrders(in.recent, in.recentN),
		Performance: entity.Performance{
			AverageOrderValue: averageOrderValue(cur.revenue, cur.orders),
			ConversionRate:    ratioPct(int64(cur.orders), int64(in.customers)),
			CustomerRetention: ratioPct(int64(cur.repeatCustomers()), int64(cur.activeCustomers())),
			InventoryTurnover: inventoryTurnover(cur.unitsSold, in.stock),
		},
		Warnings: make([]entity.DataQualityWarning, 0, len(cur.warnings)+len(prev.warnings)),
	}
	s.Warnings = append(s.Warnings, cur.warnings...)
	s.Warnings = append(s.Warnings, prev.warnings...)
	return s
}

// growthPct is (current-previous)/previous*100 rounded to one decimal,
// half away from zero. A zero previous value yields 0.
func growthPct(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	c, p := decimal.NewFromInt(current), decimal.NewFromInt(previous)
	f, _ := c.Sub(p).Div(p).Mul(hundred).Round(1).Float64()
	return f
}

// ratioPct is num/den*100 rounded to one decimal; 0 when den is 0.
func ratioPct(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(num).Div(decimal.NewFromInt(den)).Mul(hundred).Round(1).Float64()
	return f
}

func averageOrderValue(revenue int64, orders int) int64 {
	if orders == 0 {
		return 0
	}
	return decimal.NewFromInt(revenue).Div(decimal.NewFromInt(int64(orders))).Round(0).IntPart()
}

func inventoryTurnover(unitsSold, stock int64) float64 {
	if stock == 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(unitsSold).Div(decimal.NewFromInt(stock)).Round(2).Float64()
	return f
}

// topProducts ranks by revenue descending. The sort is stable over
// first-seen order, so equal revenue keeps input order.
func topProducts(red *reduction, n int) []entity.ProductMetric {
	accs := red.accumulators()
	slices.SortStableFunc(accs, func(a, b *productAccumulator) int {
		switch {
		case a.revenue > b.revenue:
			return -1
		case a.revenue < b.revenue:
			return 1
		}
		return 0
	})
	if n >= 0 && len(accs) > n {
		accs = accs[:n]
	}
	out := make([]entity.ProductMetric, 0, len(accs))
	for _, a := range accs {
		out = append(out, entity.ProductMetric{
			ProductID: a.productID,
			Name:      a.name,
			Brand:     a.brand,
			Revenue:   a.revenue,
			Quantity:  a.quantity,
		})
	}
	return out
}

func salesSeries(red *reduction, g entity.Granularity) []entity.SalesPoint {
	buckets := red.sortedBuckets()
	out := make([]entity.SalesPoint, 0, len(buckets))
	if len(buckets) == 0 {
		return out
	}
	multiYear := buckets[0].start.Year() != buckets[len(buckets)-1].start.Year()
	for _, b := range buckets {
		out = append(out, entity.SalesPoint{
			Label:       bucketLabel(b.start, g, multiYear),
			BucketStart: b.start,
			Revenue:     b.revenue,
			Orders:      b.orders,
		})
	}
	return out
}

func bucketLabel(start time.Time, g entity.Granularity, multiYear bool) string {
	switch {
	case g != entity.GranularityMonth && multiYear:
		return start.Format("Jan 02, 2006")
	case g != entity.GranularityMonth:
		return start.Format("Jan 02")
	case multiYear:
		return start.Format("Jan 2006")
	default:
		return start.Format("Jan")
	}
}

// recentOrders returns up to n orders newest first.
func recentOrders(orders []entity.Order, n int) []entity.RecentOrder {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]entity.RecentOrder, 0, len(sorted))
	for i := range sorted {
		o := &sorted[i]
		out = append(out, entity.RecentOrder{
			ID:        o.ID,
			Customer:  o.CustomerLabel(),
			Total:     o.TotalAmount,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return out
}
