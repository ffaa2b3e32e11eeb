package analytics

import (
	"context"
	"sort"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
)

const (
	reasonNegativeTotal    = "negative order total"
	reasonMissingCreatedAt = "missing creation time"
	reasonMissingID        = "missing order id"
	reasonNegativePrice    = "negative unit price"
	reasonBadQuantity      = "non-positive quantity"
	reasonMissingProduct   = "missing product id"
)

// productAccumulator collects revenue and units for one product.
type productAccumulator struct {
	productID int
	name      string
	brand     string
	revenue   int64
	quantity  int
}

type bucket struct {
	start   time.Time
	revenue int64
	orders  int
}

// reduction is the folded form of one order set.
type reduction struct {
	revenue   int64
	orders    int
	unitsSold int64

	buckets map[int64]*bucket

	products map[int]*productAccumulator
	// productOrder is first-seen order of product ids.
	productOrder []int

	// ordersByCustomer counts orders per registered customer.
	ordersByCustomer map[int]int

	warnings []entity.DataQualityWarning
}

type reducer struct {
	loc              *time.Location
	granularity      entity.Granularity
	excludeCancelled bool
}

func newReduction() *reduction {
	return &reduction{
		buckets:          make(map[int64]*bucket),
		products:         make(map[int]*productAccumulator),
		ordersByCustomer: make(map[int]int),
	}
}

// reduce folds orders. Invalid orders and line items are skipped and
// recorded as warnings; reduction never fails.
func (r *reducer) reduce(ctx context.Context, orders []entity.Order) *reduction {
	red := newReduction()
	for i := range orders {
		o := &orders[i]
		if reason := validateOrder(o); reason != "" {
			red.warn(ctx, entity.DataQualityWarning{OrderID: o.ID, Reason: reason})
			continue
		}
		if r.excludeCancelled && o.Status == entity.OrderStatusCancelled {
			continue
		}

		red.revenue += o.TotalAmount
		red.orders++

		start := bucketStart(o.CreatedAt.In(r.loc), r.granularity)
		b, ok := red.buckets[start.Unix()]
		if !ok {
			b = &bucket{start: start}
			red.buckets[start.Unix()] = b
		}
		b.revenue += o.TotalAmount
		b.orders++

		if id, ok := o.CustomerID(); ok {
			red.ordersByCustomer[id]++
		}

		for _, item := range o.Items {
			if reason := validateItem(item); reason != "" {
				red.warn(ctx, entity.DataQualityWarning{OrderID: o.ID, ProductID: item.ProductID, Reason: reason})
				continue
			}
			red.addItem(item)
		}
	}
	return red
}

func (red *reduction) addItem(item entity.OrderItem) {
	acc, ok := red.products[item.ProductID]
	if !ok {
		acc = &productAccumulator{
			productID: item.ProductID,
			name:      item.ProductName,
			brand:     item.BrandName,
		}
		red.products[item.ProductID] = acc
		red.productOrder = append(red.productOrder, item.ProductID)
	}
	acc.revenue += item.Revenue()
	acc.quantity += item.Quantity
	red.unitsSold += int64(item.Quantity)
}

func (red *reduction) warn(ctx context.Context, w entity.DataQualityWarning) {
	slog.Default().WarnContext(ctx, "skipping invalid order data",
		slog.Int("order_id", w.OrderID),
		slog.Int("product_id", w.ProductID),
		slog.String("reason", w.Reason),
	)
	red.warnings = append(red.warnings, w)
}

// activeCustomers is the number of distinct registered customers with an order.
func (red *reduction) activeCustomers() int {
	return len(red.ordersByCustomer)
}

// repeatCustomers is the number of customers with two or more orders.
func (red *reduction) repeatCustomers() int {
	n := 0
	for _, c := range red.ordersByCustomer {
		if c > 1 {
			n++
		}
	}
	return n
}

// sortedBuckets returns buckets in chronological order.
func (red *reduction) sortedBuckets() []*bucket {
	out := make([]*bucket, 0, len(red.buckets))
	for _, b := range red.buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].start.Before(out[j].start)
	})
	return out
}

// accumulators returns product accumulators in first-seen order.
func (red *reduction) accumulators() []*productAccumulator {
	out := make([]*productAccumulator, 0, len(red.productOrder))
	for _, id := range red.productOrder {
		out = append(out, red.products[id])
	}
	return out
}

func validateOrder(o *entity.Order) string {
	switch {
	case o.ID == 0:
		return reasonMissingID
	case o.CreatedAt.IsZero():
		return reasonMissingCreatedAt
	case o.TotalAmount < 0:
		return reasonNegativeTotal
	}
	return ""
}

func validateItem(item entity.OrderItem) string {
	switch {
	case item.ProductID == 0:
		return reasonMissingProduct
	case item.UnitPrice < 0:
		return reasonNegativePrice
	case item.Quantity <= 0:
		return reasonBadQuantity
	}
	return ""
}

// bucketStart truncates t to the start of its bucket in t's location.
func bucketStart(t time.Time, g entity.Granularity) time.Time {
	switch g {
	case entity.GranularityDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case entity.GranularityWeek:
		// weeks start on Monday
		offset := (int(t.Weekday()) + 6) % 7
		d := t.AddDate(0, 0, -offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}
