package analytics

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	gerr "github.com/jekabolt/grbpwr-analytics/internal/errors"
	"github.com/jekabolt/grbpwr-analytics/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// fetched holds the raw reads for one snapshot.
type fetched struct {
	current   []entity.Order
	previous  []entity.Order
	recent    []entity.Order
	products  entity.ProductCounts
	customers int
	stock     int64
}

// fetch issues all reads concurrently. The first failure cancels the rest
// and is returned as DataUnavailable; no partial result is returned.
func (e *Engine) fetch(ctx context.Context, previous, current entity.Window) (*fetched, error) {
	var f fetched
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		f.current, err = e.orders.GetOrdersInRange(ctx, current.Start, current.End)
		return unavailable("current orders", err)
	})

	g.Go(func() error {
		var err error
		f.previous, err = e.orders.GetOrdersInRange(ctx, previous.Start, previous.End)
		return unavailable("previous orders", err)
	})

	g.Go(func() error {
		var err error
		f.recent, err = e.orders.GetRecentOrders(ctx, e.c.RecentOrders)
		return unavailable("recent orders", err)
	})

	g.Go(func() error {
		pc, err := e.catalog.GetProductCounts(ctx, current.Start)
		if err != nil {
			return unavailable("product counts", err)
		}
		if pc != nil {
			f.products = *pc
		}
		return nil
	})

	g.Go(func() error {
		var err error
		f.customers, err = e.catalog.CountCustomers(ctx)
		return unavailable("customer count", err)
	})

	g.Go(func() error {
		var err error
		f.stock, err = e.catalog.GetTotalStock(ctx)
		return unavailable("total stock", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &f, nil
}

func unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	metrics.FetchErrors.WithLabelValues(op).Inc()
	return gerr.DataUnavailable("fetch", fmt.Errorf("can't get %s: %w", op, err))
}
