package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
)

type catalogStore struct {
	*MYSQLStore
}

// Catalog returns an object implementing catalog interface
func (ms *MYSQLStore) Catalog() dependency.Catalog {
	return &catalogStore{
		MYSQLStore: ms,
	}
}

// GetProductCounts counts the catalog and the part of it created before since.
func (cs *catalogStore) GetProductCounts(ctx context.Context, since time.Time) (*entity.ProductCounts, error) {
	ctx, cancel := cs.withTimeout(ctx)
	defer cancel()

	query := `
	SELECT
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN created_at < :since THEN 1 ELSE 0 END), 0) AS before_since
	FROM products`

	pc, err := QueryNamedOne[entity.ProductCounts](ctx, cs.DB(), query, map[string]any{
		"since": since.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get product counts: %w", err)
	}
	return &pc, nil
}

func (cs *catalogStore) CountCustomers(ctx context.Context) (int, error) {
	ctx, cancel := cs.withTimeout(ctx)
	defer cancel()

	query := `SELECT COUNT(*) FROM users WHERE role = :role`
	n, err := QueryScalarNamed[int](ctx, cs.DB(), query, map[string]any{
		"role": roleCustomer,
	})
	if err != nil {
		return 0, fmt.Errorf("can't count customers: %w", err)
	}
	return n, nil
}

func (cs *catalogStore) GetTotalStock(ctx context.Context) (int64, error) {
	ctx, cancel := cs.withTimeout(ctx)
	defer cancel()

	query := `SELECT COALESCE(SUM(stock), 0) FROM products`
	n, err := QueryScalarNamed[int64](ctx, cs.DB(), query, nil)
	if err != nil {
		return 0, fmt.Errorf("can't get total stock: %w", err)
	}
	return n, nil
}

const roleCustomer = "customer"
