package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --name Orders --name Catalog --name Snapshotter --output=./mocks
type (
	Orders interface {
		// GetOrdersInRange returns orders placed in [from, to) with their items.
		GetOrdersInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error)
		// GetRecentOrders returns the newest orders system-wide, newest first.
		GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
	}

	Catalog interface {
		// GetProductCounts returns the catalog size and how many products existed before since.
		GetProductCounts(ctx context.Context, since time.Time) (*entity.ProductCounts, error)
		// CountCustomers returns the number of users with the customer role.
		CountCustomers(ctx context.Context) (int, error)
		// GetTotalStock returns stock summed across the catalog.
		GetTotalStock(ctx context.Context) (int64, error)
	}

	Repository interface {
		Orders() Orders
		Catalog() Catalog
		Ping(ctx context.Context) error
		Close()
	}

	Snapshotter interface {
		Snapshot(ctx context.Context, req entity.SnapshotRequest) (*entity.Snapshot, error)
	}

	DB interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
