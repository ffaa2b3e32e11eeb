package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/dependency"
	"github.com/jekabolt/grbpwr-analytics/internal/entity"
)

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

const selectOrders = `
	SELECT
		o.id,
		o.created_at,
		o.total_amount,
		o.status,
		o.user_id,
		u.name AS user_name,
		u.email AS user_email,
		o.guest_name,
		o.guest_email
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id`

type orderRow struct {
	ID          int            `db:"id"`
	CreatedAt   time.Time      `db:"created_at"`
	TotalAmount int64          `db:"total_amount"`
	Status      string         `db:"status"`
	UserID      sql.NullInt64  `db:"user_id"`
	UserName    sql.NullString `db:"user_name"`
	UserEmail   sql.NullString `db:"user_email"`
	GuestName   sql.NullString `db:"guest_name"`
	GuestEmail  sql.NullString `db:"guest_email"`
}

type orderItemRow struct {
	OrderID     int            `db:"order_id"`
	ProductID   int            `db:"product_id"`
	UnitPrice   int64          `db:"unit_price"`
	Quantity    int            `db:"quantity"`
	ProductName sql.NullString `db:"product_name"`
	BrandName   sql.NullString `db:"brand_name"`
}

func (r orderRow) toEntity() entity.Order {
	o := entity.Order{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		TotalAmount: r.TotalAmount,
		Status:      entity.OrderStatus(r.Status),
		GuestName:   r.GuestName.String,
		GuestEmail:  r.GuestEmail.String,
	}
	if r.UserID.Valid {
		o.Customer = &entity.CustomerRef{
			ID:    int(r.UserID.Int64),
			Name:  r.UserName.String,
			Email: r.UserEmail.String,
		}
	}
	return o
}

func (r orderItemRow) toEntity() entity.OrderItem {
	return entity.OrderItem{
		ProductID:   r.ProductID,
		UnitPrice:   r.UnitPrice,
		Quantity:    r.Quantity,
		ProductName: r.ProductName.String,
		BrandName:   r.BrandName.String,
	}
}

// GetOrdersInRange returns orders created in [from, to) with their items.
func (s *orderStore) GetOrdersInRange(ctx context.Context, from, to time.Time) ([]entity.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := selectOrders + `
	WHERE o.created_at >= :from AND o.created_at < :to
	ORDER BY o.created_at, o.id`

	rows, err := QueryListNamed[orderRow](ctx, s.DB(), query, map[string]any{
		"from": from.UTC(),
		"to":   to.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't get orders in range: %w", err)
	}
	return s.withItems(ctx, rows)
}

// GetRecentOrders returns the newest orders regardless of period.
func (s *orderStore) GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		return []entity.Order{}, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := selectOrders + `
	ORDER BY o.created_at DESC, o.id DESC
	LIMIT :limit`

	rows, err := QueryListNamed[orderRow](ctx, s.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	return s.withItems(ctx, rows)
}

func (s *orderStore) withItems(ctx context.Context, rows []orderRow) ([]entity.Order, error) {
	orders := make([]entity.Order, 0, len(rows))
	orderIds := make([]int, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, r.toEntity())
		orderIds = append(orderIds, r.ID)
	}

	items, err := getOrdersItems(ctx, s.DB(), orderIds...)
	if err != nil {
		return nil, fmt.Errorf("can't get order items: %w", err)
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

// getOrdersItems fetches line items for orderIds grouped by order id.
func getOrdersItems(ctx context.Context, conn dependency.DB, orderIds ...int) (map[int][]entity.OrderItem, error) {
	if len(orderIds) == 0 {
		return map[int][]entity.OrderItem{}, nil
	}

	query := `
	SELECT
		oi.order_id,
		oi.product_id,
		oi.unit_price,
		oi.quantity,
		oi.product_name,
		oi.brand_name
	FROM order_items oi
	WHERE oi.order_id IN (:orderIds)
	ORDER BY oi.order_id, oi.id`

	rows, err := QueryListNamed[orderItemRow](ctx, conn, query, map[string]any{
		"orderIds": orderIds,
	})
	if err != nil {
		return nil, err
	}
	return groupItems(rows), nil
}

func groupItems(rows []orderItemRow) map[int][]entity.OrderItem {
	out := make(map[int][]entity.OrderItem)
	for _, r := range rows {
		out[r.OrderID] = append(out[r.OrderID], r.toEntity())
	}
	return out
}
