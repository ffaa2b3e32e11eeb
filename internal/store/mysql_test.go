package store

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-analytics/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to MYSQL_TEST_DSN and clears all analytics tables.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, q := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM products",
		"DELETE FROM users",
		"SET FOREIGN_KEY_CHECKS = 1",
	} {
		_, err = db.db.ExecContext(ctx, q)
		require.NoError(t, err)
	}
	return db
}

func exec(t *testing.T, db *MYSQLStore, query string, args ...any) int {
	res, err := db.db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return int(id)
}

func TestOrderRowToEntity(t *testing.T) {
	created := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	guest := orderRow{
		ID:          1,
		CreatedAt:   created,
		TotalAmount: 500,
		Status:      "shipped",
		GuestName:   sql.NullString{String: "Ann", Valid: true},
	}.toEntity()
	assert.Nil(t, guest.Customer)
	assert.Equal(t, entity.OrderStatusShipped, guest.Status)
	assert.Equal(t, "Ann", guest.CustomerLabel())

	registered := orderRow{
		ID:        2,
		CreatedAt: created,
		UserID:    sql.NullInt64{Int64: 9, Valid: true},
		UserEmail: sql.NullString{String: "jane@example.com", Valid: true},
	}.toEntity()
	require.NotNil(t, registered.Customer)
	assert.Equal(t, 9, registered.Customer.ID)
	assert.Equal(t, "jane@example.com", registered.CustomerLabel())
}

func TestGroupItems(t *testing.T) {
	grouped := groupItems([]orderItemRow{
		{OrderID: 1, ProductID: 10, UnitPrice: 100, Quantity: 1},
		{OrderID: 2, ProductID: 11, UnitPrice: 200, Quantity: 2, ProductName: sql.NullString{String: "Cap", Valid: true}},
		{OrderID: 1, ProductID: 12, UnitPrice: 300, Quantity: 3},
	})
	require.Len(t, grouped[1], 2)
	assert.Equal(t, 10, grouped[1][0].ProductID)
	assert.Equal(t, 12, grouped[1][1].ProductID)
	assert.Equal(t, "Cap", grouped[2][0].ProductName)
	assert.Empty(t, grouped[3])
}

func TestMakeQueryExpandsInList(t *testing.T) {
	q, args, err := MakeQuery("SELECT id FROM orders WHERE id IN (:ids) AND status = :status", map[string]any{
		"ids":    []int{1, 2, 3},
		"status": "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM orders WHERE id IN (?, ?, ?) AND status = ?", q)
	assert.Equal(t, []any{1, 2, 3, "pending"}, args)
}

func TestOrders(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	march := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	userID := exec(t, db, "INSERT INTO users (name, email, role) VALUES (?, ?, 'customer')", "Jane", "jane@example.com")
	exec(t, db, "INSERT INTO users (name, email, role) VALUES (?, ?, 'admin')", "Root", "root@example.com")

	o1 := exec(t, db, "INSERT INTO orders (user_id, total_amount, status, created_at) VALUES (?, ?, 'delivered', ?)",
		userID, 10000, march)
	o2 := exec(t, db, "INSERT INTO orders (guest_name, total_amount, status, created_at) VALUES (?, ?, 'pending', ?)",
		"Ann", 3000, march.Add(24*time.Hour))
	exec(t, db, "INSERT INTO orders (total_amount, status, created_at) VALUES (?, 'pending', ?)",
		700, march.AddDate(0, -2, 0))

	exec(t, db, "INSERT INTO order_items (order_id, product_id, unit_price, quantity, product_name, brand_name) VALUES (?, 1, 5000, 2, 'Tee', 'GRBPWR')", o1)
	exec(t, db, "INSERT INTO order_items (order_id, product_id, unit_price, quantity, product_name) VALUES (?, 2, 3000, 1, 'Cap')", o2)

	orders, err := db.Orders().GetOrdersInRange(ctx, march, march.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, o1, orders[0].ID)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "Jane", orders[0].Customer.Name)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, int64(10000), orders[0].Items[0].Revenue())
	assert.Nil(t, orders[1].Customer)
	assert.Equal(t, "Ann", orders[1].GuestName)

	// end is exclusive
	orders, err = db.Orders().GetOrdersInRange(ctx, march.Add(-time.Hour), march)
	require.NoError(t, err)
	assert.Empty(t, orders)

	recent, err := db.Orders().GetRecentOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, o2, recent[0].ID)
	assert.Equal(t, o1, recent[1].ID)
}

func TestCatalog(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	since := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	exec(t, db, "INSERT INTO products (name, stock, created_at) VALUES ('a', 10, ?)", since.AddDate(0, -1, 0))
	exec(t, db, "INSERT INTO products (name, stock, created_at) VALUES ('b', 5, ?)", since.AddDate(0, 0, 3))
	exec(t, db, "INSERT INTO users (name, role) VALUES ('c1', 'customer'), ('c2', 'customer'), ('a1', 'admin')")

	pc, err := db.Catalog().GetProductCounts(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductCounts{Total: 2, Before: 1}, *pc)

	n, err := db.Catalog().CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stock, err := db.Catalog().GetTotalStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(15), stock)

	assert.NoError(t, db.Ping(ctx))
}
