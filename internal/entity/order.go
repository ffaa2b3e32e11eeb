package entity

import (
	"time"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// GuestLabel is shown for orders that carry no name or email at all.
const GuestLabel = "Guest"

// CustomerRef is the registered user an order belongs to.
type CustomerRef struct {
	ID    int
	Name  string
	Email string
}

// Order is an order record as read for analytics. Amounts are in the
// smallest currency unit.
type Order struct {
	ID          int
	CreatedAt   time.Time
	TotalAmount int64
	Status      OrderStatus
	// Customer is nil for guest checkouts.
	Customer   *CustomerRef
	GuestName  string
	GuestEmail string
	Items      []OrderItem
}

// OrderItem is a purchased line. ProductName and BrandName are snapshots
// taken at purchase time and may differ from the current catalog.
type OrderItem struct {
	ProductID   int
	UnitPrice   int64
	Quantity    int
	ProductName string
	BrandName   string
}

// Revenue returns unit price times quantity.
func (oi OrderItem) Revenue() int64 {
	return oi.UnitPrice * int64(oi.Quantity)
}

// CustomerLabel returns the first non-empty of: registered name, registered
// email, guest name, guest email.
func (o *Order) CustomerLabel() string {
	candidates := make([]string, 0, 4)
	if o.Customer != nil {
		candidates = append(candidates, o.Customer.Name, o.Customer.Email)
	}
	candidates = append(candidates, o.GuestName, o.GuestEmail)
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return GuestLabel
}

// CustomerID returns the registered customer id and whether there is one.
func (o *Order) CustomerID() (int, bool) {
	if o.Customer == nil || o.Customer.ID == 0 {
		return 0, false
	}
	return o.Customer.ID, true
}
