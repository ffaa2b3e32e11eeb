package entity

import (
	"time"
)

// Granularity controls time bucket size for the sales series.
type Granularity int

const (
	GranularityDay   Granularity = 1
	GranularityWeek  Granularity = 2
	GranularityMonth Granularity = 3
)

// ParseGranularity maps a config value to a Granularity. Unknown values
// fall back to month.
func ParseGranularity(s string) Granularity {
	switch s {
	case "day", "daily":
		return GranularityDay
	case "week", "weekly":
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

// Window is a half-open interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// ProductCounts is the catalog size now and the part of it that already
// existed before a reference instant.
type ProductCounts struct {
	Total  int `db:"total"`
	Before int `db:"before_since"`
}

// Period describes the windows a snapshot was computed over.
type Period struct {
	LookbackDays int       `json:"lookbackDays"`
	Current      Window    `json:"current"`
	Previous     Window    `json:"previous"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// Overview is the headline block of the dashboard.
type Overview struct {
	CurrentRevenue  int64   `json:"currentRevenue"`
	RevenueGrowth   float64 `json:"revenueGrowth"`
	CurrentOrders   int     `json:"currentOrders"`
	OrderGrowth     float64 `json:"orderGrowth"`
	ProductCount    int     `json:"productCount"`
	ProductGrowth   float64 `json:"productGrowth"`
	ActiveCustomers int     `json:"activeCustomers"`
	CustomerGrowth  float64 `json:"customerGrowth"`
}

type SalesPoint struct {
	Label       string    `json:"label"`
	BucketStart time.Time `json:"bucketStart"`
	Revenue     int64     `json:"revenue"`
	Orders      int       `json:"orders"`
}

type ProductMetric struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Revenue   int64  `json:"revenue"`
	Quantity  int    `json:"quantity"`
}

type RecentOrder struct {
	ID        int         `json:"id"`
	Customer  string      `json:"customer"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Performance struct {
	AverageOrderValue int64   `json:"averageOrderValue"`
	ConversionRate    float64 `json:"conversionRate"`
	CustomerRetention float64 `json:"customerRetention"`
	InventoryTurnover float64 `json:"inventoryTurnover"`
}

// DataQualityWarning describes a record skipped during reduction.
type DataQualityWarning struct {
	OrderID   int    `json:"orderId"`
	ProductID int    `json:"productId,omitempty"`
	Reason    string `json:"reason"`
}

// Snapshot is one computed analytics view. It is built once and not
// modified afterwards.
type Snapshot struct {
	Period       Period               `json:"period"`
	Overview     Overview             `json:"overview"`
	SalesData    []SalesPoint         `json:"salesData"`
	TopProducts  []ProductMetric      `json:"topProducts"`
	RecentOrders []RecentOrder        `json:"recentOrders"`
	Performance  Performance          `json:"performance"`
	Warnings     []DataQualityWarning `json:"warnings"`
}

// SnapshotRequest selects what to compute.
type SnapshotRequest struct {
	LookbackDays     int
	Now              time.Time
	ExcludeCancelled bool
}
