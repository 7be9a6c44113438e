package model

import "github.com/shopspring/decimal"

// DashboardMetrics is a derived snapshot recomputed on demand from the
// current medicine and sale collections. It holds no independent state.
type DashboardMetrics struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	LowStockItems       int             `json:"low_stock_items"`
	ExpiredItems        int             `json:"expired_items"`
}
