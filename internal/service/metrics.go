package service

import (
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
)

// CalculateMetrics reduces the full catalog and sales history into the
// dashboard summary. Pure: deterministic given the two collections and now,
// and independent of their ordering.
//
// Expired and out-of-stock medicines still count toward inventory value. An
// expired medicine is reported only under ExpiredItems, never double-counted
// as low stock.
func CalculateMetrics(medicines []model.Medicine, sales []model.Sale, now time.Time) model.DashboardMetrics {
	metrics := model.DashboardMetrics{
		TotalInventoryValue: decimal.Zero,
		TotalSales:          decimal.Zero,
	}

	for _, m := range medicines {
		value := m.Price.Mul(decimal.NewFromInt(int64(m.Quantity)))
		metrics.TotalInventoryValue = metrics.TotalInventoryValue.Add(value)

		if IsExpired(m.ExpiryDate, now) {
			metrics.ExpiredItems++
		} else if IsLowStock(m.Quantity, LowStockThreshold) {
			metrics.LowStockItems++
		}
	}

	for _, s := range sales {
		metrics.TotalSales = metrics.TotalSales.Add(s.TotalAmount)
	}

	return metrics
}
