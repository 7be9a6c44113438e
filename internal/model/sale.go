package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable record of one completed transaction. MedicineName and
// Price are point-in-time copies taken when the sale was committed; editing or
// deleting the referenced medicine later never alters a sale.
type Sale struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	MedicineID   string          `json:"medicine_id"`
	MedicineName string          `json:"medicine_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"` // Price * Quantity, fixed at creation
	DateTime     time.Time       `json:"date_time"`
}

// SaleRequest is a proposed sale against the current catalog.
type SaleRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	MedicineID   string `json:"medicine_id" validate:"required"`
	Quantity     int    `json:"quantity"`
}
