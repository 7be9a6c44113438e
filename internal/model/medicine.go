package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is one catalog entry. ID is assigned by the store and is stable
// for the entry's lifetime; every other field is replaceable via an edit.
type Medicine struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Supplier   string          `json:"supplier"`
	Category   string          `json:"category"`
	PLU        string          `json:"plu"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	ExpiryDate time.Time       `json:"expiry_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MedicineInput carries the editable fields for add and edit operations.
// Quantity and Price must be non-negative; the store rejects anything else.
type MedicineInput struct {
	Name       string          `json:"name" validate:"required"`
	Supplier   string          `json:"supplier"`
	Category   string          `json:"category"`
	PLU        string          `json:"plu"`
	Price      decimal.Decimal `json:"price" validate:"decimal_gte0"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	ExpiryDate time.Time       `json:"expiry_date" validate:"required"`
}
