package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
)

var (
	// ErrNotFound means the referenced medicine id does not exist in the
	// catalog at validation time.
	ErrNotFound = errors.New("medicine not found")

	// ErrInsufficientStock means the requested quantity exceeds the
	// medicine's current stock.
	ErrInsufficientStock = errors.New("insufficient stock remaining")

	// ErrInvalidQuantity means the requested quantity is zero or negative.
	ErrInvalidQuantity = errors.New("sale quantity must be positive")
)

// ValidateSaleRequest checks a proposed sale against the resolved medicine.
// A sale that exactly exhausts the stock is allowed.
func ValidateSaleRequest(req model.SaleRequest, med model.Medicine) error {
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if req.Quantity > med.Quantity {
		return ErrInsufficientStock
	}
	return nil
}

// BuildSale validates the request and constructs the immutable sale record.
// MedicineName and Price are snapshots of the resolved medicine at this
// instant; TotalAmount is Price * Quantity. The caller supplies the fresh id
// and timestamp, and must apply the matching stock decrement atomically with
// recording the sale.
func BuildSale(req model.SaleRequest, med model.Medicine, id string, now time.Time) (model.Sale, error) {
	if err := ValidateSaleRequest(req, med); err != nil {
		return model.Sale{}, err
	}

	return model.Sale{
		ID:           id,
		CustomerName: req.CustomerName,
		MedicineID:   med.ID,
		MedicineName: med.Name,
		Price:        med.Price,
		Quantity:     req.Quantity,
		TotalAmount:  med.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		DateTime:     now,
	}, nil
}
