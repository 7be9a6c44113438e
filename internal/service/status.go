package service

import (
	"math"
	"time"

	"pharmatrack/internal/model"
)

const (
	// LowStockThreshold is the fixed stock count below which a medicine is
	// flagged as low stock.
	LowStockThreshold = 5

	// DefaultNearExpiryDays is the forward-looking window for near-expiry
	// highlighting.
	DefaultNearExpiryDays = 90
)

type Status string

const (
	StatusExpired  Status = "Expired"
	StatusLowStock Status = "Low Stock"
	StatusInStock  Status = "In Stock"
)

// IsExpired reports whether expiry is strictly before now. The reference time
// is threaded explicitly so callers control the clock.
func IsExpired(expiry, now time.Time) bool {
	return expiry.Before(now)
}

// IsLowStock reports whether quantity is below threshold.
func IsLowStock(quantity, threshold int) bool {
	return quantity < threshold
}

// IsNearExpiry reports whether expiry falls within the next days days. The day
// difference is the ceiling of (expiry - now) in whole days; a medicine
// expiring today or in the past is not near expiry.
func IsNearExpiry(expiry, now time.Time, days int) bool {
	d := daysUntil(expiry, now)
	return d > 0 && d <= days
}

func daysUntil(expiry, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}

// MedicineStatus derives the status label for one medicine. Expired takes
// precedence over Low Stock; this is a strict priority order, not flags.
func MedicineStatus(m model.Medicine, now time.Time, lowStockThreshold int) Status {
	switch {
	case IsExpired(m.ExpiryDate, now):
		return StatusExpired
	case IsLowStock(m.Quantity, lowStockThreshold):
		return StatusLowStock
	default:
		return StatusInStock
	}
}
