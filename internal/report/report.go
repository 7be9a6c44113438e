package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
	"pharmatrack/internal/service"
)

type SortField string

const (
	SortByName     SortField = "name"
	SortByPrice    SortField = "price"
	SortByQuantity SortField = "quantity"
	SortByExpiry   SortField = "expiry"
)

// SearchMedicines filters a catalog snapshot by a case-insensitive match over
// name, supplier, category, and PLU. Pure: the input slice is never modified.
func SearchMedicines(meds []model.Medicine, query string) []model.Medicine {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Medicine, 0, len(meds))
	for _, m := range meds {
		if q == "" || matches(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m model.Medicine, q string) bool {
	for _, field := range []string{m.Name, m.Supplier, m.Category, m.PLU} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// SortMedicines returns a sorted copy of the snapshot. Unknown fields fall
// back to name order.
func SortMedicines(meds []model.Medicine, field SortField, asc bool) []model.Medicine {
	out := make([]model.Medicine, len(meds))
	copy(out, meds)

	less := func(a, b model.Medicine) bool {
		switch field {
		case SortByPrice:
			return a.Price.LessThan(b.Price)
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByExpiry:
			return a.ExpiryDate.Before(b.ExpiryDate)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// RowStatus is what a table row needs to render one medicine: the status
// label plus a near-expiry flag for highlighting.
type RowStatus struct {
	Label      service.Status
	NearExpiry bool
}

func MedicineRowStatus(m model.Medicine, now time.Time, lowStockThreshold, nearExpiryDays int) RowStatus {
	return RowStatus{
		Label:      service.MedicineStatus(m, now, lowStockThreshold),
		NearExpiry: service.IsNearExpiry(m.ExpiryDate, now, nearExpiryDays),
	}
}

// CategoryValue is one slice of the inventory-value-by-category chart.
type CategoryValue struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// CategoryValues aggregates inventory value per category, largest first.
// Medicines with an empty category are grouped under "Uncategorized".
func CategoryValues(meds []model.Medicine) []CategoryValue {
	totals := make(map[string]decimal.Decimal)
	for _, m := range meds {
		cat := strings.TrimSpace(m.Category)
		if cat == "" {
			cat = "Uncategorized"
		}
		value := m.Price.Mul(decimal.NewFromInt(int64(m.Quantity)))
		totals[cat] = totals[cat].Add(value)
	}

	out := make([]CategoryValue, 0, len(totals))
	for cat, value := range totals {
		out = append(out, CategoryValue{Category: cat, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value.Equal(out[j].Value) {
			return out[i].Category < out[j].Category
		}
		return out[i].Value.GreaterThan(out[j].Value)
	})
	return out
}

// DailySales is one bar of the sales-over-time chart.
type DailySales struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SalesByDay sums sale totals per calendar day over the window ending today,
// oldest day first. Days without sales appear with a zero total so the chart
// axis stays continuous.
func SalesByDay(sales []model.Sale, days int, now time.Time) []DailySales {
	if days < 1 {
		days = 1
	}

	totals := make(map[string]decimal.Decimal, days)
	start := now.AddDate(0, 0, -(days - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	for _, s := range sales {
		if s.DateTime.Before(startDay) || s.DateTime.After(now) {
			continue
		}
		key := s.DateTime.Format("2006-01-02")
		totals[key] = totals[key].Add(s.TotalAmount)
	}

	out := make([]DailySales, 0, days)
	for i := 0; i < days; i++ {
		key := startDay.AddDate(0, 0, i).Format("2006-01-02")
		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, DailySales{Date: key, Total: total})
	}
	return out
}
