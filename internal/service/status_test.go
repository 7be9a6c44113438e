package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
	"pharmatrack/internal/service"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestIsLowStockBoundary(t *testing.T) {
	cases := []struct {
		quantity int
		expected bool
	}{
		{0, true},
		{4, true},
		{5, false},
		{6, false},
	}
	for _, tc := range cases {
		if got := service.IsLowStock(tc.quantity, service.LowStockThreshold); got != tc.expected {
			t.Errorf("IsLowStock(%d) = %t, expected %t", tc.quantity, got, tc.expected)
		}
	}
}

func TestIsExpired(t *testing.T) {
	cases := []struct {
		name     string
		expiry   time.Time
		expected bool
	}{
		{"yesterday", testNow.AddDate(0, 0, -1), true},
		{"one second ago", testNow.Add(-time.Second), true},
		{"exactly now", testNow, false},
		{"tomorrow", testNow.AddDate(0, 0, 1), false},
	}
	for _, tc := range cases {
		if got := service.IsExpired(tc.expiry, testNow); got != tc.expected {
			t.Errorf("%s: IsExpired = %t, expected %t", tc.name, got, tc.expected)
		}
	}
}

func TestIsNearExpiry(t *testing.T) {
	cases := []struct {
		name     string
		expiry   time.Time
		days     int
		expected bool
	}{
		{"in the past", testNow.AddDate(0, 0, -5), 90, false},
		{"exactly now", testNow, 90, false},
		{"one hour ahead", testNow.Add(time.Hour), 90, true},
		{"exactly 90 days ahead", testNow.Add(90 * 24 * time.Hour), 90, true},
		{"91 days ahead", testNow.Add(91 * 24 * time.Hour), 90, false},
		{"partial day rounds up", testNow.Add(89*24*time.Hour + time.Hour), 90, true},
		{"custom window hit", testNow.Add(30 * 24 * time.Hour), 30, true},
		{"custom window miss", testNow.Add(31 * 24 * time.Hour), 30, false},
	}
	for _, tc := range cases {
		if got := service.IsNearExpiry(tc.expiry, testNow, tc.days); got != tc.expected {
			t.Errorf("%s: IsNearExpiry = %t, expected %t", tc.name, got, tc.expected)
		}
	}
}

func TestMedicineStatusPriority(t *testing.T) {
	cases := []struct {
		name     string
		medicine model.Medicine
		expected service.Status
	}{
		{
			"expired wins over low stock",
			model.Medicine{Quantity: 2, ExpiryDate: testNow.AddDate(0, 0, -1)},
			service.StatusExpired,
		},
		{
			"expired regardless of quantity",
			model.Medicine{Quantity: 100, ExpiryDate: testNow.AddDate(0, 0, -1)},
			service.StatusExpired,
		},
		{
			"low stock when not expired",
			model.Medicine{Quantity: 4, ExpiryDate: testNow.AddDate(1, 0, 0)},
			service.StatusLowStock,
		},
		{
			"in stock otherwise",
			model.Medicine{Quantity: 50, ExpiryDate: testNow.AddDate(1, 0, 0), Price: decimal.NewFromInt(1)},
			service.StatusInStock,
		},
	}
	for _, tc := range cases {
		if got := service.MedicineStatus(tc.medicine, testNow, service.LowStockThreshold); got != tc.expected {
			t.Errorf("%s: MedicineStatus = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}
