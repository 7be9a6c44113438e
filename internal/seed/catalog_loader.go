package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"pharmatrack/internal/model"
	"pharmatrack/internal/store"
)

// LoadCatalog ingests a CSV file into the catalog, skipping malformed rows.
// Expected columns: name, supplier, category, plu, price, quantity,
// expiry_date (YYYY-MM-DD), with a header row.
func LoadCatalog(st *store.Store, csvPath string, logger *logrus.Logger) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return 0, err
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.WithError(err).Warn("unable to read catalog row")
			continue
		}
		if len(record) < 7 {
			continue
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[4]))
		if err != nil {
			logger.WithField("row", record[0]).Warn("unable to parse price")
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(record[5]))
		if err != nil {
			logger.WithField("row", record[0]).Warn("unable to parse quantity")
			continue
		}
		expiry, err := time.Parse("2006-01-02", strings.TrimSpace(record[6]))
		if err != nil {
			logger.WithField("row", record[0]).Warn("unable to parse expiry date")
			continue
		}

		_, err = st.AddMedicine(model.MedicineInput{
			Name:       strings.TrimSpace(record[0]),
			Supplier:   strings.TrimSpace(record[1]),
			Category:   strings.TrimSpace(record[2]),
			PLU:        strings.TrimSpace(record[3]),
			Price:      price,
			Quantity:   quantity,
			ExpiryDate: expiry,
		})
		if err != nil {
			logger.WithError(err).WithField("row", record[0]).Warn("unable to add medicine")
			continue
		}
		rows++
	}

	logger.WithField("rows", rows).Info("seeded medicine catalog")
	return rows, nil
}

// DemoCatalog is the built-in catalog used when no seed file is configured.
// Expiry dates are relative to now so the demo always shows a mix of expired,
// near-expiry, and healthy stock.
func DemoCatalog(now time.Time) []model.MedicineInput {
	return []model.MedicineInput{
		{Name: "Paracetamol 500mg", Supplier: "MediSupply Co", Category: "Analgesic", PLU: "PCM-500", Price: decimal.NewFromFloat(4.50), Quantity: 120, ExpiryDate: now.AddDate(1, 0, 0)},
		{Name: "Amoxicillin 250mg", Supplier: "PharmaDirect", Category: "Antibiotic", PLU: "AMX-250", Price: decimal.NewFromFloat(12.00), Quantity: 45, ExpiryDate: now.AddDate(0, 8, 0)},
		{Name: "Ibuprofen 200mg", Supplier: "MediSupply Co", Category: "Analgesic", PLU: "IBU-200", Price: decimal.NewFromFloat(6.25), Quantity: 3, ExpiryDate: now.AddDate(0, 4, 0)},
		{Name: "Cetirizine 10mg", Supplier: "AllerCare Ltd", Category: "Antihistamine", PLU: "CTZ-010", Price: decimal.NewFromFloat(8.75), Quantity: 60, ExpiryDate: now.AddDate(0, 0, 45)},
		{Name: "Metformin 850mg", Supplier: "PharmaDirect", Category: "Antidiabetic", PLU: "MTF-850", Price: decimal.NewFromFloat(15.40), Quantity: 80, ExpiryDate: now.AddDate(2, 0, 0)},
		{Name: "Cough Syrup 100ml", Supplier: "HerbalWell", Category: "Respiratory", PLU: "CSY-100", Price: decimal.NewFromFloat(9.90), Quantity: 25, ExpiryDate: now.AddDate(0, 0, -10)},
		{Name: "Vitamin C 1000mg", Supplier: "HerbalWell", Category: "Supplement", PLU: "VTC-1000", Price: decimal.NewFromFloat(11.20), Quantity: 200, ExpiryDate: now.AddDate(1, 6, 0)},
		{Name: "Omeprazole 20mg", Supplier: "GastroMed", Category: "Antacid", PLU: "OMP-020", Price: decimal.NewFromFloat(13.60), Quantity: 2, ExpiryDate: now.AddDate(0, 0, -3)},
	}
}

// SeedDemo loads the built-in demo catalog.
func SeedDemo(st *store.Store, logger *logrus.Logger) int {
	rows := 0
	for _, in := range DemoCatalog(time.Now()) {
		if _, err := st.AddMedicine(in); err != nil {
			logger.WithError(err).WithField("name", in.Name).Warn("unable to add demo medicine")
			continue
		}
		rows++
	}
	logger.WithField("rows", rows).Info("seeded demo catalog")
	return rows
}
