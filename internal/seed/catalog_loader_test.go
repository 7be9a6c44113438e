package seed_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"pharmatrack/internal/seed"
	"pharmatrack/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLoadCatalogSkipsBadRows(t *testing.T) {
	csv := "name,supplier,category,plu,price,quantity,expiry_date\n" +
		"Paracetamol 500mg,MediSupply Co,Analgesic,PCM-500,4.50,120,2027-06-01\n" +
		"Broken Row,Supplier,Category,PLU,not-a-price,10,2027-06-01\n" +
		"Amoxicillin 250mg,PharmaDirect,Antibiotic,AMX-250,12.00,45,2027-01-15\n"

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	st := store.New(testLogger(), nil)
	rows, err := seed.LoadCatalog(st, path, testLogger())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if rows != 2 {
		t.Errorf("rows = %d, expected 2", rows)
	}

	meds := st.Medicines()
	if len(meds) != 2 {
		t.Fatalf("catalog has %d entries, expected 2", len(meds))
	}
	if meds[0].Name != "Paracetamol 500mg" || meds[1].Name != "Amoxicillin 250mg" {
		t.Errorf("unexpected catalog order: %s, %s", meds[0].Name, meds[1].Name)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	st := store.New(testLogger(), nil)
	if _, err := seed.LoadCatalog(st, filepath.Join(t.TempDir(), "nope.csv"), testLogger()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSeedDemoPopulatesCatalog(t *testing.T) {
	st := store.New(testLogger(), nil)
	rows := seed.SeedDemo(st, testLogger())
	if rows == 0 {
		t.Fatal("demo seed added nothing")
	}
	if len(st.Medicines()) != rows {
		t.Errorf("catalog size %d != seeded rows %d", len(st.Medicines()), rows)
	}
}
