package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"pharmatrack/internal/config"
	"pharmatrack/internal/hub"
	"pharmatrack/internal/model"
	"pharmatrack/internal/report"
	"pharmatrack/internal/seed"
	"pharmatrack/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	cfg := config.Load()

	logger := logrus.New()
	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// The shell re-renders after every mutation; here that is a one-line
	// notification per event.
	events := hub.NewHub()
	events.Subscribe(func(e hub.Event) {
		fmt.Printf("  * %s\n", e.Message)
	})

	st := store.New(logger, events)

	if cfg.SeedFile != "" {
		if _, err := seed.LoadCatalog(st, cfg.SeedFile, logger); err != nil {
			logger.WithError(err).Fatal("unable to load seed file")
		}
	} else {
		seed.SeedDemo(st, logger)
	}

	runDemoSession(st, logger)
	renderDashboard(st, cfg)
}

// runDemoSession plays a short point-of-sale session against the seeded
// catalog: a few successful sales, one that exhausts stock exactly, and one
// rejected for insufficient stock.
func runDemoSession(st *store.Store, logger *logrus.Logger) {
	byPLU := make(map[string]model.Medicine)
	for _, m := range st.Medicines() {
		byPLU[m.PLU] = m
	}

	requests := []model.SaleRequest{
		{CustomerName: "Alice Turner", MedicineID: byPLU["PCM-500"].ID, Quantity: 4},
		{CustomerName: "Brian Okafor", MedicineID: byPLU["CTZ-010"].ID, Quantity: 2},
		{CustomerName: "Chen Wei", MedicineID: byPLU["IBU-200"].ID, Quantity: 3},  // exhausts stock
		{CustomerName: "Dana Ilic", MedicineID: byPLU["AMX-250"].ID, Quantity: 99}, // rejected
	}

	for _, req := range requests {
		if _, err := st.CommitSale(req); err != nil {
			if errors.Is(err, store.ErrInsufficientStock) {
				fmt.Printf("  ! sale for %s rejected: %v\n", req.CustomerName, err)
				continue
			}
			logger.WithError(err).Error("sale failed")
		}
	}
}

func renderDashboard(st *store.Store, cfg config.Config) {
	now := time.Now()
	metrics := st.Metrics()

	fmt.Println()
	fmt.Println("=== Dashboard ===")
	fmt.Printf("Inventory value: %s\n", report.FormatAmount(metrics.TotalInventoryValue))
	fmt.Printf("Total sales:     %s\n", report.FormatAmount(metrics.TotalSales))
	fmt.Printf("Low stock items: %d\n", metrics.LowStockItems)
	fmt.Printf("Expired items:   %d\n", metrics.ExpiredItems)

	fmt.Println()
	fmt.Println("=== Catalog ===")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tPLU\tPRICE\tQTY\tEXPIRES\tSTATUS")
	for _, m := range report.SortMedicines(st.Medicines(), report.SortByName, true) {
		status := report.MedicineRowStatus(m, now, cfg.LowStockThreshold, cfg.NearExpiryDays)
		label := string(status.Label)
		if status.NearExpiry {
			label += " (near expiry)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			m.Name, m.Category, m.PLU,
			report.FormatAmount(m.Price), m.Quantity,
			report.FormatDate(m.ExpiryDate), label)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("=== Recent sales ===")
	for _, s := range st.Sales() {
		fmt.Printf("%s  %-14s %3d x %-20s %s\n",
			report.FormatDateTime(s.DateTime), s.CustomerName,
			s.Quantity, s.MedicineName, report.FormatAmount(s.TotalAmount))
	}

	fmt.Println()
	fmt.Println("=== Inventory value by category ===")
	for _, cv := range report.CategoryValues(st.Medicines()) {
		fmt.Printf("%-16s %s\n", cv.Category, report.FormatAmount(cv.Value))
	}

	fmt.Println()
	fmt.Println("=== Sales last 7 days ===")
	for _, day := range report.SalesByDay(st.Sales(), 7, now) {
		fmt.Printf("%s  %s\n", day.Date, report.FormatAmount(day.Total))
	}
}
