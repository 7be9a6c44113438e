package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pharmatrack/internal/hub"
	"pharmatrack/internal/model"
	"pharmatrack/internal/service"
	"pharmatrack/pkg/validator"
)

// Sentinel errors surfaced by store operations. The sale errors are the
// domain layer's, re-exported so callers only need this package.
var (
	ErrNotFound          = service.ErrNotFound
	ErrInsufficientStock = service.ErrInsufficientStock
	ErrInvalidQuantity   = service.ErrInvalidQuantity
	ErrInvalidInput      = errors.New("invalid input")
)

// Store owns the catalog and sales history for one session. All mutation is
// funneled through its methods; each mutation runs to completion under the
// lock, so a reader never observes a partially applied update. Committing a
// sale records the sale and decrements stock as one operation.
type Store struct {
	mu        sync.Mutex
	log       *logrus.Logger
	events    *hub.Hub
	now       func() time.Time
	medicines []model.Medicine // insertion order
	sales     []model.Sale     // most recent first
}

func New(logger *logrus.Logger, events *hub.Hub) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		log:    logger,
		events: events,
		now:    time.Now,
	}
}

// AddMedicine creates a catalog entry with a fresh id.
func (s *Store) AddMedicine(in model.MedicineInput) (model.Medicine, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return model.Medicine{}, fmt.Errorf("%w: %s", ErrInvalidInput, validator.FirstError(errs))
	}

	s.mu.Lock()
	now := s.now()
	med := model.Medicine{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Supplier:   in.Supplier,
		Category:   in.Category,
		PLU:        in.PLU,
		Price:      in.Price,
		Quantity:   in.Quantity,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.medicines = append(s.medicines, med)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"id": med.ID, "name": med.Name}).Info("medicine added")
	s.publish(hub.Event{
		Type:       hub.EventMedicineAdded,
		MedicineID: med.ID,
		Message:    fmt.Sprintf("added medicine '%s'", med.Name),
	})
	return med, nil
}

// UpdateMedicine replaces every field except the id.
func (s *Store) UpdateMedicine(id string, in model.MedicineInput) (model.Medicine, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return model.Medicine{}, fmt.Errorf("%w: %s", ErrInvalidInput, validator.FirstError(errs))
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Medicine{}, ErrNotFound
	}
	med := s.medicines[idx]
	med.Name = in.Name
	med.Supplier = in.Supplier
	med.Category = in.Category
	med.PLU = in.PLU
	med.Price = in.Price
	med.Quantity = in.Quantity
	med.ExpiryDate = in.ExpiryDate
	med.UpdatedAt = s.now()
	s.medicines[idx] = med
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"id": med.ID, "name": med.Name}).Info("medicine updated")
	s.publish(hub.Event{
		Type:       hub.EventMedicineUpdated,
		MedicineID: med.ID,
		Message:    fmt.Sprintf("updated medicine '%s'", med.Name),
	})
	return med, nil
}

// DeleteMedicine removes the entry immediately and unconditionally. Past
// sales referencing it keep their captured name and price.
func (s *Store) DeleteMedicine(id string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	name := s.medicines[idx].Name
	s.medicines = append(s.medicines[:idx], s.medicines[idx+1:]...)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"id": id, "name": name}).Info("medicine deleted")
	s.publish(hub.Event{
		Type:       hub.EventMedicineDeleted,
		MedicineID: id,
		Message:    fmt.Sprintf("deleted medicine '%s'", name),
	})
	return nil
}

// CommitSale validates the request against current stock and, on success,
// prepends the sale to history and decrements the medicine's quantity as a
// single operation. A failure leaves both collections untouched.
func (s *Store) CommitSale(req model.SaleRequest) (model.Sale, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.Sale{}, fmt.Errorf("%w: %s", ErrInvalidInput, validator.FirstError(errs))
	}

	s.mu.Lock()
	idx := s.indexOf(req.MedicineID)
	if idx < 0 {
		s.mu.Unlock()
		return model.Sale{}, ErrNotFound
	}
	med := s.medicines[idx]

	now := s.now()
	sale, err := service.BuildSale(req, med, "sale-"+uuid.NewString(), now)
	if err != nil {
		s.mu.Unlock()
		return model.Sale{}, err
	}

	med.Quantity -= sale.Quantity
	med.UpdatedAt = now
	s.medicines[idx] = med
	s.sales = append([]model.Sale{sale}, s.sales...)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"sale_id":  sale.ID,
		"medicine": sale.MedicineName,
		"quantity": sale.Quantity,
		"total":    sale.TotalAmount.String(),
	}).Info("sale committed")
	s.publish(hub.Event{
		Type:       hub.EventSaleCommitted,
		MedicineID: med.ID,
		SaleID:     sale.ID,
		Message:    fmt.Sprintf("sold %d x '%s'", sale.Quantity, sale.MedicineName),
	})
	return sale, nil
}

// Medicine returns a copy of one catalog entry.
func (s *Store) Medicine(id string) (model.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Medicine{}, ErrNotFound
	}
	return s.medicines[idx], nil
}

// Medicines returns the catalog snapshot in insertion order.
func (s *Store) Medicines() []model.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Medicine, len(s.medicines))
	copy(out, s.medicines)
	return out
}

// Sales returns the history snapshot, most recent first.
func (s *Store) Sales() []model.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Metrics recomputes the dashboard summary from the current collections.
func (s *Store) Metrics() model.DashboardMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return service.CalculateMetrics(s.medicines, s.sales, s.now())
}

func (s *Store) indexOf(id string) int {
	for i := range s.medicines {
		if s.medicines[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) publish(e hub.Event) {
	if s.events != nil {
		s.events.Publish(e)
	}
}
