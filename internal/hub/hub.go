package hub

import "sync"

type EventType string

const (
	EventMedicineAdded   EventType = "medicine_added"
	EventMedicineUpdated EventType = "medicine_updated"
	EventMedicineDeleted EventType = "medicine_deleted"
	EventSaleCommitted   EventType = "sale_committed"
)

// Event describes one applied catalog or sales mutation.
type Event struct {
	Type       EventType `json:"type"`
	MedicineID string    `json:"medicine_id,omitempty"`
	SaleID     string    `json:"sale_id,omitempty"`
	Message    string    `json:"message"`
}

// Hub fans mutation events out to subscribers (the presentation layer, which
// re-renders after each mutation). Delivery is synchronous and in
// subscription order: Publish returns only after every subscriber has run, so
// no subscriber ever observes a partially applied mutation.
type Hub struct {
	mu          sync.Mutex
	subscribers []func(Event)
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Subscribe(fn func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, fn)
}

func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	subs := make([]func(Event), len(h.subscribers))
	copy(subs, h.subscribers)
	h.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}
