package hub_test

import (
	"testing"

	"pharmatrack/internal/hub"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	h := hub.NewHub()

	var order []string
	h.Subscribe(func(e hub.Event) { order = append(order, "first:"+string(e.Type)) })
	h.Subscribe(func(e hub.Event) { order = append(order, "second:"+string(e.Type)) })

	h.Publish(hub.Event{Type: hub.EventSaleCommitted})

	if len(order) != 2 || order[0] != "first:sale_committed" || order[1] != "second:sale_committed" {
		t.Fatalf("unexpected delivery order: %v", order)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	h := hub.NewHub()
	// Must not panic.
	h.Publish(hub.Event{Type: hub.EventMedicineAdded})
}
