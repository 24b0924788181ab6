package order

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// Domain events recorded by the Order aggregate. One event is recorded per
// successful transition; rejected operations record nothing. Each event
// carries the before/after states and the causal payload of the transition.

// OrderCreated is recorded when a new order enters the system in Pending status.
type OrderCreated struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e OrderCreated) EventName() string { return "order.created" }

// AggregateID returns the order's identifier.
func (e OrderCreated) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns the time the order was created.
func (e OrderCreated) OccurredAt() time.Time { return e.occurredAt }

// CustomerID returns the owning customer's identifier.
func (e OrderCreated) CustomerID() kernel.UUID { return e.customerID }

// OrderQuoted is recorded when a price quote is attached to a pending order.
type OrderQuoted struct {
	orderID      kernel.UUID
	from         Status
	price        kernel.Money
	deliveryDays int
	occurredAt   time.Time
}

// EventName returns the stable name of the transition.
func (e OrderQuoted) EventName() string { return "order.quoted" }

// AggregateID returns the order's identifier.
func (e OrderQuoted) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns the time the quote was attached.
func (e OrderQuoted) OccurredAt() time.Time { return e.occurredAt }

// From returns the status the order held before the transition.
func (e OrderQuoted) From() Status { return e.from }

// Price returns the quoted price.
func (e OrderQuoted) Price() kernel.Money { return e.price }

// DeliveryDays returns the estimated delivery days attached with the quote.
func (e OrderQuoted) DeliveryDays() int { return e.deliveryDays }

// OrderConfirmed is recorded when the customer accepts a quote.
type OrderConfirmed struct {
	orderID    kernel.UUID
	from       Status
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e OrderConfirmed) EventName() string { return "order.confirmed" }

// AggregateID returns the order's identifier.
func (e OrderConfirmed) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns the time the order was confirmed.
func (e OrderConfirmed) OccurredAt() time.Time { return e.occurredAt }

// From returns the status the order held before the transition.
func (e OrderConfirmed) From() Status { return e.from }

// OrderCancelled is recorded when an order is terminated before guide generation.
type OrderCancelled struct {
	orderID    kernel.UUID
	from       Status
	reason     string
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e OrderCancelled) EventName() string { return "order.cancelled" }

// AggregateID returns the order's identifier.
func (e OrderCancelled) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns the time the order was cancelled.
func (e OrderCancelled) OccurredAt() time.Time { return e.occurredAt }

// From returns the status the order held before cancellation.
func (e OrderCancelled) From() Status { return e.from }

// Reason returns the caller-supplied cancellation reason.
func (e OrderCancelled) Reason() string { return e.reason }

// OrderHandedToLogistics is recorded when a guide is generated for the order
// and physical handling begins.
type OrderHandedToLogistics struct {
	orderID    kernel.UUID
	guideID    kernel.UUID
	from       Status
	occurredAt time.Time
}

// EventName returns the stable name of the transition.
func (e OrderHandedToLogistics) EventName() string { return "order.handed_to_logistics" }

// AggregateID returns the order's identifier.
func (e OrderHandedToLogistics) AggregateID() kernel.UUID { return e.orderID }

// OccurredAt returns the time the guide was attached.
func (e OrderHandedToLogistics) OccurredAt() time.Time { return e.occurredAt }

// From returns the status the order held before the transition.
func (e OrderHandedToLogistics) From() Status { return e.from }

// GuideID returns the identifier of the generated guide.
func (e OrderHandedToLogistics) GuideID() kernel.UUID { return e.guideID }
