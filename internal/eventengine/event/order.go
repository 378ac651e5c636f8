package event

import "github.com/google/uuid"

const (
	OrderCreatedEventName EventName = "order.created"
	OrderDeletedEventName EventName = "order.deleted"
)

type OrderCreatedEvent struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  uint
}

func (e *OrderCreatedEvent) GetEventName() EventName {
	return OrderCreatedEventName
}

type OrderDeletedEvent struct {
	OrderID uuid.UUID
}

func (e *OrderDeletedEvent) GetEventName() EventName {
	return OrderDeletedEventName
}
