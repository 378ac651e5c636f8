package order

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/eventengine"
	"github.com/luxloom/storefront-backend/internal/eventengine/event"
	"github.com/luxloom/storefront-backend/internal/features/catalog"
	"github.com/shopspring/decimal"
)

type Storer interface {
	createOne(ctx context.Context, newOrder *CreateOrderRequest, quantity uint) (*Order, error)
	findAll(ctx context.Context) ([]*Order, error)
	findByID(ctx context.Context, orderID uuid.UUID) (*Order, error)
	deleteOne(ctx context.Context, orderID uuid.UUID) error
}

type itemGetter interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*catalog.Item, error)
}

type service struct {
	store       Storer
	catalog     itemGetter
	eventEngine eventengine.RegisterPublisher
	deliveryFee decimal.Decimal

	// session-scoped id->item lookup for the detail view, no eviction;
	// cleared when the process restarts
	itemCacheMu sync.RWMutex
	itemCache   map[uuid.UUID]*catalog.Item
}

func NewService(
	store Storer,
	catalogService itemGetter,
	eventEngine eventengine.RegisterPublisher,
	deliveryFee decimal.Decimal,
) *service {
	eventEngine.RegisterEvents(
		event.OrderCreatedEventName,
		event.OrderDeletedEventName,
	)

	return &service{
		store:       store,
		catalog:     catalogService,
		eventEngine: eventEngine,
		deliveryFee: deliveryFee,
		itemCache:   make(map[uuid.UUID]*catalog.Item),
	}
}

func (s *service) createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error) {
	newOrder.Name = strings.TrimSpace(newOrder.Name)
	newOrder.Hostel = strings.TrimSpace(newOrder.Hostel)
	newOrder.PhoneNumber = strings.TrimSpace(newOrder.PhoneNumber)

	quantity := ClampQuantity(newOrder.Quantity)

	// the ordered item must exist before we take the order
	if _, err := s.lookupItem(ctx, newOrder.ProductID); err != nil {
		return nil, err
	}

	order, err := s.store.createOne(ctx, newOrder, quantity)
	if err != nil {
		return nil, err
	}

	createdEvent := &event.OrderCreatedEvent{
		OrderID:   order.OrderID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
	}
	s.eventEngine.Publish(
		&event.Event{
			Name:    createdEvent.GetEventName(),
			Payload: createdEvent,
		},
	)

	return order, nil
}

func (s *service) listOrders(ctx context.Context, search string) ([]*Order, error) {
	orders, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	return FilterBySearch(orders, search), nil
}

func (s *service) getOrderDetail(ctx context.Context, orderID uuid.UUID) (*OrderDetailDTO, error) {
	order, err := s.store.findByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	item, err := s.lookupItem(ctx, order.ProductID)
	if err != nil {
		return nil, err
	}

	quote := NewQuote(
		decimal.NewFromFloat(item.Price),
		order.Quantity,
		s.deliveryFee,
	)

	return &OrderDetailDTO{
		Order:   order,
		Item:    item,
		Summary: quote.Summary(),
	}, nil
}

func (s *service) deleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := s.store.deleteOne(ctx, orderID); err != nil {
		return err
	}

	deletedEvent := &event.OrderDeletedEvent{
		OrderID: orderID,
	}
	s.eventEngine.Publish(
		&event.Event{
			Name:    deletedEvent.GetEventName(),
			Payload: deletedEvent,
		},
	)

	return nil
}

// lookupItem fetches the catalog item for an order, caching hits so repeated
// detail views of orders for the same item skip the catalog round trip.
func (s *service) lookupItem(ctx context.Context, itemID uuid.UUID) (*catalog.Item, error) {
	s.itemCacheMu.RLock()
	item, ok := s.itemCache[itemID]
	s.itemCacheMu.RUnlock()
	if ok {
		return item, nil
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	s.itemCacheMu.Lock()
	s.itemCache[itemID] = item
	s.itemCacheMu.Unlock()

	return item, nil
}
