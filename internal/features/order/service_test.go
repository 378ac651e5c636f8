package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/eventengine/event"
	"github.com/luxloom/storefront-backend/internal/features/catalog"
	"github.com/luxloom/storefront-backend/internal/servererrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	orders    map[uuid.UUID]*Order
	createErr error
}

func newStubStore(orders ...*Order) *stubStore {
	s := &stubStore{orders: make(map[uuid.UUID]*Order)}
	for _, o := range orders {
		s.orders[o.OrderID] = o
	}
	return s
}

func (s *stubStore) createOne(_ context.Context, newOrder *CreateOrderRequest, quantity uint) (*Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}

	order := &Order{
		OrderID:     uuid.New(),
		Name:        newOrder.Name,
		Hostel:      newOrder.Hostel,
		PhoneNumber: newOrder.PhoneNumber,
		Quantity:    quantity,
		ProductID:   newOrder.ProductID,
		CreatedAt:   time.Now(),
	}
	s.orders[order.OrderID] = order
	return order, nil
}

func (s *stubStore) findAll(_ context.Context) ([]*Order, error) {
	orders := make([]*Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *stubStore) findByID(_ context.Context, orderID uuid.UUID) (*Order, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return nil, servererrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *stubStore) deleteOne(_ context.Context, orderID uuid.UUID) error {
	if _, ok := s.orders[orderID]; !ok {
		return servererrors.ErrOrderNotFound
	}
	delete(s.orders, orderID)
	return nil
}

type stubCatalog struct {
	items     map[uuid.UUID]*catalog.Item
	getCalled int
}

func (s *stubCatalog) GetItem(_ context.Context, itemID uuid.UUID) (*catalog.Item, error) {
	s.getCalled++
	item, ok := s.items[itemID]
	if !ok {
		return nil, servererrors.ErrItemNotFound
	}
	return item, nil
}

type stubEventEngine struct {
	registered []event.EventName
	published  []*event.Event
}

func (s *stubEventEngine) RegisterEvents(eventNames ...event.EventName) {
	s.registered = append(s.registered, eventNames...)
}

func (s *stubEventEngine) Publish(ev *event.Event) error {
	s.published = append(s.published, ev)
	return nil
}

func setupService(store *stubStore, cat *stubCatalog) (*service, *stubEventEngine) {
	engine := &stubEventEngine{}
	svc := NewService(
		store,
		cat,
		engine,
		decimal.RequireFromString("10.00"),
	)
	return svc, engine
}

func TestCreateOrderClampsQuantity(t *testing.T) {
	itemID := uuid.New()
	cat := &stubCatalog{
		items: map[uuid.UUID]*catalog.Item{
			itemID: {ItemID: itemID, Name: "Jollof Rice", Price: 70},
		},
	}
	svc, engine := setupService(newStubStore(), cat)

	order, err := svc.createOrder(
		context.Background(),
		&CreateOrderRequest{
			Name:        "Ama Serwaa",
			Hostel:      "Pentagon Hall",
			PhoneNumber: "0244000000",
			Quantity:    0,
			ProductID:   itemID,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, uint(1), order.Quantity)
	assert.NotEqual(t, uuid.Nil, order.OrderID)

	require.Len(t, engine.published, 1)
	created, ok := engine.published[0].Payload.(*event.OrderCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, order.OrderID, created.OrderID)
}

func TestCreateOrderUnknownItem(t *testing.T) {
	svc, engine := setupService(
		newStubStore(),
		&stubCatalog{items: map[uuid.UUID]*catalog.Item{}},
	)

	_, err := svc.createOrder(
		context.Background(),
		&CreateOrderRequest{
			Name:        "Ama Serwaa",
			Hostel:      "Pentagon Hall",
			PhoneNumber: "0244000000",
			Quantity:    1,
			ProductID:   uuid.New(),
		},
	)

	assert.ErrorIs(t, err, servererrors.ErrItemNotFound)
	assert.Empty(t, engine.published)
}

func TestGetOrderDetail(t *testing.T) {
	itemID := uuid.New()
	orderID := uuid.New()
	cat := &stubCatalog{
		items: map[uuid.UUID]*catalog.Item{
			itemID: {ItemID: itemID, Name: "Jollof Rice", Price: 70},
		},
	}
	store := newStubStore(&Order{
		OrderID:   orderID,
		Name:      "Ama Serwaa",
		Hostel:    "Pentagon Hall",
		Quantity:  1,
		ProductID: itemID,
	})
	svc, _ := setupService(store, cat)

	detail, err := svc.getOrderDetail(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, detail.Order.OrderID)
	assert.Equal(t, "Jollof Rice", detail.Item.Name)
	assert.Equal(t, "70.00", detail.Summary.Subtotal)
	assert.Equal(t, "10.00", detail.Summary.DeliveryFee)
	assert.Equal(t, "80.00", detail.Summary.Total)
}

func TestGetOrderDetailCachesItemLookup(t *testing.T) {
	itemID := uuid.New()
	orderID := uuid.New()
	cat := &stubCatalog{
		items: map[uuid.UUID]*catalog.Item{
			itemID: {ItemID: itemID, Name: "Jollof Rice", Price: 70},
		},
	}
	store := newStubStore(&Order{
		OrderID:   orderID,
		Quantity:  1,
		ProductID: itemID,
	})
	svc, _ := setupService(store, cat)

	_, err := svc.getOrderDetail(context.Background(), orderID)
	require.NoError(t, err)
	_, err = svc.getOrderDetail(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, 1, cat.getCalled)
}

func TestDeleteOrderRemovesExactlyThatOrder(t *testing.T) {
	keep := &Order{OrderID: uuid.New(), Name: "Kofi Mensah", Hostel: "Legon Hall", Quantity: 2}
	remove := &Order{OrderID: uuid.New(), Name: "Ama Serwaa", Hostel: "Pentagon Hall", Quantity: 1}
	store := newStubStore(keep, remove)
	svc, engine := setupService(store, &stubCatalog{})

	err := svc.deleteOrder(context.Background(), remove.OrderID)
	require.NoError(t, err)

	remaining, err := svc.listOrders(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep, remaining[0])

	require.Len(t, engine.published, 1)
	deleted, ok := engine.published[0].Payload.(*event.OrderDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, remove.OrderID, deleted.OrderID)
}

func TestDeleteOrderNotFoundLeavesStateUnchanged(t *testing.T) {
	keep := &Order{OrderID: uuid.New(), Name: "Kofi Mensah", Quantity: 2}
	store := newStubStore(keep)
	svc, engine := setupService(store, &stubCatalog{})

	err := svc.deleteOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, servererrors.ErrOrderNotFound)

	remaining, err := svc.listOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	assert.Empty(t, engine.published)
}
