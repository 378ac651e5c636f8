package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/auth"
	"github.com/luxloom/storefront-backend/internal/middlewares"
	"github.com/luxloom/storefront-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubHandlerService struct {
	orders     []*Order
	deletedIDs []uuid.UUID
}

func (s *stubHandlerService) createOrder(_ context.Context, newOrder *CreateOrderRequest) (*Order, error) {
	return &Order{
		OrderID:     uuid.New(),
		Name:        newOrder.Name,
		Hostel:      newOrder.Hostel,
		PhoneNumber: newOrder.PhoneNumber,
		Quantity:    ClampQuantity(newOrder.Quantity),
		ProductID:   newOrder.ProductID,
	}, nil
}

func (s *stubHandlerService) listOrders(_ context.Context, search string) ([]*Order, error) {
	return FilterBySearch(s.orders, search), nil
}

func (s *stubHandlerService) getOrderDetail(_ context.Context, orderID uuid.UUID) (*OrderDetailDTO, error) {
	for _, o := range s.orders {
		if o.OrderID == orderID {
			return &OrderDetailDTO{Order: o}, nil
		}
	}
	return nil, servererrors.ErrOrderNotFound
}

func (s *stubHandlerService) deleteOrder(_ context.Context, orderID uuid.UUID) error {
	for i, o := range s.orders {
		if o.OrderID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.deletedIDs = append(s.deletedIDs, orderID)
			return nil
		}
	}
	return servererrors.ErrOrderNotFound
}

func setupOrderRouter(t *testing.T, service servicer) (*chi.Mux, *http.Cookie) {
	t.Helper()

	tokenService := auth.NewTokenService("test-secret", 3600)
	mw := middlewares.NewMiddleware(tokenService, zap.NewNop())

	router := chi.NewRouter()
	NewHandler(service, mw).RegisterRoutes(router)

	tokenStr, _, err := tokenService.CreateAccessToken("admin", "admin")
	require.NoError(t, err)

	return router, &http.Cookie{Name: "accessToken", Value: tokenStr}
}

func TestCreateOrderHandler(t *testing.T) {
	router, _ := setupOrderRouter(t, &stubHandlerService{})

	body, err := json.Marshal(map[string]any{
		"name":        "Ama Serwaa",
		"hostel":      "Pentagon Hall",
		"phoneNumber": "0244000000",
		"quantity":    2,
		"productId":   uuid.NewString(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created Order
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.NotEqual(t, uuid.Nil, created.OrderID)
	assert.Equal(t, uint(2), created.Quantity)
}

func TestCreateOrderHandlerValidation(t *testing.T) {
	router, _ := setupOrderRouter(t, &stubHandlerService{})

	// missing hostel and phone number
	body := []byte(`{"name":"Ama Serwaa","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateOrderHandlerMalformedJSON(t *testing.T) {
	router, _ := setupOrderRouter(t, &stubHandlerService{})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader([]byte(`{`)))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListOrdersHandlerRequiresAuth(t *testing.T) {
	router, _ := setupOrderRouter(t, &stubHandlerService{})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListOrdersHandlerSearch(t *testing.T) {
	service := &stubHandlerService{
		orders: []*Order{
			{OrderID: uuid.New(), Name: "Ama Serwaa", Hostel: "Pentagon Hall", Quantity: 1},
			{OrderID: uuid.New(), Name: "Kofi Mensah", Hostel: "Legon Hall", Quantity: 2},
		},
	}
	router, cookie := setupOrderRouter(t, service)

	req := httptest.NewRequest(http.MethodGet, "/orders?search=kofi", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var orders []*Order
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Kofi Mensah", orders[0].Name)
}

func TestDeleteOrderHandler(t *testing.T) {
	orderID := uuid.New()
	service := &stubHandlerService{
		orders: []*Order{
			{OrderID: orderID, Name: "Ama Serwaa", Hostel: "Pentagon Hall", Quantity: 1},
		},
	}
	router, cookie := setupOrderRouter(t, service)

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+orderID.String(), nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []uuid.UUID{orderID}, service.deletedIDs)
}

func TestDeleteOrderHandlerNotFound(t *testing.T) {
	router, cookie := setupOrderRouter(t, &stubHandlerService{})

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+uuid.NewString(), nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
