package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/handlerutils"
	"github.com/luxloom/storefront-backend/internal/servererrors"
	"github.com/luxloom/storefront-backend/internal/validate"
)

type servicer interface {
	createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error)
	listOrders(ctx context.Context, search string) ([]*Order, error)
	getOrderDetail(ctx context.Context, orderID uuid.UUID) (*OrderDetailDTO, error)
	deleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(orderService servicer, middleware middleware) *handler {
	return &handler{
		service:    orderService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/orders",
		h.middleware.ErrorHandler(
			h.createOrderHandler,
		),
	)

	// protected routes: the admin console owns order management
	router.Get(
		"/orders",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.listOrdersHandler,
				"admin",
			),
		),
	)

	router.Get(
		"/orders/{orderID}",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.getOrderDetailHandler,
				"admin",
			),
		),
	)

	router.Delete(
		"/orders/{orderID}",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.deleteOrderHandler,
				"admin",
			),
		),
	)
}

func (h *handler) createOrderHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateOrderRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	order, err := h.service.createOrder(ctx, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrItemNotFound) {
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrItemNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusCreated,
		order,
	)
}

func (h *handler) listOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	orders, err := h.service.listOrders(
		ctx,
		r.URL.Query().Get("search"),
	)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		orders,
	)
}

func (h *handler) getOrderDetailHandler(w http.ResponseWriter, r *http.Request) error {
	orderID, err := parseOrderID(r)
	if err != nil {
		return err
	}

	detail, err := h.service.getOrderDetail(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, servererrors.ErrOrderNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrOrderNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		detail,
	)
}

func (h *handler) deleteOrderHandler(w http.ResponseWriter, r *http.Request) error {
	orderID, err := parseOrderID(r)
	if err != nil {
		return err
	}

	if err := h.service.deleteOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, servererrors.ErrOrderNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrOrderNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"order deleted",
		nil,
	)
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		return uuid.Nil, servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	return orderID, nil
}
