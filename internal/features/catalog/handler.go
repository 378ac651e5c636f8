package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/handlerutils"
	"github.com/luxloom/storefront-backend/internal/servererrors"
	"github.com/luxloom/storefront-backend/internal/validate"
)

type servicer interface {
	listItems(ctx context.Context, query *ListItemsQuery) ([]*Item, error)
	getItem(ctx context.Context, itemID uuid.UUID) (*Item, error)
	createItem(ctx context.Context, newItem *CreateItemRequest) (uuid.UUID, error)
}

type middleware interface {
	ErrorHandler(h handlerutils.APIHandler) http.HandlerFunc
	AuthWithContext(h handlerutils.APIHandler, authEntityType string) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(catalogService servicer, middleware middleware) *handler {
	return &handler{
		service:    catalogService,
		middleware: middleware,
	}
}

// RegisterRoutes mounts the catalog under both names the storefront pages
// use: the food-delivery skin calls /food, the fashion skin calls /products.
func (h *handler) RegisterRoutes(router *chi.Mux) {
	for _, path := range []string{"/products", "/food"} {
		router.Get(
			path,
			h.middleware.ErrorHandler(
				h.listItemsHandler,
			),
		)

		router.Get(
			path+"/{itemID}",
			h.middleware.ErrorHandler(
				h.getItemHandler,
			),
		)
	}

	// protected routes
	router.Post(
		"/products",
		h.middleware.ErrorHandler(
			h.middleware.AuthWithContext(
				h.createItemHandler,
				"admin",
			),
		),
	)
}

func (h *handler) listItemsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	query := getQueryItems(r.URL.Query())

	items, err := h.service.listItems(ctx, query)
	if err != nil {
		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		items,
	)
}

func (h *handler) getItemHandler(w http.ResponseWriter, r *http.Request) error {
	itemIDStr := chi.URLParam(r, "itemID")

	itemID, err := uuid.Parse(itemIDStr)
	if err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	item, err := h.service.getItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, servererrors.ErrItemNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				servererrors.ErrItemNotFound.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteJSON(
		w,
		http.StatusOK,
		item,
	)
}

func (h *handler) createItemHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateItemRequest
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

	itemID, err := h.service.createItem(ctx, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrItemAlreadyExists) {
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrItemAlreadyExists.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"item created",
		map[string]string{"id": itemID.String()},
	)
}

func getQueryItems(queryParams url.Values) *ListItemsQuery {
	query := &ListItemsQuery{
		Category: queryParams.Get("category"),
		Search:   queryParams.Get("search"),
		Sort:     SortDefault,
	}

	if sortParam := queryParams.Get("sort"); sortParam != "" {
		query.Sort = SortKey(sortParam)
	}

	return query
}
