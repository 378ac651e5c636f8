package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/servererrors"
)

type Storer interface {
	findAll(ctx context.Context) ([]*Item, error)
	findByID(ctx context.Context, itemID uuid.UUID) (*Item, error)
	findByName(ctx context.Context, name string) (*Item, error)
	createOne(ctx context.Context, newItem *CreateItemRequest) (uuid.UUID, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

// listItems loads the full catalog and derives the requested view in memory.
// The catalog is small enough that the page-shaping work (category, search,
// sort) happens per request rather than in SQL.
func (s *service) listItems(ctx context.Context, query *ListItemsQuery) ([]*Item, error) {
	items, err := s.store.findAll(ctx)
	if err != nil {
		return nil, err
	}

	return FilterSort(items, query), nil
}

func (s *service) getItem(ctx context.Context, itemID uuid.UUID) (*Item, error) {
	return s.store.findByID(ctx, itemID)
}

func (s *service) createItem(ctx context.Context, newItem *CreateItemRequest) (uuid.UUID, error) {
	newItem.Name = strings.TrimSpace(newItem.Name)
	newItem.Description = strings.TrimSpace(newItem.Description)
	newItem.ImageURL = strings.TrimSpace(newItem.ImageURL)

	existing, err := s.store.findByName(ctx, newItem.Name)
	if err != nil {
		return uuid.Nil, err
	}

	if existing.ItemID != uuid.Nil {
		return uuid.Nil, servererrors.ErrItemAlreadyExists
	}

	return s.store.createOne(ctx, newItem)
}

// GetItem exposes item lookup to other features (the order console fetches
// the item belonging to an order).
func (s *service) GetItem(ctx context.Context, itemID uuid.UUID) (*Item, error) {
	return s.getItem(ctx, itemID)
}
