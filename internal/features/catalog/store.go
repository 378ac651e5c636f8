package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/servererrors"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

const itemColumns = `item_id, name, description, category, price, image_url, rating, created_at, updated_at`

func (s *Store) findAll(ctx context.Context) ([]*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all items from catalog store: %w",
			err,
		)
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		var item Item
		if err := scanRowsIntoItem(rows, &item); err != nil {
			return nil, fmt.Errorf(
				"failed to scan item from catalog store: %w",
				err,
			)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(
			"failed reading item rows from catalog store: %w",
			err,
		)
	}

	return items, nil
}

func (s *Store) findByID(ctx context.Context, itemID uuid.UUID) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1`

	row := s.db.QueryRowContext(ctx, query, itemID)

	var item Item
	err := row.Scan(
		&item.ItemID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Price,
		&item.ImageURL,
		&item.Rating,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrItemNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan item from catalog store: %w",
			err,
		)
	}

	return &item, nil
}

func (s *Store) findByName(ctx context.Context, name string) (*Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE name = $1`

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	item := new(Item)
	for rows.Next() {
		if err := scanRowsIntoItem(rows, item); err != nil {
			return item, fmt.Errorf(
				"failed to scan item from catalog store: %w",
				err,
			)
		}
	}

	return item, rows.Err()
}

func (s *Store) createOne(ctx context.Context, newItem *CreateItemRequest) (uuid.UUID, error) {
	query := `INSERT INTO items(name, description, category, price, image_url, rating)
		VALUES($1, $2, $3, $4, $5, $6) RETURNING item_id`

	var itemID uuid.UUID
	err := s.db.QueryRowContext(
		ctx,
		query,
		newItem.Name,
		newItem.Description,
		newItem.Category,
		newItem.Price,
		newItem.ImageURL,
		newItem.Rating,
	).Scan(&itemID)
	if err != nil {
		return uuid.Nil, fmt.Errorf(
			"failed to insert new item in catalog store: %w",
			err,
		)
	}

	return itemID, nil
}

func scanRowsIntoItem(rows *sql.Rows, item *Item) error {
	return rows.Scan(
		&item.ItemID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.Price,
		&item.ImageURL,
		&item.Rating,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}
