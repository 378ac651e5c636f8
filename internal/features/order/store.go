package order

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

const orderColumns = `order_id, name, hostel, phone_number, quantity, product_id, created_at`

func (s *Store) createOne(ctx context.Context, newOrder *CreateOrderRequest, quantity uint) (*Order, error) {
	query := `INSERT INTO orders(name, hostel, phone_number, quantity, product_id)
		VALUES($1, $2, $3, $4, $5) RETURNING order_id, created_at`

	order := &Order{
		Name:        newOrder.Name,
		Hostel:      newOrder.Hostel,
		PhoneNumber: newOrder.PhoneNumber,
		Quantity:    quantity,
		ProductID:   newOrder.ProductID,
	}

	err := s.db.QueryRowContext(
		ctx,
		query,
		newOrder.Name,
		newOrder.Hostel,
		newOrder.PhoneNumber,
		quantity,
		newOrder.ProductID,
	).Scan(
		&order.OrderID,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to insert new order in order store: %w",
			err,
		)
	}

	return order, nil
}

func (s *Store) findAll(ctx context.Context) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get all orders from order store: %w",
			err,
		)
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		var order Order
		err := rows.Scan(
			&order.OrderID,
			&order.Name,
			&order.Hostel,
			&order.PhoneNumber,
			&order.Quantity,
			&order.ProductID,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to scan order from order store: %w",
				err,
			)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(
			"failed reading order rows from order store: %w",
			err,
		)
	}

	return orders, nil
}

func (s *Store) findByID(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	var order Order
	err := s.db.QueryRowContext(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.Name,
		&order.Hostel,
		&order.PhoneNumber,
		&order.Quantity,
		&order.ProductID,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan order from order store: %w",
			err,
		)
	}

	return &order, nil
}

func (s *Store) deleteOne(ctx context.Context, orderID uuid.UUID) error {
	query := `DELETE FROM orders WHERE order_id = $1`

	result, err := s.db.ExecContext(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf(
			"failed to delete order in order store: %w",
			err,
		)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf(
			"failed to read rows affected in order store: %w",
			err,
		)
	}

	if rowsAffected == 0 {
		return servererrors.ErrOrderNotFound
	}

	return nil
}
