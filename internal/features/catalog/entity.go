package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry available for purchase. Rows are owned by the
// backend; clients never mutate them.
type Item struct {
	ItemID      uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
