package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer's request to purchase a quantity of one catalog item,
// delivered to a named hostel. Orders are created by the storefront form and
// deleted by the admin console; they are never mutated in place.
type Order struct {
	OrderID     uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Hostel      string    `json:"hostel"`
	PhoneNumber string    `json:"phoneNumber"`
	Quantity    uint      `json:"quantity"`
	ProductID   uuid.UUID `json:"productId"`
	CreatedAt   time.Time `json:"createdAt"`
}
