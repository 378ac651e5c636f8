package order

import (
	"github.com/google/uuid"
	"github.com/luxloom/storefront-backend/internal/features/catalog"
)

// Requests

type CreateOrderRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=60,noAllRepeatingChars"`
	Hostel      string    `json:"hostel" validate:"required,min=2,max=80"`
	PhoneNumber string    `json:"phoneNumber" validate:"required,min=9,max=15"`
	Quantity    int       `json:"quantity"` // clamped to >= 1, never rejected
	ProductID   uuid.UUID `json:"productId" validate:"required"`
}

// Responses

type PricingSummary struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}

// OrderDetailDTO backs the admin console's detail view: the order, its
// catalog item, and the priced summary in one response.
type OrderDetailDTO struct {
	Order   *Order         `json:"order"`
	Item    *catalog.Item  `json:"item"`
	Summary PricingSummary `json:"summary"`
}
