package catalog

// Requests

type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=60,noAllRepeatingChars"`
	Description string   `json:"description" validate:"required,min=10,max=350,noAllRepeatingChars"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// ListItemsQuery carries the listing shape requested through url query
// params. Zero values mean "everything, backend order", and an unrecognized
// sort key falls back to the backend order rather than erroring.
type ListItemsQuery struct {
	Category string  `json:"category"`
	Search   string  `json:"search"`
	Sort     SortKey `json:"sort"`
}
