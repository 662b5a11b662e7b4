package models

// CreateProductRequest is the POST /api/products body. Price is a pointer so
// a missing price can be told apart from an explicit zero.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"notblank"`
	Price       *float64 `json:"price"`
	Producer    *string  `json:"producer"`
	Category    *string  `json:"category"`
	Contents    *string  `json:"contents"`
	Description *string  `json:"description"`
}

// AddItemRequest is the POST /api/cart/{cartId}/items body.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest is the PUT /api/cart/{cartId}/items/{productId} body.
// Quantity is a pointer because a missing quantity is rejected while zero
// removes the line item.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity"`
}

// CheckoutRequest is the POST /api/checkout body. The body-supplied cart id
// is used for the lookup.
type CheckoutRequest struct {
	CartID    string `json:"cartId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required"`
}

// CreateProducerRequest is the POST /api/producers body. Email presence is
// required but its format is deliberately not checked on this path.
type CreateProducerRequest struct {
	Name        string  `json:"name" validate:"notblank"`
	Email       string  `json:"email" validate:"notblank"`
	Description *string `json:"description"`
}
