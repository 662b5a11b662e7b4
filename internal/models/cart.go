package models

import "time"

// CartItem is a single line item: a product reference and a positive
// quantity. A cart holds at most one line item per product.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is an ordered sequence of line items. Items reference products by id
// only; a dangling reference is tolerated and priced as zero.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartView is a cart plus its total, recomputed against the current catalog
// on every read.
type CartView struct {
	Cart
	Total float64 `json:"total"`
}

// CheckoutSession is the ephemeral record returned from checkout. It is
// never stored; the payment URL is a placeholder and is never dialed.
type CheckoutSession struct {
	ID         string    `json:"id"`
	CartID     string    `json:"cartId"`
	UserEmail  string    `json:"userEmail"`
	Status     string    `json:"status"`
	PaymentURL string    `json:"paymentUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}
