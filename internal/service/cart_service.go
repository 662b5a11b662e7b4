package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
)

var (
	ErrProductIDRequired = errors.New("product id is required")
	ErrQuantityTooSmall  = errors.New("quantity must be at least 1")
	ErrQuantityNegative  = errors.New("quantity must be non-negative")
	ErrItemNotFound      = errors.New("product not in cart")
)

// CartService handles cart business logic. Totals are never cached: every
// read recomputes against the current catalog, so a dangling product
// reference simply prices as zero.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
	}
}

// CreateCart creates a new empty cart.
func (s *CartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart := models.Cart{
		ID:        uuid.New().String(),
		Items:     []models.CartItem{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns a cart together with its computed total.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*models.CartView, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	return &models.CartView{
		Cart:  *cart,
		Total: s.total(ctx, cart.Items),
	}, nil
}

// total sums price*quantity over the line items, rounded to 2 decimal
// places. Items referencing unknown products contribute 0.
func (s *CartService) total(ctx context.Context, items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		line := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum.Round(2).InexactFloat64()
}

// AddItem adds a product to the cart. Adding a product already in the cart
// increments its quantity instead of appending a second line item. Guard
// order follows the API contract: cart existence, then field validity, then
// product existence.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if productID == "" {
		return nil, ErrProductIDRequired
	}

	if quantity < 1 {
		return nil, ErrQuantityTooSmall
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	if err := s.carts.Update(ctx, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem replaces a line item's quantity. A nil or negative quantity is
// rejected; zero removes the line item entirely.
func (s *CartService) UpdateItem(ctx context.Context, cartID, productID string, quantity *int) (*models.Cart, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if quantity == nil || *quantity < 0 {
		return nil, ErrQuantityNegative
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrItemNotFound
	}

	if *quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = *quantity
	}

	if err := s.carts.Update(ctx, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem removes a product from the cart. Removing a product that is not
// in the cart is a no-op; only a missing cart is an error.
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*models.Cart, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.carts.Update(ctx, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}
