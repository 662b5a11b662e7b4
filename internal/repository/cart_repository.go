package repository

import (
	"context"
	"sync"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
)

// CartRepository defines the storage boundary for carts. Services mutate a
// copy and write it back with Update.
type CartRepository interface {
	Create(ctx context.Context, cart models.Cart) error
	GetByID(ctx context.Context, id string) (*models.Cart, error)
	Update(ctx context.Context, cart models.Cart) error
}

// InMemoryCartRepository implements CartRepository over a map. Item slices
// are copied on every read and write so callers never alias stored state.
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

// NewInMemoryCartRepository creates an empty in-memory cart repository.
func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// Create stores a new cart.
func (r *InMemoryCartRepository) Create(ctx context.Context, cart models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

// GetByID returns a copy of the cart with the given id.
func (r *InMemoryCartRepository) GetByID(ctx context.Context, id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, exists := r.carts[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	clone := cloneCart(cart)
	return &clone, nil
}

// Update replaces a stored cart.
func (r *InMemoryCartRepository) Update(ctx context.Context, cart models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.carts[cart.ID]; !exists {
		return ErrCartNotFound
	}
	r.carts[cart.ID] = cloneCart(cart)
	return nil
}

func cloneCart(cart models.Cart) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return cart
}
