package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
)

// ProductFilter narrows a catalog search. Text filters match
// case-insensitively as substrings; nil price bounds are unconstrained.
// Filters compose with logical AND.
type ProductFilter struct {
	Category string
	Producer string
	Contents string
	MinPrice *float64
	MaxPrice *float64
}

// ProductRepository defines the storage boundary for products.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with an id index
// plus an insertion-order list, guarded for concurrent request handling.
type InMemoryProductRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Product
	order []string
}

// NewInMemoryProductRepository creates an empty in-memory product repository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		byID: make(map[string]models.Product),
	}
}

// Create stores a new product.
func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.byID[product.ID] = product
	return nil
}

// GetByID returns a product by its id.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Search returns all products matching the filter, in insertion order.
func (r *InMemoryProductRepository) Search(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		product := r.byID[id]
		if matches(product, filter) {
			results = append(results, product)
		}
	}
	return results, nil
}

func matches(p models.Product, f ProductFilter) bool {
	if !matchText(p.Category, f.Category) {
		return false
	}
	if !matchText(p.Producer, f.Producer) {
		return false
	}
	if !matchText(p.Contents, f.Contents) {
		return false
	}
	// NaN bounds (unparsable query values) compare false and exclude
	// everything, matching the permissive-parse contract.
	if f.MinPrice != nil && !(p.Price >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(p.Price <= *f.MaxPrice) {
		return false
	}
	return true
}

// matchText applies a case-insensitive substring filter. Products without
// the attribute never match a non-empty filter.
func matchText(field *string, query string) bool {
	if query == "" {
		return true
	}
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), strings.ToLower(query))
}
