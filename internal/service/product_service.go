package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/validate"
)

var (
	ErrNameRequired   = errors.New("product name is required")
	ErrPriceRequired  = errors.New("price is required")
	ErrPriceInvalid   = errors.New("price must be a positive number")
	ErrPricePrecision = errors.New("price must have maximum 2 decimal places")
)

// ProductService handles catalog business logic.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct validates the request and stores a new product. The price is
// normalized to 2 decimal places before storage; no partial mutation occurs
// on a failed guard.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	if req.Price == nil {
		return nil, ErrPriceRequired
	}

	if *req.Price < 0 {
		return nil, ErrPriceInvalid
	}

	price, ok := validate.PriceToDecimals(*req.Price)
	if !ok {
		return nil, ErrPricePrecision
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Price:       price,
		Producer:    req.Producer,
		Category:    req.Category,
		Contents:    req.Contents,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns the catalog narrowed by the filter.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	return s.repo.Search(ctx, filter)
}

// GetProduct returns a product by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
