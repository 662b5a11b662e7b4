package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }

func newProductService() (*ProductService, *repository.InMemoryProductRepository) {
	repo := repository.NewInMemoryProductRepository()
	return NewProductService(repo), repo
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	req := models.CreateProductRequest{
		Name:     "Tomatoes",
		Price:    floatPtr(2.99),
		Producer: strPtr("Green Farm"),
		Category: strPtr("Vegetables"),
	}

	product, err := svc.CreateProduct(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "Tomatoes", product.Name)
	assert.Equal(t, 2.99, product.Price)
	assert.Equal(t, "Green Farm", *product.Producer)
	assert.Nil(t, product.Contents)
	assert.False(t, product.CreatedAt.IsZero())

	// Stored, not just returned.
	stored, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, stored.ID)
}

func TestCreateProduct_Normalization(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	// 9.5 stores as 9.5; one decimal place is already within bounds.
	product, err := svc.CreateProduct(ctx, models.CreateProductRequest{Name: "Milk", Price: floatPtr(9.5)})
	require.NoError(t, err)
	assert.Equal(t, 9.5, product.Price)

	product, err = svc.CreateProduct(ctx, models.CreateProductRequest{Name: "Eggs", Price: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}

func TestCreateProduct_Rejections(t *testing.T) {
	svc, repo := newProductService()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateProductRequest
		wantErr error
	}{
		{"missing name", models.CreateProductRequest{Price: floatPtr(1)}, ErrNameRequired},
		{"blank name", models.CreateProductRequest{Name: "   ", Price: floatPtr(1)}, ErrNameRequired},
		{"missing price", models.CreateProductRequest{Name: "Tomatoes"}, ErrPriceRequired},
		{"negative price", models.CreateProductRequest{Name: "Tomatoes", Price: floatPtr(-1)}, ErrPriceInvalid},
		{"three decimal places", models.CreateProductRequest{Name: "Tomatoes", Price: floatPtr(9.999)}, ErrPricePrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// No partial mutation on failed guards.
	products, err := repo.Search(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProducts_Filtered(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	for _, req := range []models.CreateProductRequest{
		{Name: "Tomatoes", Price: floatPtr(2.99), Category: strPtr("Vegetables")},
		{Name: "Apples", Price: floatPtr(1.50), Category: strPtr("Fruit")},
	} {
		_, err := svc.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	all, err := svc.ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	fruit, err := svc.ListProducts(ctx, repository.ProductFilter{Category: "fruit"})
	require.NoError(t, err)
	require.Len(t, fruit, 1)
	assert.Equal(t, "Apples", fruit[0].Name)
}
