package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
	"github.com/rajibsaha1982/farmcart-api/pkg/logger"
)

func newProductRouter() *chi.Mux {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	handler := NewProductHandler(svc, validation.New(), log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/products/{productId}", handler.GetProduct)
	r.Post("/api/products", handler.CreateProduct)
	return r
}

func createProduct(t *testing.T, r *chi.Mux, body string) models.Product {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return product
}

func TestCreateProduct_Success(t *testing.T) {
	r := newProductRouter()

	product := createProduct(t, r, `{"name":"Tomatoes","price":2.99,"producer":"Green Farm","category":"Vegetables"}`)

	if product.ID == "" {
		t.Error("expected generated product id")
	}
	if product.Name != "Tomatoes" {
		t.Errorf("expected name 'Tomatoes', got %s", product.Name)
	}
	if product.Price != 2.99 {
		t.Errorf("expected price 2.99, got %f", product.Price)
	}
	if product.Producer == nil || *product.Producer != "Green Farm" {
		t.Errorf("expected producer 'Green Farm', got %v", product.Producer)
	}
	if product.Contents != nil {
		t.Errorf("expected nil contents, got %v", product.Contents)
	}
	if product.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	r := newProductRouter()

	testCases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"price":1.5}`, "Product name is required"},
		{"blank name", `{"name":"   ","price":1.5}`, "Product name is required"},
		{"missing price", `{"name":"Tomatoes"}`, "Price is required"},
		{"negative price", `{"name":"Tomatoes","price":-1}`, "Price must be a positive number"},
		{"too many decimals", `{"name":"Tomatoes","price":9.999}`, "Price must have maximum 2 decimal places"},
		{"malformed body", `{`, "Invalid request body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if response["error"] != tc.wantMsg {
				t.Errorf("expected error message %q, got %q", tc.wantMsg, response["error"])
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	r := newProductRouter()

	created := createProduct(t, r, `{"name":"Apples","price":1.5}`)

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+created.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if product.ID != created.ID {
		t.Errorf("expected product id %s, got %s", created.ID, product.ID)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/products/does-not-exist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}

func TestListProducts_Filters(t *testing.T) {
	r := newProductRouter()

	createProduct(t, r, `{"name":"Tomatoes","price":2.99,"category":"Vegetables","producer":"Green Farm","contents":"tomato"}`)
	createProduct(t, r, `{"name":"Apples","price":1.5,"category":"Fruit","producer":"Orchard Hill","contents":"apple"}`)
	createProduct(t, r, `{"name":"Rye Bread","price":4.25,"category":"Bakery","producer":"Green Farm","contents":"rye flour"}`)

	testCases := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{"no filter", "", []string{"Tomatoes", "Apples", "Rye Bread"}},
		{"category is case-insensitive substring", "?category=VEG", []string{"Tomatoes"}},
		{"producer filter", "?producer=green", []string{"Tomatoes", "Rye Bread"}},
		{"contents filter", "?contents=rye", []string{"Rye Bread"}},
		{"min price", "?minPrice=2", []string{"Tomatoes", "Rye Bread"}},
		{"max price", "?maxPrice=3", []string{"Tomatoes", "Apples"}},
		{"filters compose with AND", "?producer=green&maxPrice=3", []string{"Tomatoes"}},
		{"unparsable price matches nothing", "?minPrice=abc", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var products []models.Product
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if len(products) != len(tc.wantNames) {
				t.Fatalf("expected %d products, got %d", len(tc.wantNames), len(products))
			}
			for i, name := range tc.wantNames {
				if products[i].Name != name {
					t.Errorf("expected product %d to be %s, got %s", i, name, products[i].Name)
				}
			}
		})
	}
}

func TestHealth(t *testing.T) {
	handler := NewHealthHandler(logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "OK" {
		t.Errorf("expected status 'OK', got %s", response["status"])
	}
}
