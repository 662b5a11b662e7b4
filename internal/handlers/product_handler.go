package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service *service.ProductService
	valid   *validatorv10.Validate
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service *service.ProductService, valid *validatorv10.Validate, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		valid:   valid,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products. Optional query filters (category,
// minPrice, maxPrice, producer, contents) compose with AND; no filter means
// no constraint.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := repository.ProductFilter{
		Category: q.Get("category"),
		Producer: q.Get("producer"),
		Contents: q.Get("contents"),
		MinPrice: parsePriceParam(q.Get("minPrice")),
		MaxPrice: parsePriceParam(q.Get("maxPrice")),
	}

	products, err := h.service.ListProducts(ctx, filter)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// parsePriceParam turns a price query parameter into a bound. An absent
// parameter is unconstrained; an unparsable one becomes NaN, which compares
// false against every price and so matches nothing.
func parsePriceParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f = math.NaN()
	}
	return &f
}

// GetProduct handles GET /api/products/{productId}.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest

	if err := validation.Decode(r, &req); err != nil {
		h.logger.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.valid.Struct(req); err != nil {
		msg := validation.MessageFor(err, map[string]string{
			"Name": "Product name is required",
		}, "Invalid request body")
		WriteError(w, http.StatusBadRequest, msg, h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			WriteError(w, http.StatusBadRequest, "Product name is required", h.logger)
		case errors.Is(err, service.ErrPriceRequired):
			WriteError(w, http.StatusBadRequest, "Price is required", h.logger)
		case errors.Is(err, service.ErrPriceInvalid):
			WriteError(w, http.StatusBadRequest, "Price must be a positive number", h.logger)
		case errors.Is(err, service.ErrPricePrecision):
			WriteError(w, http.StatusBadRequest, "Price must have maximum 2 decimal places", h.logger)
		default:
			h.logger.Error("failed to create product", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("product created", "product_id", product.ID, "name", product.Name)
	WriteJSON(w, http.StatusCreated, product, h.logger)
}
