package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// CreateCart handles POST /api/cart.
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.CreateCart(r.Context())
	if err != nil {
		h.logger.Error("failed to create cart", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("cart created", "cart_id", cart.ID)
	WriteJSON(w, http.StatusCreated, cart, h.logger)
}

// GetCart handles GET /api/cart/{cartId}. The response carries the total
// computed against the current catalog.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	view, err := h.service.GetCart(r.Context(), cartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			WriteError(w, http.StatusNotFound, "Cart not found", h.logger)
			return
		}
		h.logger.Error("failed to get cart", "cart_id", cartID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.logger)
}

// AddItem handles POST /api/cart/{cartId}/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	var req models.AddItemRequest
	if err := validation.Decode(r, &req); err != nil {
		h.logger.Warn("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	cart, err := h.service.AddItem(r.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.logger)
}

// UpdateItem handles PUT /api/cart/{cartId}/items/{productId}. Quantity 0
// removes the line item.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")
	productID := chi.URLParam(r, "productId")

	var req models.UpdateItemRequest
	if err := validation.Decode(r, &req); err != nil {
		h.logger.Warn("failed to decode update item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	cart, err := h.service.UpdateItem(r.Context(), cartID, productID, req.Quantity)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.logger)
}

// RemoveItem handles DELETE /api/cart/{cartId}/items/{productId}. Removal is
// idempotent; only a missing cart fails.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")
	productID := chi.URLParam(r, "productId")

	cart, err := h.service.RemoveItem(r.Context(), cartID, productID)
	if err != nil {
		h.writeCartError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, cart, h.logger)
}

func (h *CartHandler) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrCartNotFound):
		WriteError(w, http.StatusNotFound, "Cart not found", h.logger)
	case errors.Is(err, repository.ErrProductNotFound):
		WriteError(w, http.StatusNotFound, "Product not found", h.logger)
	case errors.Is(err, service.ErrProductIDRequired):
		WriteError(w, http.StatusBadRequest, "Product ID is required", h.logger)
	case errors.Is(err, service.ErrQuantityTooSmall):
		WriteError(w, http.StatusBadRequest, "Quantity must be at least 1", h.logger)
	case errors.Is(err, service.ErrQuantityNegative):
		WriteError(w, http.StatusBadRequest, "Quantity must be non-negative", h.logger)
	case errors.Is(err, service.ErrItemNotFound):
		WriteError(w, http.StatusNotFound, "Product not in cart", h.logger)
	default:
		h.logger.Error("cart operation failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
