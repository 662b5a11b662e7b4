package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
)

// CheckoutHandler handles POST /api/checkout.
type CheckoutHandler struct {
	service *service.CheckoutService
	valid   *validatorv10.Validate
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service *service.CheckoutService, valid *validatorv10.Validate, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		valid:   valid,
		logger:  logger,
	}
}

// Checkout starts a payment flow for the cart named in the request body.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest

	if err := validation.Decode(r, &req); err != nil {
		h.logger.Warn("failed to decode checkout request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.valid.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "Cart ID and user email are required", h.logger)
		return
	}

	session, err := h.service.Checkout(r.Context(), req.CartID, req.UserEmail)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCartNotFound):
			WriteError(w, http.StatusNotFound, "Cart not found", h.logger)
		case errors.Is(err, service.ErrCartEmpty):
			WriteError(w, http.StatusBadRequest, "Cart is empty", h.logger)
		default:
			h.logger.Error("checkout failed", "cart_id", req.CartID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("checkout session created", "session_id", session.ID, "cart_id", session.CartID)
	WriteJSON(w, http.StatusCreated, session, h.logger)
}
