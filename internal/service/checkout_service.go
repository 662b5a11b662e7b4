package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
)

var ErrCartEmpty = errors.New("cart is empty")

// CheckoutService fabricates checkout sessions. Sessions are never stored
// and the payment URL is a placeholder that is never dialed; the cart is
// left untouched and no inventory is reserved.
type CheckoutService struct {
	carts      repository.CartRepository
	gatewayURL string
}

// NewCheckoutService creates a new checkout service. gatewayURL is the base
// address the placeholder payment links point at.
func NewCheckoutService(carts repository.CartRepository, gatewayURL string) *CheckoutService {
	return &CheckoutService{
		carts:      carts,
		gatewayURL: gatewayURL,
	}
}

// Checkout starts a payment flow for a non-empty cart.
func (s *CheckoutService) Checkout(ctx context.Context, cartID, userEmail string) (*models.CheckoutSession, error) {
	cart, err := s.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	session := models.CheckoutSession{
		ID:         uuid.New().String(),
		CartID:     cartID,
		UserEmail:  userEmail,
		Status:     "pending",
		PaymentURL: fmt.Sprintf("%s/checkout/%s", s.gatewayURL, uuid.New().String()),
		CreatedAt:  time.Now().UTC(),
	}

	return &session, nil
}
