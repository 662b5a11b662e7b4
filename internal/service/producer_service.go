package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
)

var (
	ErrProducerNameRequired  = errors.New("producer name is required")
	ErrProducerEmailRequired = errors.New("producer email is required")
)

// ProducerService handles producer registration. Email format is
// deliberately not checked on this path; only presence is required.
type ProducerService struct {
	repo repository.ProducerRepository
}

// NewProducerService creates a new producer service.
func NewProducerService(repo repository.ProducerRepository) *ProducerService {
	return &ProducerService{
		repo: repo,
	}
}

// CreateProducer registers a new producer.
func (s *ProducerService) CreateProducer(ctx context.Context, req models.CreateProducerRequest) (*models.Producer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrProducerNameRequired
	}

	if strings.TrimSpace(req.Email) == "" {
		return nil, ErrProducerEmailRequired
	}

	producer := models.Producer{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, producer); err != nil {
		return nil, err
	}
	return &producer, nil
}

// ListProducers returns all producers in registration order.
func (s *ProducerService) ListProducers(ctx context.Context) ([]models.Producer, error) {
	return s.repo.GetAll(ctx)
}
