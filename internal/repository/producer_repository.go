package repository

import (
	"context"
	"sync"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
)

// ProducerRepository defines the storage boundary for producers. Producers
// are never mutated or deleted once registered.
type ProducerRepository interface {
	Create(ctx context.Context, producer models.Producer) error
	GetAll(ctx context.Context) ([]models.Producer, error)
}

// InMemoryProducerRepository keeps producers in insertion order.
type InMemoryProducerRepository struct {
	mu        sync.RWMutex
	producers []models.Producer
}

// NewInMemoryProducerRepository creates an empty in-memory producer repository.
func NewInMemoryProducerRepository() *InMemoryProducerRepository {
	return &InMemoryProducerRepository{}
}

// Create appends a new producer.
func (r *InMemoryProducerRepository) Create(ctx context.Context, producer models.Producer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.producers = append(r.producers, producer)
	return nil
}

// GetAll returns all producers in insertion order.
func (r *InMemoryProducerRepository) GetAll(ctx context.Context) ([]models.Producer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Producer, len(r.producers))
	copy(out, r.producers)
	return out, nil
}
