package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/service"
	"github.com/rajibsaha1982/farmcart-api/internal/validation"
)

// ProducerHandler handles producer-related HTTP requests.
type ProducerHandler struct {
	service *service.ProducerService
	valid   *validatorv10.Validate
	logger  *slog.Logger
}

// NewProducerHandler creates a new producer handler.
func NewProducerHandler(service *service.ProducerService, valid *validatorv10.Validate, logger *slog.Logger) *ProducerHandler {
	return &ProducerHandler{
		service: service,
		valid:   valid,
		logger:  logger,
	}
}

// ListProducers handles GET /api/producers.
func (h *ProducerHandler) ListProducers(w http.ResponseWriter, r *http.Request) {
	producers, err := h.service.ListProducers(r.Context())
	if err != nil {
		h.logger.Error("failed to list producers", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, producers, h.logger)
}

// CreateProducer handles POST /api/producers.
func (h *ProducerHandler) CreateProducer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProducerRequest

	if err := validation.Decode(r, &req); err != nil {
		h.logger.Warn("failed to decode producer request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.valid.Struct(req); err != nil {
		msg := validation.MessageFor(err, map[string]string{
			"Name":  "Producer name is required",
			"Email": "Producer email is required",
		}, "Invalid request body")
		WriteError(w, http.StatusBadRequest, msg, h.logger)
		return
	}

	producer, err := h.service.CreateProducer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProducerNameRequired):
			WriteError(w, http.StatusBadRequest, "Producer name is required", h.logger)
		case errors.Is(err, service.ErrProducerEmailRequired):
			WriteError(w, http.StatusBadRequest, "Producer email is required", h.logger)
		default:
			h.logger.Error("failed to create producer", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("producer registered", "producer_id", producer.ID, "name", producer.Name)
	WriteJSON(w, http.StatusCreated, producer, h.logger)
}
