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

func newProducerRouter() *chi.Mux {
	repo := repository.NewInMemoryProducerRepository()
	svc := service.NewProducerService(repo)
	handler := NewProducerHandler(svc, validation.New(), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/api/producers", handler.ListProducers)
	r.Post("/api/producers", handler.CreateProducer)
	return r
}

func TestCreateProducer_Success(t *testing.T) {
	r := newProducerRouter()

	body := `{"name":"Green Farm","email":"farm@example.com","description":"Family-run farm"}`
	req := httptest.NewRequest(http.MethodPost, "/api/producers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", w.Code, w.Body.String())
	}

	var producer models.Producer
	if err := json.NewDecoder(w.Body).Decode(&producer); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if producer.ID == "" {
		t.Error("expected generated producer id")
	}
	if producer.Name != "Green Farm" {
		t.Errorf("expected name 'Green Farm', got %s", producer.Name)
	}
	if producer.Description == nil || *producer.Description != "Family-run farm" {
		t.Errorf("expected description, got %v", producer.Description)
	}
}

func TestCreateProducer_EmailFormatNotChecked(t *testing.T) {
	r := newProducerRouter()

	// Only presence is required on this path, not a valid format.
	body := `{"name":"Orchard Hill","email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/producers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
}

func TestCreateProducer_Validation(t *testing.T) {
	r := newProducerRouter()

	testCases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"email":"farm@example.com"}`, "Producer name is required"},
		{"blank name", `{"name":" ","email":"farm@example.com"}`, "Producer name is required"},
		{"missing email", `{"name":"Green Farm"}`, "Producer email is required"},
		{"blank email", `{"name":"Green Farm","email":"  "}`, "Producer email is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/producers", strings.NewReader(tc.body))
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
				t.Errorf("expected error %q, got %q", tc.wantMsg, response["error"])
			}
		})
	}
}

func TestListProducers_InsertionOrder(t *testing.T) {
	r := newProducerRouter()

	for _, name := range []string{"Green Farm", "Orchard Hill"} {
		body := `{"name":"` + name + `","email":"x@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/producers", strings.NewReader(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/producers", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var producers []models.Producer
	if err := json.NewDecoder(w.Body).Decode(&producers); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(producers) != 2 {
		t.Fatalf("expected 2 producers, got %d", len(producers))
	}
	if producers[0].Name != "Green Farm" || producers[1].Name != "Orchard Hill" {
		t.Errorf("expected insertion order preserved, got %s then %s", producers[0].Name, producers[1].Name)
	}
}
