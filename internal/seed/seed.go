// Package seed loads an initial product catalog from a JSON file at startup.
// Seeding is optional; a server without a seed file starts with an empty
// catalog.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/rajibsaha1982/farmcart-api/internal/models"
	"github.com/rajibsaha1982/farmcart-api/internal/repository"
	"github.com/rajibsaha1982/farmcart-api/internal/validate"
)

// Products reads a JSON array of product objects from path and stores every
// valid entry. Each entry must pass the product-structure check, including
// explicit nulls for absent optional fields; invalid entries are skipped
// with a warning. Returns the number of products stored.
func Products(ctx context.Context, path string, repo repository.ProductRepository, log *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	stored := 0
	for i, entry := range entries {
		if !validate.ProductStructure(entry) {
			log.Warn("skipping invalid seed product", "index", i)
			continue
		}

		name, ok := validate.SanitizeProductName(entry["name"])
		if !ok {
			log.Warn("skipping seed product with unusable name", "index", i)
			continue
		}

		price, ok := validate.PriceToDecimals(entry["price"].(float64))
		if !ok {
			log.Warn("skipping seed product with unusable price", "index", i)
			continue
		}

		product := models.Product{
			ID:          uuid.New().String(),
			Name:        name,
			Price:       price,
			Producer:    optionalString(entry["producer"]),
			Category:    optionalString(entry["category"]),
			Contents:    optionalString(entry["contents"]),
			Description: optionalString(entry["description"]),
			CreatedAt:   time.Now().UTC(),
		}

		if err := repo.Create(ctx, product); err != nil {
			return stored, fmt.Errorf("failed to store seed product %q: %w", name, err)
		}
		stored++
	}

	return stored, nil
}

func optionalString(value any) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}
