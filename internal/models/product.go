package models

import "time"

// Product is a catalog entry. Optional attributes serialize as explicit
// JSON null when absent. Price is stored already rounded to 2 decimal places.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Producer    *string   `json:"producer"`
	Category    *string   `json:"category"`
	Contents    *string   `json:"contents"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Producer is a registered product supplier.
type Producer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
