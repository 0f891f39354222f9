package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	StoreID     gocql.UUID `json:"store_id" db:"store_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	Category    string     `json:"category" db:"category"`
	Active      bool       `json:"active" db:"active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
