package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Store struct {
	ID          gocql.UUID `json:"id" db:"store_id"`
	OwnerID     gocql.UUID `json:"owner_id" db:"owner_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	LogoURL     string     `json:"logo_url" db:"logo_url"`
	BannerURL   string     `json:"banner_url" db:"banner_url"`
	Whatsapp    string     `json:"whatsapp" db:"whatsapp"`
	IsOpen      bool       `json:"is_open" db:"is_open"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
