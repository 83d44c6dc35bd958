package models

import "time"

// Product represents a catalog product in the database.
type Product struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Tag          *string    `json:"tag,omitempty"`
	ImageURL     string     `json:"image_url"`
	Active       bool       `json:"active"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
