package models

import "time"

// HeroImage is a full-width banner image on the landing page.
type HeroImage struct {
	ID           string     `json:"id,omitempty"`
	ImageURL     string     `json:"image_url"`
	AltText      *string    `json:"alt_text,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// CarouselImage is a slide of the gallery carousel.
type CarouselImage struct {
	ID           string     `json:"id,omitempty"`
	ImageURL     string     `json:"image_url"`
	AltText      *string    `json:"alt_text,omitempty"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
