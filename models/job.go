package models

import (
	"strings"
	"time"
)

// JobType is the employment type shown on a posting.
type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
)

// LocationSeparator joins several shop locations into one location value.
const LocationSeparator = " | "

// Job represents a job posting row in the database.
type Job struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title" validate:"required,max=200"`
	Type        JobType    `json:"type" validate:"required,oneof=Full-time Part-time"`
	Location    string     `json:"location" validate:"required"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	DatePosted  string     `json:"date_posted" validate:"omitempty,datetime=2006-01-02"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// IsMultiLocation reports whether the posting covers more than one shop.
func (j Job) IsMultiLocation() bool {
	return strings.Contains(j.Location, strings.TrimSpace(LocationSeparator))
}

// Locations splits a combined location value into its shops.
func (j Job) Locations() []string {
	parts := strings.Split(j.Location, strings.TrimSpace(LocationSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
