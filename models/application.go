package models

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus values mirror the status column of the applications table.
type ApplicationStatus string

const (
	ApplicationNew      ApplicationStatus = "new"
	ApplicationStarred  ApplicationStatus = "starred"
	ApplicationRejected ApplicationStatus = "rejected"
	ApplicationTrashed  ApplicationStatus = "trashed"
)

// ParseApplicationStatus converts a raw string to an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case ApplicationNew, ApplicationStarred, ApplicationRejected, ApplicationTrashed:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Application represents a job application row in the database.
// JobTitle is a snapshot taken at submission time.
type Application struct {
	ID            string            `json:"id,omitempty"`
	JobID         string            `json:"job_id"`
	JobTitle      string            `json:"job_title"`
	ApplicantName string            `json:"applicant_name"`
	Phone         string            `json:"phone"`
	Email         *string           `json:"email,omitempty"`
	Message       *string           `json:"message,omitempty"`
	CVFileName    *string           `json:"cv_file_name,omitempty"`
	CVURL         *string           `json:"cv_url,omitempty"`
	Status        ApplicationStatus `json:"status"`
	DateApplied   time.Time         `json:"date_applied"`
	CreatedAt     *time.Time        `json:"created_at,omitempty"`
}

const preferredLocationLabel = "Locație preferată: "

// TagPreferredLocation prefixes message with the applicant's preferred shop.
func TagPreferredLocation(location, message string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return message
	}
	tag := "[" + preferredLocationLabel + location + "]"
	if message == "" {
		return tag
	}
	return tag + " " + message
}

// SplitPreferredLocation is the inverse of TagPreferredLocation. Messages
// without a tag come back unchanged with an empty location.
func SplitPreferredLocation(message string) (location, rest string) {
	prefix := "[" + preferredLocationLabel
	if !strings.HasPrefix(message, prefix) {
		return "", message
	}
	end := strings.Index(message, "]")
	if end < 0 {
		return "", message
	}
	return message[len(prefix):end], strings.TrimSpace(message[end+1:])
}
