// Package seed holds the default jobs and applications shown while the
// content store is empty or unreachable.
package seed

import (
	"strings"
	"time"

	"bakerysite/api-gateway/models"
)

// IDPrefix marks records that exist only in this package.
const IDPrefix = "default-"

// DatePosted is the posting date carried by every default job.
const DatePosted = "2024-01-15"

// IsSeedID reports whether id names a default record rather than a stored one.
func IsSeedID(id string) bool {
	return strings.HasPrefix(id, IDPrefix)
}

func jobs() []models.Job {
	return []models.Job{
		{
			ID:          "default-sales",
			Title:       "Lucrător Comercial (Vânzătoare)",
			Type:        models.JobTypeFullTime,
			Location:    "Brutăria Centru" + models.LocationSeparator + "Brutăria Gară",
			Description: "Servirea clienților la tejghea, aranjarea vitrinei și încasarea la casa de marcat.",
			DatePosted:  DatePosted,
		},
		{
			ID:          "default-baker",
			Title:       "Brutar",
			Type:        models.JobTypeFullTime,
			Location:    "Laboratorul de Producție",
			Description: "Pregătirea aluaturilor și coacerea pâinii în tura de noapte.",
			DatePosted:  DatePosted,
		},
		{
			ID:          "default-pastry",
			Title:       "Cofetar / Patiser",
			Type:        models.JobTypePartTime,
			Location:    "Laboratorul de Producție",
			Description: "Realizarea produselor de patiserie și a torturilor la comandă.",
			DatePosted:  DatePosted,
		},
	}
}

func applications() []models.Application {
	email := "maria.popescu@example.com"
	msg := models.TagPreferredLocation("Brutăria Gară", "Am lucrat doi ani într-o patiserie.")
	return []models.Application{
		{
			ID:            "default-app-1",
			JobID:         "default-sales",
			JobTitle:      "Lucrător Comercial (Vânzătoare)",
			ApplicantName: "Maria Popescu",
			Phone:         "0722 123 456",
			Email:         &email,
			Message:       &msg,
			Status:        models.ApplicationNew,
			DateApplied:   time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "default-app-2",
			JobID:         "default-baker",
			JobTitle:      "Brutar",
			ApplicantName: "Ion Ionescu",
			Phone:         "0733 987 654",
			Status:        models.ApplicationStarred,
			DateApplied:   time.Date(2024, 1, 18, 16, 0, 0, 0, time.UTC),
		},
	}
}

// Jobs returns a fresh copy of the default jobs. All of them are inactive.
func Jobs() []models.Job {
	return jobs()
}

// Job looks up a default job by id.
func Job(id string) (models.Job, bool) {
	for _, j := range jobs() {
		if j.ID == id {
			return j, true
		}
	}
	return models.Job{}, false
}

// Applications returns a fresh copy of the default applications.
func Applications() []models.Application {
	return applications()
}
