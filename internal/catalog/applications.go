package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/seed"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

type Applications struct {
	env    *env
	bucket string
}

// ApplicationInput is what the careers form submits. JobTitle is optional;
// when empty it is looked up from the job.
type ApplicationInput struct {
	JobID             string `json:"job_id" validate:"required"`
	JobTitle          string `json:"job_title" validate:"max=200"`
	ApplicantName     string `json:"applicant_name" validate:"required,max=200"`
	Phone             string `json:"phone" validate:"required,max=40"`
	Email             string `json:"email" validate:"omitempty,email"`
	Message           string `json:"message" validate:"max=5000"`
	PreferredLocation string `json:"preferred_location" validate:"max=200"`
	CVFileName        string `json:"cv_file_name"`
	CVURL             string `json:"cv_url" validate:"omitempty,url"`
}

func (a *Applications) List(ctx context.Context) ([]Entry[models.Application], Mode) {
	return reconcile(ctx, a.env, store.TableApplications, seed.Applications())
}

func (a *Applications) Submit(ctx context.Context, in ApplicationInput) (models.Application, error) {
	const op = "SubmitApplication"
	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if err := a.env.check(op, in); err != nil {
		return models.Application{}, err
	}

	title := strings.TrimSpace(in.JobTitle)
	if title == "" {
		var err error
		if title, err = a.jobTitle(ctx, op, in.JobID); err != nil {
			return models.Application{}, err
		}
	}

	app := models.Application{
		JobID:         in.JobID,
		JobTitle:      title,
		ApplicantName: in.ApplicantName,
		Phone:         in.Phone,
		Email:         optional(in.Email),
		Message:       optional(models.TagPreferredLocation(in.PreferredLocation, strings.TrimSpace(in.Message))),
		CVFileName:    optional(in.CVFileName),
		CVURL:         optional(in.CVURL),
		Status:        models.ApplicationNew,
		DateApplied:   a.env.now().UTC(),
	}
	var created []models.Application
	if err := a.env.records.Insert(ctx, store.TableApplications, app, &created); err != nil {
		return models.Application{}, apperrors.WithOp(op, err)
	}
	if len(created) == 0 {
		return models.Application{}, apperrors.Store(op, "insert returned no row", nil)
	}
	a.env.logger.WithFields(logrus.Fields{"application_id": created[0].ID, "job_id": in.JobID}).Info("Application submitted")
	return created[0], nil
}

func (a *Applications) jobTitle(ctx context.Context, op, jobID string) (string, error) {
	if j, ok := seed.Job(jobID); ok {
		return j.Title, nil
	}
	job, err := selectOne[models.Job](ctx, a.env, op, store.TableJobs, jobID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return "", apperrors.Validation(op, fmt.Sprintf("job %q does not exist", jobID), err)
	}
	if err != nil {
		return "", err
	}
	return job.Title, nil
}

// UploadCV stores a CV before the application itself is submitted.
func (a *Applications) UploadCV(ctx context.Context, fileName, contentType string, r io.Reader) (UploadedFile, error) {
	return a.env.upload(ctx, "UploadCV", a.bucket, fileName, contentType, r, cvExtensions)
}

// UpdateStatus moves an application to any status. Default applications are
// ignored.
func (a *Applications) UpdateStatus(ctx context.Context, id, status string) error {
	const op = "UpdateApplicationStatus"
	st, err := models.ParseApplicationStatus(status)
	if err != nil {
		return apperrors.Validation(op, err.Error(), err)
	}
	if seed.IsSeedID(id) {
		a.env.logger.WithFields(logrus.Fields{"application_id": id}).Debug("Ignoring status change of default application")
		return nil
	}
	n, err := a.env.records.Update(ctx, store.TableApplications, map[string]interface{}{"status": st}, store.Eq("id", id))
	return mustAffect(op, store.TableApplications, id, n, err)
}

// Delete removes the application and then its CV blob, keyed by the last
// segment of cvURL. A failed blob removal is only logged.
func (a *Applications) Delete(ctx context.Context, id, cvURL string) error {
	const op = "DeleteApplication"
	if seed.IsSeedID(id) {
		return nil
	}
	n, err := a.env.records.Delete(ctx, store.TableApplications, store.Eq("id", id))
	if err := mustAffect(op, store.TableApplications, id, n, err); err != nil {
		return err
	}
	if cvURL != "" {
		a.env.removeBlob(ctx, a.bucket, blobKey(cvURL))
	}
	a.env.logger.WithFields(logrus.Fields{"application_id": id}).Info("Application deleted")
	return nil
}
