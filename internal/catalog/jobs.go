package catalog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/seed"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

type Jobs struct {
	env   *env
	probe *Probe
}

// List returns stored jobs newest first, or the default jobs when there are none.
func (j *Jobs) List(ctx context.Context) ([]Entry[models.Job], Mode) {
	return reconcile(ctx, j.env, store.TableJobs, seed.Jobs())
}

// ListOpen is the public careers listing. In live mode only active postings
// are returned; in demo mode the default postings are shown as a showcase.
func (j *Jobs) ListOpen(ctx context.Context) []models.Job {
	entries, mode := j.List(ctx)
	if mode == ModeDemo {
		return Records(entries)
	}
	open := make([]models.Job, 0, len(entries))
	for _, e := range entries {
		if e.Record.Active {
			open = append(open, e.Record)
		}
	}
	return open
}

func (j *Jobs) Create(ctx context.Context, job models.Job) (models.Job, error) {
	const op = "CreateJob"
	job.ID = ""
	job.CreatedAt = nil
	if job.DatePosted == "" {
		job.DatePosted = j.env.now().Format("2006-01-02")
	}
	if err := j.env.check(op, job); err != nil {
		return models.Job{}, err
	}

	var created []models.Job
	if err := j.env.records.Insert(ctx, store.TableJobs, job, &created); err != nil {
		return models.Job{}, apperrors.WithOp(op, err)
	}
	if len(created) == 0 {
		return models.Job{}, apperrors.Store(op, "insert returned no row", nil)
	}
	j.env.logger.WithFields(logrus.Fields{"job_id": created[0].ID, "title": created[0].Title}).Info("Job created")
	return created[0], nil
}

// JobInput is the editable part of a stored job. A nil Active leaves the
// flag unchanged.
type JobInput struct {
	Title       string         `json:"title" validate:"required,max=200"`
	Type        models.JobType `json:"type" validate:"required,oneof=Full-time Part-time"`
	Location    string         `json:"location" validate:"required"`
	Description string         `json:"description"`
	Active      *bool          `json:"active"`
	DatePosted  string         `json:"date_posted" validate:"omitempty,datetime=2006-01-02"`
}

func (j *Jobs) Update(ctx context.Context, id string, in JobInput) (models.Job, error) {
	const op = "UpdateJob"
	if seed.IsSeedID(id) {
		return models.Job{}, apperrors.SeedImmutable(op, id)
	}
	if err := j.env.check(op, in); err != nil {
		return models.Job{}, err
	}

	values := map[string]interface{}{
		"title":       in.Title,
		"type":        in.Type,
		"location":    in.Location,
		"description": in.Description,
	}
	if in.Active != nil {
		values["active"] = *in.Active
	}
	if in.DatePosted != "" {
		values["date_posted"] = in.DatePosted
	}
	n, err := j.env.records.Update(ctx, store.TableJobs, values, store.Eq("id", id))
	if err := mustAffect(op, store.TableJobs, id, n, err); err != nil {
		return models.Job{}, err
	}
	return selectOne[models.Job](ctx, j.env, op, store.TableJobs, id)
}

func (j *Jobs) Delete(ctx context.Context, id string) error {
	const op = "DeleteJob"
	if seed.IsSeedID(id) {
		return apperrors.SeedImmutable(op, id)
	}
	n, err := j.env.records.Delete(ctx, store.TableJobs, store.Eq("id", id))
	if err := mustAffect(op, store.TableJobs, id, n, err); err != nil {
		return err
	}
	j.env.logger.WithFields(logrus.Fields{"job_id": id}).Info("Job deleted")
	return nil
}

// ToggleResult describes the row that now carries the toggled state.
// Promoted is set when a default job was copied into the store.
type ToggleResult struct {
	ID       string `json:"id"`
	Active   bool   `json:"active"`
	Promoted bool   `json:"promoted"`
}

// Toggle sets a stored job's active to !currentActive. A default job is
// promoted by inserting a copy with the opposite of its default state;
// currentActive is ignored for it and the template itself is never touched.
func (j *Jobs) Toggle(ctx context.Context, id string, currentActive bool) (ToggleResult, error) {
	const op = "ToggleJobStatus"

	if seed.IsSeedID(id) {
		tmpl, ok := seed.Job(id)
		if !ok {
			return ToggleResult{}, apperrors.NotFound(op, fmt.Sprintf("default job %q does not exist", id), nil)
		}
		target := !tmpl.Active
		tmpl.ID = ""
		tmpl.Active = target
		var created []models.Job
		if err := j.env.records.Insert(ctx, store.TableJobs, tmpl, &created); err != nil {
			return ToggleResult{}, apperrors.WithOp(op, err)
		}
		if len(created) == 0 {
			return ToggleResult{}, apperrors.Store(op, "insert returned no row", nil)
		}
		j.env.logger.WithFields(logrus.Fields{"seed_id": id, "job_id": created[0].ID, "active": target}).Info("Default job promoted")
		return ToggleResult{ID: created[0].ID, Active: target, Promoted: true}, nil
	}

	target := !currentActive
	n, err := j.env.records.Update(ctx, store.TableJobs, map[string]interface{}{"active": target}, store.Eq("id", id))
	if err := mustAffect(op, store.TableJobs, id, n, err); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{ID: id, Active: target}, nil
}
