package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/seed"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

// BulkStep is the last step a bulk operation reached.
type BulkStep string

const (
	StepProbe        BulkStep = "probe"
	StepSeed         BulkStep = "seed"
	StepApply        BulkStep = "apply"
	StepApplications BulkStep = "applications"
	StepBlobs        BulkStep = "blobs"
	StepDone         BulkStep = "done"
)

// BulkReport describes what a bulk operation changed. It is returned on
// failure as well, so callers can see how far the operation got.
type BulkReport struct {
	Step                BulkStep `json:"step"`
	SeedsInserted       []string `json:"seeds_inserted"`
	RowsAffected        int64    `json:"rows_affected"`
	ApplicationsDeleted int64    `json:"applications_deleted,omitempty"`
	BlobsPurged         int      `json:"blobs_purged,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
}

func (r BulkReport) wrote() bool {
	return len(r.SeedsInserted) > 0 || r.RowsAffected > 0 || r.ApplicationsDeleted > 0
}

// fail labels err with op and flags it partial when something was written.
func (r BulkReport) fail(op string, err error) (BulkReport, error) {
	err = apperrors.WithOp(op, err)
	if r.wrote() {
		err = apperrors.MarkPartial(err)
	}
	return r, err
}

func newBulkReport() BulkReport {
	return BulkReport{Step: StepProbe, SeedsInserted: []string{}}
}

// ActivateAll stores any default job not yet present by title, then sets
// active on every row. Rows toggled concurrently by another session are
// overwritten as well.
func (j *Jobs) ActivateAll(ctx context.Context) (BulkReport, error) {
	return j.setAllActive(ctx, "ActivateAllJobs", true)
}

func (j *Jobs) DeactivateAll(ctx context.Context) (BulkReport, error) {
	return j.setAllActive(ctx, "DeactivateAllJobs", false)
}

func (j *Jobs) setAllActive(ctx context.Context, op string, active bool) (BulkReport, error) {
	report := newBulkReport()
	if !j.probe.CheckConnection(ctx) {
		return report, apperrors.Connection(op, SetupInstructions, nil)
	}

	report.Step = StepSeed
	var existing []struct {
		Title string `json:"title"`
	}
	if err := j.env.records.Select(ctx, store.TableJobs, store.Query{Columns: "title"}, &existing); err != nil {
		return report.fail(op, err)
	}
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		have[e.Title] = true
	}
	var missing []models.Job
	for _, s := range seed.Jobs() {
		if have[s.Title] {
			continue
		}
		s.ID = ""
		s.Active = active
		missing = append(missing, s)
	}
	if len(missing) > 0 {
		if err := j.env.records.Insert(ctx, store.TableJobs, missing, nil); err != nil {
			return report.fail(op, err)
		}
		for _, m := range missing {
			report.SeedsInserted = append(report.SeedsInserted, m.Title)
		}
	}

	report.Step = StepApply
	n, err := j.env.records.Update(ctx, store.TableJobs, map[string]interface{}{"active": active})
	if err != nil {
		return report.fail(op, err)
	}
	report.RowsAffected = n
	report.Step = StepDone

	j.env.logger.WithFields(logrus.Fields{
		"active":         active,
		"seeds_inserted": len(report.SeedsInserted),
		"rows_affected":  n,
	}).Info("Bulk job activation applied")
	return report, nil
}

// DeleteAll removes every stored job. Reads fall back to the default jobs
// afterwards.
func (j *Jobs) DeleteAll(ctx context.Context) (BulkReport, error) {
	const op = "DeleteAllJobs"
	report := newBulkReport()
	if !j.probe.CheckConnection(ctx) {
		return report, apperrors.Connection(op, SetupInstructions, nil)
	}
	report.Step = StepApply
	n, err := j.env.records.Delete(ctx, store.TableJobs)
	if err != nil {
		return report.fail(op, err)
	}
	report.RowsAffected = n
	report.Step = StepDone
	j.env.logger.WithFields(logrus.Fields{"rows_affected": n}).Info("All jobs deleted")
	return report, nil
}

// ResetDatabase deletes every job and application, then tries to purge the
// CV bucket. Blob failures are reported as warnings only.
func (c *Catalog) ResetDatabase(ctx context.Context) (BulkReport, error) {
	const op = "ResetDatabase"
	e := c.env
	report := newBulkReport()
	if !c.Probe.CheckConnection(ctx) {
		return report, apperrors.Connection(op, SetupInstructions, nil)
	}

	report.Step = StepApply
	n, err := e.records.Delete(ctx, store.TableJobs)
	if err != nil {
		return report.fail(op, err)
	}
	report.RowsAffected = n

	report.Step = StepApplications
	n, err = e.records.Delete(ctx, store.TableApplications)
	if err != nil {
		return report.fail(op, err)
	}
	report.ApplicationsDeleted = n

	report.Step = StepBlobs
	names, err := e.blobs.List(ctx, c.buckets.CVs)
	if err == nil && len(names) > 0 {
		err = e.blobs.Remove(ctx, c.buckets.CVs, names...)
		if err == nil {
			report.BlobsPurged = len(names)
		}
	}
	if err != nil {
		e.logger.WithFields(logrus.Fields{"bucket": c.buckets.CVs, "error": err.Error()}).Warn("CV purge failed")
		report.Warnings = append(report.Warnings, "uploaded CVs could not be purged: "+err.Error())
	}
	report.Step = StepDone

	e.logger.WithFields(logrus.Fields{
		"jobs_deleted":         report.RowsAffected,
		"applications_deleted": report.ApplicationsDeleted,
		"blobs_purged":         report.BlobsPurged,
	}).Info("Database reset")
	return report, nil
}
