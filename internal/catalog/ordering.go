package catalog

import (
	"context"
	"fmt"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/batch"
	"bakerysite/api-gateway/internal/store"
)

// orderedRow is the part of a product, hero or carousel row that ordering
// and blob cleanup need.
type orderedRow struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"display_order"`
	ImageURL     string `json:"image_url"`
}

var byDisplayOrder = store.Query{OrderBy: "display_order", Ascending: true}

func (e *env) loadOrder(ctx context.Context, table string) ([]orderedRow, error) {
	var rows []orderedRow
	q := store.Query{Columns: "id,display_order,image_url", OrderBy: "display_order", Ascending: true}
	if err := e.records.Select(ctx, table, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *env) nextDisplayOrder(ctx context.Context, table string) (int, error) {
	rows, err := e.loadOrder(ctx, table)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, r := range rows {
		if r.DisplayOrder >= next {
			next = r.DisplayOrder + 1
		}
	}
	return next, nil
}

// compact renumbers the rows of table to 1..N, keeping their relative order.
func (e *env) compact(ctx context.Context, table string) error {
	rows, err := e.loadOrder(ctx, table)
	if err != nil {
		return err
	}
	for i, r := range rows {
		if r.DisplayOrder == i+1 {
			continue
		}
		if _, err := e.records.Update(ctx, table, map[string]interface{}{"display_order": i + 1}, store.Eq("id", r.ID)); err != nil {
			return err
		}
	}
	return nil
}

// reorder writes display_order = index+1 for every id. The ids must be a
// permutation of the stored rows. Writes run concurrently and are not rolled
// back; on failure the caller should re-fetch to see the stored order.
func (e *env) reorder(ctx context.Context, op, table string, ids []string) (batch.Report, error) {
	rows, err := e.loadOrder(ctx, table)
	if err != nil {
		return batch.Report{}, apperrors.WithOp(op, err)
	}
	if err := checkPermutation(rows, ids); err != nil {
		return batch.Report{}, apperrors.Validation(op, err.Error(), nil)
	}

	jobs := make([]batch.Job, 0, len(ids))
	for i, id := range ids {
		id, pos := id, i+1
		jobs = append(jobs, batch.Func{Key: id, Fn: func(ctx context.Context) error {
			n, err := e.records.Update(ctx, table, map[string]interface{}{"display_order": pos}, store.Eq("id", id))
			return mustAffect(op, table, id, n, err)
		}})
	}
	report := batch.Run(ctx, e.workers, e.logger, jobs)
	if len(report.Failed) == 0 {
		return report, nil
	}
	err = apperrors.WithOp(op, report.Err())
	if len(report.Succeeded) > 0 {
		err = apperrors.MarkPartial(err)
	}
	return report, err
}

func checkPermutation(rows []orderedRow, ids []string) error {
	known := make(map[string]bool, len(rows))
	for _, r := range rows {
		known[r.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("unknown id %q", id)
		}
		if seen[id] {
			return fmt.Errorf("id %q listed twice", id)
		}
		seen[id] = true
	}
	if len(ids) != len(rows) {
		return fmt.Errorf("order lists %d of %d items", len(ids), len(rows))
	}
	return nil
}
