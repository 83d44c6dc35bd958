package catalog

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/batch"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

// Gallery manages an ordered image collection backed by one table and one
// bucket.
type Gallery[T models.HeroImage | models.CarouselImage] struct {
	env    *env
	table  string
	bucket string
}

func newGallery[T models.HeroImage | models.CarouselImage](e *env, table, bucket string) *Gallery[T] {
	return &Gallery[T]{env: e, table: table, bucket: bucket}
}

func (g *Gallery[T]) List(ctx context.Context) ([]T, error) {
	images := []T{}
	if err := g.env.records.Select(ctx, g.table, byDisplayOrder, &images); err != nil {
		return nil, apperrors.WithOp("List "+g.table, err)
	}
	return images, nil
}

// Visible is the public listing. Read failures yield an empty list.
func (g *Gallery[T]) Visible(ctx context.Context) []T {
	images, err := g.List(ctx)
	if err != nil {
		g.env.logger.WithFields(logrus.Fields{"table": g.table, "error": err.Error()}).Warn("Image read failed")
		return []T{}
	}
	return images
}

// Add uploads the image and appends it at the end of the display order.
func (g *Gallery[T]) Add(ctx context.Context, fileName, contentType string, r io.Reader, altText string) (T, error) {
	var zero T
	op := "Add " + g.table
	pos, err := g.env.nextDisplayOrder(ctx, g.table)
	if err != nil {
		return zero, apperrors.WithOp(op, err)
	}
	file, err := g.env.upload(ctx, op, g.bucket, fileName, contentType, r, imageExtensions)
	if err != nil {
		return zero, err
	}

	row := map[string]interface{}{
		"image_url":     file.URL,
		"alt_text":      optional(altText),
		"display_order": pos,
	}
	var created []T
	if err := g.env.records.Insert(ctx, g.table, row, &created); err != nil {
		g.env.removeBlob(ctx, g.bucket, file.Name)
		return zero, apperrors.WithOp(op, err)
	}
	if len(created) == 0 {
		g.env.removeBlob(ctx, g.bucket, file.Name)
		return zero, apperrors.Store(op, "insert returned no row", nil)
	}
	return created[0], nil
}

// Delete removes the row, closes the gap in the display order and removes
// the image blob.
func (g *Gallery[T]) Delete(ctx context.Context, id string) error {
	op := "Delete " + g.table
	row, err := selectOne[orderedRow](ctx, g.env, op, g.table, id)
	if err != nil {
		return err
	}
	n, err := g.env.records.Delete(ctx, g.table, store.Eq("id", id))
	if err := mustAffect(op, g.table, id, n, err); err != nil {
		return err
	}
	if err := g.env.compact(ctx, g.table); err != nil {
		return apperrors.MarkPartial(apperrors.WithOp(op, err))
	}
	if key, ok := ownedBlobKey(row.ImageURL, g.bucket); ok {
		g.env.removeBlob(ctx, g.bucket, key)
	}
	g.env.logger.WithFields(logrus.Fields{"table": g.table, "id": id}).Info("Image deleted")
	return nil
}

func (g *Gallery[T]) Reorder(ctx context.Context, ids []string) (batch.Report, error) {
	return g.env.reorder(ctx, "Reorder "+g.table, g.table, ids)
}
