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

type Products struct {
	env    *env
	bucket string
}

// ProductInput is the editable part of a product. A nil Active means true on
// create and unchanged on update.
type ProductInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Tag         string `json:"tag" validate:"max=50"`
	ImageURL    string `json:"image_url" validate:"required"`
	Active      *bool  `json:"active"`
}

// List returns every product by display order.
func (p *Products) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.env.records.Select(ctx, store.TableProducts, byDisplayOrder, &products); err != nil {
		return nil, apperrors.WithOp("ListProducts", err)
	}
	return products, nil
}

// ListActive is the public listing. Read failures yield an empty list.
func (p *Products) ListActive(ctx context.Context) []models.Product {
	q := byDisplayOrder
	q.Filters = []store.Filter{store.Eq("active", "true")}
	products := []models.Product{}
	if err := p.env.records.Select(ctx, store.TableProducts, q, &products); err != nil {
		p.env.logger.WithFields(logrus.Fields{"error": err.Error()}).Warn("Product read failed")
		return []models.Product{}
	}
	return products
}

// Create appends the product at the end of the display order.
func (p *Products) Create(ctx context.Context, in ProductInput) (models.Product, error) {
	const op = "CreateProduct"
	if err := p.env.check(op, in); err != nil {
		return models.Product{}, err
	}
	pos, err := p.env.nextDisplayOrder(ctx, store.TableProducts)
	if err != nil {
		return models.Product{}, apperrors.WithOp(op, err)
	}

	product := models.Product{
		Name:         in.Name,
		Description:  in.Description,
		Tag:          optional(in.Tag),
		ImageURL:     in.ImageURL,
		Active:       in.Active == nil || *in.Active,
		DisplayOrder: pos,
	}
	var created []models.Product
	if err := p.env.records.Insert(ctx, store.TableProducts, product, &created); err != nil {
		return models.Product{}, apperrors.WithOp(op, err)
	}
	if len(created) == 0 {
		return models.Product{}, apperrors.Store(op, "insert returned no row", nil)
	}
	p.env.logger.WithFields(logrus.Fields{"product_id": created[0].ID, "display_order": pos}).Info("Product created")
	return created[0], nil
}

func (p *Products) Update(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	const op = "UpdateProduct"
	if err := p.env.check(op, in); err != nil {
		return models.Product{}, err
	}
	values := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
		"tag":         optional(in.Tag),
		"image_url":   in.ImageURL,
	}
	if in.Active != nil {
		values["active"] = *in.Active
	}
	n, err := p.env.records.Update(ctx, store.TableProducts, values, store.Eq("id", id))
	if err := mustAffect(op, store.TableProducts, id, n, err); err != nil {
		return models.Product{}, err
	}
	return selectOne[models.Product](ctx, p.env, op, store.TableProducts, id)
}

// Delete removes the product, closes the gap in the display order and removes
// its image when it lives in the product bucket.
func (p *Products) Delete(ctx context.Context, id string) error {
	const op = "DeleteProduct"
	row, err := selectOne[orderedRow](ctx, p.env, op, store.TableProducts, id)
	if err != nil {
		return err
	}
	n, err := p.env.records.Delete(ctx, store.TableProducts, store.Eq("id", id))
	if err := mustAffect(op, store.TableProducts, id, n, err); err != nil {
		return err
	}
	if err := p.env.compact(ctx, store.TableProducts); err != nil {
		return apperrors.MarkPartial(apperrors.WithOp(op, err))
	}
	if key, ok := ownedBlobKey(row.ImageURL, p.bucket); ok {
		p.env.removeBlob(ctx, p.bucket, key)
	}
	p.env.logger.WithFields(logrus.Fields{"product_id": id}).Info("Product deleted")
	return nil
}

// Toggle sets active to !currentActive and returns the new value.
func (p *Products) Toggle(ctx context.Context, id string, currentActive bool) (bool, error) {
	const op = "ToggleProductActive"
	n, err := p.env.records.Update(ctx, store.TableProducts, map[string]interface{}{"active": !currentActive}, store.Eq("id", id))
	if err := mustAffect(op, store.TableProducts, id, n, err); err != nil {
		return currentActive, err
	}
	return !currentActive, nil
}

func (p *Products) Reorder(ctx context.Context, ids []string) (batch.Report, error) {
	return p.env.reorder(ctx, "ReorderProducts", store.TableProducts, ids)
}

func (p *Products) UploadImage(ctx context.Context, fileName, contentType string, r io.Reader) (UploadedFile, error) {
	return p.env.upload(ctx, "UploadProductImage", p.bucket, fileName, contentType, r, imageExtensions)
}
