package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/catalog"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

func createProducts(t *testing.T, c *catalog.Catalog, names ...string) []models.Product {
	t.Helper()
	var out []models.Product
	for _, n := range names {
		p, err := c.Products.Create(context.Background(), catalog.ProductInput{
			Name:     n,
			ImageURL: "http://localhost:54321/storage/v1/object/public/product-images/" + n + ".jpg",
		})
		if err != nil {
			t.Fatalf("Create(%s): %v", n, err)
		}
		out = append(out, p)
	}
	return out
}

func orderOf(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	products, err := c.Products.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var parts []string
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s=%d", p.Name, p.DisplayOrder))
	}
	return strings.Join(parts, ",")
}

func TestCreateProduct_Appends(t *testing.T) {
	c, _ := newCatalog(t)
	ps := createProducts(t, c, "a", "b", "c")
	if ps[2].DisplayOrder != 3 || !ps[2].Active {
		t.Errorf("third product = %+v", ps[2])
	}
	if got := orderOf(t, c); got != "a=1,b=2,c=3" {
		t.Errorf("order = %s", got)
	}
}

func TestReorderProducts(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	ps := createProducts(t, c, "a", "b", "c")

	report, err := c.Products.Reorder(ctx, []string{ps[2].ID, ps[0].ID, ps[1].ID})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if len(report.Succeeded) != 3 {
		t.Errorf("report = %+v", report)
	}
	if got := orderOf(t, c); got != "c=1,a=2,b=3" {
		t.Errorf("order = %s", got)
	}

	if _, err := c.Products.Reorder(ctx, []string{ps[0].ID, ps[1].ID, ps[2].ID}); err != nil {
		t.Fatal(err)
	}
	if got := orderOf(t, c); got != "a=1,b=2,c=3" {
		t.Errorf("order = %s", got)
	}
}

func TestReorderProducts_RejectsNonPermutation(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	ps := createProducts(t, c, "a", "b")
	before := ms.Writes()

	cases := map[string][]string{
		"unknown":   {ps[0].ID, "zzz"},
		"duplicate": {ps[0].ID, ps[0].ID},
		"short":     {ps[1].ID},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.Products.Reorder(ctx, ids)
			wantKind(t, err, apperrors.KindValidation)
		})
	}
	if ms.Writes() != before {
		t.Errorf("rejected reorders wrote %d times", ms.Writes()-before)
	}
}

func TestReorderProducts_PartialFailure(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	ps := createProducts(t, c, "a", "b", "c")
	ms.SetHook(func(op, table string, filters []store.Filter) error {
		if op == "update" && len(filters) == 1 && filters[0].Value == ps[1].ID {
			return errors.New("(PGRST000) connection reset")
		}
		return nil
	})

	report, err := c.Products.Reorder(ctx, []string{ps[2].ID, ps[1].ID, ps[0].ID})
	if !apperrors.IsPartial(err) {
		t.Fatalf("err = %v, want partial", err)
	}
	if len(report.Succeeded) != 2 || len(report.Failed) != 1 || report.Failed[0].ID != ps[1].ID {
		t.Errorf("report = %+v", report)
	}
	ms.SetHook(nil)
	// b kept its old position; a re-fetch shows the stored order
	if got := orderOf(t, c); got != "c=1,b=2,a=3" {
		t.Errorf("stored order = %s", got)
	}
}

func TestDeleteProduct_Compacts(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	ps := createProducts(t, c, "a", "b", "c")

	if err := c.Products.Delete(ctx, ps[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := orderOf(t, c); got != "b=1,c=2" {
		t.Errorf("order = %s", got)
	}
	if r := ms.Removed(); len(r) != 1 || r[0] != "product-images/a.jpg" {
		t.Errorf("Removed = %v", r)
	}
	wantKind(t, c.Products.Delete(ctx, ps[0].ID), apperrors.KindNotFound)
}

func TestUpdateAndToggleProduct(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)
	p := createProducts(t, c, "a")[0]

	updated, err := c.Products.Update(ctx, p.ID, catalog.ProductInput{Name: "Cozonac", ImageURL: p.ImageURL, Tag: "Nou"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Cozonac" || updated.Tag == nil || *updated.Tag != "Nou" || !updated.Active || updated.DisplayOrder != 1 {
		t.Errorf("updated = %+v", updated)
	}

	active, err := c.Products.Toggle(ctx, p.ID, true)
	if err != nil || active {
		t.Fatalf("Toggle = %v, %v", active, err)
	}
	if got := c.Products.ListActive(ctx); len(got) != 0 {
		t.Errorf("active products = %+v", got)
	}
}

func TestListActive_SwallowsReadFailure(t *testing.T) {
	c, _ := newCatalog(t, store.TableJobs)
	if got := c.Products.ListActive(context.Background()); got == nil || len(got) != 0 {
		t.Errorf("ListActive = %v, want empty slice", got)
	}
}

func TestUploadProductImage(t *testing.T) {
	c, _ := newCatalog(t)
	file, err := c.Products.UploadImage(context.Background(), "pâine.JPG", "image/jpeg", strings.NewReader("img"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(file.URL, "/product-images/") {
		t.Errorf("url = %s", file.URL)
	}
	_, err = c.Products.UploadImage(context.Background(), "doc.pdf", "", strings.NewReader("x"))
	wantKind(t, err, apperrors.KindValidation)
}
