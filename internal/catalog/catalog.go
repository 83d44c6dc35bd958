// Package catalog holds the entity managers for jobs, applications,
// products, hero and carousel images and orders, together with the
// connectivity probe and the seed reconciliation used by reads.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

// Buckets names the blob buckets used by uploads.
type Buckets struct {
	CVs            string
	ProductImages  string
	HeroImages     string
	CarouselImages string
}

func DefaultBuckets() Buckets {
	return Buckets{
		CVs:            "cvs",
		ProductImages:  "product-images",
		HeroImages:     "hero-images",
		CarouselImages: "carousel-images",
	}
}

type Options struct {
	Buckets Buckets
	// ReorderWorkers bounds the concurrent row writes of a reorder.
	ReorderWorkers int
	// Now defaults to time.Now.
	Now func() time.Time
}

// env is shared by every manager.
type env struct {
	records  store.RecordStore
	blobs    store.BlobStore
	logger   *logrus.Logger
	validate *validator.Validate
	now      func() time.Time
	workers  int
}

// Catalog bundles the managers over one content store.
type Catalog struct {
	Probe          *Probe
	Jobs           *Jobs
	Applications   *Applications
	Products       *Products
	HeroImages     *Gallery[models.HeroImage]
	CarouselImages *Gallery[models.CarouselImage]
	Orders         *Orders

	env     *env
	buckets Buckets
}

func New(cs store.ContentStore, logger *logrus.Logger, opts Options) *Catalog {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReorderWorkers < 1 {
		opts.ReorderWorkers = 4
	}
	def := DefaultBuckets()
	if opts.Buckets.CVs == "" {
		opts.Buckets.CVs = def.CVs
	}
	if opts.Buckets.ProductImages == "" {
		opts.Buckets.ProductImages = def.ProductImages
	}
	if opts.Buckets.HeroImages == "" {
		opts.Buckets.HeroImages = def.HeroImages
	}
	if opts.Buckets.CarouselImages == "" {
		opts.Buckets.CarouselImages = def.CarouselImages
	}

	e := &env{
		records:  cs,
		blobs:    cs,
		logger:   logger,
		validate: newValidator(),
		now:      opts.Now,
		workers:  opts.ReorderWorkers,
	}
	probe := &Probe{records: cs, logger: logger}
	return &Catalog{
		Probe:          probe,
		Jobs:           &Jobs{env: e, probe: probe},
		Applications:   &Applications{env: e, bucket: opts.Buckets.CVs},
		Products:       &Products{env: e, bucket: opts.Buckets.ProductImages},
		HeroImages:     newGallery[models.HeroImage](e, store.TableHeroImages, opts.Buckets.HeroImages),
		CarouselImages: newGallery[models.CarouselImage](e, store.TableCarouselImages, opts.Buckets.CarouselImages),
		Orders:         &Orders{env: e},
		env:            e,
		buckets:        opts.Buckets,
	}
}

// Status is the admin view of the backend.
type Status struct {
	Connected bool   `json:"connected"`
	Mode      Mode   `json:"mode"`
	Setup     string `json:"setup,omitempty"`
}

func (c *Catalog) Status(ctx context.Context) Status {
	if !c.Probe.CheckConnection(ctx) {
		return Status{Connected: false, Mode: ModeDemo, Setup: SetupInstructions}
	}
	return Status{Connected: true, Mode: c.Mode(ctx)}
}

// Mode reports whether reads currently serve seed data.
func (c *Catalog) Mode(ctx context.Context) Mode {
	_, mode := c.Jobs.List(ctx)
	return mode
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates v and turns failures into a VALIDATION error.
func (e *env) check(op string, v interface{}) error {
	err := e.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation(op, "invalid input", err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return apperrors.Validation(op, strings.Join(parts, "; "), err)
}

func selectOne[T any](ctx context.Context, e *env, op, table, id string) (T, error) {
	var zero T
	var rows []T
	q := store.Query{Filters: []store.Filter{store.Eq("id", id)}, Limit: 1}
	if err := e.records.Select(ctx, table, q, &rows); err != nil {
		return zero, apperrors.WithOp(op, err)
	}
	if len(rows) == 0 {
		return zero, apperrors.NotFound(op, fmt.Sprintf("%s row %q not found", table, id), nil)
	}
	return rows[0], nil
}

// mustAffect turns a zero row count into NOT_FOUND.
func mustAffect(op, table, id string, n int64, err error) error {
	if err != nil {
		return apperrors.WithOp(op, err)
	}
	if n == 0 {
		return apperrors.NotFound(op, fmt.Sprintf("%s row %q not found", table, id), nil)
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
