// Package store is the Content Store gateway: a thin adapter over the hosted
// record store and blob store. Callers see typed apperrors instead of raw
// backend failures.
package store

import (
	"context"
	"io"
)

// Table names of the persisted collections.
const (
	TableJobs           = "jobs"
	TableApplications   = "applications"
	TableProducts       = "products"
	TableHeroImages     = "hero_images"
	TableCarouselImages = "carousel_images"
	TableOrders         = "orders"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpIn  Operator = "in"
)

// Filter is a single column predicate. Values is only read for OpIn.
type Filter struct {
	Column string
	Op     Operator
	Value  string
	Values []string
}

func Eq(column, value string) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

func Neq(column, value string) Filter {
	return Filter{Column: column, Op: OpNeq, Value: value}
}

func In(column string, values []string) Filter {
	return Filter{Column: column, Op: OpIn, Values: values}
}

// Query describes a select. An empty Columns selects every column; a zero
// Limit means no limit.
type Query struct {
	Columns   string
	Filters   []Filter
	OrderBy   string
	Ascending bool
	Limit     int
}

// RecordStore is the record half of the Content Store. Update and Delete with
// no filters apply to every row of the table.
type RecordStore interface {
	Select(ctx context.Context, table string, q Query, dest interface{}) error
	Insert(ctx context.Context, table string, rows interface{}, dest interface{}) error
	Update(ctx context.Context, table string, values map[string]interface{}, filters ...Filter) (int64, error)
	Delete(ctx context.Context, table string, filters ...Filter) (int64, error)
}

// BlobStore is the file half of the Content Store.
type BlobStore interface {
	Upload(ctx context.Context, bucket, name string, data io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, bucket string, names ...string) error
	PublicURL(bucket, name string) string
	List(ctx context.Context, bucket string) ([]string, error)
}

// ContentStore bundles both halves; the Supabase and memory drivers implement it.
type ContentStore interface {
	RecordStore
	BlobStore
}
