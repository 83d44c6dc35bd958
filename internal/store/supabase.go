package store

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	postgrest "github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"

	"bakerysite/api-gateway/internal/apperrors"
)

// Supabase implements ContentStore over the Supabase REST and Storage APIs.
type Supabase struct {
	client *supa.Client
	logger *logrus.Logger
}

// NewSupabase wraps an initialized Supabase client.
func NewSupabase(client *supa.Client, logger *logrus.Logger) *Supabase {
	return &Supabase{client: client, logger: logger}
}

func applyFilters(fb *postgrest.FilterBuilder, filters []Filter) *postgrest.FilterBuilder {
	for _, f := range filters {
		switch f.Op {
		case OpNeq:
			fb = fb.Neq(f.Column, f.Value)
		case OpIn:
			fb = fb.In(f.Column, f.Values)
		default:
			fb = fb.Eq(f.Column, f.Value)
		}
	}
	return fb
}

// everyRow is the filter used for blanket writes; Supabase rejects unfiltered
// PATCH and DELETE requests.
func everyRow(fb *postgrest.FilterBuilder, filters []Filter) *postgrest.FilterBuilder {
	if len(filters) == 0 {
		return fb.Not("id", "is", "null")
	}
	return applyFilters(fb, filters)
}

func (s *Supabase) Select(ctx context.Context, table string, q Query, dest interface{}) error {
	op := "select " + table
	if err := ctx.Err(); err != nil {
		return apperrors.Connection(op, "request cancelled", err)
	}

	columns := q.Columns
	if columns == "" {
		columns = "*"
	}
	fb := applyFilters(s.client.From(table).Select(columns, "", false), q.Filters)
	if q.OrderBy != "" {
		fb = fb.Order(q.OrderBy, &postgrest.OrderOpts{Ascending: q.Ascending})
	}
	if q.Limit > 0 {
		fb = fb.Limit(q.Limit, "")
	}

	body, _, err := fb.Execute()
	if err != nil {
		s.logger.WithFields(logrus.Fields{"table": table, "error": err.Error()}).Warn("Content store select failed")
		return Classify(op, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return apperrors.Store(op, "could not decode rows", err)
	}
	return nil
}

func (s *Supabase) Insert(ctx context.Context, table string, rows interface{}, dest interface{}) error {
	op := "insert " + table
	if err := ctx.Err(); err != nil {
		return apperrors.Connection(op, "request cancelled", err)
	}

	returning := "minimal"
	if dest != nil {
		returning = "representation"
	}
	body, _, err := s.client.From(table).Insert(rows, false, "", returning, "").Execute()
	if err != nil {
		s.logger.WithFields(logrus.Fields{"table": table, "error": err.Error()}).Error("Content store insert failed")
		return Classify(op, err)
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return apperrors.Store(op, "could not decode inserted rows", err)
	}
	return nil
}

func (s *Supabase) Update(ctx context.Context, table string, values map[string]interface{}, filters ...Filter) (int64, error) {
	op := "update " + table
	if err := ctx.Err(); err != nil {
		return 0, apperrors.Connection(op, "request cancelled", err)
	}

	_, count, err := everyRow(s.client.From(table).Update(values, "minimal", "exact"), filters).Execute()
	if err != nil {
		s.logger.WithFields(logrus.Fields{"table": table, "error": err.Error()}).Error("Content store update failed")
		return 0, Classify(op, err)
	}
	return count, nil
}

func (s *Supabase) Delete(ctx context.Context, table string, filters ...Filter) (int64, error) {
	op := "delete " + table
	if err := ctx.Err(); err != nil {
		return 0, apperrors.Connection(op, "request cancelled", err)
	}

	_, count, err := everyRow(s.client.From(table).Delete("minimal", "exact"), filters).Execute()
	if err != nil {
		s.logger.WithFields(logrus.Fields{"table": table, "error": err.Error()}).Error("Content store delete failed")
		return 0, Classify(op, err)
	}
	return count, nil
}

func (s *Supabase) Upload(ctx context.Context, bucket, name string, data io.Reader, contentType string) (string, error) {
	op := "upload " + bucket
	if err := ctx.Err(); err != nil {
		return "", apperrors.Connection(op, "request cancelled", err)
	}

	upsert := false
	opts := storage_go.FileOptions{Upsert: &upsert}
	if contentType != "" {
		opts.ContentType = &contentType
	}
	if _, err := s.client.Storage.UploadFile(bucket, name, data, opts); err != nil {
		s.logger.WithFields(logrus.Fields{"bucket": bucket, "name": name, "error": err.Error()}).Error("Blob upload failed")
		return "", Classify(op, err)
	}
	return s.PublicURL(bucket, name), nil
}

func (s *Supabase) Remove(ctx context.Context, bucket string, names ...string) error {
	op := "remove " + bucket
	if len(names) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Connection(op, "request cancelled", err)
	}
	if _, err := s.client.Storage.RemoveFile(bucket, names); err != nil {
		s.logger.WithFields(logrus.Fields{"bucket": bucket, "names": names, "error": err.Error()}).Warn("Blob removal failed")
		return Classify(op, err)
	}
	return nil
}

func (s *Supabase) PublicURL(bucket, name string) string {
	return s.client.Storage.GetPublicUrl(bucket, name).SignedURL
}

func (s *Supabase) List(ctx context.Context, bucket string) ([]string, error) {
	op := "list " + bucket
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Connection(op, "request cancelled", err)
	}
	objects, err := s.client.Storage.ListFiles(bucket, "", storage_go.FileSearchOptions{Limit: 1000})
	if err != nil {
		return nil, Classify(op, err)
	}
	names := make([]string, 0, len(objects))
	for _, o := range objects {
		// folder placeholders carry no id
		if o.Id == "" && !strings.Contains(o.Name, ".") {
			continue
		}
		names = append(names, o.Name)
	}
	return names, nil
}
