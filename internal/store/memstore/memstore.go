// Package memstore is an in-process Content Store. It backs the "memory"
// driver for local development without Supabase credentials and doubles as
// the store used by package tests.
package memstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
)

type row = map[string]interface{}

// Hook lets tests inject failures. It is called before every write and every
// select; a non-nil return aborts the operation with that error.
type Hook func(op, table string, filters []store.Filter) error

// Store keeps rows as decoded JSON objects, in insertion order per table.
type Store struct {
	mu      sync.Mutex
	tables  map[string][]row
	buckets map[string]map[string][]byte
	removed []string
	writes  int
	clock   time.Time
	tick    int
	baseURL string
	hook    Hook
}

var defaultTables = []string{
	store.TableJobs,
	store.TableApplications,
	store.TableProducts,
	store.TableHeroImages,
	store.TableCarouselImages,
	store.TableOrders,
}

// New creates a store with the given tables, or every known table when none
// are named. Selecting from any other table fails like a missing relation.
func New(tables ...string) *Store {
	if len(tables) == 0 {
		tables = defaultTables
	}
	s := &Store{
		tables:  make(map[string][]row, len(tables)),
		buckets: make(map[string]map[string][]byte),
		clock:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		baseURL: "http://localhost:54321/storage/v1",
	}
	for _, t := range tables {
		s.tables[t] = nil
	}
	return s
}

// SetHook installs a failure hook; nil removes it.
func (s *Store) SetHook(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

// DropTable removes a table so subsequent operations see a missing relation.
func (s *Store) DropTable(table string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, table)
}

// Writes counts insert, update and delete calls that reached the store.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Removed lists "bucket/name" keys passed to Remove, in call order.
func (s *Store) Removed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removed...)
}

// Rows returns a copy of the raw rows of table.
func (s *Store) Rows(table string) []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[string]interface{}, 0, len(s.tables[table]))
	for _, r := range s.tables[table] {
		out = append(out, cloneRow(r))
	}
	return out
}

// PutBlob seeds a blob without going through Upload.
func (s *Store) PutBlob(bucket, name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string][]byte)
	}
	s.buckets[bucket][name] = data
}

func (s *Store) missing(op, table string) error {
	return store.Classify(op, fmt.Errorf("(42P01) relation \"public.%s\" does not exist", table))
}

func (s *Store) check(op, table string, filters []store.Filter) error {
	if s.hook != nil {
		if err := s.hook(op, table, filters); err != nil {
			return store.Classify(op+" "+table, err)
		}
	}
	if _, ok := s.tables[table]; !ok {
		return s.missing(op+" "+table, table)
	}
	return nil
}

func (s *Store) now() string {
	s.tick++
	return s.clock.Add(time.Duration(s.tick) * time.Second).Format(time.RFC3339Nano)
}

func (s *Store) Select(ctx context.Context, table string, q store.Query, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Connection("select "+table, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("select", table, q.Filters); err != nil {
		return err
	}

	var matched []row
	for _, r := range s.tables[table] {
		if matches(r, q.Filters) {
			matched = append(matched, project(r, q.Columns))
		}
	}
	if q.OrderBy != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			c := compare(matched[i][q.OrderBy], matched[j][q.OrderBy])
			if q.Ascending {
				return c < 0
			}
			return c > 0
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	if matched == nil {
		matched = []row{}
	}
	return decodeInto(matched, dest)
}

func (s *Store) Insert(ctx context.Context, table string, rows interface{}, dest interface{}) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Connection("insert "+table, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if err := s.check("insert", table, nil); err != nil {
		return err
	}

	decoded, err := toRows(rows)
	if err != nil {
		return apperrors.Validation("insert "+table, "rows are not JSON objects", err)
	}
	for _, r := range decoded {
		if id, _ := r["id"].(string); id == "" {
			r["id"] = uuid.NewString()
		}
		if _, ok := r["created_at"]; !ok {
			r["created_at"] = s.now()
		}
		s.tables[table] = append(s.tables[table], r)
	}
	if dest == nil {
		return nil
	}
	out := make([]row, 0, len(decoded))
	for _, r := range decoded {
		out = append(out, cloneRow(r))
	}
	return decodeInto(out, dest)
}

func (s *Store) Update(ctx context.Context, table string, values map[string]interface{}, filters ...store.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, apperrors.Connection("update "+table, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if err := s.check("update", table, filters); err != nil {
		return 0, err
	}

	patch, err := toRows(values)
	if err != nil || len(patch) != 1 {
		return 0, apperrors.Validation("update "+table, "values are not a JSON object", err)
	}
	var n int64
	for _, r := range s.tables[table] {
		if !matches(r, filters) {
			continue
		}
		for k, v := range patch[0] {
			r[k] = v
		}
		n++
	}
	return n, nil
}

func (s *Store) Delete(ctx context.Context, table string, filters ...store.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, apperrors.Connection("delete "+table, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if err := s.check("delete", table, filters); err != nil {
		return 0, err
	}

	kept := s.tables[table][:0]
	var n int64
	for _, r := range s.tables[table] {
		if matches(r, filters) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	s.tables[table] = kept
	return n, nil
}

func (s *Store) Upload(ctx context.Context, bucket, name string, data io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperrors.Connection("upload "+bucket, "request cancelled", err)
	}
	body, err := io.ReadAll(data)
	if err != nil {
		return "", apperrors.Store("upload "+bucket, "could not read upload", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hook != nil {
		if err := s.hook("upload", bucket, nil); err != nil {
			return "", store.Classify("upload "+bucket, err)
		}
	}
	if s.buckets[bucket] == nil {
		s.buckets[bucket] = make(map[string][]byte)
	}
	if _, exists := s.buckets[bucket][name]; exists {
		return "", apperrors.Validation("upload "+bucket, "object already exists", nil)
	}
	s.buckets[bucket][name] = body
	return s.publicURL(bucket, name), nil
}

func (s *Store) Remove(ctx context.Context, bucket string, names ...string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Connection("remove "+bucket, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hook != nil {
		if err := s.hook("remove", bucket, nil); err != nil {
			return store.Classify("remove "+bucket, err)
		}
	}
	for _, n := range names {
		s.removed = append(s.removed, bucket+"/"+n)
		delete(s.buckets[bucket], n)
	}
	return nil
}

func (s *Store) PublicURL(bucket, name string) string {
	return s.publicURL(bucket, name)
}

func (s *Store) publicURL(bucket, name string) string {
	return s.baseURL + "/object/public/" + bucket + "/" + name
}

func (s *Store) List(ctx context.Context, bucket string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Connection("list "+bucket, "request cancelled", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.buckets[bucket]))
	for n := range s.buckets[bucket] {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func matches(r row, filters []store.Filter) bool {
	for _, f := range filters {
		v := text(r[f.Column])
		switch f.Op {
		case store.OpNeq:
			if v == f.Value {
				return false
			}
		case store.OpIn:
			found := false
			for _, want := range f.Values {
				if v == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		default:
			if v != f.Value {
				return false
			}
		}
	}
	return true
}

func project(r row, columns string) row {
	if columns == "" || columns == "*" {
		return cloneRow(r)
	}
	out := make(row)
	for _, c := range strings.Split(columns, ",") {
		c = strings.TrimSpace(c)
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}

func text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return fmt.Sprintf("%v", t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// compare orders nulls last, numbers numerically and everything else as text.
func compare(a, b interface{}) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}
	fa, aNum := a.(float64)
	fb, bNum := b.(float64)
	if aNum && bNum {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(text(a), text(b))
}

func toRows(v interface{}) ([]row, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var rows []row
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}
	var r row
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return []row{r}, nil
}

func decodeInto(rows []row, dest interface{}) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return apperrors.Store("decode", "could not encode rows", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperrors.Store("decode", "could not decode rows", err)
	}
	return nil
}

func cloneRow(r row) row {
	out := make(row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

var _ store.ContentStore = (*Store)(nil)
