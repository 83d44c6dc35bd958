package store_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
)

type jobRow struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *store.Supabase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supa.NewClient(srv.URL, "test-service-key", nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return store.NewSupabase(client, logger)
}

func TestSupabase_SelectOrderedWithLimit(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/rest/v1/jobs" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("order"); got != "created_at.desc.nullslast" {
			t.Errorf("order = %q", got)
		}
		if got := q.Get("limit"); got != "1" {
			t.Errorf("limit = %q", got)
		}
		if got := q.Get("active"); got != "eq.true" {
			t.Errorf("active filter = %q", got)
		}
		if got := r.Header.Get("apikey"); got != "test-service-key" {
			t.Errorf("apikey header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a1","title":"Brutar"}]`))
	})

	var rows []jobRow
	err := gw.Select(context.Background(), store.TableJobs, store.Query{
		Filters: []store.Filter{store.Eq("active", "true")},
		OrderBy: "created_at",
		Limit:   1,
	}, &rows)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Brutar" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestSupabase_SelectMissingTable(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","message":"relation \"public.jobs\" does not exist"}`))
	})

	var rows []jobRow
	err := gw.Select(context.Background(), store.TableJobs, store.Query{}, &rows)
	if !apperrors.Is(err, apperrors.KindEmptyOrMissing) {
		t.Fatalf("err = %v, want STORE_EMPTY_OR_MISSING", err)
	}
}

func TestSupabase_BlanketUpdateTargetsEveryRow(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "not.is.null" {
			t.Errorf("id filter = %q, want not.is.null", got)
		}
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["active"] != true {
			t.Errorf("body = %v", body)
		}
		w.Header().Set("Content-Range", "0-2/3")
		w.WriteHeader(http.StatusNoContent)
	})

	n, err := gw.Update(context.Background(), store.TableJobs, map[string]interface{}{"active": true})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n != 3 {
		t.Errorf("rows affected = %d, want 3", n)
	}
}

func TestSupabase_DeleteByID(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "eq.42" {
			t.Errorf("id filter = %q", got)
		}
		w.Header().Set("Content-Range", "*/1")
		w.WriteHeader(http.StatusNoContent)
	})

	n, err := gw.Delete(context.Background(), store.TableOrders, store.Eq("id", "42"))
	if err != nil || n != 1 {
		t.Fatalf("Delete = (%d, %v), want (1, nil)", n, err)
	}
}

func TestSupabase_UploadAndRemove(t *testing.T) {
	var removed []string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/storage/v1/object/cvs/123_resume.pdf":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"Key":"cvs/123_resume.pdf"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/storage/v1/object/cvs":
			var body struct {
				Prefixes []string `json:"prefixes"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			removed = body.Prefixes
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	url, err := gw.Upload(context.Background(), "cvs", "123_resume.pdf", strings.NewReader("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasSuffix(url, "/storage/v1/object/public/cvs/123_resume.pdf") {
		t.Errorf("public url = %q", url)
	}

	if err := gw.Remove(context.Background(), "cvs", "123_resume.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(removed) != 1 || removed[0] != "123_resume.pdf" {
		t.Errorf("removed = %v", removed)
	}
}

func TestSupabase_CancelledContext(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a cancelled context")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var rows []jobRow
	if err := gw.Select(ctx, store.TableJobs, store.Query{}, &rows); !apperrors.Is(err, apperrors.KindConnection) {
		t.Errorf("err = %v, want CONNECTION", err)
	}
}

func TestSupabase_StorageErrorBodies(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"statusCode":"409","error":"Duplicate","message":"The resource already exists"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"statusCode":"403","error":"Unauthorized","message":"new row violates row-level security policy"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"statusCode":"404","error":"not_found","message":"Object not found"}`))
		}
	})

	_, err := gw.Upload(context.Background(), "cvs", "123_resume.pdf", strings.NewReader("%PDF"), "application/pdf")
	if !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("duplicate upload err = %v, want VALIDATION", err)
	}
	err = gw.Remove(context.Background(), "cvs", "123_resume.pdf")
	if !apperrors.Is(err, apperrors.KindConnection) {
		t.Errorf("forbidden remove err = %v, want CONNECTION", err)
	}
}
