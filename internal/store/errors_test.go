package store_test

import (
	"errors"
	"net/url"
	"testing"

	storage_go "github.com/supabase-community/storage-go"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"undefined table", errors.New(`(42P01) relation "public.jobs" does not exist`), apperrors.KindEmptyOrMissing},
		{"schema cache miss", errors.New("(PGRST205) Could not find the table 'public.jobs' in the schema cache"), apperrors.KindEmptyOrMissing},
		{"jwt rejected", errors.New("(PGRST301) JWSError JWSInvalidSignature"), apperrors.KindConnection},
		{"permission", errors.New("(42501) permission denied for table jobs"), apperrors.KindConnection},
		{"transport", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}, apperrors.KindConnection},
		{"unreadable body", errors.New("error parsing error response: invalid character '<'"), apperrors.KindConnection},
		{"not null", errors.New(`(23502) null value in column "title" violates not-null constraint`), apperrors.KindValidation},
		{"unique", errors.New("(23505) duplicate key value violates unique constraint"), apperrors.KindValidation},
		{"bad uuid", errors.New(`(22P02) invalid input syntax for type uuid: "abc"`), apperrors.KindValidation},
		{"other backend", errors.New("(PGRST100) failed to parse filter"), apperrors.KindStore},
		{"storage auth", &storage_go.StorageError{Status: 403, Message: "denied"}, apperrors.KindConnection},
		{"storage missing", &storage_go.StorageError{Status: 404, Message: "not found"}, apperrors.KindNotFound},
		{"storage too large", &storage_go.StorageError{Status: 413, Message: "too large"}, apperrors.KindValidation},
		{"storage rls by message", &storage_go.StorageError{Message: "new row violates row-level security policy"}, apperrors.KindConnection},
		{"storage duplicate by message", &storage_go.StorageError{Message: "The resource already exists"}, apperrors.KindValidation},
		{"storage missing by message", &storage_go.StorageError{Message: "Object not found"}, apperrors.KindNotFound},
		{"storage size by message", &storage_go.StorageError{Message: "The object exceeded the maximum allowed size"}, apperrors.KindValidation},
		{"storage unknown by message", &storage_go.StorageError{Message: "internal error"}, apperrors.KindStore},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := store.Classify("op", c.err)
			if apperrors.KindOf(got) != c.want {
				t.Errorf("Classify(%v) kind = %s, want %s", c.err, apperrors.KindOf(got), c.want)
			}
			if !errors.Is(got, c.err) {
				t.Error("classified error should wrap the original")
			}
		})
	}
}

func TestClassify_KeepsTypedErrors(t *testing.T) {
	typed := apperrors.Validation("SubmitOrder", "bad", nil)
	if got := store.Classify("op", typed); got != error(typed) {
		t.Errorf("Classify should return typed errors unchanged, got %v", got)
	}
	if store.Classify("op", nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}

func TestBackendCode(t *testing.T) {
	if got := store.BackendCode(errors.New("(23505) duplicate")); got != "23505" {
		t.Errorf("BackendCode = %q, want 23505", got)
	}
	if got := store.BackendCode(errors.New("plain failure")); got != "" {
		t.Errorf("BackendCode(plain) = %q, want empty", got)
	}
}
