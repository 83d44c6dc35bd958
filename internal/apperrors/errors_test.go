package apperrors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"bakerysite/api-gateway/internal/apperrors"
)

func TestKindOf_Wrapped(t *testing.T) {
	base := apperrors.Validation("SubmitOrder", "delivery address is required", nil)
	wrapped := fmt.Errorf("handler: %w", base)

	if got := apperrors.KindOf(wrapped); got != apperrors.KindValidation {
		t.Errorf("KindOf = %s, want %s", got, apperrors.KindValidation)
	}
	if !apperrors.Is(wrapped, apperrors.KindValidation) {
		t.Error("Is(wrapped, VALIDATION) should be true")
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	if got := apperrors.KindOf(errors.New("boom")); got != apperrors.KindStore {
		t.Errorf("KindOf(plain) = %s, want STORE", got)
	}
	if apperrors.Is(nil, apperrors.KindStore) {
		t.Error("Is(nil, ...) should be false")
	}
}

func TestWithOp_KeepsKind(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := apperrors.WithOp("ListProducts", apperrors.Connection("select", "store unreachable", cause))

	if apperrors.KindOf(err) != apperrors.KindConnection {
		t.Errorf("kind = %s, want CONNECTION", apperrors.KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Error("WithOp should keep the cause in the chain")
	}
	if !strings.HasPrefix(err.Error(), "ListProducts: CONNECTION") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestMarkPartial(t *testing.T) {
	err := apperrors.MarkPartial(apperrors.Store("update", "blanket update failed", nil))
	if !apperrors.IsPartial(err) {
		t.Error("IsPartial should be true after MarkPartial")
	}
	if apperrors.IsPartial(apperrors.Store("update", "x", nil)) {
		t.Error("fresh error should not be partial")
	}

	plain := apperrors.MarkPartial(errors.New("raw"))
	if !apperrors.IsPartial(plain) || apperrors.KindOf(plain) != apperrors.KindStore {
		t.Error("MarkPartial should classify raw errors as partial STORE errors")
	}
}

func TestNew_CapturesStack(t *testing.T) {
	err := apperrors.NotFound("get", "no such row", nil)
	if len(err.StackTrace()) == 0 {
		t.Error("expected a captured stack")
	}
}
