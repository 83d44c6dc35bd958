// Package apperrors defines the error taxonomy shared by the store gateway,
// the entity managers and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Kind string

const (
	KindConnection     Kind = "CONNECTION"
	KindEmptyOrMissing Kind = "STORE_EMPTY_OR_MISSING"
	KindSeedImmutable  Kind = "SEED_RECORD_IMMUTABLE"
	KindValidation     Kind = "VALIDATION"
	KindNotFound       Kind = "NOT_FOUND"
	KindStore          Kind = "STORE"
)

// Error is the typed error returned by every layer above the Supabase client.
// Partial is set when a multi-step operation failed after at least one write
// was already applied.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
	Partial bool
	Stack   []byte
}

func (e *Error) Error() string {
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

func New(kind Kind, op, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Op:      op,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Connection(op, message string, err error) *Error {
	return New(KindConnection, op, message, err)
}

func EmptyOrMissing(op, message string, err error) *Error {
	return New(KindEmptyOrMissing, op, message, err)
}

func SeedImmutable(op, id string) *Error {
	return New(KindSeedImmutable, op, fmt.Sprintf("record %q is a default record and must be activated before it can be changed", id), nil)
}

func Validation(op, message string, err error) *Error {
	return New(KindValidation, op, message, err)
}

func NotFound(op, message string, err error) *Error {
	return New(KindNotFound, op, message, err)
}

func Store(op, message string, err error) *Error {
	return New(KindStore, op, message, err)
}

// KindOf returns the kind of the outermost *Error in err's chain, or KindStore
// for errors that were never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// WithOp re-labels err with the manager operation that surfaced it, keeping the
// kind assigned by the gateway.
func WithOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return &Error{Kind: e.Kind, Op: op, Message: e.Message, Err: e.Err, Partial: e.Partial, Stack: e.Stack}
	}
	return Store(op, "store operation failed", err)
}

// MarkPartial flags err as a failure that left the store partially updated.
func MarkPartial(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		cp := *e
		cp.Partial = true
		return &cp
	}
	wrapped := Store("", "operation partially applied", err)
	wrapped.Partial = true
	return wrapped
}

func IsPartial(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Partial
}
