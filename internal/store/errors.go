package store

import (
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"

	storage_go "github.com/supabase-community/storage-go"

	"bakerysite/api-gateway/internal/apperrors"
)

// postgrest-go flattens backend failures into "(<code>) <message>".
var postgrestErr = regexp.MustCompile(`^\(([A-Za-z0-9]*)\) (.*)$`)

var missingTableCodes = map[string]bool{
	"42P01":    true, // undefined_table
	"PGRST205": true, // table not in schema cache
	"PGRST106": true, // schema not exposed
}

var connectionCodes = map[string]bool{
	"PGRST000": true,
	"PGRST001": true,
	"PGRST002": true,
	"PGRST003": true,
	"PGRST301": true, // JWT rejected
	"PGRST302": true, // anonymous access disabled
	"42501":    true, // insufficient_privilege
	"28000":    true,
	"28P01":    true,
}

// BackendCode extracts the PostgREST error code from err, if any.
func BackendCode(err error) string {
	if err == nil {
		return ""
	}
	m := postgrestErr.FindStringSubmatch(err.Error())
	if m == nil {
		return ""
	}
	return m[1]
}

// Classify maps a raw Supabase client error onto the apperrors taxonomy.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var typed *apperrors.Error
	if errors.As(err, &typed) {
		return err
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return apperrors.Connection(op, "content store unreachable", err)
	}

	var storageErr *storage_go.StorageError
	if errors.As(err, &storageErr) {
		return classifyStorage(op, storageErr)
	}

	if strings.HasPrefix(err.Error(), "error parsing error response") {
		// non-JSON error bodies come from the gateway in front of PostgREST, not from PostgREST itself
		return apperrors.Connection(op, "content store returned an unreadable error", err)
	}

	code := BackendCode(err)
	switch {
	case missingTableCodes[code]:
		return apperrors.EmptyOrMissing(op, "collection does not exist", err)
	case connectionCodes[code]:
		return apperrors.Connection(op, "content store rejected the credentials", err)
	case strings.HasPrefix(code, "23"), code == "22P02", code == "22001", code == "22007", code == "22008":
		return apperrors.Validation(op, "record violates a store constraint", err)
	}
	return apperrors.Store(op, "content store operation failed", err)
}

// Supabase Storage replies with {"statusCode":"403","error":...,"message":...};
// storage-go only decodes "status", so Status is usually 0 and the message
// is all that is left to go on.
var storageMessageStatus = []struct {
	fragment string
	status   int
}{
	{"row-level security", 403},
	{"unauthorized", 401},
	{"jwt", 401},
	{"jws", 401},
	{"signature", 401},
	{"not found", 404},
	{"already exists", 409},
	{"duplicate", 409},
	{"exceeded the maximum allowed size", 413},
	{"too large", 413},
	{"mime type", 415},
	{"invalid key", 400},
}

func storageStatus(err *storage_go.StorageError) int {
	if err.Status != 0 {
		return err.Status
	}
	msg := strings.ToLower(err.Message)
	for _, m := range storageMessageStatus {
		if strings.Contains(msg, m.fragment) {
			return m.status
		}
	}
	return 0
}

func classifyStorage(op string, err *storage_go.StorageError) error {
	switch storageStatus(err) {
	case 401, 403:
		return apperrors.Connection(op, "blob store rejected the credentials", err)
	case 404:
		return apperrors.NotFound(op, "blob or bucket not found", err)
	case 400, 409, 413, 415:
		return apperrors.Validation(op, "blob rejected by the store", err)
	}
	return apperrors.Store(op, "blob store operation failed", err)
}
