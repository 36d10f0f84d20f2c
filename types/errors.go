package types

import (
	"errors"
	"fmt"
)

// Failure conditions surfaced by the store. Nothing here is fatal to the
// process: every failure is a returned condition the CLI translates into a
// user-facing message.
var (
	// ErrNotFound is returned when a lookup by tax code, name or position
	// matches nothing.
	ErrNotFound = errors.New("customer not found")

	// ErrDuplicateKey is returned when an insert collides with an existing
	// tax code.
	ErrDuplicateKey = errors.New("a customer with this tax code already exists")

	// ErrNoData is returned by a load whose source files cannot be opened.
	// This is the normal outcome on first run, not an error to report.
	ErrNoData = errors.New("no saved data found")

	// ErrMalformedRecord marks a persisted line that does not decode to the
	// expected field count. It is always absorbed inside load: the line is
	// skipped and the load as a whole still succeeds.
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedRecordError wraps ErrMalformedRecord with the offending field
// count so skipped lines can be logged with context.
func MalformedRecordError(got, want int) error {
	return fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, want, got)
}
