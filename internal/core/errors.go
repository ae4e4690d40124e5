package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the store and the web layer. The store returns
// ErrUnauthorized as an outright denial whenever the acting identity does not
// own the target row (or is unauthenticated); it never silently filters such
// rows out.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid input")
)

// FormatError reports a structural problem with an uploaded file: fewer than
// two rows, or a missing required header column. It blocks the import before
// any row is processed.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// RowValidationError reports a single invalid data row. Line is 1-based and
// counts the header as line 1, so the first data row is line 2. The import
// aborts on the first such error; since validation completes before any
// write, no partial import occurs.
type RowValidationError struct {
	Line   int
	Reason string
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
