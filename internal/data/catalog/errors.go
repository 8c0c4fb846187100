package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRow       = errors.New("malformed catalog row")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTimeSlot    = errors.New("invalid time slot")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrCatalogUnavailable = errors.New("catalog file unavailable")
)

// ParseError ties a row-level failure to its position in the source file.
type ParseError struct {
	Row    int
	Line   string
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}
