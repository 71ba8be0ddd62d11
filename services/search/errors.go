package search

import (
	"errors"
	"fmt"
)

// ErrInvalidQuery matches any *InvalidQueryError via errors.Is.
var ErrInvalidQuery = errors.New("invalid query")

// InvalidQueryError reports a query field that failed validation. The engine
// never silently corrects an out-of-range field; the boundary layer is
// expected to reject the request, naming the field.
type InvalidQueryError struct {
	Field  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query field %s: %s", e.Field, e.Reason)
}

func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}
