package beatplan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the sentinel matched by errors.Is for every argument
// violation detected by this package. It is the only error kind the planner
// produces; there are no transient or retryable failures.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a single argument violation by field name.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return strings.TrimSpace(e.Message)
	}
	return e.Field + ": " + strings.TrimSpace(e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidf(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
