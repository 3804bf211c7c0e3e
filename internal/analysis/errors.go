package analysis

import (
	"strconv"
	"strings"
)

// ValidationError captures a single field-level problem in an analysis
// document.
type ValidationError struct {
	Index   int // position within beats/energy, -1 for document-level issues
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.Index >= 0 {
		parts = append(parts, "entry "+strconv.Itoa(e.Index))
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, " ")
}

// ValidationErrors aggregates multiple validation issues.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}

// Issues returns a copy of the underlying validation errors.
func (errs ValidationErrors) Issues() []ValidationError {
	return append([]ValidationError(nil), errs...)
}
