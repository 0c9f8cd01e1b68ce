package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"job-board/internal/domain/access"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = access.ErrForbidden
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports payload problems field by field. Keys are the
// JSON field names of the input.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func fieldError(field, message string) error {
	return &ValidationError{Fields: validation.Errors{field: errors.New(message)}}
}

// validationResult converts an ozzo-validation result into the usecase taxonomy.
func validationResult(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		return &ValidationError{Fields: errs}
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("%w: %v", ErrInternal, internal)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
