package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FieldError is a single field-scoped validation failure.
// Key is the catalog key the message was resolved from; it is empty when the
// message is caller-supplied text (Must with a message, WithMessage).
type FieldError struct {
	Field   string
	Message string
	Key     string
	Args    []any
}

// ValidationErrors is the result of a validation run, ordered by field
// declaration and then by operator order within a field.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := lo.Map(ve, func(err FieldError, _ int) string {
		return fmt.Sprintf("%s: %s", err.Field, err.Message)
	})
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err FieldError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return lo.ContainsBy(ve, func(err FieldError) bool {
		return err.Field == field
	})
}

// Get returns the messages reported for field, or nil if there are none.
func (ve ValidationErrors) Get(field string) []string {
	errs := ve.GetErrors(field)
	if len(errs) == 0 {
		return nil
	}
	return lo.Map(errs, func(err FieldError, _ int) string {
		return err.Message
	})
}

func (ve ValidationErrors) GetErrors(field string) []FieldError {
	return lo.Filter(ve, func(err FieldError, _ int) bool {
		return err.Field == field
	})
}

// Fields returns the failing field names in result order.
func (ve ValidationErrors) Fields() []string {
	return lo.Uniq(lo.Map(ve, func(err FieldError, _ int) string {
		return err.Field
	}))
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map groups messages by field, suitable for JSON problem responses.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// errorStore accumulates failures per field. Fields keep the order of their
// first failure and messages keep insertion order, so an override can address
// the last message by position.
type errorStore struct {
	fields []string
	byName map[string][]FieldError
}

func newErrorStore() *errorStore {
	return &errorStore{byName: make(map[string][]FieldError)}
}

// add appends err and returns its position within the field.
func (s *errorStore) add(err FieldError) int {
	if _, ok := s.byName[err.Field]; !ok {
		s.fields = append(s.fields, err.Field)
	}
	s.byName[err.Field] = append(s.byName[err.Field], err)
	return len(s.byName[err.Field]) - 1
}

func (s *errorStore) replace(field string, pos int, err FieldError) {
	entries := s.byName[field]
	if pos < 0 || pos >= len(entries) {
		return
	}
	err.Field = field
	entries[pos] = err
}

// result flattens the store, dropping repeated messages within a field.
func (s *errorStore) result() ValidationErrors {
	var out ValidationErrors
	for _, field := range s.fields {
		out = append(out, lo.UniqBy(s.byName[field], func(err FieldError) string {
			return err.Message
		})...)
	}
	return out
}
