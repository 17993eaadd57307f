package validator

import "errors"

// Configuration errors. They describe a broken rule declaration, abort the
// validation run, and are never reported as field errors.
var (
	// ErrInvalidSelector is returned when a selector cannot produce a field binding.
	ErrInvalidSelector = errors.New("invalid field selector")

	// ErrEmptyFieldName is returned when a selector has no field name.
	ErrEmptyFieldName = errors.New("field name cannot be empty")

	// ErrInvalidPattern is returned when a Matches pattern does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrInvalidTag is returned when a Tag expression is empty or unknown to the tag validator.
	ErrInvalidTag = errors.New("invalid validation tag")

	// ErrNilPredicate is returned when Must or Assert receive a nil function.
	ErrNilPredicate = errors.New("predicate cannot be nil")
)
