package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	var empty validator.ValidationErrors
	assert.Equal(t, "validation failed", empty.Error())

	var errs validator.ValidationErrors
	errs.Add(validator.FieldError{Field: "email", Message: "is required"})
	errs.Add(validator.FieldError{Field: "password", Message: "too short"})
	assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
}

func TestValidationErrors_Helpers(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short", Key: validator.LengthRange},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "missing digit"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("username"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("username"))
	assert.Len(t, errs.GetErrors("password"), 2)
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.Equal(t, map[string][]string{
		"password": {"too short", "missing digit"},
		"email":    {"is required"},
	}, errs.Map())

	assert.Nil(t, validator.ValidationErrors{}.Map())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
	wrapped := fmt.Errorf("create user: %w", errs)

	assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	assert.True(t, validator.IsValidationError(wrapped))

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}
