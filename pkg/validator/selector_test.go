package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestField(t *testing.T) {
	t.Parallel()

	sel := validator.Field("username", func(u user) *string { return u.Username })
	assert.Equal(t, "username", sel.Name())

	value, err := sel.Value(user{Username: ptr("john")})
	require.NoError(t, err)
	assert.Equal(t, "john", *value.(*string))
}

func TestPath(t *testing.T) {
	t.Parallel()

	t.Run("json tag names", func(t *testing.T) {
		t.Parallel()
		sel := validator.Path[user]("birth_date")
		assert.Equal(t, "birth_date", sel.Name())
	})

	t.Run("go names map to json names", func(t *testing.T) {
		t.Parallel()
		sel := validator.Path[user]("Address.City")
		assert.Equal(t, "address.city", sel.Name())

		value, err := sel.Value(user{Address: &address{City: "Berlin"}})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", value)
	})

	t.Run("untagged field keeps go name", func(t *testing.T) {
		t.Parallel()
		sel := validator.Path[user]("Code")
		assert.Equal(t, "Code", sel.Name())
	})

	t.Run("tag options are ignored", func(t *testing.T) {
		t.Parallel()
		sel := validator.Path[user]("password")
		assert.Equal(t, "password", sel.Name())
	})

	t.Run("nil pointer on the way is absent", func(t *testing.T) {
		t.Parallel()
		value, err := validator.Path[user]("address.city").Value(user{})
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("pointer subjects", func(t *testing.T) {
		t.Parallel()
		sel := validator.Path[*user]("age")
		value, err := sel.Value(&user{Age: 42})
		require.NoError(t, err)
		assert.Equal(t, 42, value)

		value, err = sel.Value(nil)
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("invalid paths", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"", "Nickname", "age.value", "address..city"} {
			_, err := validator.Path[user](path).Value(user{})
			assert.Error(t, err, path)
		}
		_, err := validator.Path[string]("len").Value("x")
		assert.ErrorIs(t, err, validator.ErrInvalidSelector)
	})

	t.Run("absent nested value fails NotNull", func(t *testing.T) {
		t.Parallel()
		v := validator.New(func(r *validator.Rules[user]) {
			r.RuleFor(validator.Path[user]("address.city")).NotNull()
		})
		errs, err := v.Validate("en", user{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Value cannot be null."}, errs.Get("address.city"))
	})
}
