package main

import (
	"strings"
	"time"
	"unicode"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// UserDto is the payload accepted by POST /users and the check command.
type UserDto struct {
	Username  *string   `json:"username" yaml:"username"`
	Email     *string   `json:"email" yaml:"email"`
	Role      *string   `json:"role" yaml:"role"`
	Age       int       `json:"age" yaml:"age"`
	Password  *string   `json:"password" yaml:"password"`
	BirthDate time.Time `json:"birth_date" yaml:"birth_date"`
}

var (
	userUsername  = validator.Field("username", func(u UserDto) *string { return u.Username })
	userEmail     = validator.Field("email", func(u UserDto) *string { return u.Email })
	userRole      = validator.Field("role", func(u UserDto) *string { return u.Role })
	userAge       = validator.Field("age", func(u UserDto) int { return u.Age })
	userPassword  = validator.Field("password", func(u UserDto) *string { return u.Password })
	userBirthDate = validator.Path[UserDto]("BirthDate")
)

// userRules declares the UserDto rule set.
func userRules(r *validator.Rules[UserDto]) {
	r.RuleFor(userUsername).
		NotNull().
		NotEmpty().
		Length(3, 20).
		Matches(`^[a-zA-Z0-9_]+$`)

	r.RuleFor(userEmail).
		NotNull().
		NotEmpty().
		Email()

	r.RuleFor(userRole).
		NotNull().
		In("Admin", "User", "Guest")

	r.RuleFor(userAge).
		GreaterThan(17).
		LessThan(100).
		Min(18).
		Max(99)

	r.RuleFor(userPassword).
		NotNull().
		Length(8, 100).
		Matches(`[A-Z]`).
		Must(func(u UserDto) bool {
			return u.Password != nil && strings.ContainsFunc(*u.Password, unicode.IsUpper)
		}, "Password must contain at least one uppercase letter.").
		Must(func(u UserDto) bool {
			return u.Password != nil && strings.ContainsFunc(*u.Password, unicode.IsDigit)
		}, "Password must contain at least one digit.")

	r.RuleFor(userBirthDate).
		Must(func(u UserDto) bool { return u.BirthDate.Before(time.Now()) }, "BirthDate must be in the past.")
}

func newUserValidator(opts ...validator.Option) *validator.Validator[UserDto] {
	return validator.New(userRules, opts...)
}
