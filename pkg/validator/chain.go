package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// compiled patterns shared by all validators
var patterns sync.Map

// Chain applies operators to the field bound by the last RuleFor call.
// Every operator runs even when an earlier one failed.
type Chain[T any] struct {
	rules *Rules[T]
}

func (c *Chain[T]) live() bool {
	return c.rules.err == nil && c.rules.active.ok
}

func (c *Chain[T]) value() any {
	return c.rules.active.value
}

// NotNull fails when the value is absent (nil, or a nil pointer, map, slice,
// func, chan or interface).
func (c *Chain[T]) NotNull() *Chain[T] {
	if c.live() && isNull(c.value()) {
		c.rules.report(ValueCannotBeNull)
	}
	return c
}

// NotEmpty fails when the value is absent or its string form is empty or
// whitespace only.
func (c *Chain[T]) NotEmpty() *Chain[T] {
	if c.live() && isBlank(c.value()) {
		c.rules.report(ValueCannotBeEmpty)
	}
	return c
}

// Length checks that the string form has between minLen and maxLen
// characters (runes), inclusive. Absent values are skipped.
func (c *Chain[T]) Length(minLen, maxLen int) *Chain[T] {
	if !c.live() {
		return c
	}
	s, ok := stringForm(c.value())
	if !ok {
		return c
	}
	if n := utf8.RuneCountInString(s); n < minLen || n > maxLen {
		c.rules.report(LengthRange, minLen, maxLen)
	}
	return c
}

// Matches checks the string form against a regular expression. The match is
// unanchored; anchor the pattern with ^ and $ to match the whole value.
// Blank values are skipped. A pattern that does not compile aborts the run
// with ErrInvalidPattern.
func (c *Chain[T]) Matches(pattern string) *Chain[T] {
	if !c.live() {
		return c
	}
	re, err := compilePattern(pattern)
	if err != nil {
		c.rules.fail(err)
		return c
	}
	if isBlank(c.value()) {
		return c
	}
	s, _ := stringForm(c.value())
	if !re.MatchString(s) {
		c.rules.report(PatternMismatch)
	}
	return c
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	actual, _ := patterns.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// Email checks the string form looks like an address (local@domain.tld).
// Blank values are skipped.
func (c *Chain[T]) Email() *Chain[T] {
	if !c.live() || isBlank(c.value()) {
		return c
	}
	if s, _ := stringForm(c.value()); !emailPattern.MatchString(s) {
		c.rules.report(InvalidEmail)
	}
	return c
}

// In checks the string form is one of allowed (case-sensitive).
// Blank values are skipped.
func (c *Chain[T]) In(allowed ...string) *Chain[T] {
	if !c.live() || isBlank(c.value()) {
		return c
	}
	if s, _ := stringForm(c.value()); !lo.Contains(allowed, s) {
		c.rules.report(MustBeOneOf, strings.Join(allowed, ", "))
	}
	return c
}

// Min fails when the value parses as an integer below minVal.
// Values that do not parse as an integer pass.
func (c *Chain[T]) Min(minVal int) *Chain[T] {
	if !c.live() {
		return c
	}
	if n, ok := parseInt(c.value()); ok && n < int64(minVal) {
		c.rules.report(MinimumValue, minVal)
	}
	return c
}

// Max fails when the value parses as an integer above maxVal.
// Values that do not parse as an integer pass.
func (c *Chain[T]) Max(maxVal int) *Chain[T] {
	if !c.live() {
		return c
	}
	if n, ok := parseInt(c.value()); ok && n > int64(maxVal) {
		c.rules.report(MaximumValue, maxVal)
	}
	return c
}

// GreaterThan fails when the value is not greater than bound. The check only
// applies when the value (after dereferencing pointers) has exactly the type
// of bound and that type is ordered or has a Compare method; otherwise it
// passes. GreaterThan(17) therefore checks int fields but not int32 ones.
func (c *Chain[T]) GreaterThan(bound any) *Chain[T] {
	if !c.live() {
		return c
	}
	if res, ok := compareSameType(c.value(), bound); ok && res <= 0 {
		c.rules.report(GreaterThan, bound)
	}
	return c
}

// LessThan fails when the value is not less than bound. Type matching follows
// GreaterThan.
func (c *Chain[T]) LessThan(bound any) *Chain[T] {
	if !c.live() {
		return c
	}
	if res, ok := compareSameType(c.value(), bound); ok && res >= 0 {
		c.rules.report(LessThan, bound)
	}
	return c
}

// Must fails when pred returns false for the subject. The optional message is
// used verbatim instead of the localized CustomConditionFailed text.
func (c *Chain[T]) Must(pred func(T) bool, message ...string) *Chain[T] {
	if !c.live() {
		return c
	}
	if pred == nil {
		c.rules.fail(fmt.Errorf("%w: Must on %q", ErrNilPredicate, c.rules.active.field))
		return c
	}
	if !pred(c.rules.subject) {
		c.customFailure(message)
	}
	return c
}

// Assert is Must for conditions that do not need the subject.
func (c *Chain[T]) Assert(cond func() bool, message ...string) *Chain[T] {
	if !c.live() {
		return c
	}
	if cond == nil {
		c.rules.fail(fmt.Errorf("%w: Assert on %q", ErrNilPredicate, c.rules.active.field))
		return c
	}
	if !cond() {
		c.customFailure(message)
	}
	return c
}

func (c *Chain[T]) customFailure(message []string) {
	if text, ok := lo.First(message); ok && text != "" {
		c.rules.reportText(text)
		return
	}
	c.rules.report(CustomConditionFailed)
}

// Tag checks the value with a go-playground/validator tag expression such as
// "uuid4" or "min=3,max=10". The failing tag is passed to the TagMismatch
// message. Absent values are skipped. An empty or unknown tag aborts the run
// with ErrInvalidTag.
func (c *Chain[T]) Tag(tag string) *Chain[T] {
	if !c.live() {
		return c
	}
	if strings.TrimSpace(tag) == "" {
		c.rules.fail(fmt.Errorf("%w: empty tag on %q", ErrInvalidTag, c.rules.active.field))
		return c
	}
	if isNull(c.value()) {
		return c
	}

	failed, err := runTag(c.rules.cfg.tags, deref(c.value()), tag)
	if err != nil {
		c.rules.fail(err)
		return c
	}
	if failed != "" {
		c.rules.report(TagMismatch, failed)
	}
	return c
}

// runTag returns the failing tag, or "" when value satisfies tag.
// Var panics on undefined tags; that is reported as ErrInvalidTag.
func runTag(v *playground.Validate, value any, tag string) (failed string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()

	verr := v.Var(value, tag)
	if verr == nil {
		return "", nil
	}

	var fieldErrs playground.ValidationErrors
	if errors.As(verr, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag(), nil
	}
	return "", errors.Join(ErrInvalidTag, verr)
}

// WithMessage replaces the text of the last failure reported by this chain.
// It does nothing when no operator of the chain has failed.
func (c *Chain[T]) WithMessage(text string) *Chain[T] {
	if c.live() {
		c.rules.override(FieldError{Message: text})
	}
	return c
}

// WithMessageKey is WithMessage with a catalog key resolved for the run's locale.
func (c *Chain[T]) WithMessageKey(key string, args ...any) *Chain[T] {
	if c.live() {
		c.rules.override(FieldError{
			Message: c.rules.cfg.localizer.Resolve(key, c.rules.locale, args...),
			Key:     key,
			Args:    args,
		})
	}
	return c
}
