package validator

import (
	"fmt"
)

// Rules is the per-run handle passed to a rule declaration. It owns the
// active field binding and the error store for one Validate call.
type Rules[T any] struct {
	subject T
	locale  string
	cfg     *config
	store   *errorStore
	active  binding
	err     error
}

// binding is the field currently targeted by operators.
type binding struct {
	field string
	value any
	// last is the position of the most recent failure appended by the current
	// chain, or -1.
	last int
	ok   bool
}

// RuleFor binds the field picked by sel and starts a new rule chain. The
// previous binding is replaced; operators always act on the latest one.
func (r *Rules[T]) RuleFor(sel Selector[T]) *Chain[T] {
	r.active = binding{last: -1}
	if r.err != nil {
		return &Chain[T]{rules: r}
	}

	if sel == nil {
		r.fail(fmt.Errorf("%w: selector is nil", ErrInvalidSelector))
		return &Chain[T]{rules: r}
	}

	value, err := sel.Value(r.subject)
	if err != nil {
		r.fail(err)
		return &Chain[T]{rules: r}
	}
	if sel.Name() == "" {
		r.fail(ErrEmptyFieldName)
		return &Chain[T]{rules: r}
	}

	r.active = binding{field: sel.Name(), value: value, last: -1, ok: true}
	return &Chain[T]{rules: r}
}

// Subject returns the value being validated.
func (r *Rules[T]) Subject() T {
	return r.subject
}

// Locale returns the normalized locale messages are rendered in.
func (r *Rules[T]) Locale() string {
	return r.locale
}

// fail records the first configuration error; everything after it is a no-op.
func (r *Rules[T]) fail(err error) {
	if r.err == nil {
		r.err = err
	}
	r.active = binding{last: -1}
}

func (r *Rules[T]) report(key string, args ...any) {
	r.reportError(FieldError{
		Message: r.cfg.localizer.Resolve(key, r.locale, args...),
		Key:     key,
		Args:    args,
	})
}

func (r *Rules[T]) reportText(message string) {
	r.reportError(FieldError{Message: message})
}

func (r *Rules[T]) reportError(fe FieldError) {
	fe.Field = r.active.field
	r.active.last = r.store.add(fe)
}

// override rewrites the last failure of the current chain.
func (r *Rules[T]) override(fe FieldError) {
	if !r.active.ok || r.active.last < 0 {
		return
	}
	r.store.replace(r.active.field, r.active.last, fe)
}
