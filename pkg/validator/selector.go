package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Selector binds one field of a subject: it names the field and reads its
// current value.
type Selector[T any] interface {
	Name() string
	Value(subject T) (any, error)
}

type accessor[T, F any] struct {
	name string
	get  func(T) F
}

// Field selects a field through a typed accessor. The name is the stable
// identifier reported in FieldError.Field.
//
//	validator.Field("email", func(u User) *string { return u.Email })
func Field[T, F any](name string, get func(T) F) Selector[T] {
	return accessor[T, F]{name: strings.TrimSpace(name), get: get}
}

func (a accessor[T, F]) Name() string { return a.name }

func (a accessor[T, F]) Value(subject T) (any, error) {
	if a.get == nil {
		return nil, fmt.Errorf("%w: %q has no accessor", ErrInvalidSelector, a.name)
	}
	return a.get(subject), nil
}

type memberPath[T any] struct {
	path  string
	name  string
	index [][]int
	err   error
}

// Path selects a struct member by a dot-separated path such as
// "Address.City". Segments match the json tag name or the Go field name of
// exported fields. The path is resolved against T once; a path that does not
// reduce to member accesses is reported when the selector is bound.
//
// The field name is built from json tag names where present, so
// Path[User]("Address.City") may be reported as "address.city".
func Path[T any](path string) Selector[T] {
	p := &memberPath[T]{path: strings.TrimSpace(path)}
	p.name, p.index, p.err = resolvePath(reflect.TypeFor[T](), p.path)
	return p
}

func (p *memberPath[T]) Name() string { return p.name }

func (p *memberPath[T]) Value(subject T) (any, error) {
	if p.err != nil {
		return nil, p.err
	}

	v := reflect.ValueOf(&subject).Elem()
	for _, idx := range p.index {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, nil
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSelector, p.path)
		}
		fv, err := v.FieldByIndexErr(idx)
		if err != nil {
			// nil embedded pointer on the way to the member
			return nil, nil
		}
		v = fv
	}
	if !v.CanInterface() {
		return nil, fmt.Errorf("%w: %q is not accessible", ErrInvalidSelector, p.path)
	}
	return v.Interface(), nil
}

func resolvePath(t reflect.Type, path string) (string, [][]int, error) {
	if path == "" {
		return "", nil, ErrEmptyFieldName
	}

	var names []string
	var index [][]int
	for segment := range strings.SplitSeq(path, ".") {
		if segment == "" {
			return path, nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidSelector, path)
		}
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return path, nil, fmt.Errorf("%w: %q: %q is not a struct member", ErrInvalidSelector, path, segment)
		}

		sf, ok := lookupMember(t, segment)
		if !ok {
			return path, nil, fmt.Errorf("%w: %q: no member %q in %s", ErrInvalidSelector, path, segment, t)
		}
		names = append(names, memberName(sf))
		index = append(index, sf.Index)
		t = sf.Type
	}

	return strings.Join(names, "."), index, nil
}

func lookupMember(t reflect.Type, segment string) (reflect.StructField, bool) {
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		if sf.Name == segment || jsonName(sf) == segment {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

func memberName(sf reflect.StructField) string {
	if name := jsonName(sf); name != "" {
		return name
	}
	return sf.Name
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
