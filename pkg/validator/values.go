package validator

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// isNull reports whether v is absent: a nil interface or a nil pointer, map,
// slice, func, chan or interface.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// deref follows pointers down to the pointed-to value. A nil pointer yields nil.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// stringForm renders the bound value the way text operators see it.
// Null values have no string form.
func stringForm(v any) (string, bool) {
	if isNull(v) {
		return "", false
	}
	switch s := deref(v).(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return fmt.Sprint(s), true
	}
}

func isBlank(v any) bool {
	s, ok := stringForm(v)
	return !ok || strings.TrimSpace(s) == ""
}

// parseInt parses the string form as a 32-bit integer, tolerating surrounding
// whitespace and a leading sign.
func parseInt(v any) (int64, bool) {
	s, ok := stringForm(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}

// compareSameType compares value against bound when both share the same
// dynamic type. ok is false when the types differ or the type has no
// ordering (neither an ordered kind nor a Compare(T) int method).
func compareSameType(value, bound any) (result int, ok bool) {
	value = deref(value)
	if value == nil || bound == nil {
		return 0, false
	}

	vv, bv := reflect.ValueOf(value), reflect.ValueOf(bound)
	if vv.Type() != bv.Type() {
		return 0, false
	}

	switch vv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(vv.Int(), bv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(vv.Uint(), bv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(vv.Float(), bv.Float()), true
	case reflect.String:
		return cmp.Compare(vv.String(), bv.String()), true
	}

	return compareMethod(vv, bv)
}

// compareMethod uses a Compare(T) int method, as found on time.Time.
func compareMethod(vv, bv reflect.Value) (int, bool) {
	m := vv.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != vv.Type() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	return int(m.Call([]reflect.Value{bv})[0].Int()), true
}
