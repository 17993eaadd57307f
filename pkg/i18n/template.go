package i18n

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
)

// maxExactInt is the largest integer a float64 holds without losing precision.
const maxExactInt = 1 << 53

// segment is either literal text (arg < 0) or a reference to args[arg].
type segment struct {
	text string
	arg  int
}

// template is a parsed catalog message. Placeholders are {n} with n a
// zero-based argument index; they may repeat and appear in any order.
// "{{" and "}}" stand for literal braces.
type template []segment

func parseTemplate(s string) (template, error) {
	var (
		out template
		buf strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, segment{text: buf.String(), arg: -1})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				buf.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			digits := s[i+1 : i+1+end]
			idx, ok := parseIndex(digits)
			if !ok {
				return nil, fmt.Errorf("invalid placeholder {%s} at offset %d", digits, i)
			}
			flush()
			out = append(out, segment{arg: idx})
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				buf.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("unescaped '}' at offset %d", i)
		default:
			buf.WriteByte(s[i])
		}
	}
	flush()
	return out, nil
}

func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// render substitutes args into the template. A placeholder without a matching
// argument is written back verbatim. Numbers are formatted with tr when it is
// not nil.
func (t template) render(args []any, tr locales.Translator) string {
	var b strings.Builder
	for _, seg := range t {
		switch {
		case seg.arg < 0:
			b.WriteString(seg.text)
		case seg.arg >= len(args):
			b.WriteString("{" + strconv.Itoa(seg.arg) + "}")
		default:
			b.WriteString(formatArg(args[seg.arg], tr))
		}
	}
	return b.String()
}

func formatArg(arg any, tr locales.Translator) string {
	if tr == nil {
		return fmt.Sprint(arg)
	}
	if _, ok := arg.(fmt.Stringer); ok {
		return fmt.Sprint(arg)
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n > maxExactInt || n < -maxExactInt {
			return strconv.FormatInt(n, 10)
		}
		return tr.FmtNumber(float64(n), 0)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > maxExactInt {
			return strconv.FormatUint(n, 10)
		}
		return tr.FmtNumber(float64(n), 0)
	case reflect.Float32:
		return formatFloat(tr, rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(tr, rv.Float(), 64)
	default:
		return fmt.Sprint(arg)
	}
}

// formatFloat keeps the shortest decimal representation of f and only lets
// the locale choose separators and grouping.
func formatFloat(tr locales.Translator, f float64, bitSize int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	plain := strconv.FormatFloat(f, 'f', -1, bitSize)
	var decimals uint64
	if dot := strings.IndexByte(plain, '.'); dot >= 0 {
		decimals = uint64(len(plain) - dot - 1)
	}
	return tr.FmtNumber(f, decimals)
}
