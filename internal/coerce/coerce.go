// Package coerce provides loose-typed coercion helpers for values decoded
// from untyped JSON. They accept any value and never panic; failed numeric
// conversions yield NaN rather than an error so callers can chain guards.
package coerce

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reBinary = regexp.MustCompile(`^0[bB][01]+$`)
	reOctal  = regexp.MustCompile(`^0[oO][0-7]+$`)
	reHex    = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	reBadHex = regexp.MustCompile(`^[-+]0[xX][0-9a-fA-F]+$`)
	reWord   = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

// IsEmpty reports whether value has no contents. nil is empty; anything with
// a length (strings, slices, arrays, maps, channels) is empty iff that length
// is zero; structs are empty iff they have no fields. Whitespace is not
// trimmed, so a string of spaces is non-empty.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	case reflect.Struct:
		return v.NumField() == 0
	}

	// Scalars carry no contents.
	return true
}

// ToString converts value to its textual form. Strings pass through
// unchanged, slices render as comma-joined elements, and negative zero
// renders as "-0". nil renders as the empty string.
func ToString(value any) string {
	switch s := value.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return formatFloat(s)
	case float32:
		return formatFloat(float64(s))
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i).Interface()
			if elem == nil {
				parts[i] = ""
				continue
			}
			parts[i] = ToString(elem)
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprintf("%v", value)
}

func formatFloat(f float64) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToNumber converts value to a float64. Numbers pass through, nil converts
// to 0, and strings are trimmed then parsed: binary (0b...), octal (0o...)
// and hexadecimal (0x...) literals parse according to their base, a signed
// hexadecimal literal is malformed and yields NaN, and anything else goes
// through standard float parsing. Unconvertible values yield NaN.
func ToNumber(value any) float64 {
	switch n := value.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return parseNumber(n)
	}

	// Unwrap pointers and interfaces before falling back to the textual form.
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0
		}
		return ToNumber(v.Elem().Interface())
	}

	return parseNumber(ToString(value))
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)

	switch {
	case reBinary.MatchString(s):
		n, err := strconv.ParseInt(s[2:], 2, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	case reOctal.MatchString(s):
		n, err := strconv.ParseInt(s[2:], 8, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	case reBadHex.MatchString(s):
		return math.NaN()
	case reHex.MatchString(s):
		n, err := strconv.ParseInt(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Capitalize lower-cases the whole string and upper-cases its first rune.
func Capitalize(s string) string {
	str := strings.ToLower(s)

	r, size := utf8.DecodeRuneInString(str)
	if size == 0 {
		return str
	}
	return string(unicode.ToUpper(r)) + str[size:]
}

// CamelCase strips apostrophes, splits into alphanumeric word tokens,
// lower-cases each and capitalizes every token after the first.
func CamelCase(s string) string {
	str := strings.NewReplacer("'", "", "’", "").Replace(s)

	var b strings.Builder
	for i, word := range reWord.FindAllString(str, -1) {
		word = strings.ToLower(word)
		if i == 0 {
			b.WriteString(word)
			continue
		}
		b.WriteString(Capitalize(word))
	}
	return b.String()
}

// IsObject reports whether value is a composite or callable type
// (map, struct, slice, array, pointer, function or channel).
func IsObject(value any) bool {
	if value == nil {
		return false
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array,
		reflect.Ptr, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// IsBoolean reports whether value is a bool or a pointer to one.
func IsBoolean(value any) bool {
	switch b := value.(type) {
	case bool:
		return true
	case *bool:
		return b != nil
	}
	return false
}
