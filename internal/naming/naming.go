// Package naming translates attribute names into accessor names and back.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	GetterPrefix = "get"
	SetterPrefix = "set"
)

// SnakeToCamel turns "string_like_this" (or "string like this") into "StringLikeThis".
// Segments that are already camel-cased keep their inner capitals.
func SnakeToCamel(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == ' '
	})

	var b strings.Builder
	b.Grow(len(name))
	for _, segment := range segments {
		b.WriteString(UpperFirst(segment))
	}
	return b.String()
}

// ToGetter returns the getter name used to read attribute.
func ToGetter(attribute string) string {
	return GetterPrefix + SnakeToCamel(attribute)
}

// ToSetter returns the setter name used to write attribute.
func ToSetter(attribute string) string {
	return SetterPrefix + SnakeToCamel(attribute)
}

// Decode splits an accessor name into its prefix and the attribute it targets.
// ok is false when method is neither a getter nor a setter.
func Decode(method string) (prefix, attribute string, ok bool) {
	switch {
	case strings.HasPrefix(method, GetterPrefix):
		prefix = GetterPrefix
	case strings.HasPrefix(method, SetterPrefix):
		prefix = SetterPrefix
	default:
		return "", "", false
	}
	return prefix, LowerFirst(method[len(prefix):]), true
}

// RoundTrips reports whether the getter built for name decodes back to name.
// Names that don't (snake_case, leading capitals) need explicit accessors.
func RoundTrips(name string) bool {
	_, attribute, _ := Decode(ToGetter(name))
	return attribute == name
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
