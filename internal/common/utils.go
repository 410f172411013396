package common

import (
	"reflect"
	"strings"
)

// Tag keys recognized on configuration struct fields.
const (
	TagFlag     = "flag"
	TagShort    = "short"
	TagHelp     = "help"
	TagDefault  = "default"
	TagRequired = "required"
	TagCmd      = "cmd"
)

// Meta tag keys recognized on embedded marker fields.
const (
	TagName    = "name"
	TagVersion = "version"
)

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// StructType returns the reflect.Type of the underlying struct pointer.
func StructType(v any) reflect.Type {
	return reflect.TypeOf(v).Elem()
}

// IsMarker reports whether the field is an embedded marker of the given type
// name (Meta, Help, Version).
func IsMarker(field reflect.StructField, name string) bool {
	return field.Anonymous && field.Type.Kind() == reflect.Struct && field.Type.Name() == name
}

// MetaTag scans the struct type for an embedded Meta marker and returns the
// value of the given tag key, or "" if absent.
func MetaTag(t reflect.Type, key string) string {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsMarker(field, "Meta") {
			if val := field.Tag.Get(key); val != "" {
				return val
			}
		}
	}
	return ""
}

// HasMarker reports whether the struct type embeds a marker field with the
// given type name.
func HasMarker(t reflect.Type, name string) bool {
	for i := 0; i < t.NumField(); i++ {
		if IsMarker(t.Field(i), name) {
			return true
		}
	}
	return false
}

// KebabCase converts a camelCase or PascalCase field name to kebab-case, used
// for diagnostics and help placeholders.
//
// Rules:
//   - Insert "-" before an uppercase letter that follows a lowercase letter.
//   - Insert "-" between a run of uppercase letters and a following lowercase
//     letter (acronyms: "HTTPPort" -> "http-port").
//   - Lowercase everything; underscores become dashes.
func KebabCase(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if isUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				if isLower(prev) {
					b.WriteRune('-')
				} else if isUpper(prev) && i+1 < len(runes) && isLower(runes[i+1]) {
					b.WriteRune('-')
				}
			}
			b.WriteRune(toLower(r))
		} else if r == '_' {
			b.WriteRune('-')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func toLower(r rune) rune {
	if isUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
