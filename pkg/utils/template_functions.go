package utils

import (
	"html/template"
	"net/url"
	"path"
	"reflect"
	"strings"
	"time"
)

// GetTemplateFuncs returns the helpers available to the page layout.
func GetTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"pathEquals": PathEquals,
		"truncate":   Truncate,
		"isoDate": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.UTC().Format(time.RFC3339)
		},
		"year": func() int { return time.Now().Year() },
		"default": func(defaultValue, value interface{}) interface{} {
			if isEmpty(value) {
				return defaultValue
			}
			return value
		},
	}
}

// PathEquals reports whether a navigation target points at the current path.
// Absolute URLs are compared by path only.
func PathEquals(current, target string) bool {
	if strings.TrimSpace(target) == "" {
		return false
	}
	return NormalizePath(current) == NormalizePath(target)
}

// Truncate cuts s to at most length runes, marking the cut with an ellipsis.
func Truncate(s string, length int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if length <= 0 || len(runes) <= length {
		return s
	}
	return strings.TrimSpace(string(runes[:length])) + "…"
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return v.IsZero()
}

// NormalizePath reduces a path or absolute URL to a clean, slash-prefixed path
// without a trailing slash. Empty input is the root.
func NormalizePath(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "/"
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return "/"
		}
		trimmed = parsed.Path
	}
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}

	cleaned := path.Clean("/" + strings.TrimPrefix(trimmed, "/"))
	if cleaned == "." {
		return "/"
	}
	return cleaned
}
