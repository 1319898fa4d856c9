package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Content is the free-form payload of a section. It is decoded from untrusted
// documents, so every read goes through an accessor that falls back to a default.
type Content map[string]interface{}

func (c Content) raw(key string) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	value, ok := c[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// String returns the trimmed string stored under key. Numbers and booleans are formatted.
func (c Content) String(key string) string {
	value, ok := c.raw(key)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (c Content) StringOr(key, fallback string) string {
	if value := c.String(key); value != "" {
		return value
	}
	return fallback
}

// Bool accepts real booleans as well as "true"/"false"/"1"/"0" strings and numbers.
func (c Content) Bool(key string, fallback bool) bool {
	value, ok := c.raw(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fallback
		}
		return parsed
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return fallback
	}
}

// Int reads whole numbers stored as JSON numbers or numeric strings.
func (c Content) Int(key string, fallback int) int {
	value, ok := c.raw(key)
	if !ok {
		return fallback
	}

	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if parsed, err := v.Int64(); err == nil {
			return int(parsed)
		}
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

// Items returns the list under key, skipping every element that is not an object.
func (c Content) Items(key string) []Content {
	value, ok := c.raw(key)
	if !ok {
		return nil
	}

	var list []interface{}
	switch v := value.(type) {
	case []interface{}:
		list = v
	case []Content:
		return v
	case []map[string]interface{}:
		items := make([]Content, 0, len(v))
		for _, item := range v {
			items = append(items, Content(item))
		}
		return items
	default:
		return nil
	}

	items := make([]Content, 0, len(list))
	for _, entry := range list {
		switch item := entry.(type) {
		case map[string]interface{}:
			items = append(items, Content(item))
		case Content:
			items = append(items, item)
		}
	}
	return items
}

// Strings returns the non-empty string elements of the list under key.
func (c Content) Strings(key string) []string {
	value, ok := c.raw(key)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					result = append(result, trimmed)
				}
			}
		}
		return result
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return []string{trimmed}
		}
	}
	return nil
}

// Map returns the nested object under key or nil.
func (c Content) Map(key string) Content {
	value, ok := c.raw(key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case map[string]interface{}:
		return Content(v)
	case Content:
		return v
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result without touching shared defaults.
func (c Content) Clone() Content {
	if c == nil {
		return Content{}
	}
	cloned := make(Content, len(c))
	for key, value := range c {
		cloned[key] = cloneValue(value)
	}
	return cloned
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return map[string]interface{}(Content(v).Clone())
	case Content:
		return v.Clone()
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, entry := range v {
			list[i] = cloneValue(entry)
		}
		return list
	case []string:
		list := make([]string, len(v))
		copy(list, v)
		return list
	case []map[string]interface{}:
		list := make([]interface{}, len(v))
		for i, entry := range v {
			list[i] = cloneValue(entry)
		}
		return list
	default:
		return v
	}
}

func (c Content) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *Content) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan Content: %w", err)
	}
	if len(bytes) == 0 {
		*c = Content{}
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// scanBytes accepts the byte and string representations drivers use for JSON columns.
func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported column type")
	}
}
