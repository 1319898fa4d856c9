package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OptionalTime distinguishes an omitted timestamp from an explicit null in a patch body.
type OptionalTime struct {
	Set   bool       `json:"-"`
	Value *time.Time `json:"-"`
}

// UnmarshalJSON accepts RFC3339 strings, JSON time values or null.
func (ot *OptionalTime) UnmarshalJSON(data []byte) error {
	if ot == nil {
		return fmt.Errorf("optional time receiver is nil")
	}

	ot.Set = true

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		ot.Value = nil
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	asString = strings.TrimSpace(asString)
	if asString == "" {
		ot.Value = nil
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, asString)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	normalized := parsed.UTC()
	ot.Value = &normalized
	return nil
}

// Apply writes the value into target when the field was present in the body.
func (ot OptionalTime) Apply(target **time.Time) {
	if !ot.Set || target == nil {
		return
	}
	if ot.Value == nil {
		*target = nil
		return
	}
	value := ot.Value.UTC()
	*target = &value
}
