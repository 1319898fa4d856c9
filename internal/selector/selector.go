package selector

import (
	"errors"
	"strings"

	"sitebuilder-backend/internal/sections"
)

var (
	// ErrTypeNotOffered is returned when a type cannot be added from the current editing context.
	ErrTypeNotOffered  = errors.New("section type is not offered here")
	ErrUnknownCategory = errors.New("unknown section category")
)

// Query narrows the registry down to the types an editor may add.
type Query struct {
	Search   string
	Context  sections.Context
	Category string
}

// Filter applies the text, context and category filters in that order and
// returns matching entries in registry order. The Unknown sentinel and types
// without a template are never offered.
func Filter(q Query) []sections.Entry {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	ctx := q.Context
	if ctx == "" {
		ctx = sections.ContextPage
	}

	var result []sections.Entry
	for _, entry := range sections.Entries() {
		if entry.Type == sections.Unknown || !sections.HasTemplate(entry.Type) {
			continue
		}
		if search != "" && !matches(entry, search) {
			continue
		}
		if !entry.AllowedIn(ctx) {
			continue
		}
		if category != "" && entry.Category != category {
			continue
		}
		result = append(result, entry)
	}
	return result
}

func matches(entry sections.Entry, search string) bool {
	return strings.Contains(strings.ToLower(entry.Label), search) ||
		strings.Contains(strings.ToLower(string(entry.Type)), search)
}

// Offered reports whether t may be picked in ctx regardless of the browsing filters.
func Offered(t sections.Type, ctx sections.Context) bool {
	if t == sections.Unknown || !sections.HasTemplate(t) {
		return false
	}
	return sections.AllowedIn(t, ctx)
}
