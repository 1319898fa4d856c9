package sections

import (
	"strings"

	"sitebuilder-backend/internal/models"
)

// Entry is the static description of one section type.
type Entry struct {
	Type           Type           `json:"type"`
	Label          string         `json:"label"`
	Description    string         `json:"description,omitempty"`
	Category       string         `json:"category"`
	Contexts       []Context      `json:"contexts"`
	Layout         Layout         `json:"layout"`
	Background     string         `json:"background,omitempty"`
	Variants       []string       `json:"variants"`
	DefaultContent models.Content `json:"defaultContent"`
}

// Category groups entries for browsing in the editor.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Types []Type `json:"types"`
}

func (e Entry) clone() Entry {
	e.Contexts = append([]Context(nil), e.Contexts...)
	e.Variants = append([]string(nil), e.Variants...)
	e.DefaultContent = e.DefaultContent.Clone()
	return e
}

// AllowedIn reports whether the entry may be added from the given editing context.
func (e Entry) AllowedIn(ctx Context) bool {
	for _, allowed := range e.Contexts {
		if allowed == ctx {
			return true
		}
	}
	return false
}

// The registry is built once at package init and never written afterwards,
// so lookups need no locking.
var (
	entries    []Entry
	entryIndex map[Type]int
	categories []Category
)

func init() {
	entries = catalog()
	entryIndex = make(map[Type]int, len(entries))
	for i, e := range entries {
		if _, exists := entryIndex[e.Type]; exists {
			panic("sections: duplicate registry entry " + string(e.Type))
		}
		entryIndex[e.Type] = i
	}
	categories = buildCategories(entries)
}

func buildCategories(list []Entry) []Category {
	result := make([]Category, 0, len(categoryOrder))
	for _, def := range categoryOrder {
		category := Category{Key: def.key, Label: def.label}
		for _, e := range list {
			if e.Category == def.key {
				category.Types = append(category.Types, e.Type)
			}
		}
		result = append(result, category)
	}
	return result
}

// Lookup returns a copy of the entry registered for t.
func Lookup(t Type) (Entry, bool) {
	i, ok := entryIndex[t]
	if !ok {
		return Entry{}, false
	}
	return entries[i].clone(), true
}

// Entries returns every registered entry in catalog order.
func Entries() []Entry {
	result := make([]Entry, len(entries))
	for i, e := range entries {
		result[i] = e.clone()
	}
	return result
}

func IsKnown(t Type) bool {
	_, ok := entryIndex[t]
	return ok
}

// Resolve maps a stored tag onto the known universe. Tags are matched
// case-insensitively; anything unrecognised becomes Unknown.
func Resolve(raw string) Type {
	candidate := Type(strings.ToUpper(strings.TrimSpace(raw)))
	if IsKnown(candidate) {
		return candidate
	}
	return Unknown
}

// LabelOf returns the display label of t, or the raw tag when t is not registered.
func LabelOf(t Type) string {
	if i, ok := entryIndex[t]; ok {
		return entries[i].Label
	}
	return string(t)
}

// DefaultContentOf returns a private copy of the starting content for t. It is never nil.
func DefaultContentOf(t Type) models.Content {
	if i, ok := entryIndex[t]; ok {
		return entries[i].DefaultContent.Clone()
	}
	return models.Content{}
}

// Categories returns the browsing groups in display order.
func Categories() []Category {
	result := make([]Category, len(categories))
	for i, c := range categories {
		c.Types = append([]Type(nil), c.Types...)
		result[i] = c
	}
	return result
}

func CategoryLabel(key string) (string, bool) {
	for _, def := range categoryOrder {
		if def.key == key {
			return def.label, true
		}
	}
	return "", false
}

// IsFullWidth reports whether t draws its own outer frame. It depends on the type alone.
func IsFullWidth(t Type) bool {
	if i, ok := entryIndex[t]; ok {
		return entries[i].Layout == LayoutFullWidth
	}
	return false
}

// AllowedIn reports whether t may be added while editing in ctx.
func AllowedIn(t Type, ctx Context) bool {
	if i, ok := entryIndex[t]; ok {
		return entries[i].AllowedIn(ctx)
	}
	return false
}

// VariantOf picks the style variant requested by content.template, falling back to the first registered one.
func VariantOf(t Type, content models.Content) string {
	i, ok := entryIndex[t]
	if !ok || len(entries[i].Variants) == 0 {
		return ""
	}
	requested := strings.ToLower(content.String("template"))
	for _, variant := range entries[i].Variants {
		if variant == requested {
			return variant
		}
	}
	return entries[i].Variants[0]
}

func defaultBackground(t Type) string {
	if i, ok := entryIndex[t]; ok {
		return entries[i].Background
	}
	return ""
}
