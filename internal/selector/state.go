package selector

import (
	"strings"

	"sitebuilder-backend/internal/sections"
)

// State is the serialisable form of a Selector, kept inside an editor draft.
type State struct {
	Search   string          `json:"search"`
	Category *string         `json:"category"`
	Selected []sections.Type `json:"selected"`
}

// Selector holds the transient choices of one editor while picking section types.
// It is not safe for concurrent use; each draft owns its own Selector.
type Selector struct {
	context  sections.Context
	search   string
	category string
	selected []sections.Type
}

func New(ctx sections.Context) *Selector {
	if ctx == "" {
		ctx = sections.ContextPage
	}
	return &Selector{context: ctx}
}

// Restore rebuilds a Selector from saved state, dropping anything no longer offered in ctx.
func Restore(ctx sections.Context, state State) *Selector {
	s := New(ctx)
	s.search = state.Search
	if state.Category != nil {
		if _, ok := sections.CategoryLabel(*state.Category); ok {
			s.category = *state.Category
		}
	}
	for _, t := range state.Selected {
		if Offered(t, s.context) && !s.isSelected(t) {
			s.selected = append(s.selected, t)
		}
	}
	return s
}

func (s *Selector) State() State {
	state := State{
		Search:   s.search,
		Selected: append([]sections.Type{}, s.selected...),
	}
	if s.category != "" {
		category := s.category
		state.Category = &category
	}
	return state
}

func (s *Selector) Context() sections.Context {
	return s.context
}

func (s *Selector) SetSearch(text string) {
	s.search = text
}

// SetCategory limits browsing to one category. An empty key shows all categories.
func (s *Selector) SetCategory(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		s.category = ""
		return nil
	}
	if _, ok := sections.CategoryLabel(key); !ok {
		return ErrUnknownCategory
	}
	s.category = key
	return nil
}

// Toggle marks t for addition, or unmarks it when it is already marked.
func (s *Selector) Toggle(t sections.Type) error {
	for i, selected := range s.selected {
		if selected == t {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return nil
		}
	}
	if !Offered(t, s.context) {
		return ErrTypeNotOffered
	}
	s.selected = append(s.selected, t)
	return nil
}

func (s *Selector) isSelected(t sections.Type) bool {
	for _, selected := range s.selected {
		if selected == t {
			return true
		}
	}
	return false
}

// Selected returns the marked types in the order they were picked.
func (s *Selector) Selected() []sections.Type {
	return append([]sections.Type(nil), s.selected...)
}

// Available lists the entries matching the current search and category.
func (s *Selector) Available() []sections.Entry {
	return Filter(Query{Search: s.search, Context: s.context, Category: s.category})
}

// Confirm hands back the chosen types and clears search, category and selection.
func (s *Selector) Confirm() []sections.Type {
	chosen := s.Selected()
	s.Reset()
	return chosen
}

func (s *Selector) Reset() {
	s.search = ""
	s.category = ""
	s.selected = nil
}
