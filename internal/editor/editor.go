// Package editor applies section mutations to a working copy of a page.
// Every function returns a new list and leaves its input untouched; orders in
// the result always run 0..n-1 in list order.
package editor

import (
	"errors"
	"sort"

	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"

	"github.com/google/uuid"
)

var ErrSectionNotFound = errors.New("section not found")

// NewSection instantiates a visible section of type t with its registered default content.
func NewSection(t sections.Type, order int) models.Section {
	return models.Section{
		ID:        uuid.New().String(),
		Type:      string(t),
		Order:     order,
		IsVisible: true,
		Content:   sections.DefaultContentOf(t),
	}
}

// Renumber assigns orders 0..n-1 following list order.
func Renumber(list models.PageSections) models.PageSections {
	result := list.Clone()
	for i := range result {
		result[i].Order = i
	}
	return result
}

// Normalize stable-sorts by the stored order, then renumbers. Sections
// without an id receive one so they can be addressed by later mutations.
func Normalize(list models.PageSections) models.PageSections {
	result := list.Clone()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	for i := range result {
		if result[i].ID == "" {
			result[i].ID = uuid.New().String()
		}
		if result[i].Content == nil {
			result[i].Content = models.Content{}
		}
		result[i].Order = i
	}
	return result
}

// Append adds one new section per type at the end of the list.
func Append(list models.PageSections, types []sections.Type) (models.PageSections, []models.Section) {
	result := Renumber(list)
	added := make([]models.Section, 0, len(types))
	for _, t := range types {
		section := NewSection(t, len(result))
		result = append(result, section)
		added = append(added, section.Clone())
	}
	return result, added
}

func indexOf(list models.PageSections, id string) int {
	for i, section := range list {
		if section.ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes the section with the given id and closes the gap.
func Remove(list models.PageSections, id string) (models.PageSections, error) {
	index := indexOf(list, id)
	if index < 0 {
		return nil, ErrSectionNotFound
	}

	result := make(models.PageSections, 0, len(list)-1)
	for i, section := range list {
		if i != index {
			result = append(result, section.Clone())
		}
	}
	return Renumber(result), nil
}

// Move places the section at position, clamped to the list bounds.
func Move(list models.PageSections, id string, position int) (models.PageSections, error) {
	index := indexOf(list, id)
	if index < 0 {
		return nil, ErrSectionNotFound
	}
	if position < 0 {
		position = 0
	}
	if position > len(list)-1 {
		position = len(list) - 1
	}

	result := list.Clone()
	moved := result[index]
	result = append(result[:index], result[index+1:]...)
	result = append(result[:position], append(models.PageSections{moved}, result[position:]...)...)
	return Renumber(result), nil
}

// Duplicate inserts a copy of the section right after it under a fresh id.
func Duplicate(list models.PageSections, id string) (models.PageSections, models.Section, error) {
	index := indexOf(list, id)
	if index < 0 {
		return nil, models.Section{}, ErrSectionNotFound
	}

	copied := list[index].Clone()
	copied.ID = uuid.New().String()

	result := make(models.PageSections, 0, len(list)+1)
	result = append(result, list[:index+1].Clone()...)
	result = append(result, copied)
	result = append(result, list[index+1:].Clone()...)
	result = Renumber(result)
	return result, result[index+1].Clone(), nil
}

func SetVisible(list models.PageSections, id string, visible bool) (models.PageSections, error) {
	return update(list, id, func(section *models.Section) {
		section.IsVisible = visible
	})
}

// UpdateContent replaces the content payload wholesale.
func UpdateContent(list models.PageSections, id string, content models.Content) (models.PageSections, error) {
	if content == nil {
		content = models.Content{}
	}
	return update(list, id, func(section *models.Section) {
		section.Content = content.Clone()
	})
}

func update(list models.PageSections, id string, apply func(*models.Section)) (models.PageSections, error) {
	index := indexOf(list, id)
	if index < 0 {
		return nil, ErrSectionNotFound
	}
	result := Renumber(list)
	apply(&result[index])
	return result, nil
}
