package models

// CreatePageRequest creates a page or post. Slug is derived from the title when omitted.
type CreatePageRequest struct {
	Kind        string   `json:"kind" binding:"required,page_kind"`
	Title       string   `json:"title" binding:"required,max=200"`
	Slug        string   `json:"slug" binding:"omitempty,slug"`
	Description string   `json:"description" binding:"max=500"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// UpdateDraftMetaRequest patches page-level fields of a working copy.
type UpdateDraftMetaRequest struct {
	Title       *string      `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string      `json:"description,omitempty" binding:"omitempty,max=500"`
	Excerpt     *string      `json:"excerpt,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
	CoverImage  *string      `json:"coverImage,omitempty" binding:"omitempty,link"`
	Author      *string      `json:"author,omitempty"`
	AuthorBio   *string      `json:"authorBio,omitempty"`
	Published   *bool        `json:"published,omitempty"`
	PublishedAt OptionalTime `json:"publishedAt"`
}

// SelectorQueryRequest sets the selector's search text and category. An empty category means all.
type SelectorQueryRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

type ToggleSectionTypeRequest struct {
	Type string `json:"type" binding:"required,section_type"`
}

// MoveSectionRequest moves a section to a zero-based position in the list.
type MoveSectionRequest struct {
	Position *int `json:"position" binding:"required,min=0"`
}

type SectionVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

type SectionContentRequest struct {
	Content Content `json:"content" binding:"required"`
}
