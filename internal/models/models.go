package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/datatypes"
)

// Section is one ordered, independently visible block of page content.
// Type is kept as the raw tag so unknown types survive a load and save unchanged.
type Section struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Order     int     `json:"order"`
	IsVisible bool    `json:"isVisible"`
	Content   Content `json:"content"`
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	s.Content = s.Content.Clone()
	return s
}

type PageSections []Section

func (ps *PageSections) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil {
		return fmt.Errorf("failed to scan PageSections: %w", err)
	}
	if len(bytes) == 0 {
		*ps = PageSections{}
		return nil
	}
	return json.Unmarshal(bytes, ps)
}

func (ps PageSections) Value() (driver.Value, error) {
	if len(ps) == 0 {
		return "[]", nil
	}
	encoded, err := json.Marshal(ps)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// Clone returns a deep copy of every section.
func (ps PageSections) Clone() PageSections {
	if ps == nil {
		return PageSections{}
	}
	cloned := make(PageSections, len(ps))
	for i, section := range ps {
		cloned[i] = section.Clone()
	}
	return cloned
}

// Visible returns the visible sections stable-sorted by order. The receiver is left untouched.
func (ps PageSections) Visible() PageSections {
	visible := make(PageSections, 0, len(ps))
	for _, section := range ps {
		if section.IsVisible {
			visible = append(visible, section)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})
	return visible
}

// Page is a slug-addressed, ordered collection of sections. Kind separates
// standalone pages from blog posts.
type Page struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Slug        string                      `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Kind        string                      `gorm:"size:16;index;not null;default:'page'" json:"kind"`
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `json:"description,omitempty"`
	Excerpt     string                      `json:"excerpt,omitempty"`
	Category    string                      `gorm:"index" json:"category,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags,omitempty"`
	CoverImage  string                      `json:"coverImage,omitempty"`
	Author      string                      `json:"author,omitempty"`
	AuthorBio   string                      `json:"authorBio,omitempty"`
	Published   bool                        `gorm:"not null;default:false" json:"published"`
	PublishedAt *time.Time                  `gorm:"index" json:"publishedAt,omitempty"`

	// Version increases on every save and guards against overwriting a newer copy.
	Version  int          `gorm:"not null;default:1" json:"version"`
	Sections PageSections `gorm:"type:jsonb" json:"sections"`
}

func (p *Page) IsPost() bool {
	return p != nil && p.Kind == "post"
}

// Clone returns a deep copy of the page.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	cloned := *p
	cloned.Sections = p.Sections.Clone()
	if p.Tags != nil {
		cloned.Tags = append(datatypes.JSONSlice[string]{}, p.Tags...)
	}
	if p.PublishedAt != nil {
		publishedAt := *p.PublishedAt
		cloned.PublishedAt = &publishedAt
	}
	return &cloned
}

// PostSummary is the slice of a post that listings and related-post sections need.
type PostSummary struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Category    string     `json:"category,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Summary projects a post page into a listing entry.
func (p *Page) Summary() PostSummary {
	excerpt := p.Excerpt
	if excerpt == "" {
		excerpt = p.Description
	}
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     excerpt,
		Category:    p.Category,
		Tags:        append([]string(nil), p.Tags...),
		CoverImage:  p.CoverImage,
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
	}
}

type Setting struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialLink struct {
	Name string `json:"name" binding:"required,max=64"`
	URL  string `json:"url" binding:"required,link"`
	Icon string `json:"icon,omitempty"`
}

type NavItem struct {
	Label string `json:"label" binding:"required,max=64"`
	URL   string `json:"url" binding:"required,link"`
}

// SiteSettings is the site-wide context every template may read.
type SiteSettings struct {
	Name         string       `json:"name" binding:"required,max=120"`
	Tagline      string       `json:"tagline,omitempty" binding:"max=240"`
	URL          string       `json:"url,omitempty" binding:"omitempty,link"`
	LogoURL      string       `json:"logoUrl,omitempty" binding:"omitempty,link"`
	ContactEmail string       `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone string       `json:"contactPhone,omitempty"`
	Address      string       `json:"address,omitempty"`
	FooterText   string       `json:"footerText,omitempty"`
	SocialLinks  []SocialLink `json:"socialLinks" binding:"dive"`
	Navigation   []NavItem    `json:"navigation" binding:"dive"`
}
