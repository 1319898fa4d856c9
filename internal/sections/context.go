package sections

import (
	"html/template"
	"net/url"
	"strings"
	"time"

	"sitebuilder-backend/internal/models"
)

// PostFilter narrows blog listings to a category or tag taken from the request.
type PostFilter struct {
	Category string
	Tag      string
}

// RenderContext is the read-only state shared by every section of one render pass.
// Templates read site-wide data from here and never from package globals.
type RenderContext struct {
	Site   models.SiteSettings
	Page   *models.Page
	Posts  []models.PostSummary
	Filter PostFilter
	Now    time.Time

	// Sanitizer cleans editor-supplied markup. Without one, markup is escaped.
	Sanitizer func(string) string
	// Avatar builds a placeholder image URL for a person without a photo.
	Avatar func(name string) string
}

func (r *RenderContext) sanitize(markup string) string {
	if r == nil || r.Sanitizer == nil {
		return template.HTMLEscapeString(markup)
	}
	return r.Sanitizer(markup)
}

func (r *RenderContext) avatarURL(name string) string {
	if r != nil && r.Avatar != nil {
		return r.Avatar(name)
	}
	return "/avatars/" + url.PathEscape(strings.TrimSpace(name))
}

func (r *RenderContext) now() time.Time {
	if r == nil || r.Now.IsZero() {
		return time.Now()
	}
	return r.Now
}

func (r *RenderContext) page() *models.Page {
	if r == nil {
		return nil
	}
	return r.Page
}

func (r *RenderContext) posts() []models.PostSummary {
	if r == nil {
		return nil
	}
	return r.Posts
}

func (r *RenderContext) site() models.SiteSettings {
	if r == nil {
		return models.SiteSettings{}
	}
	return r.Site
}

// Output is the markup of a section plus any scripts it needs once per page.
type Output struct {
	HTML    string
	Scripts []string
}

func (o Output) Empty() bool {
	return strings.TrimSpace(o.HTML) == ""
}

// Block is what a template sees: the resolved type, its style variant and the section's content.
type Block struct {
	ID         string
	Type       Type
	Variant    string
	Content    models.Content
	PostDetail bool
}

func (b Block) base() string {
	return b.Type.Kebab()
}

// class returns the BEM element class for this block, e.g. "faq__item".
func (b Block) class(element string) string {
	return b.base() + "__" + element
}

// root returns the block class with its variant modifier and any extra classes.
func (b Block) root(extra ...string) string {
	classes := []string{b.base()}
	if b.Variant != "" {
		classes = append(classes, b.base()+"--"+b.Variant)
	}
	if b.PostDetail {
		classes = append(classes, b.base()+"--post")
	}
	classes = append(classes, extra...)
	return strings.Join(classes, " ")
}

// anchor is the id attribute full-width templates put on their outer element.
func (b Block) anchor() string {
	if strings.TrimSpace(b.ID) == "" {
		return ""
	}
	return ` id="` + template.HTMLEscapeString(b.ID) + `"`
}
