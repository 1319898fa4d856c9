package sections

import (
	"html/template"
	"strconv"
	"strings"

	"sitebuilder-backend/internal/models"
)

func esc(value string) string {
	return template.HTMLEscapeString(value)
}

// cleanURL drops links with script-capable schemes. Relative links pass through.
func cleanURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	switch {
	case trimmed == "":
		return ""
	case strings.HasPrefix(lower, "javascript:"), strings.HasPrefix(lower, "vbscript:"):
		return ""
	case strings.HasPrefix(lower, "data:") && !strings.HasPrefix(lower, "data:image/"):
		return ""
	}
	return trimmed
}

func normalizeHeading(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	switch trimmed {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return trimmed
	default:
		return ""
	}
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// writeHeader writes the optional title and subtitle most sections open with.
func writeHeader(sb *strings.Builder, b Block, tag string) {
	title := b.Content.String("title")
	subtitle := b.Content.String("subtitle")
	if title == "" && subtitle == "" {
		return
	}
	if tag == "" {
		tag = "h2"
	}
	sb.WriteString(`<header class="` + b.class("header") + `">`)
	if title != "" {
		sb.WriteString(`<` + tag + ` class="` + b.class("title") + `">` + esc(title) + `</` + tag + `>`)
	}
	if subtitle != "" {
		sb.WriteString(`<p class="` + b.class("subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	sb.WriteString(`</header>`)
}

func writeButton(sb *strings.Builder, class, label, href string) bool {
	label = strings.TrimSpace(label)
	href = cleanURL(href)
	if label == "" || href == "" {
		return false
	}
	sb.WriteString(`<a class="` + class + `" href="` + esc(href) + `">` + esc(label) + `</a>`)
	return true
}

func writeImage(sb *strings.Builder, class, src, alt string) bool {
	src = cleanURL(src)
	if src == "" {
		return false
	}
	sb.WriteString(`<img class="` + class + `" src="` + esc(src) + `" alt="` + esc(alt) + `" loading="lazy" />`)
	return true
}

// writeParagraphs splits plain text on blank lines and escapes each paragraph.
func writeParagraphs(sb *strings.Builder, class, text string) bool {
	wrote := false
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	for _, paragraph := range strings.Split(normalized, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		lines := strings.Split(paragraph, "\n")
		for i := range lines {
			lines[i] = esc(strings.TrimSpace(lines[i]))
		}
		sb.WriteString(`<p class="` + class + `">` + strings.Join(lines, "<br />") + `</p>`)
		wrote = true
	}
	return wrote
}

// writeItems renders each item with fn inside a list container and reports whether anything was written.
func writeItems(sb *strings.Builder, class string, items []models.Content, fn func(*strings.Builder, int, models.Content) bool) bool {
	var inner strings.Builder
	count := 0
	for i, item := range items {
		if fn(&inner, i, item) {
			count++
		}
	}
	if count == 0 {
		return false
	}
	sb.WriteString(`<div class="` + class + `">`)
	sb.WriteString(inner.String())
	sb.WriteString(`</div>`)
	return true
}

// frame wraps inner markup in the block root element, or returns nothing when inner is empty.
func frame(b Block, tag, inner string, extra ...string) Output {
	if strings.TrimSpace(inner) == "" {
		return Output{}
	}
	if tag == "" {
		tag = "div"
	}
	return Output{HTML: `<` + tag + b.fullWidthAnchor() + ` class="` + b.root(extra...) + `">` + inner + `</` + tag + `>`}
}

// fullWidthAnchor gives full-width roots the section id. Contained sections get it from the wrapper.
func (b Block) fullWidthAnchor() string {
	if IsFullWidth(b.Type) {
		return b.anchor()
	}
	return ""
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
