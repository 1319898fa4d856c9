package sections

import (
	"strings"

	"sitebuilder-backend/internal/models"
)

func renderTestimonials(rctx *RenderContext, b Block) Output {
	items := b.Content.Items("items")
	if b.Variant == "single" && len(items) > 1 {
		items = items[:1]
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("items"), items, func(w *strings.Builder, _ int, item models.Content) bool {
		quote := item.String("quote")
		if quote == "" {
			return false
		}
		author := item.String("author")
		w.WriteString(`<figure class="` + b.class("item") + `"><blockquote class="` + b.class("quote") + `">` + esc(quote) + `</blockquote>`)
		if author != "" {
			w.WriteString(`<figcaption class="` + b.class("author") + `">`)
			avatar := item.String("avatar")
			if avatar == "" {
				avatar = rctx.avatarURL(author)
			}
			writeImage(w, b.class("avatar"), avatar, author)
			w.WriteString(`<span class="` + b.class("name") + `">` + esc(author) + `</span>`)
			if role := item.String("role"); role != "" {
				w.WriteString(`<span class="` + b.class("role") + `">` + esc(role) + `</span>`)
			}
			w.WriteString(`</figcaption>`)
		}
		w.WriteString(`</figure>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

// renderStats falls back to an empty-state line when no stat has both a value and a label.
func renderStats(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("grid"), b.Content.Items("stats"), func(w *strings.Builder, _ int, item models.Content) bool {
		value := item.String("value")
		label := item.String("label")
		if value == "" || label == "" {
			return false
		}
		w.WriteString(`<div class="` + b.class("item") + `">`)
		w.WriteString(`<span class="` + b.class("value") + `">` + esc(item.String("prefix")) + esc(value) + esc(item.String("suffix")) + `</span>`)
		w.WriteString(`<span class="` + b.class("label") + `">` + esc(label) + `</span>`)
		w.WriteString(`</div>`)
		return true
	})
	if !ok {
		sb.WriteString(`<p class="` + b.class("empty") + `">` + esc(b.Content.StringOr("emptyText", "No figures yet.")) + `</p>`)
	}
	return frame(b, "div", sb.String())
}

func writeStars(w *strings.Builder, b Block, rating int) {
	rating = clamp(rating, 0, 5)
	w.WriteString(`<span class="` + b.class("stars") + `" aria-label="` + itoa(rating) + ` out of 5">`)
	w.WriteString(strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating))
	w.WriteString(`</span>`)
}

func renderReviews(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("items"), b.Content.Items("items"), func(w *strings.Builder, _ int, item models.Content) bool {
		text := item.String("text")
		if text == "" {
			return false
		}
		w.WriteString(`<article class="` + b.class("item") + `">`)
		writeStars(w, b, item.Int("rating", 5))
		w.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
		if author := item.String("author"); author != "" {
			w.WriteString(`<p class="` + b.class("author") + `">` + esc(author) + `</p>`)
		}
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderLogoCloud(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("logos"), b.Content.Items("logos"), func(w *strings.Builder, _ int, item models.Content) bool {
		var img strings.Builder
		if !writeImage(&img, b.class("logo"), item.String("src"), item.String("alt")) {
			return false
		}
		if link := cleanURL(item.String("link")); link != "" {
			w.WriteString(`<a class="` + b.class("link") + `" href="` + esc(link) + `" rel="noopener">` + img.String() + `</a>`)
		} else {
			w.WriteString(img.String())
		}
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderCaseStudies(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("grid"), b.Content.Items("items"), func(w *strings.Builder, _ int, item models.Content) bool {
		title := item.String("title")
		if title == "" {
			return false
		}
		w.WriteString(`<article class="` + b.class("item") + `">`)
		writeImage(w, b.class("image"), item.String("image"), title)
		if client := item.String("client"); client != "" {
			w.WriteString(`<p class="` + b.class("client") + `">` + esc(client) + `</p>`)
		}
		w.WriteString(`<h3 class="` + b.class("item-title") + `">` + esc(title) + `</h3>`)
		if summary := item.String("summary"); summary != "" {
			w.WriteString(`<p class="` + b.class("summary") + `">` + esc(summary) + `</p>`)
		}
		writeButton(w, b.class("link"), item.StringOr("linkText", "Read the case study"), item.String("link"))
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderAwards(rctx *RenderContext, b Block) Output {
	var items strings.Builder
	for _, item := range b.Content.Items("items") {
		title := item.String("title")
		if title == "" {
			continue
		}
		items.WriteString(`<li class="` + b.class("item") + `">`)
		if year := item.String("year"); year != "" {
			items.WriteString(`<span class="` + b.class("year") + `">` + esc(year) + `</span>`)
		}
		items.WriteString(`<span class="` + b.class("name") + `">` + esc(title) + `</span>`)
		if issuer := item.String("issuer"); issuer != "" {
			items.WriteString(`<span class="` + b.class("issuer") + `">` + esc(issuer) + `</span>`)
		}
		items.WriteString(`</li>`)
	}
	if items.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ul class="` + b.class("items") + `">` + items.String() + `</ul>`)
	return frame(b, "div", sb.String())
}

func renderPress(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("items"), b.Content.Items("items"), func(w *strings.Builder, _ int, item models.Content) bool {
		outlet := item.String("outlet")
		if outlet == "" {
			return false
		}
		w.WriteString(`<article class="` + b.class("item") + `">`)
		if quote := item.String("quote"); quote != "" {
			w.WriteString(`<blockquote class="` + b.class("quote") + `">` + esc(quote) + `</blockquote>`)
		}
		if link := cleanURL(item.String("link")); link != "" {
			w.WriteString(`<a class="` + b.class("outlet") + `" href="` + esc(link) + `" rel="noopener">` + esc(outlet) + `</a>`)
		} else {
			w.WriteString(`<span class="` + b.class("outlet") + `">` + esc(outlet) + `</span>`)
		}
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}
