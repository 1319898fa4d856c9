package sections

import (
	"strings"

	"sitebuilder-backend/internal/models"
)

// writeCard renders the icon/title/text card shared by the feature-like sections.
func writeCard(w *strings.Builder, b Block, item models.Content) bool {
	title := item.String("title")
	text := item.String("text")
	if title == "" && text == "" {
		return false
	}
	w.WriteString(`<article class="` + b.class("item") + `">`)
	if icon := item.String("icon"); icon != "" {
		w.WriteString(`<span class="` + b.class("icon") + `" aria-hidden="true">` + esc(icon) + `</span>`)
	}
	writeImage(w, b.class("image"), item.String("image"), title)
	if title != "" {
		w.WriteString(`<h3 class="` + b.class("item-title") + `">` + esc(title) + `</h3>`)
	}
	if text != "" {
		w.WriteString(`<p class="` + b.class("item-text") + `">` + esc(text) + `</p>`)
	}
	writeButton(w, b.class("item-link"), item.String("linkText"), item.String("link"))
	w.WriteString(`</article>`)
	return true
}

func renderCardList(b Block, key string, extraGridClass string) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	grid := b.class("grid")
	if extraGridClass != "" {
		grid += " " + extraGridClass
	}
	ok := writeItems(&sb, grid, b.Content.Items(key), func(w *strings.Builder, _ int, item models.Content) bool {
		return writeCard(w, b, item)
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderFeatures(rctx *RenderContext, b Block) Output {
	columns := ""
	if b.Type == FeatureGrid {
		columns = b.class("grid--cols-" + itoa(clamp(b.Content.Int("columns", 3), 1, 6)))
	}
	return renderCardList(b, "items", columns)
}

func renderBenefits(rctx *RenderContext, b Block) Output {
	return renderCardList(b, "items", "")
}

func renderServices(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("grid"), b.Content.Items("items"), func(w *strings.Builder, _ int, item models.Content) bool {
		title := item.String("title")
		if title == "" {
			return false
		}
		w.WriteString(`<article class="` + b.class("item") + `">`)
		w.WriteString(`<h3 class="` + b.class("item-title") + `">` + esc(title) + `</h3>`)
		if text := item.String("text"); text != "" {
			w.WriteString(`<p class="` + b.class("item-text") + `">` + esc(text) + `</p>`)
		}
		if price := item.String("price"); price != "" {
			w.WriteString(`<p class="` + b.class("price") + `">` + esc(price) + `</p>`)
		}
		writeButton(w, b.class("item-link"), item.StringOr("linkText", "Learn more"), item.String("link"))
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderProcessSteps(rctx *RenderContext, b Block) Output {
	steps := b.Content.Items("steps")

	var items strings.Builder
	n := 0
	for _, step := range steps {
		title := step.String("title")
		if title == "" {
			continue
		}
		n++
		items.WriteString(`<li class="` + b.class("step") + `"><span class="` + b.class("number") + `">` + itoa(n) + `</span>`)
		items.WriteString(`<h3 class="` + b.class("step-title") + `">` + esc(title) + `</h3>`)
		if text := step.String("text"); text != "" {
			items.WriteString(`<p class="` + b.class("step-text") + `">` + esc(text) + `</p>`)
		}
		items.WriteString(`</li>`)
	}
	if n == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ol class="` + b.class("steps") + `">` + items.String() + `</ol>`)
	return frame(b, "div", sb.String())
}

func renderComparison(rctx *RenderContext, b Block) Output {
	columns := b.Content.Strings("columns")
	rows := b.Content.Items("rows")
	if len(columns) == 0 || len(rows) == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<div class="` + b.class("scroll") + `"><table class="` + b.class("table") + `"><thead><tr><th></th>`)
	for _, column := range columns {
		sb.WriteString(`<th scope="col">` + esc(column) + `</th>`)
	}
	sb.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		feature := row.String("feature")
		if feature == "" {
			continue
		}
		values := row.Strings("values")
		sb.WriteString(`<tr><th scope="row">` + esc(feature) + `</th>`)
		for i := range columns {
			value := ""
			if i < len(values) {
				value = values[i]
			}
			sb.WriteString(`<td>` + esc(value) + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table></div>`)
	return frame(b, "div", sb.String())
}

func renderIconList(rctx *RenderContext, b Block) Output {
	var items strings.Builder
	for _, item := range b.Content.Items("items") {
		text := item.String("text")
		if text == "" {
			continue
		}
		items.WriteString(`<li class="` + b.class("item") + `">`)
		if icon := item.String("icon"); icon != "" {
			items.WriteString(`<span class="` + b.class("icon") + `" aria-hidden="true">` + esc(icon) + `</span>`)
		}
		items.WriteString(`<span class="` + b.class("text") + `">` + esc(text) + `</span></li>`)
	}
	if items.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ul class="` + b.class("items") + `">` + items.String() + `</ul>`)
	return frame(b, "div", sb.String())
}
