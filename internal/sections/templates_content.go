package sections

import (
	"strings"

	"sitebuilder-backend/internal/models"
)

const tabsScript = `document.querySelectorAll('.tabs').forEach(function(root){var tabs=root.querySelectorAll('[role="tab"]');tabs.forEach(function(tab){tab.addEventListener('click',function(){tabs.forEach(function(t){t.setAttribute('aria-selected','false');document.getElementById(t.getAttribute('aria-controls')).hidden=true;});tab.setAttribute('aria-selected','true');document.getElementById(tab.getAttribute('aria-controls')).hidden=false;});});});`

func renderText(rctx *RenderContext, b Block) Output {
	var body strings.Builder
	if !writeParagraphs(&body, b.class("paragraph"), b.Content.String("body")) {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(body.String())
	return frame(b, "div", sb.String())
}

func renderRichText(rctx *RenderContext, b Block) Output {
	markup := strings.TrimSpace(rctx.sanitize(b.Content.String("html")))
	if markup == "" {
		return Output{}
	}
	return frame(b, "div", markup, "prose")
}

func renderHeading(rctx *RenderContext, b Block) Output {
	text := b.Content.String("text")
	if text == "" {
		return Output{}
	}
	level := normalizeHeading(b.Content.String("level"))
	if level == "" {
		level = "h2"
	}

	var sb strings.Builder
	if eyebrow := b.Content.String("eyebrow"); eyebrow != "" && b.Variant == "eyebrow" {
		sb.WriteString(`<span class="` + b.class("eyebrow") + `">` + esc(eyebrow) + `</span>`)
	}
	sb.WriteString(`<` + level + ` class="` + b.class("text") + `">` + esc(text) + `</` + level + `>`)
	if subtitle := b.Content.String("subtitle"); subtitle != "" {
		sb.WriteString(`<p class="` + b.class("subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	return frame(b, "div", sb.String())
}

func renderQuote(rctx *RenderContext, b Block) Output {
	quote := b.Content.String("quote")
	if quote == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<blockquote class="` + b.class("body") + `"><p>` + esc(quote) + `</p>`)
	if author := b.Content.String("author"); author != "" {
		sb.WriteString(`<footer class="` + b.class("attribution") + `"><cite>` + esc(author) + `</cite>`)
		if role := b.Content.String("role"); role != "" {
			sb.WriteString(`<span class="` + b.class("role") + `">` + esc(role) + `</span>`)
		}
		sb.WriteString(`</footer>`)
	}
	sb.WriteString(`</blockquote>`)
	return frame(b, "figure", sb.String())
}

func normalizeTone(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "success":
		return "success"
	case "warning":
		return "warning"
	case "danger", "error":
		return "danger"
	default:
		return "info"
	}
}

func renderCallout(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	text := b.Content.String("text")
	if title == "" && text == "" {
		return Output{}
	}

	var sb strings.Builder
	if title != "" {
		sb.WriteString(`<strong class="` + b.class("title") + `">` + esc(title) + `</strong>`)
	}
	writeParagraphs(&sb, b.class("text"), text)
	return frame(b, "aside", sb.String(), b.base()+"--"+normalizeTone(b.Content.String("tone")))
}

func renderTwoColumn(rctx *RenderContext, b Block) Output {
	left := strings.TrimSpace(rctx.sanitize(b.Content.String("left")))
	right := strings.TrimSpace(rctx.sanitize(b.Content.String("right")))
	if left == "" && right == "" {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<div class="` + b.class("grid") + `">`)
	sb.WriteString(`<div class="` + b.class("column") + ` prose">` + left + `</div>`)
	sb.WriteString(`<div class="` + b.class("column") + ` prose">` + right + `</div>`)
	sb.WriteString(`</div>`)
	return frame(b, "div", sb.String())
}

func renderCodeBlock(rctx *RenderContext, b Block) Output {
	code := b.Content["code"]
	source, _ := code.(string)
	if strings.TrimSpace(source) == "" {
		return Output{}
	}

	var sb strings.Builder
	if filename := b.Content.String("filename"); filename != "" {
		sb.WriteString(`<div class="` + b.class("filename") + `">` + esc(filename) + `</div>`)
	}
	language := strings.ToLower(b.Content.String("language"))
	sb.WriteString(`<pre class="` + b.class("pre") + `"><code`)
	if language != "" {
		sb.WriteString(` class="language-` + esc(language) + `"`)
	}
	sb.WriteString(`>` + esc(source) + `</code></pre>`)
	return frame(b, "div", sb.String())
}

// renderTableOfContents links to the visible HEADING sections of the current page.
func renderTableOfContents(rctx *RenderContext, b Block) Output {
	page := rctx.page()
	if page == nil {
		return Output{}
	}

	var items strings.Builder
	for _, section := range page.Sections.Visible() {
		if Resolve(section.Type) != Heading || section.ID == "" {
			continue
		}
		text := section.Content.String("text")
		if text == "" {
			continue
		}
		level := normalizeHeading(section.Content.String("level"))
		if level == "" {
			level = "h2"
		}
		items.WriteString(`<li class="` + b.class("item") + ` ` + b.class("item--"+level) + `"><a href="#` + esc(section.ID) + `">` + esc(text) + `</a></li>`)
	}
	if items.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	if title := b.Content.String("title"); title != "" {
		sb.WriteString(`<p class="` + b.class("title") + `">` + esc(title) + `</p>`)
	}
	sb.WriteString(`<ol class="` + b.class("list") + `">` + items.String() + `</ol>`)
	return frame(b, "nav", sb.String())
}

func renderDivider(rctx *RenderContext, b Block) Output {
	return Output{HTML: `<hr class="` + b.root() + `" />`}
}

func renderSpacer(rctx *RenderContext, b Block) Output {
	size := strings.ToLower(b.Content.String("size"))
	switch size {
	case "small", "medium", "large":
	default:
		size = "medium"
	}
	return Output{HTML: `<div class="` + b.root(b.base()+"--"+size) + `" aria-hidden="true"></div>`}
}

func renderList(rctx *RenderContext, b Block) Output {
	items := b.Content.Strings("items")
	if len(items) == 0 {
		return Output{}
	}
	tag := "ul"
	if b.Content.Bool("ordered", false) {
		tag = "ol"
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<` + tag + ` class="` + b.class("items") + `">`)
	for _, item := range items {
		sb.WriteString(`<li class="` + b.class("item") + `">` + esc(item) + `</li>`)
	}
	sb.WriteString(`</` + tag + `>`)
	return frame(b, "div", sb.String())
}

func renderTable(rctx *RenderContext, b Block) Output {
	headers := b.Content.Strings("headers")
	rows := b.Content.Items("rows")
	if len(rows) == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<div class="` + b.class("scroll") + `"><table class="` + b.class("table") + `">`)
	if len(headers) > 0 {
		sb.WriteString(`<thead><tr>`)
		for _, header := range headers {
			sb.WriteString(`<th scope="col">` + esc(header) + `</th>`)
		}
		sb.WriteString(`</tr></thead>`)
	}
	sb.WriteString(`<tbody>`)
	for _, row := range rows {
		sb.WriteString(`<tr>`)
		for _, cell := range row.Strings("cells") {
			sb.WriteString(`<td>` + esc(cell) + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table></div>`)
	return frame(b, "div", sb.String())
}

// writeDisclosure renders one native details element, so no script is needed.
func writeDisclosure(sb *strings.Builder, b Block, summary, body string, open bool) bool {
	if summary == "" || body == "" {
		return false
	}
	sb.WriteString(`<details class="` + b.class("item") + `"`)
	if open {
		sb.WriteString(` open`)
	}
	sb.WriteString(`><summary class="` + b.class("summary") + `">` + esc(summary) + `</summary>`)
	sb.WriteString(`<div class="` + b.class("body") + `">`)
	writeParagraphs(sb, b.class("text"), body)
	sb.WriteString(`</div></details>`)
	return true
}

func renderAccordion(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("items"), b.Content.Items("items"), func(w *strings.Builder, i int, item models.Content) bool {
		return writeDisclosure(w, b, item.String("title"), item.String("content"), i == 0 && b.Content.Bool("firstOpen", false))
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderTabs(rctx *RenderContext, b Block) Output {
	type tab struct{ label, body string }
	var tabs []tab
	for _, item := range b.Content.Items("items") {
		label := item.String("label")
		body := item.String("content")
		if label == "" || body == "" {
			continue
		}
		tabs = append(tabs, tab{label: label, body: body})
	}
	if len(tabs) == 0 {
		return Output{}
	}

	prefix := b.ID
	if prefix == "" {
		prefix = b.base()
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("list") + `" role="tablist">`)
	for i, t := range tabs {
		selected := "false"
		if i == 0 {
			selected = "true"
		}
		panelID := esc(prefix + "-panel-" + itoa(i))
		sb.WriteString(`<button type="button" class="` + b.class("tab") + `" role="tab" aria-selected="` + selected + `" aria-controls="` + panelID + `">` + esc(t.label) + `</button>`)
	}
	sb.WriteString(`</div>`)
	for i, t := range tabs {
		panelID := esc(prefix + "-panel-" + itoa(i))
		sb.WriteString(`<div class="` + b.class("panel") + `" role="tabpanel" id="` + panelID + `"`)
		if i > 0 {
			sb.WriteString(` hidden`)
		}
		sb.WriteString(`>`)
		writeParagraphs(&sb, b.class("text"), t.body)
		sb.WriteString(`</div>`)
	}

	out := frame(b, "div", sb.String())
	out.Scripts = []string{tabsScript}
	return out
}
