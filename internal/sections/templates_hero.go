package sections

import (
	"strings"
)

const announcementScript = `document.querySelectorAll('[data-dismiss="announcement"]').forEach(function(btn){btn.addEventListener('click',function(){btn.closest('.announcement-bar').remove();});});`

func writeHeroActions(sb *strings.Builder, b Block) {
	var actions strings.Builder
	writeButton(&actions, b.class("button")+" "+b.class("button--primary"), b.Content.String("buttonText"), b.Content.String("buttonUrl"))
	writeButton(&actions, b.class("button")+" "+b.class("button--secondary"), b.Content.String("secondaryButtonText"), b.Content.String("secondaryButtonUrl"))
	if actions.Len() > 0 {
		sb.WriteString(`<div class="` + b.class("actions") + `">` + actions.String() + `</div>`)
	}
}

func writeHeroCopy(sb *strings.Builder, b Block, title string) {
	sb.WriteString(`<h1 class="` + b.class("title") + `">` + esc(title) + `</h1>`)
	if subtitle := b.Content.String("subtitle"); subtitle != "" {
		sb.WriteString(`<p class="` + b.class("subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	if text := b.Content.String("text"); text != "" {
		writeParagraphs(sb, b.class("text"), text)
	}
	writeHeroActions(sb, b)
}

func renderHero(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	if title == "" {
		return Output{}
	}

	var sb strings.Builder
	image := cleanURL(b.Content.String("image"))
	style := ""
	if image != "" && b.Variant != "minimal" {
		style = ` style="background-image:url('` + esc(image) + `')"`
	}
	sb.WriteString(`<div class="` + b.class("inner") + `"` + style + `>`)
	sb.WriteString(`<div class="` + b.class("content") + `">`)
	writeHeroCopy(&sb, b, title)
	sb.WriteString(`</div></div>`)

	return frame(b, "section", sb.String())
}

func renderHeroSplit(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	if title == "" {
		return Output{}
	}

	var copyHTML, mediaHTML strings.Builder
	copyHTML.WriteString(`<div class="` + b.class("content") + `">`)
	writeHeroCopy(&copyHTML, b, title)
	copyHTML.WriteString(`</div>`)

	alt := b.Content.StringOr("imageAlt", title)
	if writeImage(&mediaHTML, b.class("image"), b.Content.String("image"), alt) {
		wrapped := `<div class="` + b.class("media") + `">` + mediaHTML.String() + `</div>`
		mediaHTML.Reset()
		mediaHTML.WriteString(wrapped)
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("grid") + `">`)
	if b.Variant == "image-left" {
		sb.WriteString(mediaHTML.String())
		sb.WriteString(copyHTML.String())
	} else {
		sb.WriteString(copyHTML.String())
		sb.WriteString(mediaHTML.String())
	}
	sb.WriteString(`</div>`)

	return frame(b, "section", sb.String())
}

func renderHeroVideo(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	video := cleanURL(b.Content.String("videoUrl"))
	if title == "" && video == "" {
		return Output{}
	}

	var sb strings.Builder
	if video != "" {
		sb.WriteString(`<video class="` + b.class("video") + `" src="` + esc(video) + `" autoplay muted loop playsinline`)
		if poster := cleanURL(b.Content.String("poster")); poster != "" {
			sb.WriteString(` poster="` + esc(poster) + `"`)
		}
		sb.WriteString(`></video>`)
	}
	if title != "" {
		sb.WriteString(`<div class="` + b.class("content") + `">`)
		writeHeroCopy(&sb, b, title)
		sb.WriteString(`</div>`)
	}

	return frame(b, "section", sb.String())
}

func renderPageHeader(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	if title == "" {
		if page := rctx.page(); page != nil {
			title = page.Title
		}
	}
	if title == "" {
		return Output{}
	}

	var sb strings.Builder
	if b.Variant == "banner" {
		writeImage(&sb, b.class("image"), b.Content.String("image"), title)
	}
	sb.WriteString(`<h1 class="` + b.class("title") + `">` + esc(title) + `</h1>`)
	if subtitle := b.Content.String("subtitle"); subtitle != "" {
		sb.WriteString(`<p class="` + b.class("subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	return frame(b, "header", sb.String())
}

func renderPostHeader(rctx *RenderContext, b Block) Output {
	page := rctx.page()
	title := b.Content.String("title")
	if title == "" && page != nil {
		title = page.Title
	}
	if title == "" {
		return Output{}
	}

	var sb strings.Builder
	if page != nil && b.Content.Bool("showCover", true) {
		writeImage(&sb, b.class("cover"), page.CoverImage, title)
	}
	sb.WriteString(`<div class="` + b.class("content") + `">`)
	if page != nil && page.Category != "" {
		sb.WriteString(`<a class="` + b.class("category") + `" href="/blog?category=` + esc(page.Category) + `">` + esc(page.Category) + `</a>`)
	}
	sb.WriteString(`<h1 class="` + b.class("title") + `">` + esc(title) + `</h1>`)
	if page != nil && b.Content.Bool("showMeta", true) {
		var meta []string
		if page.Author != "" {
			meta = append(meta, `<span class="`+b.class("author")+`">`+esc(page.Author)+`</span>`)
		}
		if page.PublishedAt != nil {
			meta = append(meta, `<time class="`+b.class("date")+`" datetime="`+page.PublishedAt.UTC().Format("2006-01-02")+`">`+page.PublishedAt.Format("January 2, 2006")+`</time>`)
		}
		if len(meta) > 0 {
			sb.WriteString(`<div class="` + b.class("meta") + `">` + strings.Join(meta, "") + `</div>`)
		}
	}
	sb.WriteString(`</div>`)

	return frame(b, "header", sb.String())
}

func renderAnnouncementBar(rctx *RenderContext, b Block) Output {
	text := b.Content.String("text")
	if text == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	writeButton(&sb, b.class("link"), b.Content.String("linkText"), b.Content.String("linkUrl"))

	dismissible := b.Content.Bool("dismissible", false)
	if dismissible {
		sb.WriteString(`<button type="button" class="` + b.class("close") + `" data-dismiss="announcement" aria-label="Dismiss">&times;</button>`)
	}

	out := frame(b, "div", sb.String())
	if dismissible {
		out.Scripts = []string{announcementScript}
	}
	return out
}
