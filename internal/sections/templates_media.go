package sections

import (
	"net/url"
	"strings"

	"sitebuilder-backend/internal/models"
)

const carouselScript = `document.querySelectorAll('.carousel[data-autoplay="true"]').forEach(function(root){var slides=root.querySelectorAll('.carousel__slide');if(slides.length<2){return;}var i=0;setInterval(function(){slides[i].classList.remove('is-active');i=(i+1)%slides.length;slides[i].classList.add('is-active');},5000);});`

const beforeAfterScript = `document.querySelectorAll('.before-after').forEach(function(root){var range=root.querySelector('input[type="range"]');var after=root.querySelector('.before-after__after');if(!range||!after){return;}range.addEventListener('input',function(){after.style.clipPath='inset(0 0 0 '+range.value+'%)';});});`

func renderImage(rctx *RenderContext, b Block) Output {
	var img strings.Builder
	if !writeImage(&img, b.class("img"), b.Content.String("src"), b.Content.String("alt")) {
		return Output{}
	}

	var sb strings.Builder
	if link := cleanURL(b.Content.String("link")); link != "" {
		sb.WriteString(`<a class="` + b.class("link") + `" href="` + esc(link) + `">` + img.String() + `</a>`)
	} else {
		sb.WriteString(img.String())
	}
	if caption := b.Content.String("caption"); caption != "" {
		sb.WriteString(`<figcaption class="` + b.class("caption") + `">` + esc(caption) + `</figcaption>`)
	}
	return frame(b, "figure", sb.String())
}

func renderGallery(rctx *RenderContext, b Block) Output {
	columns := clamp(b.Content.Int("columns", 3), 1, 6)

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("grid")+" "+b.class("grid--cols-"+itoa(columns)), b.Content.Items("images"), func(w *strings.Builder, _ int, item models.Content) bool {
		var img strings.Builder
		if !writeImage(&img, b.class("img"), item.String("src"), item.String("alt")) {
			return false
		}
		w.WriteString(`<figure class="` + b.class("item") + `">` + img.String())
		if caption := item.String("caption"); caption != "" {
			w.WriteString(`<figcaption class="` + b.class("caption") + `">` + esc(caption) + `</figcaption>`)
		}
		w.WriteString(`</figure>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

// videoEmbedURL turns YouTube and Vimeo page links into their embeddable form.
func videoEmbedURL(raw string) (string, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := parsed.Query().Get("v"); id != "" {
			return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id), true
		}
		if strings.HasPrefix(parsed.Path, "/embed/") {
			return "https://www.youtube-nocookie.com" + parsed.Path, true
		}
	case "youtu.be":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id), true
		}
	case "vimeo.com":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return "https://player.vimeo.com/video/" + url.PathEscape(id), true
		}
	case "player.vimeo.com":
		return "https://player.vimeo.com" + parsed.Path, true
	}
	return "", false
}

func renderVideo(rctx *RenderContext, b Block) Output {
	source := cleanURL(b.Content.String("url"))
	if source == "" {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<div class="` + b.class("frame") + `">`)
	if embed, ok := videoEmbedURL(source); ok {
		sb.WriteString(`<iframe class="` + b.class("iframe") + `" src="` + esc(embed) + `" title="` + esc(b.Content.StringOr("title", "Video")) + `" allow="autoplay; encrypted-media; picture-in-picture" allowfullscreen loading="lazy"></iframe>`)
	} else {
		sb.WriteString(`<video class="` + b.class("player") + `" src="` + esc(source) + `" controls preload="metadata"`)
		if poster := cleanURL(b.Content.String("poster")); poster != "" {
			sb.WriteString(` poster="` + esc(poster) + `"`)
		}
		sb.WriteString(`></video>`)
	}
	sb.WriteString(`</div>`)
	if caption := b.Content.String("caption"); caption != "" {
		sb.WriteString(`<p class="` + b.class("caption") + `">` + esc(caption) + `</p>`)
	}
	return frame(b, "div", sb.String())
}

// renderEmbed only frames https sources.
func renderEmbed(rctx *RenderContext, b Block) Output {
	source := cleanURL(b.Content.String("url"))
	if !strings.HasPrefix(strings.ToLower(source), "https://") {
		return Output{}
	}
	height := clamp(b.Content.Int("height", 480), 120, 2000)

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<iframe class="` + b.class("iframe") + `" src="` + esc(source) + `" height="` + itoa(height) + `" title="` + esc(b.Content.StringOr("title", "Embedded content")) + `" loading="lazy" sandbox="allow-scripts allow-same-origin allow-forms allow-popups"></iframe>`)
	return frame(b, "div", sb.String())
}

func renderImageText(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	text := b.Content.String("text")
	if title == "" && text == "" {
		return Output{}
	}

	var media strings.Builder
	writeImage(&media, b.class("image"), b.Content.String("image"), b.Content.StringOr("imageAlt", title))

	var body strings.Builder
	body.WriteString(`<div class="` + b.class("body") + `">`)
	if title != "" {
		body.WriteString(`<h2 class="` + b.class("title") + `">` + esc(title) + `</h2>`)
	}
	writeParagraphs(&body, b.class("text"), text)
	writeButton(&body, b.class("button"), b.Content.String("buttonText"), b.Content.String("buttonUrl"))
	body.WriteString(`</div>`)

	position := "left"
	if strings.EqualFold(b.Content.String("imagePosition"), "right") {
		position = "right"
	}

	var sb strings.Builder
	if media.Len() > 0 && position == "left" {
		sb.WriteString(`<div class="` + b.class("media") + `">` + media.String() + `</div>`)
	}
	sb.WriteString(body.String())
	if media.Len() > 0 && position == "right" {
		sb.WriteString(`<div class="` + b.class("media") + `">` + media.String() + `</div>`)
	}
	return frame(b, "div", sb.String(), b.base()+"--image-"+position)
}

func renderCarousel(rctx *RenderContext, b Block) Output {
	var slides strings.Builder
	count := 0
	for _, slide := range b.Content.Items("slides") {
		var img strings.Builder
		if !writeImage(&img, b.class("image"), slide.String("image"), slide.String("title")) {
			continue
		}
		class := b.class("slide")
		if count == 0 {
			class += " is-active"
		}
		slides.WriteString(`<div class="` + class + `">`)
		if link := cleanURL(slide.String("link")); link != "" {
			slides.WriteString(`<a href="` + esc(link) + `">` + img.String() + `</a>`)
		} else {
			slides.WriteString(img.String())
		}
		if title := slide.String("title"); title != "" {
			slides.WriteString(`<p class="` + b.class("title") + `">` + esc(title) + `</p>`)
		}
		if caption := slide.String("caption"); caption != "" {
			slides.WriteString(`<p class="` + b.class("caption") + `">` + esc(caption) + `</p>`)
		}
		slides.WriteString(`</div>`)
		count++
	}
	if count == 0 {
		return Output{}
	}

	autoplay := "false"
	if b.Content.Bool("autoplay", true) {
		autoplay = "true"
	}
	html := `<div class="` + b.root() + `" data-autoplay="` + autoplay + `">` + slides.String() + `</div>`
	return Output{HTML: html, Scripts: []string{carouselScript}}
}

func renderAudio(rctx *RenderContext, b Block) Output {
	source := cleanURL(b.Content.String("src"))
	if source == "" {
		return Output{}
	}

	var sb strings.Builder
	if title := b.Content.String("title"); title != "" {
		sb.WriteString(`<p class="` + b.class("title") + `">` + esc(title) + `</p>`)
	}
	sb.WriteString(`<audio class="` + b.class("player") + `" src="` + esc(source) + `" controls preload="none"></audio>`)
	if caption := b.Content.String("caption"); caption != "" {
		sb.WriteString(`<p class="` + b.class("caption") + `">` + esc(caption) + `</p>`)
	}
	return frame(b, "div", sb.String())
}

func renderBeforeAfter(rctx *RenderContext, b Block) Output {
	before := cleanURL(b.Content.String("before"))
	after := cleanURL(b.Content.String("after"))
	if before == "" || after == "" {
		return Output{}
	}
	beforeLabel := b.Content.StringOr("beforeLabel", "Before")
	afterLabel := b.Content.StringOr("afterLabel", "After")

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("stage") + `">`)
	sb.WriteString(`<img class="` + b.class("before") + `" src="` + esc(before) + `" alt="` + esc(beforeLabel) + `" />`)
	sb.WriteString(`<img class="` + b.class("after") + `" src="` + esc(after) + `" alt="` + esc(afterLabel) + `" style="clip-path:inset(0 0 0 50%)" />`)
	sb.WriteString(`</div>`)
	sb.WriteString(`<input class="` + b.class("range") + `" type="range" min="0" max="100" value="50" aria-label="` + esc(beforeLabel+" / "+afterLabel) + `" />`)

	out := frame(b, "div", sb.String())
	out.Scripts = []string{beforeAfterScript}
	return out
}
