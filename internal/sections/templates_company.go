package sections

import (
	"fmt"
	"net/url"
	"strings"

	"sitebuilder-backend/internal/models"
)

func renderFAQ(rctx *RenderContext, b Block) Output {
	faqs := b.Content.Items("faqs")

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("items"), faqs, func(w *strings.Builder, _ int, item models.Content) bool {
		question := item.String("question")
		answer := item.String("answer")
		if b.Variant == "accordion" {
			return writeDisclosure(w, b, question, answer, false)
		}
		if question == "" || answer == "" {
			return false
		}
		w.WriteString(`<div class="` + b.class("item") + `"><h3 class="` + b.class("question") + `">` + esc(question) + `</h3>`)
		writeParagraphs(w, b.class("answer"), answer)
		w.WriteString(`</div>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderTeam(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("members"), b.Content.Items("members"), func(w *strings.Builder, _ int, member models.Content) bool {
		name := member.String("name")
		if name == "" {
			return false
		}
		photo := member.String("photo")
		if photo == "" {
			photo = rctx.avatarURL(name)
		}
		w.WriteString(`<article class="` + b.class("member") + `">`)
		writeImage(w, b.class("photo"), photo, name)
		w.WriteString(`<h3 class="` + b.class("name") + `">` + esc(name) + `</h3>`)
		if role := member.String("role"); role != "" {
			w.WriteString(`<p class="` + b.class("role") + `">` + esc(role) + `</p>`)
		}
		if bio := member.String("bio"); bio != "" {
			w.WriteString(`<p class="` + b.class("bio") + `">` + esc(bio) + `</p>`)
		}
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

// renderContactInfo prefers values from the section and fills gaps from site settings.
func renderContactInfo(rctx *RenderContext, b Block) Output {
	site := rctx.site()
	email := b.Content.StringOr("email", site.ContactEmail)
	phone := b.Content.StringOr("phone", site.ContactPhone)
	address := b.Content.StringOr("address", site.Address)
	if email == "" && phone == "" && address == "" {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<dl class="` + b.class("list") + `">`)
	if email != "" {
		sb.WriteString(`<dt>Email</dt><dd><a href="mailto:` + esc(email) + `">` + esc(email) + `</a></dd>`)
	}
	if phone != "" {
		tel := strings.Map(func(r rune) rune {
			if r == '+' || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, phone)
		sb.WriteString(`<dt>Phone</dt><dd><a href="tel:` + esc(tel) + `">` + esc(phone) + `</a></dd>`)
	}
	if address != "" {
		sb.WriteString(`<dt>Address</dt><dd><address>` + esc(address) + `</address></dd>`)
	}
	sb.WriteString(`</dl>`)
	return frame(b, "div", sb.String())
}

// mapEmbedURL builds an OpenStreetMap embed for coordinates, or a search link for a plain address.
func mapEmbedURL(content models.Content, fallbackAddress string) (embed string, link string) {
	lat, latOK := content["lat"].(float64)
	lng, lngOK := content["lng"].(float64)
	if latOK && lngOK {
		const span = 0.01
		bbox := fmt.Sprintf("%f,%f,%f,%f", lng-span, lat-span, lng+span, lat+span)
		embed = "https://www.openstreetmap.org/export/embed.html?bbox=" + url.QueryEscape(bbox) + "&layer=mapnik&marker=" + url.QueryEscape(fmt.Sprintf("%f,%f", lat, lng))
		link = fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f", lat, lng)
		return embed, link
	}

	address := content.StringOr("address", fallbackAddress)
	if address == "" {
		return "", ""
	}
	return "", "https://www.openstreetmap.org/search?query=" + url.QueryEscape(address)
}

func renderMap(rctx *RenderContext, b Block) Output {
	embed, link := mapEmbedURL(b.Content, rctx.site().Address)
	if embed == "" && link == "" {
		return Output{}
	}
	height := clamp(b.Content.Int("height", 360), 160, 1200)

	var sb strings.Builder
	if embed != "" {
		sb.WriteString(`<iframe class="` + b.class("frame") + `" src="` + esc(embed) + `" height="` + itoa(height) + `" title="Map" loading="lazy"></iframe>`)
	}
	sb.WriteString(`<a class="` + b.class("link") + `" href="` + esc(link) + `" rel="noopener" target="_blank">` + esc(b.Content.StringOr("linkText", "Open map")) + `</a>`)
	return frame(b, "section", sb.String())
}

func renderOpeningHours(rctx *RenderContext, b Block) Output {
	var rows strings.Builder
	for _, entry := range b.Content.Items("hours") {
		day := entry.String("day")
		if day == "" {
			continue
		}
		value := b.Content.StringOr("closedLabel", "Closed")
		if !entry.Bool("closed", false) {
			opens, closes := entry.String("open"), entry.String("close")
			if opens == "" || closes == "" {
				continue
			}
			value = opens + " – " + closes
		}
		rows.WriteString(`<tr><th scope="row">` + esc(day) + `</th><td>` + esc(value) + `</td></tr>`)
	}
	if rows.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<table class="` + b.class("table") + `"><tbody>` + rows.String() + `</tbody></table>`)
	return frame(b, "div", sb.String())
}

func renderLocations(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("grid"), b.Content.Items("items"), func(w *strings.Builder, _ int, item models.Content) bool {
		name := item.String("name")
		address := item.String("address")
		if name == "" || address == "" {
			return false
		}
		w.WriteString(`<article class="` + b.class("item") + `"><h3 class="` + b.class("name") + `">` + esc(name) + `</h3>`)
		w.WriteString(`<address class="` + b.class("address") + `">` + esc(address) + `</address>`)
		if phone := item.String("phone"); phone != "" {
			w.WriteString(`<p class="` + b.class("phone") + `">` + esc(phone) + `</p>`)
		}
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderTimeline(rctx *RenderContext, b Block) Output {
	var events strings.Builder
	for _, event := range b.Content.Items("events") {
		title := event.String("title")
		if title == "" {
			continue
		}
		events.WriteString(`<li class="` + b.class("event") + `">`)
		if date := event.String("date"); date != "" {
			events.WriteString(`<span class="` + b.class("date") + `">` + esc(date) + `</span>`)
		}
		events.WriteString(`<h3 class="` + b.class("event-title") + `">` + esc(title) + `</h3>`)
		if text := event.String("text"); text != "" {
			events.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
		}
		events.WriteString(`</li>`)
	}
	if events.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ol class="` + b.class("events") + `">` + events.String() + `</ol>`)
	return frame(b, "div", sb.String())
}

// renderJobs shows the configured empty text when there are no openings, so the page still explains itself.
func renderJobs(rctx *RenderContext, b Block) Output {
	var list strings.Builder
	for _, job := range b.Content.Items("items") {
		title := job.String("title")
		if title == "" {
			continue
		}
		list.WriteString(`<li class="` + b.class("item") + `">`)
		if link := cleanURL(job.String("link")); link != "" {
			list.WriteString(`<a class="` + b.class("title") + `" href="` + esc(link) + `">` + esc(title) + `</a>`)
		} else {
			list.WriteString(`<span class="` + b.class("title") + `">` + esc(title) + `</span>`)
		}
		var meta []string
		for _, key := range []string{"location", "type"} {
			if value := job.String(key); value != "" {
				meta = append(meta, esc(value))
			}
		}
		if len(meta) > 0 {
			list.WriteString(`<span class="` + b.class("meta") + `">` + strings.Join(meta, " · ") + `</span>`)
		}
		list.WriteString(`</li>`)
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if list.Len() > 0 {
		sb.WriteString(`<ul class="` + b.class("items") + `">` + list.String() + `</ul>`)
	} else if empty := b.Content.String("emptyText"); empty != "" {
		sb.WriteString(`<p class="` + b.class("empty") + `">` + esc(empty) + `</p>`)
	} else {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderAbout(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	text := b.Content.String("text")
	if title == "" && text == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("body") + `">`)
	if title != "" {
		sb.WriteString(`<h2 class="` + b.class("title") + `">` + esc(title) + `</h2>`)
	}
	writeParagraphs(&sb, b.class("text"), text)
	if highlights := b.Content.Strings("highlights"); len(highlights) > 0 {
		sb.WriteString(`<ul class="` + b.class("highlights") + `">`)
		for _, highlight := range highlights {
			sb.WriteString(`<li>` + esc(highlight) + `</li>`)
		}
		sb.WriteString(`</ul>`)
	}
	sb.WriteString(`</div>`)
	writeImage(&sb, b.class("image"), b.Content.String("image"), title)
	return frame(b, "div", sb.String())
}
