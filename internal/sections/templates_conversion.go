package sections

import (
	"strings"
	"time"

	"sitebuilder-backend/internal/models"
)

const countdownScript = `document.querySelectorAll('.countdown[data-target]').forEach(function(root){var target=Date.parse(root.dataset.target);var out=root.querySelector('.countdown__timer');if(!out||isNaN(target)){return;}var tick=function(){var left=Math.max(0,target-Date.now());var s=Math.floor(left/1000);out.textContent=Math.floor(s/86400)+'d '+Math.floor(s%86400/3600)+'h '+Math.floor(s%3600/60)+'m '+(s%60)+'s';if(left===0){clearInterval(timer);}};var timer=setInterval(tick,1000);tick();});`

func renderCTA(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	if title == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("inner") + `">`)
	sb.WriteString(`<h2 class="` + b.class("title") + `">` + esc(title) + `</h2>`)
	if text := b.Content.String("text"); text != "" {
		sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	}
	writeHeroActions(&sb, b)
	sb.WriteString(`</div>`)
	return frame(b, "section", sb.String())
}

func renderCTABanner(rctx *RenderContext, b Block) Output {
	text := b.Content.String("text")
	if text == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	writeButton(&sb, b.class("button"), b.Content.String("buttonText"), b.Content.String("buttonUrl"))
	return frame(b, "div", sb.String())
}

func renderNewsletter(rctx *RenderContext, b Block) Output {
	action := cleanURL(b.Content.StringOr("action", "/newsletter"))
	if action == "" {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("inner") + `">`)
	writeHeader(&sb, b, "h2")
	if text := b.Content.String("text"); text != "" {
		sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	}
	sb.WriteString(`<form class="` + b.class("form") + `" method="post" action="` + esc(action) + `">`)
	sb.WriteString(`<input class="` + b.class("input") + `" type="email" name="email" required placeholder="` + esc(b.Content.StringOr("placeholder", "you@example.com")) + `" />`)
	sb.WriteString(`<button class="` + b.class("button") + `" type="submit">` + esc(b.Content.StringOr("buttonText", "Subscribe")) + `</button>`)
	sb.WriteString(`</form></div>`)
	return frame(b, "section", sb.String())
}

var contactFields = map[string]struct {
	label, input string
}{
	"name":    {label: "Name", input: `<input type="text" name="name" required />`},
	"email":   {label: "Email", input: `<input type="email" name="email" required />`},
	"phone":   {label: "Phone", input: `<input type="tel" name="phone" />`},
	"company": {label: "Company", input: `<input type="text" name="company" />`},
	"subject": {label: "Subject", input: `<input type="text" name="subject" />`},
	"message": {label: "Message", input: `<textarea name="message" rows="5" required></textarea>`},
}

func renderContactForm(rctx *RenderContext, b Block) Output {
	fields := b.Content.Strings("fields")
	if len(fields) == 0 {
		fields = []string{"name", "email", "message"}
	}
	action := cleanURL(b.Content.StringOr("action", "/contact"))
	if action == "" {
		return Output{}
	}

	var inputs strings.Builder
	seen := make(map[string]bool)
	for _, field := range fields {
		key := strings.ToLower(field)
		def, ok := contactFields[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		inputs.WriteString(`<label class="` + b.class("field") + `"><span class="` + b.class("label") + `">` + def.label + `</span>` + def.input + `</label>`)
	}
	if inputs.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if text := b.Content.String("text"); text != "" {
		sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	}
	sb.WriteString(`<form class="` + b.class("form") + `" method="post" action="` + esc(action) + `">`)
	sb.WriteString(inputs.String())
	sb.WriteString(`<button class="` + b.class("submit") + `" type="submit">` + esc(b.Content.StringOr("submitText", "Send")) + `</button>`)
	sb.WriteString(`</form>`)
	return frame(b, "div", sb.String())
}

func renderPricing(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	ok := writeItems(&sb, b.class("plans"), b.Content.Items("plans"), func(w *strings.Builder, _ int, plan models.Content) bool {
		name := plan.String("name")
		if name == "" {
			return false
		}
		class := b.class("plan")
		if plan.Bool("highlighted", false) {
			class += " " + b.class("plan--highlighted")
		}
		w.WriteString(`<article class="` + class + `">`)
		w.WriteString(`<h3 class="` + b.class("name") + `">` + esc(name) + `</h3>`)
		if price := plan.String("price"); price != "" {
			w.WriteString(`<p class="` + b.class("price") + `"><span class="` + b.class("amount") + `">` + esc(plan.String("currency")) + esc(price) + `</span>`)
			if period := plan.String("period"); period != "" {
				w.WriteString(`<span class="` + b.class("period") + `">/` + esc(period) + `</span>`)
			}
			w.WriteString(`</p>`)
		}
		if features := plan.Strings("features"); len(features) > 0 {
			w.WriteString(`<ul class="` + b.class("features") + `">`)
			for _, feature := range features {
				w.WriteString(`<li>` + esc(feature) + `</li>`)
			}
			w.WriteString(`</ul>`)
		}
		writeButton(w, b.class("button"), plan.StringOr("buttonText", "Choose plan"), plan.String("buttonUrl"))
		w.WriteString(`</article>`)
		return true
	})
	if !ok {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

// renderCountdown prints the remaining time server-side so the section reads correctly without scripts.
func renderCountdown(rctx *RenderContext, b Block) Output {
	target, err := time.Parse(time.RFC3339, b.Content.String("target"))
	if err != nil {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")

	remaining := target.Sub(rctx.now())
	if remaining <= 0 {
		sb.WriteString(`<p class="` + b.class("expired") + `">` + esc(b.Content.StringOr("expiredText", "")) + `</p>`)
		return frame(b, "div", sb.String())
	}

	total := int(remaining.Seconds())
	timer := itoa(total/86400) + "d " + itoa(total%86400/3600) + "h " + itoa(total%3600/60) + "m " + itoa(total%60) + "s"
	sb.WriteString(`<p class="` + b.class("timer") + `">` + timer + `</p>`)

	html := `<div class="` + b.root() + `" data-target="` + esc(target.UTC().Format(time.RFC3339)) + `">` + sb.String() + `</div>`
	return Output{HTML: html, Scripts: []string{countdownScript}}
}

func renderDownload(rctx *RenderContext, b Block) Output {
	file := cleanURL(b.Content.String("file"))
	if file == "" {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if text := b.Content.String("text"); text != "" {
		sb.WriteString(`<p class="` + b.class("text") + `">` + esc(text) + `</p>`)
	}
	sb.WriteString(`<a class="` + b.class("button") + `" href="` + esc(file) + `" download`)
	if name := b.Content.String("fileName"); name != "" {
		sb.WriteString(`="` + esc(name) + `"`)
	}
	sb.WriteString(`>` + esc(b.Content.StringOr("buttonText", "Download")) + `</a>`)
	return frame(b, "div", sb.String())
}

func renderButtonGroup(rctx *RenderContext, b Block) Output {
	var sb strings.Builder
	for _, button := range b.Content.Items("buttons") {
		style := "primary"
		if strings.EqualFold(button.String("style"), "secondary") {
			style = "secondary"
		}
		writeButton(&sb, b.class("button")+" "+b.class("button--"+style), button.String("label"), button.String("url"))
	}
	return frame(b, "div", sb.String())
}
