package sections

import (
	"strings"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/models"
)

func renderSocialLinks(rctx *RenderContext, b Block) Output {
	type link struct{ name, url, icon string }
	var links []link
	for _, item := range b.Content.Items("links") {
		links = append(links, link{name: item.String("name"), url: item.String("url"), icon: item.String("icon")})
	}
	if len(links) == 0 {
		for _, social := range rctx.site().SocialLinks {
			links = append(links, link{name: social.Name, url: social.URL, icon: social.Icon})
		}
	}

	var items strings.Builder
	for _, l := range links {
		href := cleanURL(l.url)
		if l.name == "" || href == "" {
			continue
		}
		items.WriteString(`<li><a class="` + b.class("link") + `" href="` + esc(href) + `" rel="noopener me" target="_blank" aria-label="` + esc(l.name) + `">`)
		if l.icon != "" && b.Variant == "icons" {
			items.WriteString(`<span class="` + b.class("icon") + ` icon-` + esc(strings.ToLower(l.icon)) + `" aria-hidden="true"></span>`)
		} else {
			items.WriteString(esc(l.name))
		}
		items.WriteString(`</a></li>`)
	}
	if items.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ul class="` + b.class("items") + `">` + items.String() + `</ul>`)
	return frame(b, "div", sb.String())
}

// renderBreadcrumbs shows home, the blog index for posts, then the current page. It is empty on the home page.
func renderBreadcrumbs(rctx *RenderContext, b Block) Output {
	page := rctx.page()
	if page == nil || page.Slug == constants.SlugHome {
		return Output{}
	}

	type crumb struct{ label, href string }
	crumbs := []crumb{{label: b.Content.StringOr("homeLabel", "Home"), href: "/"}}
	if page.IsPost() {
		crumbs = append(crumbs, crumb{label: b.Content.StringOr("blogLabel", "Blog"), href: "/blog"})
	}

	var sb strings.Builder
	sb.WriteString(`<ol class="` + b.class("items") + `">`)
	for _, c := range crumbs {
		sb.WriteString(`<li class="` + b.class("item") + `"><a href="` + esc(c.href) + `">` + esc(c.label) + `</a></li>`)
	}
	sb.WriteString(`<li class="` + b.class("item") + `" aria-current="page">` + esc(page.Title) + `</li>`)
	sb.WriteString(`</ol>`)
	return frame(b, "nav", sb.String())
}

type anchorLink struct {
	label  string
	target string
}

// anchorTargets lists visible sections of the page that carry an anchorLabel, in display order.
func anchorTargets(page *models.Page) []anchorLink {
	if page == nil {
		return nil
	}
	var result []anchorLink
	for _, section := range page.Sections.Visible() {
		label := section.Content.String("anchorLabel")
		if label == "" || section.ID == "" {
			continue
		}
		result = append(result, anchorLink{label: label, target: section.ID})
	}
	return result
}

func renderAnchorNav(rctx *RenderContext, b Block) Output {
	var targets []anchorLink
	for _, item := range b.Content.Items("links") {
		label := item.String("label")
		target := strings.TrimPrefix(item.String("target"), "#")
		if label == "" || target == "" {
			continue
		}
		targets = append(targets, anchorLink{label: label, target: target})
	}
	if len(targets) == 0 {
		targets = anchorTargets(rctx.page())
	}
	if len(targets) == 0 {
		return Output{}
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="` + b.class("items") + `">`)
	for _, t := range targets {
		sb.WriteString(`<li><a class="` + b.class("link") + `" href="#` + esc(t.target) + `">` + esc(t.label) + `</a></li>`)
	}
	sb.WriteString(`</ul>`)
	return frame(b, "nav", sb.String())
}
