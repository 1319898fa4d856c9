package sections

import (
	"net/url"
	"sort"
	"strings"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/models"
)

func currentSlug(rctx *RenderContext) string {
	if page := rctx.page(); page != nil {
		return page.Slug
	}
	return ""
}

func postURL(slug string) string {
	return "/blog/" + url.PathEscape(slug)
}

func hasTag(post models.PostSummary, tag string) bool {
	for _, t := range post.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// listablePosts returns the snapshot minus the page being rendered, narrowed by the request filter.
func listablePosts(rctx *RenderContext, applyFilter bool) []models.PostSummary {
	current := currentSlug(rctx)
	var filter PostFilter
	if applyFilter && rctx != nil {
		filter = rctx.Filter
	}

	result := make([]models.PostSummary, 0, len(rctx.posts()))
	for _, post := range rctx.posts() {
		if post.Slug == current {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(post.Category, filter.Category) {
			continue
		}
		if filter.Tag != "" && !hasTag(post, filter.Tag) {
			continue
		}
		result = append(result, post)
	}
	return result
}

func limitFor(b Block, fallback int) int {
	return clamp(b.Content.Int("limit", fallback), 1, constants.MaxPostListSectionLimit)
}

func writePostCard(w *strings.Builder, b Block, post models.PostSummary, showExcerpt, showDate bool) bool {
	if post.Slug == "" || post.Title == "" {
		return false
	}
	href := esc(postURL(post.Slug))
	w.WriteString(`<article class="` + b.class("post") + `">`)
	if post.CoverImage != "" {
		var img strings.Builder
		if writeImage(&img, b.class("cover"), post.CoverImage, post.Title) {
			w.WriteString(`<a class="` + b.class("cover-link") + `" href="` + href + `">` + img.String() + `</a>`)
		}
	}
	if post.Category != "" {
		w.WriteString(`<span class="` + b.class("category") + `">` + esc(post.Category) + `</span>`)
	}
	w.WriteString(`<h3 class="` + b.class("post-title") + `"><a href="` + href + `">` + esc(post.Title) + `</a></h3>`)
	if showDate && post.PublishedAt != nil {
		w.WriteString(`<time class="` + b.class("date") + `" datetime="` + post.PublishedAt.UTC().Format("2006-01-02") + `">` + post.PublishedAt.Format("Jan 2, 2006") + `</time>`)
	}
	if showExcerpt && post.Excerpt != "" {
		w.WriteString(`<p class="` + b.class("excerpt") + `">` + esc(post.Excerpt) + `</p>`)
	}
	w.WriteString(`</article>`)
	return true
}

func writePostGrid(sb *strings.Builder, b Block, posts []models.PostSummary, showExcerpt, showDate bool) bool {
	var cards strings.Builder
	count := 0
	for _, post := range posts {
		if writePostCard(&cards, b, post, showExcerpt, showDate) {
			count++
		}
	}
	if count == 0 {
		return false
	}
	sb.WriteString(`<div class="` + b.class("posts") + `">` + cards.String() + `</div>`)
	return true
}

func renderBlogHero(rctx *RenderContext, b Block) Output {
	title := b.Content.String("title")
	if title == "" {
		if page := rctx.page(); page != nil {
			title = page.Title
		}
	}
	if title == "" {
		title = "Blog"
	}
	subtitle := b.Content.StringOr("subtitle", rctx.site().Tagline)

	var sb strings.Builder
	sb.WriteString(`<div class="` + b.class("inner") + `"><h1 class="` + b.class("title") + `">` + esc(title) + `</h1>`)
	if subtitle != "" {
		sb.WriteString(`<p class="` + b.class("subtitle") + `">` + esc(subtitle) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return frame(b, "section", sb.String())
}

type termCount struct {
	name  string
	count int
}

func countTerms(posts []models.PostSummary, terms func(models.PostSummary) []string) []termCount {
	counts := make(map[string]*termCount)
	for _, post := range posts {
		for _, term := range terms(post) {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			key := strings.ToLower(term)
			if existing, ok := counts[key]; ok {
				existing.count++
				continue
			}
			counts[key] = &termCount{name: term, count: 1}
		}
	}
	result := make([]termCount, 0, len(counts))
	for _, tc := range counts {
		result = append(result, *tc)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].name) < strings.ToLower(result[j].name)
	})
	return result
}

func postCategories(post models.PostSummary) []string {
	return []string{post.Category}
}

func postTags(post models.PostSummary) []string {
	return post.Tags
}

func writeFilterLinks(sb *strings.Builder, b Block, param, active string, terms []termCount) {
	sb.WriteString(`<ul class="` + b.class("terms") + ` ` + b.class("terms--"+param) + `">`)
	allClass := b.class("term")
	if active == "" {
		allClass += " is-active"
	}
	sb.WriteString(`<li><a class="` + allClass + `" href="/blog">All</a></li>`)
	for _, term := range terms {
		class := b.class("term")
		if strings.EqualFold(term.name, active) {
			class += " is-active"
		}
		sb.WriteString(`<li><a class="` + class + `" href="/blog?` + param + `=` + esc(url.QueryEscape(term.name)) + `">` + esc(term.name) + `</a></li>`)
	}
	sb.WriteString(`</ul>`)
}

func renderBlogFilter(rctx *RenderContext, b Block) Output {
	posts := rctx.posts()
	var filter PostFilter
	if rctx != nil {
		filter = rctx.Filter
	}

	var sb strings.Builder
	if b.Content.Bool("showCategories", true) {
		if categories := countTerms(posts, postCategories); len(categories) > 0 {
			writeFilterLinks(&sb, b, "category", filter.Category, categories)
		}
	}
	if b.Content.Bool("showTags", false) {
		if tags := countTerms(posts, postTags); len(tags) > 0 {
			writeFilterLinks(&sb, b, "tag", filter.Tag, tags)
		}
	}
	return frame(b, "nav", sb.String())
}

// renderBlogList always renders, showing an empty-state message when nothing matches.
func renderBlogList(rctx *RenderContext, b Block) Output {
	posts := listablePosts(rctx, true)
	if limit := clamp(b.Content.Int("limit", 12), 1, constants.PostSnapshotSize); len(posts) > limit {
		posts = posts[:limit]
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if !writePostGrid(&sb, b, posts, b.Content.Bool("showExcerpt", true), b.Content.Bool("showDate", true)) {
		sb.WriteString(`<p class="` + b.class("empty") + `">` + esc(b.Content.StringOr("emptyText", "No posts yet.")) + `</p>`)
	}
	return frame(b, "div", sb.String())
}

func renderFeaturedPosts(rctx *RenderContext, b Block) Output {
	limit := limitFor(b, 3)
	slugs := b.Content.Strings("slugs")

	var posts []models.PostSummary
	if len(slugs) > 0 {
		bySlug := make(map[string]models.PostSummary)
		for _, post := range listablePosts(rctx, false) {
			bySlug[post.Slug] = post
		}
		for _, slug := range slugs {
			if post, ok := bySlug[slug]; ok {
				posts = append(posts, post)
			}
		}
	} else {
		posts = listablePosts(rctx, false)
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if !writePostGrid(&sb, b, posts, true, true) {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

func renderLatestPosts(rctx *RenderContext, b Block) Output {
	posts := listablePosts(rctx, false)
	if limit := limitFor(b, 3); len(posts) > limit {
		posts = posts[:limit]
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if !writePostGrid(&sb, b, posts, b.Variant != "list", true) {
		return Output{}
	}
	return frame(b, "div", sb.String())
}

// relatedPosts ranks posts by shared category (two points) and shared tags (one point each).
// Posts with no overlap are dropped; ties keep snapshot order, which is newest first.
func relatedPosts(page *models.Page, posts []models.PostSummary) []models.PostSummary {
	if page == nil {
		return nil
	}
	type scored struct {
		post  models.PostSummary
		score int
	}
	var ranked []scored
	for _, post := range posts {
		if post.Slug == page.Slug {
			continue
		}
		score := 0
		if page.Category != "" && strings.EqualFold(page.Category, post.Category) {
			score += 2
		}
		for _, tag := range page.Tags {
			if hasTag(post, tag) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{post: post, score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	result := make([]models.PostSummary, len(ranked))
	for i, r := range ranked {
		result[i] = r.post
	}
	return result
}

func renderRelatedPosts(rctx *RenderContext, b Block) Output {
	posts := relatedPosts(rctx.page(), rctx.posts())
	if limit := limitFor(b, 3); len(posts) > limit {
		posts = posts[:limit]
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	if !writePostGrid(&sb, b, posts, false, true) {
		return Output{}
	}
	return frame(b, "aside", sb.String())
}

func renderAuthorBio(rctx *RenderContext, b Block) Output {
	page := rctx.page()
	name := b.Content.String("name")
	bio := b.Content.String("bio")
	if page != nil {
		if name == "" {
			name = page.Author
		}
		if bio == "" {
			bio = page.AuthorBio
		}
	}
	if name == "" {
		return Output{}
	}
	avatar := b.Content.String("avatar")
	if avatar == "" {
		avatar = rctx.avatarURL(name)
	}

	var sb strings.Builder
	writeImage(&sb, b.class("avatar"), avatar, name)
	sb.WriteString(`<div class="` + b.class("body") + `"><p class="` + b.class("name") + `">` + esc(name) + `</p>`)
	if bio != "" {
		sb.WriteString(`<p class="` + b.class("bio") + `">` + esc(bio) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return frame(b, "aside", sb.String())
}

// renderPostNavigation links to the neighbours of the current post in the newest-first snapshot.
func renderPostNavigation(rctx *RenderContext, b Block) Output {
	current := currentSlug(rctx)
	posts := rctx.posts()
	index := -1
	for i, post := range posts {
		if post.Slug == current {
			index = i
			break
		}
	}
	if index < 0 {
		return Output{}
	}

	var sb strings.Builder
	if index+1 < len(posts) {
		older := posts[index+1]
		sb.WriteString(`<a class="` + b.class("link") + ` ` + b.class("link--previous") + `" href="` + esc(postURL(older.Slug)) + `" rel="prev"><span class="` + b.class("label") + `">` + esc(b.Content.StringOr("previousLabel", "Previous")) + `</span><span class="` + b.class("title") + `">` + esc(older.Title) + `</span></a>`)
	}
	if index > 0 {
		newer := posts[index-1]
		sb.WriteString(`<a class="` + b.class("link") + ` ` + b.class("link--next") + `" href="` + esc(postURL(newer.Slug)) + `" rel="next"><span class="` + b.class("label") + `">` + esc(b.Content.StringOr("nextLabel", "Next")) + `</span><span class="` + b.class("title") + `">` + esc(newer.Title) + `</span></a>`)
	}
	return frame(b, "nav", sb.String())
}

func shareURL(network, target, title string) (string, string) {
	t := url.QueryEscape(target)
	switch strings.ToLower(network) {
	case "twitter", "x":
		return "X", "https://twitter.com/intent/tweet?url=" + t + "&text=" + url.QueryEscape(title)
	case "facebook":
		return "Facebook", "https://www.facebook.com/sharer/sharer.php?u=" + t
	case "linkedin":
		return "LinkedIn", "https://www.linkedin.com/sharing/share-offsite/?url=" + t
	case "email":
		return "Email", "mailto:?subject=" + url.QueryEscape(title) + "&body=" + t
	default:
		return "", ""
	}
}

func renderShareButtons(rctx *RenderContext, b Block) Output {
	page := rctx.page()
	if page == nil || page.Slug == "" {
		return Output{}
	}
	target := strings.TrimRight(rctx.site().URL, "/") + postURL(page.Slug)

	var links strings.Builder
	for _, network := range b.Content.Strings("networks") {
		label, href := shareURL(network, target, page.Title)
		if href == "" {
			continue
		}
		links.WriteString(`<a class="` + b.class("link") + ` ` + b.class("link--"+strings.ToLower(label)) + `" href="` + esc(href) + `" rel="noopener" target="_blank">` + esc(label) + `</a>`)
	}
	if links.Len() == 0 {
		return Output{}
	}

	var sb strings.Builder
	if title := b.Content.String("title"); title != "" {
		sb.WriteString(`<span class="` + b.class("title") + `">` + esc(title) + `</span>`)
	}
	sb.WriteString(links.String())
	return frame(b, "div", sb.String())
}

func renderCategoriesList(rctx *RenderContext, b Block) Output {
	categories := countTerms(rctx.posts(), postCategories)
	if len(categories) == 0 {
		return Output{}
	}
	showCounts := b.Content.Bool("showCounts", true)

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<ul class="` + b.class("items") + `">`)
	for _, category := range categories {
		sb.WriteString(`<li class="` + b.class("item") + `"><a href="/blog?category=` + esc(url.QueryEscape(category.name)) + `">` + esc(category.name) + `</a>`)
		if showCounts {
			sb.WriteString(` <span class="` + b.class("count") + `">` + itoa(category.count) + `</span>`)
		}
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul>`)
	return frame(b, "div", sb.String())
}

// renderTagCloud sizes tags on a one-to-five scale relative to the most used tag.
func renderTagCloud(rctx *RenderContext, b Block) Output {
	tags := countTerms(rctx.posts(), postTags)
	if len(tags) == 0 {
		return Output{}
	}
	top := 1
	for _, tag := range tags {
		if tag.count > top {
			top = tag.count
		}
	}

	var sb strings.Builder
	writeHeader(&sb, b, "h2")
	sb.WriteString(`<div class="` + b.class("tags") + `">`)
	for _, tag := range tags {
		size := 1 + (tag.count*4)/top
		if size > 5 {
			size = 5
		}
		sb.WriteString(`<a class="` + b.class("tag") + ` ` + b.class("tag--"+itoa(size)) + `" href="/blog?tag=` + esc(url.QueryEscape(tag.name)) + `">` + esc(tag.name) + `</a>`)
	}
	sb.WriteString(`</div>`)
	return frame(b, "div", sb.String())
}
