package sections

import (
	"strings"
	"testing"

	"sitebuilder-backend/internal/models"
)

func TestRelatedPostsRanksByCategoryAndTags(t *testing.T) {
	rctx := testContext()
	out := Render(rctx, section("r", RelatedPosts, 0, true, DefaultContentOf(RelatedPosts)), true)

	if !strings.Contains(out.HTML, "/blog/first-post") {
		t.Fatalf("expected first-post to be related, got %q", out.HTML)
	}
	if strings.Contains(out.HTML, "/blog/second-post") {
		t.Fatalf("current post must not relate to itself")
	}
	if strings.Contains(out.HTML, "/blog/third-post") {
		t.Fatalf("post without overlap must not be related")
	}
}

func TestPostNavigationLinksNeighbours(t *testing.T) {
	out := Render(testContext(), section("n", PostNavigation, 0, true, DefaultContentOf(PostNavigation)), true)

	if !strings.Contains(out.HTML, `href="/blog/first-post" rel="prev"`) {
		t.Fatalf("expected older post as previous, got %q", out.HTML)
	}
	if !strings.Contains(out.HTML, `href="/blog/third-post" rel="next"`) {
		t.Fatalf("expected newer post as next, got %q", out.HTML)
	}
}

func TestTableOfContentsListsVisibleHeadings(t *testing.T) {
	rctx := testContext()
	rctx.Page.Sections = models.PageSections{
		section("intro", Heading, 1, true, models.Content{"text": "Intro"}),
		section("secret", Heading, 2, false, models.Content{"text": "Secret"}),
		section("body", Text, 3, true, models.Content{"body": "text"}),
		section("outro", Heading, 4, true, models.Content{"text": "Outro", "level": "h3"}),
	}

	out := Render(rctx, section("toc", TableOfContents, 0, true, DefaultContentOf(TableOfContents)), true)
	if !strings.Contains(out.HTML, `href="#intro"`) || !strings.Contains(out.HTML, `href="#outro"`) {
		t.Fatalf("expected heading anchors, got %q", out.HTML)
	}
	if strings.Contains(out.HTML, "Secret") {
		t.Fatalf("hidden heading leaked into table of contents")
	}
	if strings.Index(out.HTML, "Intro") > strings.Index(out.HTML, "Outro") {
		t.Fatalf("headings out of order")
	}
}

func TestBlogListAppliesFilterAndShowsEmptyState(t *testing.T) {
	rctx := testContext()
	rctx.Page = &models.Page{Slug: "blog", Kind: "page", Title: "Blog"}
	rctx.Filter = PostFilter{Category: "guides"}

	out := Render(rctx, section("l", BlogList, 0, true, DefaultContentOf(BlogList)), false)
	if !strings.Contains(out.HTML, "/blog/third-post") || strings.Contains(out.HTML, "/blog/first-post") {
		t.Fatalf("category filter not applied: %q", out.HTML)
	}

	rctx.Filter = PostFilter{Tag: "nothing"}
	out = Render(rctx, section("l", BlogList, 0, true, DefaultContentOf(BlogList)), false)
	if !strings.Contains(out.HTML, "No posts yet.") {
		t.Fatalf("expected empty state, got %q", out.HTML)
	}
}

func TestBlogListRespectsLimit(t *testing.T) {
	rctx := testContext()
	rctx.Page = &models.Page{Slug: "blog"}

	out := Render(rctx, section("l", BlogList, 0, true, models.Content{"limit": 1}), false)
	if strings.Count(out.HTML, `class="blog-list__post"`) != 1 {
		t.Fatalf("expected one post, got %q", out.HTML)
	}
}

func TestContactInfoFallsBackToSiteSettings(t *testing.T) {
	out := Render(testContext(), section("c", ContactInfo, 0, true, DefaultContentOf(ContactInfo)), false)
	if !strings.Contains(out.HTML, "mailto:hello@acme.test") || !strings.Contains(out.HTML, "1 Main Street") {
		t.Fatalf("expected site contact details, got %q", out.HTML)
	}

	out = Render(&RenderContext{}, section("c", ContactInfo, 0, true, DefaultContentOf(ContactInfo)), false)
	if out.HTML != "" {
		t.Fatalf("expected nothing without any contact details, got %q", out.HTML)
	}
}

func TestSocialLinksFallBackToSiteSettings(t *testing.T) {
	out := Render(testContext(), section("s", SocialLinks, 0, true, models.Content{"template": "buttons"}), false)
	if !strings.Contains(out.HTML, "https://github.com/acme") {
		t.Fatalf("expected site social link, got %q", out.HTML)
	}
}

func TestCountdownShowsExpiredText(t *testing.T) {
	rctx := testContext()
	out := Render(rctx, section("c", Countdown, 0, true, models.Content{
		"target":      "2024-03-01T00:00:00Z",
		"expiredText": "Done",
	}), false)
	if !strings.Contains(out.HTML, "Done") || len(out.Scripts) != 0 {
		t.Fatalf("expected expired state without script, got %q", out.HTML)
	}

	out = Render(rctx, section("c", Countdown, 0, true, models.Content{"target": "2024-03-03T01:02:03Z"}), false)
	if !strings.Contains(out.HTML, "1d 1h 2m 3s") || len(out.Scripts) != 1 {
		t.Fatalf("expected running timer, got %q", out.HTML)
	}
}

func TestBreadcrumbsForPostIncludeBlog(t *testing.T) {
	out := Render(testContext(), section("b", Breadcrumbs, 0, true, DefaultContentOf(Breadcrumbs)), true)
	if !strings.Contains(out.HTML, `href="/blog"`) || !strings.Contains(out.HTML, "Second post") {
		t.Fatalf("unexpected breadcrumbs: %q", out.HTML)
	}

	rctx := testContext()
	rctx.Page = &models.Page{Slug: "home", Title: "Home"}
	if out := Render(rctx, section("b", Breadcrumbs, 0, true, nil), false); out.HTML != "" {
		t.Fatalf("expected no breadcrumbs on the home page")
	}
}

func TestVideoConvertsYouTubeLinks(t *testing.T) {
	out := Render(testContext(), section("v", Video, 0, true, models.Content{"url": "https://www.youtube.com/watch?v=abc123"}), false)
	if !strings.Contains(out.HTML, "https://www.youtube-nocookie.com/embed/abc123") {
		t.Fatalf("expected youtube embed, got %q", out.HTML)
	}

	out = Render(testContext(), section("v", Video, 0, true, models.Content{"url": "/media/clip.mp4"}), false)
	if !strings.Contains(out.HTML, `<video class="video__player" src="/media/clip.mp4"`) {
		t.Fatalf("expected native player, got %q", out.HTML)
	}
}

func TestEmbedRequiresHTTPS(t *testing.T) {
	out := Render(testContext(), section("e", Embed, 0, true, models.Content{"url": "http://insecure.test/form"}), false)
	if out.HTML != "" {
		t.Fatalf("expected insecure embed to be dropped, got %q", out.HTML)
	}
}

func TestTeamUsesAvatarPlaceholder(t *testing.T) {
	rctx := testContext()
	rctx.Avatar = func(name string) string { return "/avatars/" + strings.ToLower(name[:1]) }

	out := Render(rctx, section("t", Team, 0, true, models.Content{
		"members": []interface{}{map[string]interface{}{"name": "Robin", "role": "Founder"}},
	}), false)
	if !strings.Contains(out.HTML, `src="/avatars/r"`) {
		t.Fatalf("expected placeholder avatar, got %q", out.HTML)
	}
}

func TestPricingHighlightsPlan(t *testing.T) {
	out := Render(testContext(), section("p", Pricing, 0, true, DefaultContentOf(Pricing)), false)
	if strings.Count(out.HTML, "pricing__plan--highlighted") != 1 {
		t.Fatalf("expected one highlighted plan, got %q", out.HTML)
	}
}

func TestTagCloudCountsTags(t *testing.T) {
	out := Render(testContext(), section("t", TagCloud, 0, true, DefaultContentOf(TagCloud)), false)
	if !strings.Contains(out.HTML, `href="/blog?tag=go"`) || !strings.Contains(out.HTML, "tag-cloud__tag--5") {
		t.Fatalf("unexpected tag cloud: %q", out.HTML)
	}
}
