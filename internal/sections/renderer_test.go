package sections

import (
	"strings"
	"testing"
	"time"

	"sitebuilder-backend/internal/metrics"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/pkg/validator"
)

func testContext() *RenderContext {
	published := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	older := published.Add(-48 * time.Hour)
	return &RenderContext{
		Site: models.SiteSettings{
			Name:         "Acme",
			Tagline:      "We build things",
			URL:          "https://acme.test",
			ContactEmail: "hello@acme.test",
			Address:      "1 Main Street",
			SocialLinks:  []models.SocialLink{{Name: "GitHub", URL: "https://github.com/acme"}},
		},
		Page: &models.Page{
			Slug:        "second-post",
			Kind:        "post",
			Title:       "Second post",
			Category:    "News",
			Tags:        []string{"go"},
			Author:      "Dana",
			PublishedAt: &published,
		},
		Posts: []models.PostSummary{
			{Slug: "third-post", Title: "Third post", Category: "Guides", PublishedAt: &published},
			{Slug: "second-post", Title: "Second post", Category: "News", Tags: []string{"go"}, PublishedAt: &published},
			{Slug: "first-post", Title: "First post", Category: "News", Tags: []string{"go"}, PublishedAt: &older},
		},
		Now:       time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Sanitizer: validator.SanitizeHTML,
	}
}

func section(id string, t Type, order int, visible bool, content models.Content) models.Section {
	return models.Section{ID: id, Type: string(t), Order: order, IsVisible: visible, Content: content}
}

func TestHiddenSectionsRenderNothing(t *testing.T) {
	rctx := testContext()
	for _, e := range Entries() {
		out := Render(rctx, section("s", e.Type, 0, false, e.DefaultContent), false)
		if out.HTML != "" || len(out.Scripts) != 0 {
			t.Errorf("%s: hidden section produced output", e.Type)
		}
	}
}

func TestUnknownTypeRendersNothingAndCountsDiagnostic(t *testing.T) {
	before := metrics.SkippedCount("unknown")

	out := Render(testContext(), models.Section{ID: "x", Type: "HOLOGRAM", IsVisible: true, Content: models.Content{"title": "hi"}}, false)
	if out.HTML != "" {
		t.Fatalf("expected empty output for unknown type, got %q", out.HTML)
	}

	if got := metrics.SkippedCount("unknown") - before; got != 1 {
		t.Fatalf("expected one unknown-type diagnostic, got %v", got)
	}
}

func TestExampleOrderingScenario(t *testing.T) {
	list := []models.Section{
		section("a", CTA, 2, true, DefaultContentOf(CTA)),
		section("b", Hero, 0, true, DefaultContentOf(Hero)),
		section("c", FAQ, 1, false, DefaultContentOf(FAQ)),
	}

	out := RenderAll(testContext(), list, false)

	heroAt := strings.Index(out.HTML, `id="b"`)
	ctaAt := strings.Index(out.HTML, `id="a"`)
	if heroAt < 0 || ctaAt < 0 {
		t.Fatalf("expected hero and cta in output, got %q", out.HTML)
	}
	if heroAt > ctaAt {
		t.Fatalf("expected hero before cta")
	}
	if strings.Contains(out.HTML, `id="c"`) || strings.Contains(out.HTML, "faq") {
		t.Fatalf("hidden faq leaked into output")
	}
}

func TestRenderAllIsIndependentOfStorageOrder(t *testing.T) {
	rctx := testContext()
	forward := []models.Section{
		section("one", Heading, 0, true, models.Content{"text": "One"}),
		section("two", Text, 1, true, models.Content{"body": "Two"}),
		section("three", Quote, 2, true, models.Content{"quote": "Three"}),
	}
	reversed := []models.Section{forward[2], forward[0], forward[1]}

	first := RenderAll(rctx, forward, false)
	second := RenderAll(rctx, reversed, false)
	if first.HTML != second.HTML {
		t.Fatalf("rendering depends on storage order")
	}
	again := RenderAll(rctx, forward, false)
	if again.HTML != first.HTML {
		t.Fatalf("rendering is not idempotent")
	}
}

func TestRenderAllKeepsListOrderOnTies(t *testing.T) {
	list := []models.Section{
		section("first", Heading, 1, true, models.Content{"text": "First"}),
		section("second", Heading, 1, true, models.Content{"text": "Second"}),
	}
	out := RenderAll(testContext(), list, false)
	if strings.Index(out.HTML, "First") > strings.Index(out.HTML, "Second") {
		t.Fatalf("tie broke list order")
	}
}

func TestEmptyStatsRendersWithoutItems(t *testing.T) {
	out := Render(testContext(), section("s", Stats, 0, true, models.Content{}), false)
	if strings.Contains(out.HTML, "stats__value") {
		t.Fatalf("expected no numeric items, got %q", out.HTML)
	}
	if !strings.Contains(out.HTML, `<section id="s"`) || !strings.Contains(out.HTML, "No figures yet.") {
		t.Fatalf("expected a wrapped empty state, got %q", out.HTML)
	}
}

func TestStatsUsesMutedBackgroundUnlessOverridden(t *testing.T) {
	content := DefaultContentOf(Stats)
	out := Render(testContext(), section("s", Stats, 0, true, content), false)
	if !strings.Contains(out.HTML, "section--bg-muted") {
		t.Fatalf("expected muted background, got %q", out.HTML)
	}

	content["background"] = "dark"
	out = Render(testContext(), section("s", Stats, 0, true, content), false)
	if !strings.Contains(out.HTML, "section--bg-dark") || strings.Contains(out.HTML, "section--bg-muted") {
		t.Fatalf("expected dark background override, got %q", out.HTML)
	}

	content["background"] = "none"
	out = Render(testContext(), section("s", Stats, 0, true, content), false)
	if strings.Contains(out.HTML, "section--bg-") {
		t.Fatalf("expected no background class, got %q", out.HTML)
	}
}

func TestContainedSectionsAreWrapped(t *testing.T) {
	out := Render(testContext(), section("faq-1", FAQ, 0, true, models.Content{
		"align": "center",
		"faqs":  []interface{}{map[string]interface{}{"question": "Q?", "answer": "A."}},
	}), true)

	if !strings.HasPrefix(out.HTML, `<section id="faq-1" class="section section--faq section--align-center section--post">`) {
		t.Fatalf("unexpected wrapper: %q", out.HTML)
	}
	if !strings.Contains(out.HTML, `<div class="section__container">`) {
		t.Fatalf("missing container: %q", out.HTML)
	}
}

func TestAlignDefaultsToLeft(t *testing.T) {
	out := Render(testContext(), section("t", Text, 0, true, models.Content{"body": "x", "align": "sideways"}), false)
	if !strings.Contains(out.HTML, "section--align-left") {
		t.Fatalf("expected left alignment, got %q", out.HTML)
	}
}

func TestWrappingDependsOnlyOnType(t *testing.T) {
	rctx := testContext()
	for _, e := range Entries() {
		variantsOfContent := []models.Content{
			e.DefaultContent,
			withExtra(e.DefaultContent, map[string]interface{}{"align": "right", "background": "dark", "template": "nonsense"}),
		}
		for _, content := range variantsOfContent {
			for _, postDetail := range []bool{false, true} {
				out := Render(rctx, section("w", e.Type, 0, true, content), postDetail)
				if out.HTML == "" {
					continue
				}
				wrapped := strings.HasPrefix(out.HTML, `<section id="w" class="section `)
				if wrapped == IsFullWidth(e.Type) {
					t.Errorf("%s: wrapped=%v but full width=%v", e.Type, wrapped, IsFullWidth(e.Type))
				}
			}
		}
	}
}

func withExtra(base models.Content, extra map[string]interface{}) models.Content {
	merged := base.Clone()
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}

func TestTemplatesSurviveMalformedContent(t *testing.T) {
	before := metrics.SkippedCount("panic")
	rctx := testContext()

	garbage := []models.Content{
		nil,
		{},
		{"title": 42, "items": "not a list", "stats": 7, "faqs": []interface{}{1, "two", nil}, "level": true},
		{"slides": []interface{}{map[string]interface{}{"image": 5}}, "target": "tomorrow", "lat": "north", "html": 3},
	}

	for _, e := range Entries() {
		for _, content := range garbage {
			Render(rctx, section("g", e.Type, 0, true, content), false)
			Render(nil, section("g", e.Type, 0, true, content), true)
		}
	}

	if got := metrics.SkippedCount("panic") - before; got != 0 {
		t.Fatalf("templates panicked %v times on malformed content", got)
	}
}

func TestTemplatePanicIsRecovered(t *testing.T) {
	original := templates[Divider]
	templates[Divider] = func(*RenderContext, Block) Output { panic("boom") }
	defer func() { templates[Divider] = original }()

	before := metrics.SkippedCount("panic")
	out := Render(testContext(), section("d", Divider, 0, true, nil), false)
	if out.HTML != "" {
		t.Fatalf("expected empty output after panic")
	}
	if metrics.SkippedCount("panic")-before != 1 {
		t.Fatalf("expected panic to be counted")
	}
}

func TestRenderAllDeduplicatesScripts(t *testing.T) {
	tabs := DefaultContentOf(Tabs)
	out := RenderAll(testContext(), []models.Section{
		section("t1", Tabs, 0, true, tabs),
		section("t2", Tabs, 1, true, tabs),
	}, false)

	if len(out.Scripts) != 1 {
		t.Fatalf("expected one shared script, got %d", len(out.Scripts))
	}
}

func TestRichTextIsSanitized(t *testing.T) {
	content := models.Content{"html": `<p>ok</p><script>alert(1)</script>`}

	out := Render(testContext(), section("r", RichText, 0, true, content), false)
	if strings.Contains(out.HTML, "<script") || !strings.Contains(out.HTML, "<p>ok</p>") {
		t.Fatalf("unexpected sanitized output: %q", out.HTML)
	}

	out = Render(&RenderContext{}, section("r", RichText, 0, true, content), false)
	if strings.Contains(out.HTML, "<p>") {
		t.Fatalf("expected markup to be escaped without a sanitizer, got %q", out.HTML)
	}
}

func TestLinksWithScriptSchemesAreDropped(t *testing.T) {
	out := Render(testContext(), section("h", Hero, 0, true, models.Content{
		"title":      "Hi",
		"buttonText": "Click",
		"buttonUrl":  "javascript:alert(1)",
	}), false)
	if strings.Contains(out.HTML, "javascript:") {
		t.Fatalf("script link survived: %q", out.HTML)
	}
}

func TestPostDetailOnlyChangesPresentation(t *testing.T) {
	content := models.Content{"quote": "Q"}
	page := Render(testContext(), section("q", Quote, 0, true, content), false)
	post := Render(testContext(), section("q", Quote, 0, true, content), true)

	if !strings.Contains(post.HTML, "section--post") || strings.Contains(page.HTML, "section--post") {
		t.Fatalf("expected post detail class only on post render")
	}
	if !strings.Contains(page.HTML, `class="quote quote--default"`) || !strings.Contains(post.HTML, `class="quote quote--default quote--post"`) {
		t.Fatalf("expected the same template in both contexts: %q / %q", page.HTML, post.HTML)
	}
}
