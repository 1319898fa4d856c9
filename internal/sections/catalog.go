package sections

import "sitebuilder-backend/internal/models"

type categoryDef struct {
	key   string
	label string
}

var categoryOrder = []categoryDef{
	{key: "hero", label: "Hero & headers"},
	{key: "content", label: "Text & structure"},
	{key: "media", label: "Media"},
	{key: "features", label: "Features & services"},
	{key: "social_proof", label: "Social proof"},
	{key: "conversion", label: "Conversion"},
	{key: "company", label: "Company & contact"},
	{key: "blog", label: "Blog"},
	{key: "navigation", label: "Navigation"},
}

type entryOption func(*Entry)

func fullWidth() entryOption {
	return func(e *Entry) { e.Layout = LayoutFullWidth }
}

func pageOnly() entryOption {
	return func(e *Entry) { e.Contexts = []Context{ContextPage} }
}

func postOnly() entryOption {
	return func(e *Entry) { e.Contexts = []Context{ContextPost} }
}

func background(value string) entryOption {
	return func(e *Entry) { e.Background = value }
}

func variants(values ...string) entryOption {
	return func(e *Entry) { e.Variants = values }
}

func defaults(content models.Content) entryOption {
	return func(e *Entry) { e.DefaultContent = content }
}

func entry(t Type, category, label, description string, opts ...entryOption) Entry {
	e := Entry{
		Type:        t,
		Label:       label,
		Description: description,
		Category:    category,
		Contexts:    []Context{ContextPage, ContextPost},
		Layout:      LayoutContained,
		Variants:    []string{"default"},
	}
	for _, opt := range opts {
		opt(&e)
	}
	if e.DefaultContent == nil {
		e.DefaultContent = models.Content{}
	}
	return e
}

func list(items ...map[string]interface{}) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

func strs(values ...string) []interface{} {
	result := make([]interface{}, len(values))
	for i, value := range values {
		result[i] = value
	}
	return result
}

func catalog() []Entry {
	return []Entry{
		// Hero & headers
		entry(Hero, "hero", "Hero", "Large opening banner with a headline and call to action.",
			fullWidth(), variants("centered", "left", "minimal"),
			defaults(models.Content{
				"title":      "Build something people remember",
				"subtitle":   "A short sentence about what you offer.",
				"buttonText": "Get started",
				"buttonUrl":  "/contact",
			})),
		entry(HeroSplit, "hero", "Hero with image", "Headline on one side, image on the other.",
			fullWidth(), variants("image-right", "image-left"),
			defaults(models.Content{
				"title":      "Your headline here",
				"subtitle":   "Explain the value in one or two lines.",
				"image":      "",
				"buttonText": "Learn more",
				"buttonUrl":  "#",
			})),
		entry(HeroVideo, "hero", "Video hero", "Headline over a looping background video.",
			fullWidth(), variants("overlay", "dimmed"),
			defaults(models.Content{
				"title":    "Watch what we do",
				"videoUrl": "",
				"poster":   "",
			})),
		entry(PageHeader, "hero", "Page header", "Compact title block for inner pages.",
			variants("simple", "banner"),
			defaults(models.Content{"title": "", "subtitle": ""})),
		entry(PostHeader, "hero", "Post header", "Title, date and cover image of the current post.",
			fullWidth(), postOnly(), variants("standard", "overlay"),
			defaults(models.Content{"showMeta": true, "showCover": true})),
		entry(AnnouncementBar, "hero", "Announcement bar", "Thin strip for a short notice.",
			fullWidth(), variants("info", "accent"),
			defaults(models.Content{
				"text":        "We just launched something new.",
				"linkText":    "Read more",
				"linkUrl":     "/blog",
				"dismissible": true,
			})),

		// Text & structure
		entry(Text, "content", "Text", "Plain paragraphs.",
			variants("default", "lead"),
			defaults(models.Content{"title": "", "body": "Write your text here."})),
		entry(RichText, "content", "Rich text", "Formatted text with links, lists and emphasis.",
			variants("default", "narrow"),
			defaults(models.Content{"html": "<p>Start writing…</p>"})),
		entry(Heading, "content", "Heading", "A standalone heading that also feeds the table of contents.",
			variants("default", "eyebrow"),
			defaults(models.Content{"text": "Section heading", "level": "h2"})),
		entry(Quote, "content", "Quote", "Pull quote with attribution.",
			variants("default", "large"),
			defaults(models.Content{"quote": "A memorable line.", "author": ""})),
		entry(Callout, "content", "Callout", "Highlighted note, tip or warning.",
			variants("soft", "bordered"),
			defaults(models.Content{"title": "Note", "text": "Something worth pointing out.", "tone": "info"})),
		entry(TwoColumn, "content", "Two columns", "Two blocks of text side by side.",
			variants("equal", "wide-left", "wide-right"),
			defaults(models.Content{"left": "<p>Left column</p>", "right": "<p>Right column</p>"})),
		entry(CodeBlock, "content", "Code block", "Preformatted source code.",
			variants("dark", "light"),
			defaults(models.Content{"code": "fmt.Println(\"hello\")", "language": "go"})),
		entry(TableOfContents, "content", "Table of contents", "Links to the headings of the current post.",
			postOnly(), variants("default", "compact"),
			defaults(models.Content{"title": "On this page"})),
		entry(Divider, "content", "Divider", "Horizontal rule between sections.",
			variants("line", "dots")),
		entry(Spacer, "content", "Spacer", "Empty vertical space.",
			defaults(models.Content{"size": "medium"})),
		entry(List, "content", "List", "Bulleted or numbered list.",
			defaults(models.Content{"items": strs("First point", "Second point"), "ordered": false})),
		entry(Table, "content", "Table", "Simple data table.",
			variants("default", "striped"),
			defaults(models.Content{
				"headers": strs("Column", "Value"),
				"rows":    list(map[string]interface{}{"cells": strs("Row", "1")}),
			})),
		entry(Accordion, "content", "Accordion", "Collapsible panels.",
			defaults(models.Content{
				"items": list(map[string]interface{}{"title": "Panel title", "content": "Panel content"}),
			})),
		entry(Tabs, "content", "Tabs", "Tabbed panels.",
			defaults(models.Content{
				"items": list(
					map[string]interface{}{"label": "First", "content": "First tab"},
					map[string]interface{}{"label": "Second", "content": "Second tab"},
				),
			})),

		// Media
		entry(Image, "media", "Image", "Single image with optional caption.",
			variants("default", "rounded", "full"),
			defaults(models.Content{"src": "", "alt": "", "caption": ""})),
		entry(Gallery, "media", "Gallery", "Grid of images.",
			variants("grid", "masonry"),
			defaults(models.Content{"images": []interface{}{}, "columns": 3})),
		entry(Video, "media", "Video", "Hosted or YouTube/Vimeo video.",
			defaults(models.Content{"url": "", "caption": ""})),
		entry(Embed, "media", "Embed", "Third-party iframe such as a form or a slide deck.",
			defaults(models.Content{"url": "", "height": 480})),
		entry(ImageText, "media", "Image and text", "Image beside a block of text.",
			variants("default", "card"),
			defaults(models.Content{
				"title":         "Tell a story",
				"text":          "Pair an image with a few sentences.",
				"image":         "",
				"imagePosition": "left",
			})),
		entry(Carousel, "media", "Carousel", "Rotating slides.",
			defaults(models.Content{"slides": []interface{}{}, "autoplay": true})),
		entry(Audio, "media", "Audio", "Audio player for podcasts or clips.",
			defaults(models.Content{"src": "", "title": ""})),
		entry(BeforeAfter, "media", "Before and after", "Two images compared with a slider.",
			defaults(models.Content{"before": "", "after": "", "beforeLabel": "Before", "afterLabel": "After"})),

		// Features & services
		entry(Features, "features", "Features", "Short list of features with icons.",
			variants("grid", "list", "cards"),
			defaults(models.Content{
				"title": "Why choose us",
				"items": list(
					map[string]interface{}{"icon": "⚡", "title": "Fast", "text": "Pages load instantly."},
					map[string]interface{}{"icon": "🔒", "title": "Secure", "text": "Safe by default."},
					map[string]interface{}{"icon": "🎨", "title": "Flexible", "text": "Style it your way."},
				),
			})),
		entry(FeatureGrid, "features", "Feature grid", "Dense grid of features.",
			defaults(models.Content{"title": "Everything included", "items": []interface{}{}, "columns": 3})),
		entry(Services, "features", "Services", "Services with optional price and link.",
			variants("cards", "list"),
			defaults(models.Content{
				"title": "Services",
				"items": list(map[string]interface{}{"title": "Consulting", "text": "We help you plan.", "price": ""}),
			})),
		entry(ProcessSteps, "features", "Process steps", "Numbered steps of a process.",
			variants("horizontal", "vertical"),
			defaults(models.Content{
				"title": "How it works",
				"steps": list(
					map[string]interface{}{"title": "Plan", "text": "Tell us what you need."},
					map[string]interface{}{"title": "Build", "text": "We put it together."},
					map[string]interface{}{"title": "Launch", "text": "Go live."},
				),
			})),
		entry(Benefits, "features", "Benefits", "Outcome-focused list.",
			defaults(models.Content{"title": "Benefits", "items": []interface{}{}})),
		entry(Comparison, "features", "Comparison", "Feature comparison table.",
			defaults(models.Content{
				"columns": strs("Basic", "Pro"),
				"rows":    list(map[string]interface{}{"feature": "Pages", "values": strs("5", "Unlimited")}),
			})),
		entry(IconList, "features", "Icon list", "Compact list with an icon per line.",
			defaults(models.Content{"items": list(map[string]interface{}{"icon": "✓", "text": "Included"})})),

		// Social proof
		entry(Testimonials, "social_proof", "Testimonials", "Quotes from customers.",
			variants("cards", "slider", "single"),
			defaults(models.Content{
				"title": "What people say",
				"items": list(map[string]interface{}{"quote": "It just works.", "author": "Alex", "role": "Customer"}),
			})),
		entry(Stats, "social_proof", "Stats", "Key numbers.",
			background("muted"), variants("grid", "inline", "cards"),
			defaults(models.Content{
				"stats": list(
					map[string]interface{}{"value": "120", "suffix": "+", "label": "Clients"},
					map[string]interface{}{"value": "15", "label": "Years"},
				),
			})),
		entry(Reviews, "social_proof", "Reviews", "Star ratings with short reviews.",
			defaults(models.Content{"title": "Reviews", "items": []interface{}{}})),
		entry(LogoCloud, "social_proof", "Logo cloud", "Logos of clients or partners.",
			background("muted"), variants("grid", "row"),
			defaults(models.Content{"title": "Trusted by", "logos": []interface{}{}})),
		entry(CaseStudies, "social_proof", "Case studies", "Project highlights with links.",
			defaults(models.Content{"title": "Case studies", "items": []interface{}{}})),
		entry(Awards, "social_proof", "Awards", "Recognition and prizes.",
			defaults(models.Content{"title": "Awards", "items": []interface{}{}})),
		entry(Press, "social_proof", "Press", "Press mentions and quotes.",
			defaults(models.Content{"title": "In the press", "items": []interface{}{}})),

		// Conversion
		entry(CTA, "conversion", "Call to action", "Full-width block with a headline and buttons.",
			fullWidth(), variants("primary", "dark", "light"),
			defaults(models.Content{
				"title":      "Ready to start?",
				"text":       "It takes less than a minute.",
				"buttonText": "Contact us",
				"buttonUrl":  "/contact",
			})),
		entry(CTABanner, "conversion", "CTA banner", "Slim banner with one button.",
			fullWidth(),
			defaults(models.Content{"text": "Have a project in mind?", "buttonText": "Talk to us", "buttonUrl": "/contact"})),
		entry(Newsletter, "conversion", "Newsletter", "Email signup form.",
			fullWidth(),
			defaults(models.Content{
				"title":       "Stay in the loop",
				"text":        "One email a month. No spam.",
				"placeholder": "you@example.com",
				"buttonText":  "Subscribe",
				"action":      "/newsletter",
			})),
		entry(ContactForm, "conversion", "Contact form", "Name, email and message form.",
			defaults(models.Content{
				"title":      "Get in touch",
				"fields":     strs("name", "email", "message"),
				"submitText": "Send",
				"action":     "/contact",
			})),
		entry(Pricing, "conversion", "Pricing", "Plans with prices and features.",
			variants("cards", "table"),
			defaults(models.Content{
				"title": "Pricing",
				"plans": list(
					map[string]interface{}{"name": "Starter", "price": "0", "period": "month", "features": strs("1 site")},
					map[string]interface{}{"name": "Pro", "price": "19", "period": "month", "features": strs("10 sites", "Priority support"), "highlighted": true},
				),
			})),
		entry(Countdown, "conversion", "Countdown", "Timer counting down to a date.",
			defaults(models.Content{"title": "Launching soon", "target": "", "expiredText": "We are live!"})),
		entry(Download, "conversion", "Download", "File download with a description.",
			defaults(models.Content{"title": "Download", "file": "", "buttonText": "Download"})),
		entry(ButtonGroup, "conversion", "Buttons", "A row of links styled as buttons.",
			defaults(models.Content{"buttons": list(map[string]interface{}{"label": "Learn more", "url": "#", "style": "primary"})})),

		// Company & contact
		entry(FAQ, "company", "FAQ", "Questions and answers.",
			variants("accordion", "list", "two-column"),
			defaults(models.Content{
				"title": "Frequently asked questions",
				"faqs":  list(map[string]interface{}{"question": "How does it work?", "answer": "Simply."}),
			})),
		entry(Team, "company", "Team", "People with photos and roles.",
			variants("grid", "list"),
			defaults(models.Content{"title": "Our team", "members": []interface{}{}})),
		entry(ContactInfo, "company", "Contact info", "Email, phone and address. Falls back to site settings.",
			defaults(models.Content{"title": "Contact"})),
		entry(Map, "company", "Map", "Embedded map of an address or coordinates.",
			fullWidth(),
			defaults(models.Content{"address": "", "zoom": 14, "height": 360})),
		entry(OpeningHours, "company", "Opening hours", "Weekly schedule.",
			defaults(models.Content{
				"title": "Opening hours",
				"hours": list(
					map[string]interface{}{"day": "Monday – Friday", "open": "09:00", "close": "18:00"},
					map[string]interface{}{"day": "Saturday – Sunday", "closed": true},
				),
			})),
		entry(Locations, "company", "Locations", "List of offices or stores.",
			defaults(models.Content{"title": "Locations", "items": []interface{}{}})),
		entry(Timeline, "company", "Timeline", "Milestones in order.",
			defaults(models.Content{"title": "Our story", "events": []interface{}{}})),
		entry(Jobs, "company", "Jobs", "Open positions.",
			defaults(models.Content{"title": "Open positions", "items": []interface{}{}, "emptyText": "No open positions right now."})),
		entry(About, "company", "About", "Company introduction with highlights.",
			defaults(models.Content{"title": "About us", "text": "Who we are and what we do.", "highlights": []interface{}{}})),

		// Blog
		entry(BlogHero, "blog", "Blog hero", "Header of the blog index.",
			fullWidth(), pageOnly(),
			defaults(models.Content{"title": "Blog", "subtitle": ""})),
		entry(BlogFilter, "blog", "Blog filter", "Category and tag filter for the blog index.",
			pageOnly(),
			defaults(models.Content{"showCategories": true, "showTags": false})),
		entry(BlogList, "blog", "Blog list", "All published posts, newest first.",
			pageOnly(), variants("grid", "list"),
			defaults(models.Content{"limit": 12, "showExcerpt": true, "showDate": true})),
		entry(FeaturedPosts, "blog", "Featured posts", "Hand-picked posts.",
			variants("cards", "large"),
			defaults(models.Content{"title": "Featured", "slugs": []interface{}{}, "limit": 3})),
		entry(LatestPosts, "blog", "Latest posts", "The most recent posts.",
			variants("cards", "list"),
			defaults(models.Content{"title": "Latest posts", "limit": 3})),
		entry(RelatedPosts, "blog", "Related posts", "Posts sharing a category or tag with the current one.",
			postOnly(),
			defaults(models.Content{"title": "Related posts", "limit": 3})),
		entry(AuthorBio, "blog", "Author bio", "About the author of the current post.",
			postOnly(),
			defaults(models.Content{})),
		entry(PostNavigation, "blog", "Post navigation", "Links to the previous and next post.",
			postOnly(),
			defaults(models.Content{"previousLabel": "Previous", "nextLabel": "Next"})),
		entry(ShareButtons, "blog", "Share buttons", "Share the current post.",
			postOnly(),
			defaults(models.Content{"title": "Share", "networks": strs("twitter", "facebook", "linkedin", "email")})),
		entry(CategoriesList, "blog", "Categories", "Post categories with counts.",
			defaults(models.Content{"title": "Categories", "showCounts": true})),
		entry(TagCloud, "blog", "Tag cloud", "Post tags sized by use.",
			defaults(models.Content{"title": "Tags"})),

		// Navigation
		entry(SocialLinks, "navigation", "Social links", "Links to social profiles. Falls back to site settings.",
			variants("icons", "buttons"),
			defaults(models.Content{"title": ""})),
		entry(Breadcrumbs, "navigation", "Breadcrumbs", "Path from the home page to the current page.",
			defaults(models.Content{"homeLabel": "Home"})),
		entry(AnchorNav, "navigation", "Anchor navigation", "In-page links to sections.",
			defaults(models.Content{"links": []interface{}{}})),
	}
}
