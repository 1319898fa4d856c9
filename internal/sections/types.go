package sections

import "strings"

// Type is the tag that selects a section's template and the shape of its content.
type Type string

// Unknown stands in for any tag outside the registry. It is never offered to editors.
const Unknown Type = "UNKNOWN"

// Hero and headers.
const (
	Hero            Type = "HERO"
	HeroSplit       Type = "HERO_SPLIT"
	HeroVideo       Type = "HERO_VIDEO"
	PageHeader      Type = "PAGE_HEADER"
	PostHeader      Type = "POST_HEADER"
	AnnouncementBar Type = "ANNOUNCEMENT_BAR"
)

// Text and structure.
const (
	Text            Type = "TEXT"
	RichText        Type = "RICH_TEXT"
	Heading         Type = "HEADING"
	Quote           Type = "QUOTE"
	Callout         Type = "CALLOUT"
	TwoColumn       Type = "TWO_COLUMN"
	CodeBlock       Type = "CODE_BLOCK"
	TableOfContents Type = "TABLE_OF_CONTENTS"
	Divider         Type = "DIVIDER"
	Spacer          Type = "SPACER"
	List            Type = "LIST"
	Table           Type = "TABLE"
	Accordion       Type = "ACCORDION"
	Tabs            Type = "TABS"
)

// Media.
const (
	Image       Type = "IMAGE"
	Gallery     Type = "GALLERY"
	Video       Type = "VIDEO"
	Embed       Type = "EMBED"
	ImageText   Type = "IMAGE_TEXT"
	Carousel    Type = "CAROUSEL"
	Audio       Type = "AUDIO"
	BeforeAfter Type = "BEFORE_AFTER"
)

// Features and services.
const (
	Features     Type = "FEATURES"
	FeatureGrid  Type = "FEATURE_GRID"
	Services     Type = "SERVICES"
	ProcessSteps Type = "PROCESS_STEPS"
	Benefits     Type = "BENEFITS"
	Comparison   Type = "COMPARISON"
	IconList     Type = "ICON_LIST"
)

// Social proof.
const (
	Testimonials Type = "TESTIMONIALS"
	Stats        Type = "STATS"
	Reviews      Type = "REVIEWS"
	LogoCloud    Type = "LOGO_CLOUD"
	CaseStudies  Type = "CASE_STUDIES"
	Awards       Type = "AWARDS"
	Press        Type = "PRESS"
)

// Conversion.
const (
	CTA         Type = "CTA"
	CTABanner   Type = "CTA_BANNER"
	Newsletter  Type = "NEWSLETTER"
	ContactForm Type = "CONTACT_FORM"
	Pricing     Type = "PRICING"
	Countdown   Type = "COUNTDOWN"
	Download    Type = "DOWNLOAD"
	ButtonGroup Type = "BUTTON_GROUP"
)

// Company and contact.
const (
	FAQ          Type = "FAQ"
	Team         Type = "TEAM"
	ContactInfo  Type = "CONTACT_INFO"
	Map          Type = "MAP"
	OpeningHours Type = "OPENING_HOURS"
	Locations    Type = "LOCATIONS"
	Timeline     Type = "TIMELINE"
	Jobs         Type = "JOBS"
	About        Type = "ABOUT"
)

// Blog.
const (
	BlogHero       Type = "BLOG_HERO"
	BlogFilter     Type = "BLOG_FILTER"
	BlogList       Type = "BLOG_LIST"
	FeaturedPosts  Type = "FEATURED_POSTS"
	LatestPosts    Type = "LATEST_POSTS"
	RelatedPosts   Type = "RELATED_POSTS"
	AuthorBio      Type = "AUTHOR_BIO"
	PostNavigation Type = "POST_NAVIGATION"
	ShareButtons   Type = "SHARE_BUTTONS"
	CategoriesList Type = "CATEGORIES_LIST"
	TagCloud       Type = "TAG_CLOUD"
)

// Navigation.
const (
	SocialLinks Type = "SOCIAL_LINKS"
	Breadcrumbs Type = "BREADCRUMBS"
	AnchorNav   Type = "ANCHOR_NAV"
)

// Context names the editing surface a section is added from.
type Context string

const (
	ContextPage Context = "page"
	ContextPost Context = "post"
)

// ParseContext maps a page kind or query value to an editing context. Anything other than post is a page.
func ParseContext(value string) Context {
	if strings.EqualFold(strings.TrimSpace(value), string(ContextPost)) {
		return ContextPost
	}
	return ContextPage
}

// Layout tells the renderer whether a template draws its own outer frame.
type Layout string

const (
	LayoutContained Layout = "contained"
	LayoutFullWidth Layout = "full_width"
)

// Kebab returns the CSS-friendly form of the tag, e.g. HERO_SPLIT becomes hero-split.
func (t Type) Kebab() string {
	return strings.ReplaceAll(strings.ToLower(string(t)), "_", "-")
}

func (t Type) String() string {
	return string(t)
}
