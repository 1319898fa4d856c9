package sections

// templates maps every authorable type to its template. Unknown has no entry on purpose.
var templates = map[Type]Template{
	Hero:            renderHero,
	HeroSplit:       renderHeroSplit,
	HeroVideo:       renderHeroVideo,
	PageHeader:      renderPageHeader,
	PostHeader:      renderPostHeader,
	AnnouncementBar: renderAnnouncementBar,

	Text:            renderText,
	RichText:        renderRichText,
	Heading:         renderHeading,
	Quote:           renderQuote,
	Callout:         renderCallout,
	TwoColumn:       renderTwoColumn,
	CodeBlock:       renderCodeBlock,
	TableOfContents: renderTableOfContents,
	Divider:         renderDivider,
	Spacer:          renderSpacer,
	List:            renderList,
	Table:           renderTable,
	Accordion:       renderAccordion,
	Tabs:            renderTabs,

	Image:       renderImage,
	Gallery:     renderGallery,
	Video:       renderVideo,
	Embed:       renderEmbed,
	ImageText:   renderImageText,
	Carousel:    renderCarousel,
	Audio:       renderAudio,
	BeforeAfter: renderBeforeAfter,

	Features:     renderFeatures,
	FeatureGrid:  renderFeatures,
	Services:     renderServices,
	ProcessSteps: renderProcessSteps,
	Benefits:     renderBenefits,
	Comparison:   renderComparison,
	IconList:     renderIconList,

	Testimonials: renderTestimonials,
	Stats:        renderStats,
	Reviews:      renderReviews,
	LogoCloud:    renderLogoCloud,
	CaseStudies:  renderCaseStudies,
	Awards:       renderAwards,
	Press:        renderPress,

	CTA:         renderCTA,
	CTABanner:   renderCTABanner,
	Newsletter:  renderNewsletter,
	ContactForm: renderContactForm,
	Pricing:     renderPricing,
	Countdown:   renderCountdown,
	Download:    renderDownload,
	ButtonGroup: renderButtonGroup,

	FAQ:          renderFAQ,
	Team:         renderTeam,
	ContactInfo:  renderContactInfo,
	Map:          renderMap,
	OpeningHours: renderOpeningHours,
	Locations:    renderLocations,
	Timeline:     renderTimeline,
	Jobs:         renderJobs,
	About:        renderAbout,

	BlogHero:       renderBlogHero,
	BlogFilter:     renderBlogFilter,
	BlogList:       renderBlogList,
	FeaturedPosts:  renderFeaturedPosts,
	LatestPosts:    renderLatestPosts,
	RelatedPosts:   renderRelatedPosts,
	AuthorBio:      renderAuthorBio,
	PostNavigation: renderPostNavigation,
	ShareButtons:   renderShareButtons,
	CategoriesList: renderCategoriesList,
	TagCloud:       renderTagCloud,

	SocialLinks: renderSocialLinks,
	Breadcrumbs: renderBreadcrumbs,
	AnchorNav:   renderAnchorNav,
}
