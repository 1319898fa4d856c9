package constants

import (
	"strings"
	"time"
)

const (
	// SlugHome is the page rendered at the site root.
	SlugHome = "home"
	// SlugBlog is the page rendered above the post listing.
	SlugBlog = "blog"

	PageKindPage = "page"
	PageKindPost = "post"

	// DefaultPageFetchTimeout bounds page loads for public views.
	DefaultPageFetchTimeout = 3 * time.Second
	// DefaultDraftTTL is how long an untouched editor working copy survives.
	DefaultDraftTTL = 24 * time.Hour

	// DefaultPostListSectionLimit defines the default number of posts shown in a post list section.
	DefaultPostListSectionLimit = 6
	// MaxPostListSectionLimit defines an upper bound to avoid rendering overly large post lists.
	MaxPostListSectionLimit = 24
	// PostSnapshotSize is how many published posts are loaded into a render context.
	PostSnapshotSize = 50

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

var alignOptions = []string{AlignLeft, AlignCenter, AlignRight}
var backgroundOptions = []string{"none", "muted", "primary", "dark"}

// WellKnownSlugs lists slugs that get a synthesized default page on first edit.
func WellKnownSlugs() []string {
	return []string{SlugHome, SlugBlog}
}

func IsWellKnownSlug(slug string) bool {
	for _, known := range WellKnownSlugs() {
		if known == slug {
			return true
		}
	}
	return false
}

// IsPageKind reports whether value names a supported page kind.
func IsPageKind(value string) bool {
	return value == PageKindPage || value == PageKindPost
}

// AlignOptions returns the allowed horizontal alignments for contained sections.
// A copy of the slice is returned to prevent external mutation of the internal list.
func AlignOptions() []string {
	options := make([]string, len(alignOptions))
	copy(options, alignOptions)
	return options
}

// BackgroundOptions returns the allowed section background values.
func BackgroundOptions() []string {
	options := make([]string, len(backgroundOptions))
	copy(options, backgroundOptions)
	return options
}

// NormaliseAlign returns a known alignment or the default left alignment.
func NormaliseAlign(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	for _, option := range alignOptions {
		if option == trimmed {
			return trimmed
		}
	}
	return AlignLeft
}

// NormaliseBackground returns a known background or an empty string.
func NormaliseBackground(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	for _, option := range backgroundOptions {
		if option == trimmed {
			return trimmed
		}
	}
	return ""
}
