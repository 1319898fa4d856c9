package service

import (
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
)

func fallbackTitle(view View, site models.SiteSettings) string {
	switch view {
	case ViewBlog:
		return "Blog"
	case ViewPost:
		return "Post not found"
	case ViewPage:
		return "Page not found"
	default:
		return site.Name
	}
}

func fallbackSection(id string, t sections.Type, order int, content models.Content) models.Section {
	return models.Section{ID: id, Type: string(t), Order: order, IsVisible: true, Content: content}
}

// fallbackSections is the static content shown instead of an empty page.
func fallbackSections(view View, site models.SiteSettings, reason string) models.PageSections {
	switch view {
	case ViewBlog:
		return models.PageSections{
			fallbackSection("fallback-blog-hero", sections.BlogHero, 0, models.Content{"title": "Blog", "subtitle": site.Tagline}),
			fallbackSection("fallback-blog-list", sections.BlogList, 1, models.Content{"limit": 12}),
		}
	case ViewPost, ViewPage:
		title := fallbackTitle(view, site)
		subtitle := "The page you are looking for does not exist or was moved."
		button, target := "Back to home", "/"
		if view == ViewPost {
			subtitle = "This post does not exist or is no longer published."
			button, target = "Back to the blog", "/blog"
		}
		if reason != fallbackNotFound {
			title = "Temporarily unavailable"
			subtitle = "We could not load this content right now. Please try again in a moment."
		}
		return models.PageSections{
			fallbackSection("fallback-hero", sections.Hero, 0, models.Content{
				"title":      title,
				"subtitle":   subtitle,
				"buttonText": button,
				"buttonUrl":  target,
				"template":   "minimal",
			}),
		}
	default:
		return models.PageSections{
			fallbackSection("fallback-home-hero", sections.Hero, 0, models.Content{
				"title":      site.Name,
				"subtitle":   site.Tagline,
				"buttonText": "Read the blog",
				"buttonUrl":  "/blog",
			}),
			fallbackSection("fallback-home-latest", sections.LatestPosts, 1, models.Content{"title": "Latest posts", "limit": 3}),
		}
	}
}
