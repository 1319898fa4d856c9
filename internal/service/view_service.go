package service

import (
	"context"
	"errors"
	"html/template"
	"time"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/metrics"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/validator"

	"golang.org/x/sync/errgroup"
)

// View names the public consumer a page is assembled for.
type View string

const (
	ViewHome View = "home"
	ViewBlog View = "blog"
	ViewPost View = "post"
	ViewPage View = "page"
)

const defaultSnapshotWait = 250 * time.Millisecond

const (
	fallbackNotFound = "not_found"
	fallbackTimeout  = "timeout"
	fallbackError    = "error"
	fallbackEmpty    = "empty"
)

// PageReader is the read side of page persistence used by public views.
type PageReader interface {
	GetPublished(ctx context.Context, slug string) (*models.Page, error)
	PublishedPosts(ctx context.Context) ([]models.PostSummary, error)
}

type SiteProvider interface {
	SiteOrDefault(ctx context.Context) models.SiteSettings
}

// RenderedView is everything the HTML layout needs for one response.
type RenderedView struct {
	View        View
	Slug        string
	Title       string
	Description string
	Site        models.SiteSettings
	Page        *models.Page
	HTML        template.HTML
	Scripts     []template.JS
	Fallback    bool
	// FallbackReason is empty unless Fallback is set.
	FallbackReason string
	NotFound       bool
}

// ViewService assembles public pages. It never fails: missing pages, store
// errors and timeouts all end in a rendered fallback.
type ViewService struct {
	pages        PageReader
	site         SiteProvider
	avatars      *AvatarService
	timeout      time.Duration
	snapshotWait time.Duration
	now          func() time.Time
}

func NewViewService(pages PageReader, site SiteProvider, avatars *AvatarService, timeout time.Duration) *ViewService {
	if timeout <= 0 {
		timeout = constants.DefaultPageFetchTimeout
	}
	return &ViewService{
		pages:        pages,
		site:         site,
		avatars:      avatars,
		timeout:      timeout,
		snapshotWait: defaultSnapshotWait,
		now:          time.Now,
	}
}

type pageResult struct {
	page *models.Page
	err  error
}

// fetch loads the page and the post snapshot concurrently. Only the page
// decides success: once it has arrived the snapshot gets at most
// snapshotWait more, and a late or failed snapshot is simply empty.
func (s *ViewService) fetch(ctx context.Context, slug string) (*models.Page, []models.PostSummary, error) {
	pageCh := make(chan pageResult, 1)
	postsCh := make(chan []models.PostSummary, 1)

	go func() {
		page, err := s.pages.GetPublished(ctx, slug)
		pageCh <- pageResult{page: page, err: err}
	}()
	go func() {
		posts, err := s.pages.PublishedPosts(ctx)
		if err != nil {
			logger.Warn("Post snapshot unavailable", map[string]interface{}{"slug": slug, "error": err.Error()})
			posts = nil
		}
		postsCh <- posts
	}()

	var result pageResult
	select {
	case result = <-pageCh:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}

	wait := time.NewTimer(s.snapshotWait)
	defer wait.Stop()

	select {
	case posts := <-postsCh:
		return result.page, posts, result.err
	case <-wait.C:
	case <-ctx.Done():
	}
	logger.Warn("Post snapshot too slow, rendering without it", map[string]interface{}{"slug": slug})
	return result.page, nil, result.err
}

func acceptsKind(view View, page *models.Page) bool {
	switch view {
	case ViewPost:
		return page.IsPost()
	case ViewPage:
		return !page.IsPost()
	default:
		return true
	}
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, ErrPageNotFound):
		return fallbackNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fallbackTimeout
	default:
		return fallbackError
	}
}

// Compose runs the public pipeline: fetch with a bounded wait, keep visible
// sections in order, render, and fall back to static content when nothing is left.
func (s *ViewService) Compose(ctx context.Context, view View, slug string, filter sections.PostFilter) *RenderedView {
	var (
		g     errgroup.Group
		site  models.SiteSettings
		page  *models.Page
		posts []models.PostSummary
		err   error
	)
	g.Go(func() error {
		site = s.site.SiteOrDefault(ctx)
		return nil
	})
	g.Go(func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		page, posts, err = s.fetch(fetchCtx, slug)
		return nil
	})
	_ = g.Wait()

	if err == nil && page != nil && !acceptsKind(view, page) {
		page, err = nil, ErrPageNotFound
	}
	if err == nil && page == nil {
		err = ErrPageNotFound
	}

	fields := map[string]interface{}{"view": string(view), "slug": slug}
	if err != nil {
		reason := fallbackReason(err)
		if reason == fallbackNotFound {
			logger.Warn("Page not found, rendering fallback", fields)
		} else {
			logger.Error(err, "Page fetch failed, rendering fallback", fields)
		}
		return s.fallback(view, slug, site, posts, filter, reason, nil)
	}

	if len(page.Sections.Visible()) == 0 {
		logger.Warn("Page has no visible sections, rendering fallback", fields)
		return s.fallback(view, slug, site, posts, filter, fallbackEmpty, page)
	}

	rctx := s.renderContext(site, page, posts, filter)
	output := sections.RenderAll(rctx, page.Sections, page.IsPost())

	return &RenderedView{
		View:        view,
		Slug:        slug,
		Title:       page.Title,
		Description: page.Description,
		Site:        site,
		Page:        page,
		HTML:        template.HTML(output.HTML),
		Scripts:     scriptsOf(output),
	}
}

func (s *ViewService) renderContext(site models.SiteSettings, page *models.Page, posts []models.PostSummary, filter sections.PostFilter) *sections.RenderContext {
	rctx := &sections.RenderContext{
		Site:      site,
		Page:      page,
		Posts:     posts,
		Filter:    filter,
		Now:       s.now(),
		Sanitizer: validator.SanitizeHTML,
	}
	if s.avatars != nil {
		rctx.Avatar = s.avatars.URLFor
	}
	return rctx
}

func (s *ViewService) fallback(view View, slug string, site models.SiteSettings, posts []models.PostSummary, filter sections.PostFilter, reason string, found *models.Page) *RenderedView {
	metrics.PageFallback(string(view), reason)

	page := &models.Page{Slug: slug, Kind: constants.PageKindPage, Title: fallbackTitle(view, site)}
	if found != nil {
		page.Title = found.Title
		page.Description = found.Description
	}
	page.Sections = fallbackSections(view, site, reason)

	rctx := s.renderContext(site, page, posts, filter)
	output := sections.RenderAll(rctx, page.Sections, false)

	return &RenderedView{
		View:           view,
		Slug:           slug,
		Title:          page.Title,
		Description:    page.Description,
		Site:           site,
		HTML:           template.HTML(output.HTML),
		Scripts:        scriptsOf(output),
		Fallback:       true,
		FallbackReason: reason,
		NotFound:       reason == fallbackNotFound && (view == ViewPost || view == ViewPage),
	}
}

func scriptsOf(output sections.Output) []template.JS {
	scripts := make([]template.JS, len(output.Scripts))
	for i, script := range output.Scripts {
		scripts[i] = template.JS(script)
	}
	return scripts
}
