package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/metrics"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/repository"
	"sitebuilder-backend/pkg/cache"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/utils"

	"gorm.io/gorm"
)

const publishedPostsCacheKey = "posts:published"

type PageService struct {
	pageRepo repository.PageRepository
	cache    *cache.Cache
}

func NewPageService(pageRepo repository.PageRepository, cacheService *cache.Cache) *PageService {
	return &PageService{
		pageRepo: pageRepo,
		cache:    cacheService,
	}
}

func (s *PageService) cachePage(page *models.Page) {
	if s.cache == nil || page == nil {
		return
	}
	if err := s.cache.CachePage(page.Slug, page); err != nil {
		logger.Warn("Failed to cache page", map[string]interface{}{"slug": page.Slug, "error": err.Error()})
	}
}

func (s *PageService) invalidate(slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePage(slug); err != nil {
		logger.Warn("Failed to invalidate page cache", map[string]interface{}{"slug": slug, "error": err.Error()})
	}
}

// Create stores a new page or post. The slug is derived from the title when none is given.
func (s *PageService) Create(ctx context.Context, req models.CreatePageRequest) (*models.Page, error) {
	slug := utils.GenerateSlug(req.Slug)
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	exists, err := s.pageRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, ErrSlugTaken
	}

	kind := constants.PageKindPage
	if constants.IsPageKind(req.Kind) {
		kind = req.Kind
	}

	page := &models.Page{
		Slug:        slug,
		Kind:        kind,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Tags:        cleanTags(req.Tags),
		Sections:    models.PageSections{},
		Version:     1,
	}
	if err := s.pageRepo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.invalidate(slug)
	logger.Info("Page created", map[string]interface{}{"slug": slug, "kind": kind})
	return page, nil
}

// Get loads a page for editing, published or not.
func (s *PageService) Get(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

// GetPublished loads a page as visitors see it, through the cache.
func (s *PageService) GetPublished(ctx context.Context, slug string) (*models.Page, error) {
	if s.cache != nil {
		var cached models.Page
		if err := s.cache.GetCachedPage(slug, &cached); err == nil {
			return &cached, nil
		}
	}

	page, err := s.pageRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	s.cachePage(page)
	return page, nil
}

func (s *PageService) List(ctx context.Context, kind string) ([]models.Page, error) {
	if kind != "" && !constants.IsPageKind(kind) {
		return nil, fmt.Errorf("unknown page kind %q", kind)
	}
	return s.pageRepo.List(ctx, kind)
}

// PublishedPosts returns the newest published posts, capped at the render snapshot size.
func (s *PageService) PublishedPosts(ctx context.Context) ([]models.PostSummary, error) {
	if s.cache != nil {
		var cached []models.PostSummary
		if err := s.cache.GetCachedPosts(publishedPostsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	posts, err := s.pageRepo.ListPublishedPosts(ctx, constants.PostSnapshotSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PostSummary, 0, len(posts))
	for i := range posts {
		summaries = append(summaries, posts[i].Summary())
	}

	if s.cache != nil {
		if err := s.cache.CachePosts(publishedPostsCacheKey, summaries); err != nil {
			logger.Warn("Failed to cache post listing", map[string]interface{}{"error": err.Error()})
		}
	}
	return summaries, nil
}

// Save writes the whole page. expectedVersion is the version the caller
// started from; zero means the page was synthesized and never stored.
func (s *PageService) Save(ctx context.Context, page *models.Page, expectedVersion int) error {
	err := s.save(ctx, page, expectedVersion)
	switch {
	case err == nil:
		metrics.PageSaved("ok")
	case errors.Is(err, ErrVersionConflict):
		metrics.PageSaved("conflict")
	default:
		metrics.PageSaved("error")
	}
	return err
}

func (s *PageService) save(ctx context.Context, page *models.Page, expectedVersion int) error {
	if page == nil || strings.TrimSpace(page.Slug) == "" {
		return ErrInvalidSlug
	}
	page.Tags = cleanTags(page.Tags)

	if expectedVersion <= 0 {
		exists, err := s.pageRepo.ExistsBySlug(ctx, page.Slug)
		if err != nil {
			return fmt.Errorf("failed to check page existence: %w", err)
		}
		if exists {
			return ErrVersionConflict
		}
		page.Version = 1
		if err := s.pageRepo.Create(ctx, page); err != nil {
			return fmt.Errorf("failed to create page: %w", err)
		}
		s.invalidate(page.Slug)
		return nil
	}

	if err := s.pageRepo.Save(ctx, page, expectedVersion); err != nil {
		switch {
		case errors.Is(err, repository.ErrVersionMismatch):
			return ErrVersionConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrPageNotFound
		default:
			return fmt.Errorf("failed to save page: %w", err)
		}
	}

	s.invalidate(page.Slug)
	logger.Info("Page saved", map[string]interface{}{"slug": page.Slug, "version": page.Version})
	return nil
}

func (s *PageService) Delete(ctx context.Context, slug string) error {
	if err := s.pageRepo.Delete(ctx, slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}
	s.invalidate(slug)
	logger.Info("Page deleted", map[string]interface{}{"slug": slug})
	return nil
}

// ReleaseScheduled invalidates cached listings for posts whose publish time
// fell in (since, until]. Cached copies taken before that moment still hide them.
func (s *PageService) ReleaseScheduled(ctx context.Context, since, until time.Time) (int, error) {
	posts, err := s.pageRepo.List(ctx, constants.PageKindPost)
	if err != nil {
		return 0, err
	}

	released := 0
	for i := range posts {
		post := &posts[i]
		if !post.Published || post.PublishedAt == nil {
			continue
		}
		if post.PublishedAt.After(since) && !post.PublishedAt.After(until) {
			s.invalidate(post.Slug)
			released++
		}
	}
	if released > 0 {
		logger.Info("Scheduled posts released", map[string]interface{}{"count": released})
	}
	return released, nil
}

// ClearCache drops every cached page and listing.
func (s *PageService) ClearCache() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidatePagesCache()
}

func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		key := strings.ToLower(trimmed)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
