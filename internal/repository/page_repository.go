package repository

import (
	"context"
	"errors"
	"time"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/models"

	"gorm.io/gorm"
)

// ErrVersionMismatch is returned by Save when the stored page moved past the expected version.
var ErrVersionMismatch = errors.New("page version mismatch")

type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	Save(ctx context.Context, page *models.Page, expectedVersion int) error
	Delete(ctx context.Context, slug string) error
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context, kind string) ([]models.Page, error)
	ListPublishedPosts(ctx context.Context, limit int) ([]models.Page, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

type pageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	if page.Version < 1 {
		page.Version = 1
	}
	return r.db.WithContext(ctx).Create(page).Error
}

// Save overwrites every field of the stored page in one statement, but only
// when the stored version still equals expectedVersion. On success the
// version on page is advanced to match the database.
func (r *pageRepository) Save(ctx context.Context, page *models.Page, expectedVersion int) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.Page{}).
		Where("slug = ? AND version = ?", page.Slug, expectedVersion).
		Updates(map[string]interface{}{
			"kind":         page.Kind,
			"title":        page.Title,
			"description":  page.Description,
			"excerpt":      page.Excerpt,
			"category":     page.Category,
			"tags":         page.Tags,
			"cover_image":  page.CoverImage,
			"author":       page.Author,
			"author_bio":   page.AuthorBio,
			"published":    page.Published,
			"published_at": page.PublishedAt,
			"sections":     page.Sections,
			"version":      gorm.Expr("version + 1"),
			"updated_at":   now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		exists, err := r.ExistsBySlug(ctx, page.Slug)
		if err != nil {
			return err
		}
		if !exists {
			return gorm.ErrRecordNotFound
		}
		return ErrVersionMismatch
	}

	page.Version = expectedVersion + 1
	page.UpdatedAt = now
	return nil
}

func (r *pageRepository) Delete(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&models.Page{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPublishedBySlug hides drafts and posts scheduled for later.
func (r *pageRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	now := time.Now().UTC()

	if err := r.db.WithContext(ctx).Where("slug = ? AND published = ?", slug, true).
		Where("published_at IS NULL OR published_at <= ?", now).
		First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// List returns every page of kind, or all pages when kind is empty, newest first.
func (r *pageRepository) List(ctx context.Context, kind string) ([]models.Page, error) {
	var pages []models.Page
	query := r.db.WithContext(ctx)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.Order("pages.created_at DESC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *pageRepository) ListPublishedPosts(ctx context.Context, limit int) ([]models.Page, error) {
	var posts []models.Page
	now := time.Now().UTC()

	query := r.db.WithContext(ctx).
		Where("kind = ? AND published = ?", constants.PageKindPost, true).
		Where("published_at IS NULL OR published_at <= ?", now).
		Order("COALESCE(pages.published_at, pages.created_at) DESC").
		Order("pages.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *pageRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Page{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
