package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sitebuilder-backend/internal/editor"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/internal/seed"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/validator"
)

// PageStore is what drafts need from page persistence.
type PageStore interface {
	Get(ctx context.Context, slug string) (*models.Page, error)
	Save(ctx context.Context, page *models.Page, expectedVersion int) error
}

// DraftService manages per-editor working copies. Nothing reaches the page
// store until Save, and a failed save leaves the draft as it was.
type DraftService struct {
	pages PageStore
	store DraftStore
	now   func() time.Time

	// mu serialises read-modify-write cycles on the store.
	mu sync.Mutex
}

func NewDraftService(pages PageStore, store DraftStore) *DraftService {
	return &DraftService{pages: pages, store: store, now: time.Now}
}

func draftKey(editorID, slug string) string {
	return fmt.Sprintf("draft:%s:%s", editorID, slug)
}

// Open returns the editor's current draft of slug, creating one from the
// stored page when none exists. Well-known slugs without a stored page start
// from their built-in default.
func (s *DraftService) Open(ctx context.Context, editorID, slug string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey(editorID, slug)
	if draft, err := s.store.Load(ctx, key); err == nil {
		return draft, nil
	} else if !errors.Is(err, ErrDraftNotFound) {
		return nil, err
	}

	baseVersion := 0
	page, err := s.pages.Get(ctx, slug)
	switch {
	case err == nil:
		baseVersion = page.Version
	case errors.Is(err, ErrPageNotFound):
		synthesized, ok := seed.DefaultPage(slug)
		if !ok {
			return nil, ErrPageNotFound
		}
		page = synthesized
		logger.Info("Synthesized default page for editing", map[string]interface{}{"slug": slug, "editor": editorID})
	default:
		return nil, err
	}

	page.Sections = editor.Normalize(page.Sections)
	now := s.now().UTC()
	draft := &Draft{
		Page:        *page,
		BaseVersion: baseVersion,
		OpenedAt:    now,
		UpdatedAt:   now,
	}
	if err := s.store.Store(ctx, key, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *DraftService) Get(ctx context.Context, editorID, slug string) (*Draft, error) {
	return s.store.Load(ctx, draftKey(editorID, slug))
}

func (s *DraftService) mutate(ctx context.Context, editorID, slug string, apply func(*Draft) error) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey(editorID, slug)
	draft, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := apply(draft); err != nil {
		return nil, err
	}
	draft.UpdatedAt = s.now().UTC()
	if err := s.store.Store(ctx, key, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateMeta patches page-level fields. Omitted fields are left alone.
func (s *DraftService) UpdateMeta(ctx context.Context, editorID, slug string, req models.UpdateDraftMetaRequest) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		page := &d.Page
		if req.Title != nil {
			page.Title = validator.SanitizeString(*req.Title)
		}
		if req.Description != nil {
			page.Description = validator.SanitizeString(*req.Description)
		}
		if req.Excerpt != nil {
			page.Excerpt = validator.SanitizeString(*req.Excerpt)
		}
		if req.Category != nil {
			page.Category = validator.SanitizeString(*req.Category)
		}
		if req.Tags != nil {
			page.Tags = cleanTags(*req.Tags)
		}
		if req.CoverImage != nil {
			page.CoverImage = strings.TrimSpace(*req.CoverImage)
		}
		if req.Author != nil {
			page.Author = validator.SanitizeString(*req.Author)
		}
		if req.AuthorBio != nil {
			page.AuthorBio = validator.SanitizeString(*req.AuthorBio)
		}
		if req.Published != nil {
			page.Published = *req.Published
			if page.Published && page.PublishedAt == nil && page.IsPost() {
				now := s.now().UTC()
				page.PublishedAt = &now
			}
		}
		req.PublishedAt.Apply(&page.PublishedAt)
		return nil
	})
}

// SetSelectorQuery updates the search text and category the selector browses with.
func (s *DraftService) SetSelectorQuery(ctx context.Context, editorID, slug, search, category string) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		picker := d.picker()
		picker.SetSearch(search)
		if err := picker.SetCategory(category); err != nil {
			return err
		}
		d.SelectorState = picker.State()
		return nil
	})
}

// ToggleType marks or unmarks a section type for addition.
func (s *DraftService) ToggleType(ctx context.Context, editorID, slug string, t sections.Type) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		picker := d.picker()
		if err := picker.Toggle(t); err != nil {
			return err
		}
		d.SelectorState = picker.State()
		return nil
	})
}

// ConfirmSelection appends one section per chosen type and resets the selector.
func (s *DraftService) ConfirmSelection(ctx context.Context, editorID, slug string) (*Draft, []models.Section, error) {
	var added []models.Section
	draft, err := s.mutate(ctx, editorID, slug, func(d *Draft) error {
		picker := d.picker()
		chosen := picker.Confirm()
		d.Page.Sections, added = editor.Append(d.Page.Sections, chosen)
		d.SelectorState = picker.State()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return draft, added, nil
}

func (s *DraftService) RemoveSection(ctx context.Context, editorID, slug, sectionID string) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		updated, err := editor.Remove(d.Page.Sections, sectionID)
		if err != nil {
			return err
		}
		d.Page.Sections = updated
		return nil
	})
}

func (s *DraftService) MoveSection(ctx context.Context, editorID, slug, sectionID string, position int) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		updated, err := editor.Move(d.Page.Sections, sectionID, position)
		if err != nil {
			return err
		}
		d.Page.Sections = updated
		return nil
	})
}

func (s *DraftService) DuplicateSection(ctx context.Context, editorID, slug, sectionID string) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		updated, _, err := editor.Duplicate(d.Page.Sections, sectionID)
		if err != nil {
			return err
		}
		d.Page.Sections = updated
		return nil
	})
}

func (s *DraftService) SetSectionVisibility(ctx context.Context, editorID, slug, sectionID string, visible bool) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		updated, err := editor.SetVisible(d.Page.Sections, sectionID, visible)
		if err != nil {
			return err
		}
		d.Page.Sections = updated
		return nil
	})
}

func (s *DraftService) UpdateSectionContent(ctx context.Context, editorID, slug, sectionID string, content models.Content) (*Draft, error) {
	return s.mutate(ctx, editorID, slug, func(d *Draft) error {
		updated, err := editor.UpdateContent(d.Page.Sections, sectionID, content)
		if err != nil {
			return err
		}
		d.Page.Sections = updated
		return nil
	})
}

// Save writes the working copy over the stored page. On success the draft
// moves to the new version so the editor can keep working; on failure it is
// left untouched so the save can be retried.
func (s *DraftService) Save(ctx context.Context, editorID, slug string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey(editorID, slug)
	draft, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	page := draft.Page.Clone()
	page.Sections = editor.Renumber(page.Sections)
	if err := s.pages.Save(ctx, page, draft.BaseVersion); err != nil {
		logger.Warn("Draft save failed", map[string]interface{}{
			"slug":    slug,
			"editor":  editorID,
			"version": draft.BaseVersion,
			"error":   err.Error(),
		})
		return draft, err
	}

	draft.Page = *page
	draft.BaseVersion = page.Version
	draft.UpdatedAt = s.now().UTC()
	if err := s.store.Store(ctx, key, draft); err != nil {
		logger.Error(err, "Failed to refresh draft after save", map[string]interface{}{"slug": slug})
	}
	return draft, nil
}

// Discard drops the working copy without touching the stored page.
func (s *DraftService) Discard(ctx context.Context, editorID, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(ctx, draftKey(editorID, slug))
}
