package seed

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/editor"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/utils"
)

//go:embed data/pages/*.json
var defaultPagesFS embed.FS

var (
	loadOnce    sync.Once
	definitions []models.Page
	loadErr     error
)

// PageStore is the part of the page repository seeding needs.
type PageStore interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, page *models.Page) error
}

// Definitions returns copies of every embedded page, sections normalised.
func Definitions() ([]models.Page, error) {
	loadOnce.Do(func() {
		definitions, loadErr = loadDefinitions(defaultPagesFS)
	})
	if loadErr != nil {
		return nil, loadErr
	}

	result := make([]models.Page, len(definitions))
	for i := range definitions {
		result[i] = *definitions[i].Clone()
	}
	return result, nil
}

// DefaultPage returns the synthesized document for a well-known slug.
// Other slugs have no default and report false.
func DefaultPage(slug string) (*models.Page, bool) {
	if !constants.IsWellKnownSlug(slug) {
		return nil, false
	}
	pages, err := Definitions()
	if err != nil {
		logger.Error(err, "Failed to load embedded page definitions", nil)
		return nil, false
	}
	for i := range pages {
		if pages[i].Slug == slug {
			page := pages[i]
			page.Version = 0
			return &page, true
		}
	}
	return nil, false
}

// EnsureDefaultPages creates every embedded page whose slug is not taken yet.
func EnsureDefaultPages(ctx context.Context, store PageStore) {
	pages, err := Definitions()
	if err != nil {
		logger.Error(err, "Failed to read embedded page definitions", nil)
		return
	}

	for i := range pages {
		page := pages[i]
		exists, err := store.ExistsBySlug(ctx, page.Slug)
		if err != nil {
			logger.Error(err, "Failed to verify default page", map[string]interface{}{"slug": page.Slug})
			continue
		}
		if exists {
			logger.Debug("Default page already present", map[string]interface{}{"slug": page.Slug})
			continue
		}
		page.Version = 1
		if err := store.Create(ctx, &page); err != nil {
			logger.Error(err, "Failed to create default page", map[string]interface{}{"slug": page.Slug})
			continue
		}
		logger.Info("Ensured default page", map[string]interface{}{"slug": page.Slug, "kind": page.Kind})
	}
}

func loadDefinitions(fsys fs.FS) ([]models.Page, error) {
	entries, err := fs.ReadDir(fsys, "data/pages")
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var pages []models.Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, "data/pages/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		parsed, err := parsePageDefinitions(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		for _, page := range parsed {
			page.Slug = utils.GenerateSlug(page.Slug)
			if page.Slug == "" {
				page.Slug = utils.GenerateSlug(page.Title)
			}
			if !constants.IsPageKind(page.Kind) {
				page.Kind = constants.PageKindPage
			}
			page.Sections = editor.Normalize(page.Sections)
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func parsePageDefinitions(data []byte) ([]models.Page, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var pages []models.Page
		if err := json.Unmarshal(trimmed, &pages); err != nil {
			return nil, err
		}
		return pages, nil
	}

	var page models.Page
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return nil, err
	}
	return []models.Page{page}, nil
}
