package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"sitebuilder-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Page{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestSaveChecksVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(newTestDB(t))

	page := &models.Page{Slug: "home", Kind: "page", Title: "Home", Published: true}
	if err := repo.Create(ctx, page); err != nil {
		t.Fatalf("create: %v", err)
	}
	if page.Version != 1 {
		t.Fatalf("expected version 1 after create, got %d", page.Version)
	}

	first := page.Clone()
	first.Title = "First editor"
	first.Sections = models.PageSections{{ID: "a", Type: "HERO", Order: 0, IsVisible: true, Content: models.Content{"title": "Hi"}}}
	if err := repo.Save(ctx, first, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Version != 2 {
		t.Fatalf("expected version 2, got %d", first.Version)
	}

	second := page.Clone()
	second.Title = "Second editor"
	if err := repo.Save(ctx, second, 1); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}

	stored, err := repo.GetBySlug(ctx, "home")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != "First editor" || stored.Version != 2 {
		t.Fatalf("unexpected stored page %+v", stored)
	}
	if len(stored.Sections) != 1 || stored.Sections[0].Content.String("title") != "Hi" {
		t.Fatalf("sections not round-tripped: %+v", stored.Sections)
	}
}

func TestSaveMissingPage(t *testing.T) {
	repo := NewPageRepository(newTestDB(t))
	err := repo.Save(context.Background(), &models.Page{Slug: "ghost"}, 1)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestListPublishedPostsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(newTestDB(t))

	now := time.Now().UTC()
	older := now.Add(-48 * time.Hour)
	newer := now.Add(-time.Hour)
	future := now.Add(48 * time.Hour)

	fixtures := []*models.Page{
		{Slug: "old", Kind: "post", Title: "Old", Published: true, PublishedAt: &older},
		{Slug: "new", Kind: "post", Title: "New", Published: true, PublishedAt: &newer},
		{Slug: "later", Kind: "post", Title: "Later", Published: true, PublishedAt: &future},
		{Slug: "draft", Kind: "post", Title: "Draft", Published: false, PublishedAt: &older},
		{Slug: "about", Kind: "page", Title: "About", Published: true},
	}
	for _, page := range fixtures {
		if err := repo.Create(ctx, page); err != nil {
			t.Fatalf("create %s: %v", page.Slug, err)
		}
	}

	posts, err := repo.ListPublishedPosts(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "new" || posts[1].Slug != "old" {
		slugs := make([]string, len(posts))
		for i, p := range posts {
			slugs[i] = p.Slug
		}
		t.Fatalf("unexpected posts %v", slugs)
	}

	if _, err := repo.GetPublishedBySlug(ctx, "later"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("scheduled post should be hidden, got %v", err)
	}

	pages, err := repo.List(ctx, "page")
	if err != nil || len(pages) != 1 || pages[0].Slug != "about" {
		t.Fatalf("unexpected page listing %v (%v)", pages, err)
	}
}

func TestDeleteBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewPageRepository(newTestDB(t))

	if err := repo.Create(ctx, &models.Page{Slug: "gone", Kind: "page", Title: "Gone"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, "gone"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "gone"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestSettingUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository(newTestDB(t))

	if err := repo.Set(ctx, "site", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "site", "two"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	setting, err := repo.Get(ctx, "site")
	if err != nil || setting.Value != "two" {
		t.Fatalf("unexpected setting %+v (%v)", setting, err)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
