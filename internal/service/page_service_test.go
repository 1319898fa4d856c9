package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sitebuilder-backend/internal/models"
)

func TestCreateDerivesSlugAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := NewPageService(newStubPageRepo(), nil)

	page, err := svc.Create(ctx, models.CreatePageRequest{Kind: "post", Title: "Hello, World!", Tags: []string{"go", " Go ", ""}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if page.Slug != "hello-world" || page.Kind != "post" || page.Version != 1 {
		t.Fatalf("unexpected page %+v", page)
	}
	if len(page.Tags) != 1 {
		t.Fatalf("expected tags to be deduplicated, got %v", page.Tags)
	}

	if _, err := svc.Create(ctx, models.CreatePageRequest{Kind: "page", Title: "Other", Slug: "hello-world"}); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
	if _, err := svc.Create(ctx, models.CreatePageRequest{Kind: "page", Title: "!!!"}); !errors.Is(err, ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestSaveDetectsConcurrentEdits(t *testing.T) {
	ctx := context.Background()
	repo := newStubPageRepo(&models.Page{Slug: "about", Kind: "page", Title: "About", Published: true})
	svc := NewPageService(repo, nil)

	first, _ := svc.Get(ctx, "about")
	second, _ := svc.Get(ctx, "about")

	first.Title = "First"
	if err := svc.Save(ctx, first, first.Version); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second.Title = "Second"
	if err := svc.Save(ctx, second, second.Version); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if repo.stored("about").Title != "First" {
		t.Fatalf("conflicting save must not overwrite")
	}
}

func TestSaveOfSynthesizedPage(t *testing.T) {
	ctx := context.Background()
	repo := newStubPageRepo()
	svc := NewPageService(repo, nil)

	page := &models.Page{Slug: "home", Kind: "page", Title: "Home"}
	if err := svc.Save(ctx, page, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if page.Version != 1 || repo.stored("home") == nil {
		t.Fatalf("expected page to be created at version 1")
	}

	again := &models.Page{Slug: "home", Kind: "page", Title: "Home again"}
	if err := svc.Save(ctx, again, 0); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected conflict when another editor created the page first, got %v", err)
	}
}

func TestSaveMissingPage(t *testing.T) {
	svc := NewPageService(newStubPageRepo(), nil)
	err := svc.Save(context.Background(), &models.Page{Slug: "gone"}, 3)
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestGetPublishedUsesCacheAndSaveInvalidates(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	repo := newStubPageRepo(&models.Page{Slug: "about", Kind: "page", Title: "About", Published: true})
	svc := NewPageService(repo, c)

	for i := 0; i < 3; i++ {
		if _, err := svc.GetPublished(ctx, "about"); err != nil {
			t.Fatalf("get published: %v", err)
		}
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected one repository read, got %d", repo.getCalls)
	}

	page, _ := svc.Get(ctx, "about")
	page.Title = "Changed"
	if err := svc.Save(ctx, page, page.Version); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh, err := svc.GetPublished(ctx, "about")
	if err != nil || fresh.Title != "Changed" {
		t.Fatalf("expected fresh page after save, got %+v (%v)", fresh, err)
	}
}

func TestGetPublishedHidesDrafts(t *testing.T) {
	repo := newStubPageRepo(&models.Page{Slug: "secret", Kind: "page", Title: "Secret"})
	svc := NewPageService(repo, nil)

	if _, err := svc.GetPublished(context.Background(), "secret"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound for unpublished page, got %v", err)
	}
}

func TestPublishedPostsCached(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	repo := newStubPageRepo(
		&models.Page{Slug: "one", Kind: "post", Title: "One", Published: true, Tags: []string{"go"}},
		&models.Page{Slug: "two", Kind: "post", Title: "Two", Published: true},
		&models.Page{Slug: "about", Kind: "page", Title: "About", Published: true},
	)
	svc := NewPageService(repo, c)

	posts, err := svc.PublishedPosts(ctx)
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "two" {
		t.Fatalf("unexpected posts %+v", posts)
	}
	if _, err := svc.PublishedPosts(ctx); err != nil {
		t.Fatalf("posts: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cached listing, got %d repository calls", repo.listCalls)
	}

	if err := svc.Delete(ctx, "two"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	posts, _ = svc.PublishedPosts(ctx)
	if len(posts) != 1 || repo.listCalls != 2 {
		t.Fatalf("expected listing to refresh after delete, got %d posts and %d calls", len(posts), repo.listCalls)
	}
}

func TestReleaseScheduledInvalidatesListing(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	due := base.Add(time.Minute)
	later := base.Add(time.Hour)
	repo := newStubPageRepo(
		&models.Page{Slug: "due", Kind: "post", Title: "Due", Published: true, PublishedAt: &due},
		&models.Page{Slug: "later", Kind: "post", Title: "Later", Published: true, PublishedAt: &later},
		&models.Page{Slug: "draft", Kind: "post", Title: "Draft", PublishedAt: &due},
	)
	svc := NewPageService(repo, c)

	if _, err := svc.PublishedPosts(ctx); err != nil {
		t.Fatalf("posts: %v", err)
	}

	released, err := svc.ReleaseScheduled(ctx, base, base.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if released != 1 {
		t.Fatalf("expected one released post, got %d", released)
	}

	if _, err := svc.PublishedPosts(ctx); err != nil {
		t.Fatalf("posts: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected the listing to be rebuilt after release, got %d repository calls", repo.listCalls)
	}
}
