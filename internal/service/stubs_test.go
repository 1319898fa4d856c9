package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/repository"
	"sitebuilder-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"gorm.io/gorm"
)

// stubPageRepo is an in-memory PageRepository with call counters.
type stubPageRepo struct {
	mu        sync.Mutex
	pages     map[string]*models.Page
	nextID    uint
	getCalls  int
	listCalls int
	err       error
}

func newStubPageRepo(pages ...*models.Page) *stubPageRepo {
	repo := &stubPageRepo{pages: make(map[string]*models.Page)}
	for _, page := range pages {
		repo.nextID++
		stored := page.Clone()
		stored.ID = repo.nextID
		if stored.Version == 0 {
			stored.Version = 1
		}
		repo.pages[page.Slug] = stored
	}
	return repo
}

func (r *stubPageRepo) Create(_ context.Context, page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	page.ID = r.nextID
	if page.Version < 1 {
		page.Version = 1
	}
	r.pages[page.Slug] = page.Clone()
	return nil
}

func (r *stubPageRepo) Save(_ context.Context, page *models.Page, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	stored, ok := r.pages[page.Slug]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != expectedVersion {
		return repository.ErrVersionMismatch
	}
	page.Version = expectedVersion + 1
	page.ID = stored.ID
	r.pages[page.Slug] = page.Clone()
	return nil
}

func (r *stubPageRepo) Delete(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[slug]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.pages, slug)
	return nil
}

func (r *stubPageRepo) GetBySlug(_ context.Context, slug string) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.err != nil {
		return nil, r.err
	}
	page, ok := r.pages[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return page.Clone(), nil
}

func (r *stubPageRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, gorm.ErrRecordNotFound
	}
	return page, nil
}

func (r *stubPageRepo) List(_ context.Context, kind string) ([]models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Page
	for _, page := range r.pages {
		if kind == "" || page.Kind == kind {
			result = append(result, *page.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *stubPageRepo) ListPublishedPosts(_ context.Context, limit int) ([]models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	var result []models.Page
	for _, page := range r.pages {
		if page.Kind == "post" && page.Published {
			result = append(result, *page.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *stubPageRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pages[slug]
	return ok, nil
}

func (r *stubPageRepo) stored(slug string) *models.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pages[slug]
}

type stubSettingRepo struct {
	values map[string]string
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (*models.Setting, error) {
	value, ok := r.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Setting{Key: key, Value: value}, nil
}

func (r *stubSettingRepo) Set(_ context.Context, key, value string) error {
	r.values[key] = value
	return nil
}

func (r *stubSettingRepo) Delete(_ context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewCache(mr.Addr(), true)
	if err != nil {
		t.Fatalf("failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}
