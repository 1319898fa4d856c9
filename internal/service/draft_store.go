package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/internal/selector"
	"sitebuilder-backend/pkg/cache"
)

// Draft is one editor's working copy of a page together with their selector state.
type Draft struct {
	Page          models.Page    `json:"page"`
	BaseVersion   int            `json:"baseVersion"`
	SelectorState selector.State `json:"selector"`
	OpenedAt      time.Time      `json:"openedAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Context is the editing context that decides which section types are offered.
func (d *Draft) Context() sections.Context {
	return sections.ParseContext(d.Page.Kind)
}

func (d *Draft) picker() *selector.Selector {
	return selector.Restore(d.Context(), d.SelectorState)
}

// Available lists the section types the selector currently offers.
func (d *Draft) Available() []sections.Entry {
	return d.picker().Available()
}

// DraftStore keeps drafts between requests.
type DraftStore interface {
	Load(ctx context.Context, key string) (*Draft, error)
	Store(ctx context.Context, key string, draft *Draft) error
	Delete(ctx context.Context, key string) error
}

// NewDraftStore keeps drafts in Redis when the cache is enabled and in process memory otherwise.
func NewDraftStore(cacheService *cache.Cache, ttl time.Duration) DraftStore {
	if ttl <= 0 {
		ttl = constants.DefaultDraftTTL
	}
	if cacheService.Enabled() {
		return &redisDraftStore{cache: cacheService, ttl: ttl}
	}
	return NewMemoryDraftStore(ttl)
}

type redisDraftStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func (s *redisDraftStore) Load(_ context.Context, key string) (*Draft, error) {
	var draft Draft
	if err := s.cache.Get(key, &draft); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (s *redisDraftStore) Store(_ context.Context, key string, draft *Draft) error {
	return s.cache.Set(key, draft, s.ttl)
}

func (s *redisDraftStore) Delete(_ context.Context, key string) error {
	return s.cache.Delete(key)
}

type memoryDraft struct {
	data    []byte
	expires time.Time
}

// MemoryDraftStore is the single-process fallback. Drafts are stored encoded
// so callers never share state with the store.
type MemoryDraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]memoryDraft
	now    func() time.Time
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{
		ttl:    ttl,
		drafts: make(map[string]memoryDraft),
		now:    time.Now,
	}
}

func (s *MemoryDraftStore) Load(_ context.Context, key string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.drafts[key]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if s.now().After(entry.expires) {
		delete(s.drafts, key)
		return nil, ErrDraftNotFound
	}

	var draft Draft
	if err := json.Unmarshal(entry.data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Store(_ context.Context, key string, draft *Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.drafts[key] = memoryDraft{data: data, expires: now.Add(s.ttl)}
	return nil
}

// Sweep drops expired drafts and reports how many were removed.
func (s *MemoryDraftStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweep(s.now())
}

func (s *MemoryDraftStore) sweep(now time.Time) int {
	removed := 0
	for k, entry := range s.drafts {
		if now.After(entry.expires) {
			delete(s.drafts, k)
			removed++
		}
	}
	return removed
}

func (s *MemoryDraftStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}
