package service

import (
	"context"

	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
)

type PageUseCase interface {
	Create(context.Context, models.CreatePageRequest) (*models.Page, error)
	Get(context.Context, string) (*models.Page, error)
	GetPublished(context.Context, string) (*models.Page, error)
	List(context.Context, string) ([]models.Page, error)
	PublishedPosts(context.Context) ([]models.PostSummary, error)
	Delete(context.Context, string) error
	ClearCache() error
}

type DraftUseCase interface {
	Open(context.Context, string, string) (*Draft, error)
	Get(context.Context, string, string) (*Draft, error)
	UpdateMeta(context.Context, string, string, models.UpdateDraftMetaRequest) (*Draft, error)
	SetSelectorQuery(context.Context, string, string, string, string) (*Draft, error)
	ToggleType(context.Context, string, string, sections.Type) (*Draft, error)
	ConfirmSelection(context.Context, string, string) (*Draft, []models.Section, error)
	RemoveSection(context.Context, string, string, string) (*Draft, error)
	MoveSection(context.Context, string, string, string, int) (*Draft, error)
	DuplicateSection(context.Context, string, string, string) (*Draft, error)
	SetSectionVisibility(context.Context, string, string, string, bool) (*Draft, error)
	UpdateSectionContent(context.Context, string, string, string, models.Content) (*Draft, error)
	Save(context.Context, string, string) (*Draft, error)
	Discard(context.Context, string, string) error
}

type ViewUseCase interface {
	Compose(context.Context, View, string, sections.PostFilter) *RenderedView
}

type SettingsUseCase interface {
	Site(context.Context) (models.SiteSettings, error)
	SiteOrDefault(context.Context) models.SiteSettings
	UpdateSite(context.Context, models.SiteSettings) (models.SiteSettings, error)
}

var (
	_ PageUseCase     = (*PageService)(nil)
	_ DraftUseCase    = (*DraftService)(nil)
	_ ViewUseCase     = (*ViewService)(nil)
	_ SettingsUseCase = (*SettingsService)(nil)
	_ PageStore       = (*PageService)(nil)
	_ PageReader      = (*PageService)(nil)
)
