package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/repository"
	"sitebuilder-backend/pkg/cache"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/validator"

	"gorm.io/gorm"
)

const (
	siteSettingsKey      = "site"
	siteSettingsCacheKey = "settings:site"
	siteSettingsCacheTTL = 10 * time.Minute
)

// SettingsService stores the site-wide settings every template may read.
type SettingsService struct {
	repo     repository.SettingRepository
	cache    *cache.Cache
	defaults models.SiteSettings
}

func NewSettingsService(repo repository.SettingRepository, cacheService *cache.Cache, defaults models.SiteSettings) *SettingsService {
	return &SettingsService{repo: repo, cache: cacheService, defaults: defaults}
}

// Site returns the stored settings with empty fields filled from the defaults.
func (s *SettingsService) Site(ctx context.Context) (models.SiteSettings, error) {
	if s.cache != nil {
		var cached models.SiteSettings
		if err := s.cache.Get(siteSettingsCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	setting, err := s.repo.Get(ctx, siteSettingsKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.withDefaults(models.SiteSettings{}), nil
		}
		return s.withDefaults(models.SiteSettings{}), fmt.Errorf("failed to load site settings: %w", err)
	}

	var stored models.SiteSettings
	if err := json.Unmarshal([]byte(setting.Value), &stored); err != nil {
		return s.withDefaults(models.SiteSettings{}), fmt.Errorf("failed to decode site settings: %w", err)
	}

	site := s.withDefaults(stored)
	if s.cache != nil {
		if err := s.cache.Set(siteSettingsCacheKey, site, siteSettingsCacheTTL); err != nil {
			logger.Warn("Failed to cache site settings", map[string]interface{}{"error": err.Error()})
		}
	}
	return site, nil
}

// SiteOrDefault never fails; lookup errors are logged and the defaults are used.
func (s *SettingsService) SiteOrDefault(ctx context.Context) models.SiteSettings {
	site, err := s.Site(ctx)
	if err != nil {
		logger.Error(err, "Using default site settings", nil)
	}
	return site
}

func (s *SettingsService) UpdateSite(ctx context.Context, settings models.SiteSettings) (models.SiteSettings, error) {
	cleaned := sanitizeSiteSettings(settings)

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return models.SiteSettings{}, err
	}
	if err := s.repo.Set(ctx, siteSettingsKey, string(encoded)); err != nil {
		return models.SiteSettings{}, fmt.Errorf("failed to store site settings: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(siteSettingsCacheKey); err != nil {
			logger.Warn("Failed to invalidate site settings cache", map[string]interface{}{"error": err.Error()})
		}
	}

	logger.Info("Site settings updated", map[string]interface{}{"name": cleaned.Name})
	return s.withDefaults(cleaned), nil
}

func (s *SettingsService) withDefaults(site models.SiteSettings) models.SiteSettings {
	if strings.TrimSpace(site.Name) == "" {
		site.Name = s.defaults.Name
	}
	if site.Tagline == "" {
		site.Tagline = s.defaults.Tagline
	}
	if site.URL == "" {
		site.URL = s.defaults.URL
	}
	if site.SocialLinks == nil {
		site.SocialLinks = []models.SocialLink{}
	}
	if site.Navigation == nil {
		site.Navigation = []models.NavItem{}
	}
	return site
}

func sanitizeSiteSettings(site models.SiteSettings) models.SiteSettings {
	site.Name = validator.SanitizeString(site.Name)
	site.Tagline = validator.SanitizeString(site.Tagline)
	site.URL = strings.TrimRight(strings.TrimSpace(site.URL), "/")
	site.LogoURL = strings.TrimSpace(site.LogoURL)
	site.ContactEmail = strings.TrimSpace(site.ContactEmail)
	site.ContactPhone = validator.SanitizeString(site.ContactPhone)
	site.Address = validator.SanitizeString(site.Address)
	site.FooterText = validator.SanitizeString(site.FooterText)

	links := make([]models.SocialLink, 0, len(site.SocialLinks))
	for _, link := range site.SocialLinks {
		link.Name = validator.SanitizeString(link.Name)
		link.URL = strings.TrimSpace(link.URL)
		link.Icon = validator.SanitizeString(link.Icon)
		if link.Name == "" || !validator.ValidateLink(link.URL) {
			continue
		}
		links = append(links, link)
	}
	site.SocialLinks = links

	nav := make([]models.NavItem, 0, len(site.Navigation))
	for _, item := range site.Navigation {
		item.Label = validator.SanitizeString(item.Label)
		item.URL = strings.TrimSpace(item.URL)
		if item.Label == "" || !validator.ValidateLink(item.URL) {
			continue
		}
		nav = append(nav, item)
	}
	site.Navigation = nav
	return site
}
