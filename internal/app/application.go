package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sitebuilder-backend/internal/authorization"
	"sitebuilder-backend/internal/background"
	"sitebuilder-backend/internal/config"
	"sitebuilder-backend/internal/handlers"
	"sitebuilder-backend/internal/middleware"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/repository"
	"sitebuilder-backend/internal/seed"
	"sitebuilder-backend/internal/service"
	"sitebuilder-backend/pkg/cache"
	"sitebuilder-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	draftStore  service.DraftStore
	scheduler   *background.Scheduler
	rateLimiter *middleware.RateLimitManager
	router      *gin.Engine
	server      *http.Server
}

type repositoryContainer struct {
	Page    repository.PageRepository
	Setting repository.SettingRepository
}

type serviceContainer struct {
	Page     *service.PageService
	Draft    *service.DraftService
	View     *service.ViewService
	Settings *service.SettingsService
	Avatar   *service.AvatarService
}

type handlerContainer struct {
	View     *handlers.ViewHandler
	Page     *handlers.PageHandler
	Builder  *handlers.BuilderHandler
	Section  *handlers.SectionHandler
	Settings *handlers.SettingsHandler
	Avatar   *handlers.AvatarHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}
	app.initRepositories()
	app.initServices()

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	seed.EnsureDefaultPages(seedCtx, app.repositories.Page)
	cancel()

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	app.initRouter()

	if err := app.initBackgroundJobs(); err != nil {
		return nil, err
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"database":    a.cfg.DBDriver,
		"cache":       a.cache.Enabled(),
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(ctx); err != nil {
			logger.Error(err, "Failed to stop background jobs", nil)
		}
	}

	if a.rateLimiter != nil {
		_ = a.rateLimiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) openDialector() (gorm.Dialector, error) {
	switch a.cfg.DBDriver {
	case "postgres", "postgresql", "":
		return postgres.Open(a.cfg.DatabaseURL), nil
	case "sqlite":
		path := a.cfg.SQLitePath
		if path != ":memory:" && !strings.HasPrefix(path, "file:") {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", a.cfg.DBDriver)
	}
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", map[string]interface{}{"driver": a.cfg.DBDriver})

	dialector, err := a.openDialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if a.cfg.UsesSQLite() {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.Page{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

// createIndexes adds the postgres-only partial and GIN indexes. SQLite relies on the gorm tags.
func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	if a.cfg.UsesSQLite() {
		return nil
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_posts_feed ON pages ((COALESCE(published_at, created_at)) DESC) WHERE kind = 'post' AND published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_sections ON pages USING GIN (sections)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() error {
	if !a.cfg.EnableCache {
		a.cache, _ = cache.NewCache("", false)
		return nil
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		if a.cfg.IsProduction() {
			return err
		}
		logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{"error": err.Error()})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Page:    repository.NewPageRepository(a.db),
		Setting: repository.NewSettingRepository(a.db),
	}
}

func (a *Application) initServices() {
	defaults := models.SiteSettings{
		Name:    a.cfg.SiteName,
		Tagline: a.cfg.SiteTagline,
		URL:     a.cfg.SiteURL,
	}

	page := service.NewPageService(a.repositories.Page, a.cache)
	a.draftStore = service.NewDraftStore(a.cache, a.cfg.DraftTTL)
	settings := service.NewSettingsService(a.repositories.Setting, a.cache, defaults)
	avatars := service.NewAvatarService()

	a.services = serviceContainer{
		Page:     page,
		Draft:    service.NewDraftService(page, a.draftStore),
		View:     service.NewViewService(page, settings, avatars, a.cfg.PageFetchTimeout),
		Settings: settings,
		Avatar:   avatars,
	}
}

// initBackgroundJobs releases scheduled posts from cached listings and, for
// the in-process draft store, sweeps expired drafts.
func (a *Application) initBackgroundJobs() error {
	interval := a.cfg.JobInterval
	if interval <= 0 {
		interval = time.Minute
	}

	a.scheduler = background.NewScheduler(background.SchedulerConfig{WorkerCount: 1})
	a.scheduler.Start(context.Background())

	lastRelease := time.Now().UTC()
	release := background.Job{
		Name:    "release-scheduled-posts",
		Timeout: 30 * time.Second,
		Run: func(ctx context.Context) error {
			now := time.Now().UTC()
			if _, err := a.services.Page.ReleaseScheduled(ctx, lastRelease, now); err != nil {
				return err
			}
			lastRelease = now
			return nil
		},
	}
	if err := a.scheduler.Every(interval, release); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", release.Name, err)
	}

	if store, ok := a.draftStore.(*service.MemoryDraftStore); ok {
		sweep := background.Job{
			Name: "sweep-expired-drafts",
			Run: func(context.Context) error {
				if removed := store.Sweep(); removed > 0 {
					logger.Debug("Expired drafts removed", map[string]interface{}{"count": removed})
				}
				return nil
			},
		}
		if err := a.scheduler.Every(interval, sweep); err != nil {
			return fmt.Errorf("failed to schedule %s: %w", sweep.Name, err)
		}
	}

	return nil
}

func (a *Application) initHandlers() error {
	viewHandler, err := handlers.NewViewHandler(a.services.View)
	if err != nil {
		return fmt.Errorf("failed to initialize view handler: %w", err)
	}

	a.handlers = handlerContainer{
		View:     viewHandler,
		Page:     handlers.NewPageHandler(a.services.Page),
		Builder:  handlers.NewBuilderHandler(a.services.Draft),
		Section:  handlers.NewSectionHandler(),
		Settings: handlers.NewSettingsHandler(a.services.Settings),
		Avatar:   handlers.NewAvatarHandler(a.services.Avatar),
	}
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimiter = middleware.NewRateLimitManager(context.Background())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware(a.cfg.FrameSources, a.cfg.MediaSources))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", a.handlers.View.Home)
	router.GET("/blog", a.handlers.View.Blog)
	router.GET("/blog/:slug", a.handlers.View.Post)
	router.GET("/p/:slug", a.handlers.View.Page)
	router.GET("/avatars/:file", a.handlers.Avatar.Serve)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(a.rateLimiter, a.cfg))
	{
		v1.GET("/pages/:slug", a.handlers.Page.GetPublic)
		v1.GET("/posts", a.handlers.Page.ListPublishedPosts)

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/sections/catalog", a.handlers.Section.Catalog)
			admin.GET("/sections/catalog/:type", a.handlers.Section.Entry)

			admin.GET("/pages", a.handlers.Page.List)
			admin.POST("/pages", a.handlers.Page.Create)
			admin.GET("/pages/:slug", a.handlers.Page.GetAdmin)
			admin.DELETE("/pages/:slug", middleware.RequirePermission(authorization.PermissionDeletePages), a.handlers.Page.Delete)

			draft := admin.Group("/pages/:slug/draft")
			{
				draft.GET("", a.handlers.Builder.Open)
				draft.PATCH("", a.handlers.Builder.UpdateMeta)
				draft.DELETE("", a.handlers.Builder.Discard)
				draft.PUT("/selector", a.handlers.Builder.SetSelectorQuery)
				draft.POST("/selector/toggle", a.handlers.Builder.ToggleType)
				draft.POST("/selector/confirm", a.handlers.Builder.ConfirmSelection)
				draft.DELETE("/sections/:sectionId", a.handlers.Builder.RemoveSection)
				draft.POST("/sections/:sectionId/move", a.handlers.Builder.MoveSection)
				draft.POST("/sections/:sectionId/duplicate", a.handlers.Builder.DuplicateSection)
				draft.PUT("/sections/:sectionId/visibility", a.handlers.Builder.SetSectionVisibility)
				draft.PUT("/sections/:sectionId/content", a.handlers.Builder.UpdateSectionContent)
				draft.POST("/save", a.handlers.Builder.Save)
			}

			admin.GET("/settings/site", a.handlers.Settings.GetSite)
			admin.PUT("/settings/site", middleware.RequirePermission(authorization.PermissionManageSettings), a.handlers.Settings.UpdateSite)

			admin.DELETE("/cache", middleware.RequirePermission(authorization.PermissionManageCache), a.handlers.Page.ClearCache)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		a.handlers.View.Page(c)
	})

	a.router = router
}
