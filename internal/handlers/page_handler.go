package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/middleware"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/service"
	"sitebuilder-backend/pkg/logger"
)

type PageHandler struct {
	pageService service.PageUseCase
}

func NewPageHandler(pageService service.PageUseCase) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// GetPublic returns a published page with only its visible sections, in render order.
func (h *PageHandler) GetPublic(c *gin.Context) {
	page, err := h.pageService.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	public := page.Clone()
	public.Sections = public.Sections.Visible()
	c.JSON(http.StatusOK, gin.H{"page": public})
}

func (h *PageHandler) ListPublishedPosts(c *gin.Context) {
	posts, err := h.pageService.PublishedPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetAdmin returns the stored page including hidden sections.
func (h *PageHandler) GetAdmin(c *gin.Context) {
	page, err := h.pageService.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) List(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("kind"))
	if kind != "" && !constants.IsPageKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be page or post"})
		return
	}

	pages, err := h.pageService.List(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": page})
}

func (h *PageHandler) Delete(c *gin.Context) {
	if err := h.pageService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page deleted successfully"})
}

func (h *PageHandler) ClearCache(c *gin.Context) {
	if err := h.pageService.ClearCache(); err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Page cache cleared", map[string]interface{}{"by": middleware.EditorID(c)})
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}
