package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/service"
)

type SettingsHandler struct {
	settings service.SettingsUseCase
}

func NewSettingsHandler(settings service.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) GetSite(c *gin.Context) {
	site, err := h.settings.Site(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site})
}

func (h *SettingsHandler) UpdateSite(c *gin.Context) {
	var req models.SiteSettings
	if !bindJSON(c, &req) {
		return
	}

	site, err := h.settings.UpdateSite(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site})
}
