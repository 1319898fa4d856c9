package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/service"
)

type AvatarHandler struct {
	avatars *service.AvatarService
}

func NewAvatarHandler(avatars *service.AvatarService) *AvatarHandler {
	return &AvatarHandler{avatars: avatars}
}

// Serve answers /avatars/:file with the generated placeholder PNG.
func (h *AvatarHandler) Serve(c *gin.Context) {
	data, err := h.avatars.Image(c.Param("file"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=604800, immutable")
	c.Data(http.StatusOK, "image/png", data)
}
