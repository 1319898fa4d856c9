package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/constants"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/internal/service"
	"sitebuilder-backend/pkg/logger"
	"sitebuilder-backend/pkg/utils"
)

//go:embed templates/*.html
var templateFiles embed.FS

// ViewHandler serves the public HTML views.
type ViewHandler struct {
	views     service.ViewUseCase
	templates *template.Template
}

func NewViewHandler(views service.ViewUseCase) (*ViewHandler, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open templates: %w", err)
	}
	templates, err := utils.LoadTemplates(sub)
	if err != nil {
		return nil, err
	}
	return &ViewHandler{views: views, templates: templates}, nil
}

func (h *ViewHandler) Home(c *gin.Context) {
	h.render(c, service.ViewHome, constants.SlugHome, sections.PostFilter{})
}

// Blog renders the blog page. ?category= and ?tag= narrow the post listing.
func (h *ViewHandler) Blog(c *gin.Context) {
	filter := sections.PostFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Tag:      strings.TrimSpace(c.Query("tag")),
	}
	h.render(c, service.ViewBlog, constants.SlugBlog, filter)
}

func (h *ViewHandler) Post(c *gin.Context) {
	h.render(c, service.ViewPost, c.Param("slug"), sections.PostFilter{})
}

func (h *ViewHandler) Page(c *gin.Context) {
	h.render(c, service.ViewPage, c.Param("slug"), sections.PostFilter{})
}

func (h *ViewHandler) render(c *gin.Context, view service.View, slug string, filter sections.PostFilter) {
	rendered := h.views.Compose(c.Request.Context(), view, slug, filter)

	status := http.StatusOK
	if rendered.NotFound {
		status = http.StatusNotFound
	}
	if rendered.Fallback {
		c.Header("X-Robots-Tag", "noindex")
	}

	data := gin.H{
		"View":       rendered,
		"ActivePath": utils.NormalizePath(c.Request.URL.Path),
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "base.html", data); err != nil {
		logger.Error(err, "Failed to render layout", map[string]interface{}{"view": string(view), "slug": slug})
		c.String(http.StatusInternalServerError, "500 - Server Error")
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
