package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/internal/selector"
)

type SectionHandler struct{}

func NewSectionHandler() *SectionHandler {
	return &SectionHandler{}
}

// Catalog lists the section types an editor may add, narrowed by
// ?search=, ?context=page|post and ?category=.
func (h *SectionHandler) Catalog(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category != "" {
		if _, ok := sections.CategoryLabel(category); !ok {
			respondError(c, selector.ErrUnknownCategory)
			return
		}
	}

	entries := selector.Filter(selector.Query{
		Search:   c.Query("search"),
		Context:  sections.ParseContext(c.Query("context")),
		Category: category,
	})
	if entries == nil {
		entries = []sections.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"sections":   entries,
		"categories": sections.Categories(),
	})
}

// Entry returns one catalog entry with its default content, for previews.
func (h *SectionHandler) Entry(c *gin.Context) {
	t := sections.Resolve(c.Param("type"))
	entry, ok := sections.Lookup(t)
	if !ok || t == sections.Unknown {
		c.JSON(http.StatusNotFound, gin.H{"error": "section type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": entry})
}
