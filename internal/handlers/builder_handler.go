package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitebuilder-backend/internal/middleware"
	"sitebuilder-backend/internal/models"
	"sitebuilder-backend/internal/sections"
	"sitebuilder-backend/internal/service"
)

// BuilderHandler exposes the editor's working copy of a page. Every route is
// scoped to the authenticated editor and the :slug path parameter.
type BuilderHandler struct {
	drafts service.DraftUseCase
}

func NewBuilderHandler(drafts service.DraftUseCase) *BuilderHandler {
	return &BuilderHandler{drafts: drafts}
}

func draftResponse(draft *service.Draft) gin.H {
	return gin.H{
		"draft":     draft,
		"available": draft.Available(),
	}
}

func (h *BuilderHandler) respond(c *gin.Context, draft *service.Draft, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

func (h *BuilderHandler) Open(c *gin.Context) {
	draft, err := h.drafts.Open(c.Request.Context(), middleware.EditorID(c), c.Param("slug"))
	h.respond(c, draft, err)
}

func (h *BuilderHandler) UpdateMeta(c *gin.Context) {
	var req models.UpdateDraftMetaRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.UpdateMeta(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), req)
	h.respond(c, draft, err)
}

func (h *BuilderHandler) SetSelectorQuery(c *gin.Context) {
	var req models.SelectorQueryRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.SetSelectorQuery(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), req.Search, req.Category)
	h.respond(c, draft, err)
}

func (h *BuilderHandler) ToggleType(c *gin.Context) {
	var req models.ToggleSectionTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.ToggleType(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), sections.Resolve(req.Type))
	h.respond(c, draft, err)
}

func (h *BuilderHandler) ConfirmSelection(c *gin.Context) {
	draft, added, err := h.drafts.ConfirmSelection(c.Request.Context(), middleware.EditorID(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	response := draftResponse(draft)
	response["added"] = added
	c.JSON(http.StatusOK, response)
}

func (h *BuilderHandler) RemoveSection(c *gin.Context) {
	draft, err := h.drafts.RemoveSection(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), c.Param("sectionId"))
	h.respond(c, draft, err)
}

func (h *BuilderHandler) MoveSection(c *gin.Context) {
	var req models.MoveSectionRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.MoveSection(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), c.Param("sectionId"), *req.Position)
	h.respond(c, draft, err)
}

func (h *BuilderHandler) DuplicateSection(c *gin.Context) {
	draft, err := h.drafts.DuplicateSection(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), c.Param("sectionId"))
	h.respond(c, draft, err)
}

func (h *BuilderHandler) SetSectionVisibility(c *gin.Context) {
	var req models.SectionVisibilityRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.SetSectionVisibility(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), c.Param("sectionId"), *req.Visible)
	h.respond(c, draft, err)
}

func (h *BuilderHandler) UpdateSectionContent(c *gin.Context) {
	var req models.SectionContentRequest
	if !bindJSON(c, &req) {
		return
	}
	draft, err := h.drafts.UpdateSectionContent(c.Request.Context(), middleware.EditorID(c), c.Param("slug"), c.Param("sectionId"), req.Content)
	h.respond(c, draft, err)
}

// Save writes the draft over the stored page. A version conflict answers 409
// and echoes the kept draft so the client can decide between retry and discard.
func (h *BuilderHandler) Save(c *gin.Context) {
	draft, err := h.drafts.Save(c.Request.Context(), middleware.EditorID(c), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrVersionConflict) && draft != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "draft": draft})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "page": draft.Page})
}

func (h *BuilderHandler) Discard(c *gin.Context) {
	if err := h.drafts.Discard(c.Request.Context(), middleware.EditorID(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft discarded"})
}
