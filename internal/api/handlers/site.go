package handlers

import (
	"folio/internal/site"
	"folio/internal/utils"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the static portfolio content the page renders.
type SiteHandler struct{}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

// Content returns everything at once for the single-page render.
func (h *SiteHandler) Content(c *gin.Context) {
	utils.HandleSuccess(c, site.Get())
}

func (h *SiteHandler) Projects(c *gin.Context) {
	utils.HandleSuccess(c, site.Get().Projects)
}

func (h *SiteHandler) Skills(c *gin.Context) {
	utils.HandleSuccess(c, site.Get().Skills)
}

func (h *SiteHandler) Experience(c *gin.Context) {
	utils.HandleSuccess(c, site.Get().Experience)
}
