package handlers

import (
	"folio/internal/utils"
	"folio/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}
