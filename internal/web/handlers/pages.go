package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/music-creator/internal/logger"
	"github.com/Conceptual-Machines/music-creator/internal/web/templates"
	"github.com/gin-gonic/gin"
)

type WebHandler struct {
	locale string
}

func NewWebHandler(locale string) *WebHandler {
	return &WebHandler{locale: locale}
}

// Home renders the creator page
func (h *WebHandler) Home(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	component := templates.Home(h.locale)
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		logger.Error("Failed to render home page", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render template"})
	}
}
