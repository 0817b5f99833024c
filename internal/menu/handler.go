package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Tech reads their menu (defaults until saved)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	techID := c.GetString("userID")

	m, err := h.service.Get(c.Request.Context(), techID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// Tech replaces their menu
// --------------------------------------------------
func (h *Handler) Put(c *gin.Context) {
	techID := c.GetString("userID")

	var m PriceMenu
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu body: " + err.Error()})
		return
	}

	if err := h.service.Put(c.Request.Context(), techID, &m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu saved",
	})
}
