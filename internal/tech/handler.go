package tech

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
// GET /techs/me
// --------------------------------------------------
func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("userID")

	p, err := h.service.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not set up yet"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// PUT /techs/me
// --------------------------------------------------
func (h *Handler) PutMe(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		BusinessName string `json:"business_name"`
		City         string `json:"city"`
		Instagram    string `json:"instagram"`
		Bio          string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.SaveProfile(
		c.Request.Context(),
		userID,
		req.BusinessName,
		req.City,
		req.Instagram,
		req.Bio,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// ADMIN: GET /admin/techs/pending
// --------------------------------------------------
func (h *Handler) PendingTechs(c *gin.Context) {
	profiles, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch pending techs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pending_techs": profiles})
}

// --------------------------------------------------
// ADMIN: POST /admin/techs/:id/approve
// --------------------------------------------------
func (h *Handler) ApproveTech(c *gin.Context) {
	userID := c.Param("id")

	if err := h.service.Approve(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tech approved",
		"tech_id": userID,
	})
}
