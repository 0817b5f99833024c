package lens

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guhdnews/lacqr-sub000/internal/quote"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Tech uploads an inspiration photo
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	techID := c.GetString("userID")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	q, err := h.service.Analyze(
		c.Request.Context(),
		techID,
		file,
		c.PostForm("note"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"quote_id": q.ID,
		"status":   q.Status,
		"message":  "Photo uploaded. Analysis will start automatically.",
	})
}

// --------------------------------------------------
// Synchronous price estimate for an edited selection
// --------------------------------------------------
func (h *Handler) Estimate(c *gin.Context) {
	techID := c.GetString("userID")

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid estimate body: " + err.Error()})
		return
	}

	resp, err := h.service.Estimate(c.Request.Context(), techID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) List(c *gin.Context) {
	techID := c.GetString("userID")

	quotes, err := h.service.List(c.Request.Context(), techID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch quotes"})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func (h *Handler) Get(c *gin.Context) {
	techID := c.GetString("userID")

	q, err := h.service.Get(c.Request.Context(), techID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	c.JSON(http.StatusOK, q)
}

// --------------------------------------------------
// Lightweight status poll while analysis runs
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	techID := c.GetString("userID")

	q, err := h.service.Get(c.Request.Context(), techID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if q == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote_id": q.ID,
		"status":   q.Status,
		"degraded": q.Degraded,
	})
}

// --------------------------------------------------
// Tech edits the selection; reprice and save
// --------------------------------------------------
func (h *Handler) Reprice(c *gin.Context) {
	techID := c.GetString("userID")

	var sel quote.ServiceSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection: " + err.Error()})
		return
	}

	q, err := h.service.Reprice(c.Request.Context(), techID, c.Param("id"), sel)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, q)
}
