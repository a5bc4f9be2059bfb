package special

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/specials
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	specials, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch specials")
		return
	}
	c.JSON(http.StatusOK, specials)
}

// --------------------------------------------------
// POST /api/specials
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string     `json:"name"`
		Description *string    `json:"description"`
		Price       *float64   `json:"price"`
		Type        *string    `json:"type"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sp := &Special{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := h.service.Create(c.Request.Context(), sp); err != nil {
		respondError(c, err, "Failed to create special")
		return
	}

	c.JSON(http.StatusCreated, sp)
}

// --------------------------------------------------
// PUT /api/specials
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, _ := body["id"].(string)
	delete(body, "id")

	sp, err := h.service.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "Failed to update special")
		return
	}

	c.JSON(http.StatusOK, sp)
}

// --------------------------------------------------
// DELETE /api/specials (soft delete)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		respondError(c, err, "Failed to delete special")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Special removed successfully"})
}

func respondError(c *gin.Context, err error, fallback string) {
	var ve store.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	var se *store.Error
	if errors.As(err, &se) {
		c.JSON(http.StatusBadRequest, gin.H{"error": se.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   fallback,
		"details": err.Error(),
	})
}
