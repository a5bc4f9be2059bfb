package cocktail

import (
	"errors"
	"net/http"

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
// GET /api/cocktails
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	cocktails, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch cocktails")
		return
	}
	c.JSON(http.StatusOK, cocktails)
}

// --------------------------------------------------
// POST /api/cocktails
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Ingredients string   `json:"ingredients"`
		Recipe      *string  `json:"recipe"`
		Price       *float64 `json:"price"`
		Type        *string  `json:"type"`
		IsSignature bool     `json:"is_signature"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ck := &Cocktail{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Recipe:      req.Recipe,
		Price:       req.Price,
		Type:        req.Type,
		IsSignature: req.IsSignature,
	}

	if err := h.service.Create(c.Request.Context(), ck); err != nil {
		respondError(c, err, "Failed to create cocktail")
		return
	}

	c.JSON(http.StatusCreated, ck)
}

// --------------------------------------------------
// PUT /api/cocktails
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, _ := body["id"].(string)
	delete(body, "id")

	ck, err := h.service.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "Failed to update cocktail")
		return
	}

	c.JSON(http.StatusOK, ck)
}

// --------------------------------------------------
// DELETE /api/cocktails
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		respondError(c, err, "Failed to delete cocktail")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cocktail deleted successfully"})
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
