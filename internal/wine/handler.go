package wine

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
// GET /api/wines
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	wines, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch wines")
		return
	}
	c.JSON(http.StatusOK, wines)
}

// --------------------------------------------------
// POST /api/wines
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name"`
		Type        string   `json:"type"`
		Vintage     *int     `json:"vintage"`
		Region      *string  `json:"region"`
		Price       *float64 `json:"price"`
		Description *string  `json:"description"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	w := &Wine{
		Name:        req.Name,
		Type:        req.Type,
		Vintage:     req.Vintage,
		Region:      req.Region,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := h.service.Create(c.Request.Context(), w); err != nil {
		respondError(c, err, "Failed to create wine")
		return
	}

	c.JSON(http.StatusCreated, w)
}

// --------------------------------------------------
// PUT /api/wines
// Body is {id, ...fields}; everything besides id is forwarded to the
// update verbatim.
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, _ := body["id"].(string)
	delete(body, "id")

	w, err := h.service.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "Failed to update wine")
		return
	}

	c.JSON(http.StatusOK, w)
}

// --------------------------------------------------
// DELETE /api/wines
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
		respondError(c, err, "Failed to delete wine")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wine deleted successfully"})
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
