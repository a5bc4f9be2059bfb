package eightysix

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// GET /api/eighty-sixed (staff only)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		var se *store.Error
		if errors.As(err, &se) {
			c.JSON(http.StatusBadRequest, gin.H{"error": se.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch 86 log",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
