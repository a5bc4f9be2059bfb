package nlp

import (
	"log"
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
// POST /api/parse-nlp-command
// --------------------------------------------------
func (h *Handler) Parse(c *gin.Context) {
	var req struct {
		Command string `json:"command"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Command == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Command is required"})
		return
	}

	cmd, result, err := h.service.Execute(c.Request.Context(), req.Command)
	if err != nil {
		log.Printf("NLP command processing error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process command",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"original_command": req.Command,
		"parsed_command":   cmd,
		"result":           result,
	})
}
