package menu

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

// maxImageBytes caps menu photo uploads at 10 MiB.
const maxImageBytes = 10 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/ocr-process
// multipart form: image (required), title (optional)
// --------------------------------------------------
func (h *Handler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file exceeds the 10MB limit"})
		return
	}

	title := c.PostForm("title")

	tmp, err := os.CreateTemp("", "menu-upload-*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process OCR",
			"details": err.Error(),
		})
		return
	}
	tmpPath := tmp.Name()
	// the temp upload goes away no matter how the pipeline ends
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process OCR",
			"details": err.Error(),
		})
		return
	}
	tmp.Close()

	res, err := h.service.Process(c.Request.Context(), tmpPath, header.Filename, title)
	if err != nil {
		respondError(c, err, "Failed to process OCR")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"menu":           res.Menu,
		"cloudinary_url": res.ImageURL,
		"ocr_raw":        res.RawText,
		"ocr_processed":  res.ProcessedText,
	})
}

// --------------------------------------------------
// GET /api/menus
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	menus, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch menus")
		return
	}
	c.JSON(http.StatusOK, menus)
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
