package gitcommit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// --------------------------------------------------
// POST /api/github-commit
// --------------------------------------------------
func (h *Handler) Commit(c *gin.Context) {
	var req struct {
		FilePath      string `json:"filePath"`
		Content       string `json:"content"`
		CommitMessage string `json:"commitMessage"`
		Branch        string `json:"branch"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.FilePath == "" || req.Content == "" || req.CommitMessage == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "filePath, content, and commitMessage are required",
		})
		return
	}

	branch := req.Branch
	if branch == "" {
		branch = "main"
	}

	res, err := h.client.CommitFile(
		c.Request.Context(),
		req.FilePath,
		req.Content,
		req.CommitMessage,
		branch,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to commit to GitHub",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"commit": gin.H{
			"sha":     res.CommitSHA,
			"url":     res.CommitURL,
			"message": req.CommitMessage,
		},
		"file": gin.H{
			"path": req.FilePath,
			"url":  res.FileURL,
		},
	})
}
