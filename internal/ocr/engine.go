// Package ocr wraps the tesseract binary. An Engine owns a scratch
// directory for one request: acquire with NewEngine, release with
// Close. Callers must defer Close so the scratch space cannot leak on
// failure paths.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

type Engine struct {
	workDir    string
	httpClient *http.Client
}

func NewEngine() (*Engine, error) {
	dir, err := os.MkdirTemp("", "ocr-*")
	if err != nil {
		return nil, err
	}
	return &Engine{
		workDir: dir,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Recognize downloads the hosted image and runs tesseract over it,
// returning the raw recognized text.
func (e *Engine) Recognize(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", errors.New("empty image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image fetch failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// tesseract reads images only; PDFs need a different path
	if bytes.HasPrefix(body, []byte("%PDF")) {
		return "", errors.New("PDF files are not supported")
	}

	inputPath := filepath.Join(e.workDir, "input.img")
	if err := os.WriteFile(inputPath, body, 0o600); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "tesseract", inputPath, "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract failed: %w", err)
	}

	return string(out), nil
}

// Close releases the engine's scratch directory. Safe to call exactly
// once per engine, including after Recognize failures.
func (e *Engine) Close() error {
	return os.RemoveAll(e.workDir)
}
