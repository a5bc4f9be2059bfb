package menu

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/llm"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/storage"
	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/store"
)

// Recognizer is one acquired OCR engine. The pipeline acquires a fresh
// one per request and releases it whether or not recognition worked.
type Recognizer interface {
	Recognize(ctx context.Context, imageURL string) (string, error)
	Close() error
}

// RecognizerFactory acquires a Recognizer.
type RecognizerFactory func() (Recognizer, error)

type Service struct {
	repo          Repository
	uploads       storage.Uploader
	llm           llm.Client
	newRecognizer RecognizerFactory
}

func NewService(repo Repository, uploads storage.Uploader, client llm.Client, factory RecognizerFactory) *Service {
	return &Service{
		repo:          repo,
		uploads:       uploads,
		llm:           client,
		newRecognizer: factory,
	}
}

// ProcessResult is what the pipeline hands back to the route.
type ProcessResult struct {
	Menu          *Menu
	ImageURL      string
	RawText       string
	ProcessedText string
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Process runs the ingestion pipeline strictly in sequence: host the
// image, recognize text, clean the text up with the model (best
// effort), persist the menu row. The caller owns the local temp file
// and removes it afterward.
func (s *Service) Process(ctx context.Context, localPath, filename, title string) (*ProcessResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return nil, store.ValidationError("Unsupported image type, use jpg, png or webp")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key := fmt.Sprintf("menus/%s%s", uuid.New().String(), ext)

	imageURL, err := s.uploads.Upload(ctx, key, f, mime.TypeByExtension(ext))
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	engine, err := s.newRecognizer()
	if err != nil {
		return nil, fmt.Errorf("ocr engine unavailable: %w", err)
	}
	defer engine.Close()

	rawText, err := engine.Recognize(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("ocr failed: %w", err)
	}

	processedText := s.enhance(ctx, rawText)

	if title == "" {
		title = "Uploaded Menu"
	}

	m := &Menu{
		Title:            title,
		ImageURL:         imageURL,
		OCRRawText:       &rawText,
		OCRProcessedText: &processedText,
		IsFeatured:       false,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return &ProcessResult{
		Menu:          m,
		ImageURL:      imageURL,
		RawText:       rawText,
		ProcessedText: processedText,
	}, nil
}

// enhance is the single non-fatal step of the pipeline: any model
// failure degrades to the unmodified raw text.
func (s *Service) enhance(ctx context.Context, rawText string) string {
	out, err := s.llm.Complete(ctx, llm.BuildMenuCleanupPrompt(rawText))
	if err != nil || out == "" {
		log.Printf("AI enhancement failed, keeping raw text: %v", err)
		return rawText
	}
	return out
}

func (s *Service) List(ctx context.Context) ([]*Menu, error) {
	return s.repo.List(ctx)
}
