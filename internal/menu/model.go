package menu

import "time"

// Menu is one digitized menu photo. Rows are created by the OCR
// pipeline and never updated afterward.
type Menu struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ImageURL         string    `json:"image_url"`
	OCRRawText       *string   `json:"ocr_raw_text,omitempty"`
	OCRProcessedText *string   `json:"ocr_processed_text,omitempty"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
