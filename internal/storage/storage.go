// Package storage uploads menu images to an external image host and
// hands back a durable public URL. Two backends exist: Cloudinary
// (default) and Cloudflare R2; STORAGE_BACKEND picks one at startup.
package storage

import (
	"context"
	"io"
)

type Uploader interface {
	// Upload stores the object under key and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}
