package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryFolder = "table1837-menus"

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader reads CLOUDINARY_URL
// (cloudinary://<api_key>:<api_secret>@<cloud_name>).
func NewCloudinaryUploader() (*CloudinaryUploader, error) {
	if os.Getenv("CLOUDINARY_URL") == "" {
		return nil, errors.New("CLOUDINARY_URL not set")
	}

	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	publicID := strings.TrimSuffix(path.Base(key), path.Ext(key))

	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       cloudinaryFolder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}

	return resp.SecureURL, nil
}
