package domain

import (
	"context"
)

// gallery blob name -> {YYYYMMDDTHHMMSS}-{sanitized filename}
type Image struct {
	Key      string
	URL      string
	Size     int64
	MimeType string
}

//go:generate mockgen -source=img.go -destination=mock/img.go -package=mock

// ImgRepository is the blob store the gallery writes to and lists from.
type ImgRepository interface {
	// PutImage stores data under key and returns the public URL of the blob.
	PutImage(ctx context.Context, key string, data []byte, contentType string, overwrite bool) (string, error)
	// ListImageNames returns every blob name in the container, in no particular order.
	ListImageNames(ctx context.Context) ([]string, error)
	ImageURL(key string) string
	BaseURL() string
}

type ImgService interface {
	UploadImage(ctx context.Context, filename string, data []byte, mimeType string) (*Image, error)
	ListGallery(ctx context.Context) ([]string, error)
}
