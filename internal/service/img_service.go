package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"seungpyo.lee/LanternflyGallery/internal/domain"
)

// KeyTimeLayout is the UTC timestamp prefix of every blob name.
const KeyTimeLayout = "20060102T150405"

type imgService struct {
	repo domain.ImgRepository
	now  func() time.Time
}

func NewImgService(repo domain.ImgRepository) domain.ImgService {
	return &imgService{repo: repo, now: time.Now}
}

// NewImgServiceWithClock is NewImgService with a fixed time source.
func NewImgServiceWithClock(repo domain.ImgRepository, now func() time.Time) domain.ImgService {
	return &imgService{repo: repo, now: now}
}

// UploadImage validates filename, derives the blob name and stores data,
// overwriting any blob already stored under that name.
func (s *imgService) UploadImage(ctx context.Context, filename string, data []byte, mimeType string) (*domain.Image, error) {
	if filename == "" {
		return nil, domain.ErrEmptyFilename
	}
	safeName := SanitizeFilename(filename)
	if safeName == "" {
		return nil, domain.ErrInvalidFilename
	}
	if !IsAllowedImage(safeName) {
		return nil, domain.ErrUnsupportedType
	}

	key := BlobKey(s.now(), safeName)
	url, err := s.repo.PutImage(ctx, key, data, mimeType, true)
	if err != nil {
		return nil, err
	}
	return &domain.Image{
		Key:      key,
		URL:      url,
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

// ListGallery returns the URL of every stored image, sorted in descending
// lexicographic order. Since blob names start with their upload time this is
// newest first, with same-second uploads ordered by name.
func (s *imgService) ListGallery(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListImageNames(ctx)
	if err != nil {
		return nil, err
	}
	base := s.repo.BaseURL()
	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, fmt.Sprintf("%s/%s", base, name))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(urls)))
	return urls, nil
}

// BlobKey is "<UTC time as 20060102T150405>-<safeName>".
func BlobKey(t time.Time, safeName string) string {
	return t.UTC().Format(KeyTimeLayout) + "-" + safeName
}
