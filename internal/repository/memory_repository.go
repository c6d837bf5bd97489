package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"seungpyo.lee/LanternflyGallery/internal/domain"
)

type memoryBlob struct {
	data        []byte
	contentType string
}

// MemoryImgRepository keeps blobs in a map. It is safe for concurrent use and
// can be told to fail, which makes it a stand-in for Azure in tests.
type MemoryImgRepository struct {
	mu      sync.Mutex
	baseURL string
	blobs   map[string]memoryBlob
	putErr  error
	listErr error
}

func NewMemoryImgRepository(baseURL string) *MemoryImgRepository {
	return &MemoryImgRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		blobs:   make(map[string]memoryBlob),
	}
}

// FailPut makes every later PutImage fail with err; nil restores normal behavior.
func (r *MemoryImgRepository) FailPut(err error) {
	r.mu.Lock()
	r.putErr = err
	r.mu.Unlock()
}

// FailList makes every later ListImageNames fail with err; nil restores normal behavior.
func (r *MemoryImgRepository) FailList(err error) {
	r.mu.Lock()
	r.listErr = err
	r.mu.Unlock()
}

func (r *MemoryImgRepository) PutImage(ctx context.Context, key string, data []byte, contentType string, overwrite bool) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.putErr != nil {
		return "", &domain.StorageError{Op: "put", Err: r.putErr}
	}
	if _, exists := r.blobs[key]; exists && !overwrite {
		return "", &domain.StorageError{Op: "put", Err: fmt.Errorf("BlobAlreadyExists: %s", key)}
	}
	r.blobs[key] = memoryBlob{data: append([]byte(nil), data...), contentType: contentType}
	return r.ImageURL(key), nil
}

func (r *MemoryImgRepository) ListImageNames(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, &domain.StorageError{Op: "list", Err: r.listErr}
	}
	names := make([]string, 0, len(r.blobs))
	for name := range r.blobs {
		names = append(names, name)
	}
	return names, nil
}

// Get returns the stored payload and content type of key.
func (r *MemoryImgRepository) Get(key string) ([]byte, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[key]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), b.data...), b.contentType, true
}

func (r *MemoryImgRepository) ImageURL(key string) string {
	return r.baseURL + "/" + key
}

func (r *MemoryImgRepository) BaseURL() string {
	return r.baseURL
}
