package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"seungpyo.lee/LanternflyGallery/internal/config"
	"seungpyo.lee/LanternflyGallery/internal/domain"
)

// ImgRepository stores gallery images as blobs of one Azure container.
type ImgRepository struct {
	BlobClient    *azblob.Client
	containerName string
}

func NewImgRepository(blobClient *azblob.Client, config config.ImgConfig) *ImgRepository {
	return &ImgRepository{BlobClient: blobClient, containerName: config.BlobContainerName}
}

func (r *ImgRepository) PutImage(ctx context.Context, key string, data []byte, contentType string, overwrite bool) (string, error) {
	if r.BlobClient == nil {
		return "", &domain.StorageError{Op: "put", Err: fmt.Errorf("Azure blob client is nil")}
	}
	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)}
	}
	if !overwrite {
		opts.AccessConditions = &blob.AccessConditions{
			ModifiedAccessConditions: &blob.ModifiedAccessConditions{IfNoneMatch: to.Ptr(azcore.ETagAny)},
		}
	}
	if _, err := r.BlobClient.UploadBuffer(ctx, r.containerName, key, data, opts); err != nil {
		return "", &domain.StorageError{Op: "put", Err: err}
	}
	return r.ImageURL(key), nil
}

func (r *ImgRepository) ListImageNames(ctx context.Context) ([]string, error) {
	if r.BlobClient == nil {
		return nil, &domain.StorageError{Op: "list", Err: fmt.Errorf("Azure blob client is nil")}
	}
	names := []string{}
	pager := r.BlobClient.NewListBlobsFlatPager(r.containerName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, &domain.StorageError{Op: "list", Err: err}
		}
		if page.Segment == nil {
			continue
		}
		for _, item := range page.Segment.BlobItems {
			if item != nil && item.Name != nil {
				names = append(names, *item.Name)
			}
		}
	}
	return names, nil
}

// ImageURL is the public URL of key. SAS query parameters of the client are
// dropped: the container is public-read.
func (r *ImgRepository) ImageURL(key string) string {
	blobClient := r.BlobClient.ServiceClient().NewContainerClient(r.containerName).NewBlobClient(key)
	return stripQuery(blobClient.URL())
}

func (r *ImgRepository) BaseURL() string {
	return stripQuery(r.BlobClient.ServiceClient().NewContainerClient(r.containerName).URL())
}

func stripQuery(u string) string {
	if idx := strings.Index(u, "?"); idx != -1 {
		return u[:idx]
	}
	return u
}
