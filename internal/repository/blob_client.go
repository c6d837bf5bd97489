package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"seungpyo.lee/LanternflyGallery/internal/config"
)

// NewBlobClient builds the process-wide blob client. The connection string
// takes precedence over the account URL. An account URL carrying a SAS token
// is used as is; otherwise the default Azure credential chain signs requests.
func NewBlobClient(conf *config.ImgConfig) (*azblob.Client, error) {
	opts := &azblob.ClientOptions{}
	if conf.StorageMaxRetries != 0 {
		opts.Retry = policy.RetryOptions{MaxRetries: conf.StorageMaxRetries}
	}

	if conf.UsesConnectionString() {
		client, err := azblob.NewClientFromConnectionString(conf.AzureStorageConnectionString, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client from connection string: %w", err)
		}
		return client, nil
	}
	if conf.StorageAccountURL == "" {
		return nil, config.ErrMissingCredentials
	}

	if hasSASToken(conf.StorageAccountURL) {
		client, err := azblob.NewClientWithNoCredential(conf.StorageAccountURL, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client for %s: %w", conf.StorageAccountURL, err)
		}
		return client, nil
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create default Azure credential: %w", err)
	}
	client, err := azblob.NewClient(conf.StorageAccountURL, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %s: %w", conf.StorageAccountURL, err)
	}
	return client, nil
}

func hasSASToken(accountURL string) bool {
	u, err := url.Parse(accountURL)
	if err != nil {
		return false
	}
	return u.Query().Get("sig") != ""
}

// EnsureContainer creates the container with public read access. An already
// existing container is not an error; created reports which case happened.
func EnsureContainer(ctx context.Context, client *azblob.Client, containerName string) (created bool, err error) {
	_, err = client.CreateContainer(ctx, containerName, &azblob.CreateContainerOptions{
		Access: to.Ptr(azblob.PublicAccessTypeContainer),
	})
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.ErrorCode == string(bloberror.ContainerAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create container %s: %w", containerName, err)
	}
	return true, nil
}
