package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"seungpyo.lee/LanternflyGallery/pkg/config"
)

const DefaultContainerName = "lanternfly-images"

var ErrMissingCredentials = errors.New("missing Azure Storage credentials: set AZURE_STORAGE_CONNECTION_STRING or STORAGE_ACCOUNT_URL")

// ImgConfig extends GlobalConfig with the blob storage settings of the gallery.
type ImgConfig struct {
	config.GlobalConfig
	AzureStorageConnectionString string
	StorageAccountURL            string
	BlobContainerName            string
	TemplateDir                  string
	StorageMaxRetries            int32
}

func LoadImgConfig() (*ImgConfig, error) {
	// ENV_FILE wins over variables already set; plain .env is for local development
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	maxRetries, err := strconv.ParseInt(config.GetEnvOrDefault("AZURE_STORAGE_MAX_RETRIES", "0"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid AZURE_STORAGE_MAX_RETRIES: %w", err)
	}

	conf := &ImgConfig{
		GlobalConfig:                 *config.LoadGlobalConfig(),
		AzureStorageConnectionString: os.Getenv("AZURE_STORAGE_CONNECTION_STRING"),
		StorageAccountURL:            os.Getenv("STORAGE_ACCOUNT_URL"),
		BlobContainerName:            config.GetEnvOrDefault("IMAGES_CONTAINER", DefaultContainerName),
		TemplateDir:                  config.GetEnvOrDefault("TEMPLATE_DIR", "templates/html"),
		StorageMaxRetries:            int32(maxRetries),
	}
	if conf.AzureStorageConnectionString == "" && conf.StorageAccountURL == "" {
		return nil, ErrMissingCredentials
	}
	return conf, nil
}

// UsesConnectionString reports whether the connection string takes precedence
// over the account URL.
func (c *ImgConfig) UsesConnectionString() bool {
	return c.AzureStorageConnectionString != ""
}
