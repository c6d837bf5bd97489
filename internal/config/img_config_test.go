package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV_FILE",
		"AZURE_STORAGE_CONNECTION_STRING",
		"STORAGE_ACCOUNT_URL",
		"IMAGES_CONTAINER",
		"TEMPLATE_DIR",
		"AZURE_STORAGE_MAX_RETRIES",
		"PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadImgConfigMissingCredentials(t *testing.T) {
	clearEnv(t)

	conf, err := LoadImgConfig()
	assert.Nil(t, conf)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoadImgConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_ACCOUNT_URL", "https://acct.blob.core.windows.net")

	conf, err := LoadImgConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultContainerName, conf.BlobContainerName)
	assert.Equal(t, "templates/html", conf.TemplateDir)
	assert.Equal(t, "5000", conf.ServerPort)
	assert.Equal(t, int32(0), conf.StorageMaxRetries)
	assert.False(t, conf.UsesConnectionString())
}

func TestLoadImgConfigConnectionStringTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("AZURE_STORAGE_CONNECTION_STRING", "AccountName=acct;AccountKey=a2V5")
	t.Setenv("STORAGE_ACCOUNT_URL", "https://acct.blob.core.windows.net")
	t.Setenv("IMAGES_CONTAINER", "photos")

	conf, err := LoadImgConfig()
	require.NoError(t, err)
	assert.True(t, conf.UsesConnectionString())
	assert.Equal(t, "photos", conf.BlobContainerName)
}

func TestLoadImgConfigInvalidRetries(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_ACCOUNT_URL", "https://acct.blob.core.windows.net")
	t.Setenv("AZURE_STORAGE_MAX_RETRIES", "many")

	_, err := LoadImgConfig()
	assert.Error(t, err)
}

func TestLoadImgConfigEnvFileOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("IMAGES_CONTAINER", "from-process")

	path := filepath.Join(t.TempDir(), "gallery.env")
	content := "STORAGE_ACCOUNT_URL=https://file.blob.core.windows.net\nIMAGES_CONTAINER=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ENV_FILE", path)

	conf, err := LoadImgConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://file.blob.core.windows.net", conf.StorageAccountURL)
	assert.Equal(t, "from-file", conf.BlobContainerName)
}

func TestLoadImgConfigEnvFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	_, err := LoadImgConfig()
	assert.Error(t, err)
}
