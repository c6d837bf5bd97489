package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/LanternflyGallery/internal/config"
	"seungpyo.lee/LanternflyGallery/internal/handler"
	"seungpyo.lee/LanternflyGallery/internal/repository"
	"seungpyo.lee/LanternflyGallery/internal/service"
	"seungpyo.lee/LanternflyGallery/pkg/logger"
	"seungpyo.lee/LanternflyGallery/pkg/middleware"
)

const containerSetupTimeout = 30 * time.Second

func main() {
	conf, err := config.LoadImgConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logger.New(conf.LogLevel)

	client, err := repository.NewBlobClient(conf)
	if err != nil {
		logger.WithError(err).Fatal("failed to create blob client")
	}

	// create container if not exists; failures are logged and serving goes on
	ctx, cancel := context.WithTimeout(context.Background(), containerSetupTimeout)
	created, err := repository.EnsureContainer(ctx, client, conf.BlobContainerName)
	cancel()
	switch {
	case err != nil:
		logger.WithError(err).With("container", conf.BlobContainerName).Warn("container setup failed, assuming it exists")
	case created:
		logger.With("container", conf.BlobContainerName).Info("container created with public read access")
	default:
		logger.With("container", conf.BlobContainerName).Info("Container already exists, skipping creation.")
	}

	imageRepo := repository.NewImgRepository(client, *conf)
	imageService := service.NewImgService(imageRepo)
	imageHandler := handler.NewImageHandler(imageService, logger)
	pageHandler := handler.NewPageHandler("Lanternfly Gallery")

	gin.SetMode(conf.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.LoadHTMLGlob(filepath.Join(conf.TemplateDir, "*.html"))
	handler.RegisterRoutes(r, imageHandler, pageHandler)

	logger.Info("start gallery server at port " + conf.ServerPort)
	if err := r.Run("0.0.0.0:" + conf.ServerPort); err != nil {
		logger.WithError(err).Fatal("failed to run server")
	}
}
