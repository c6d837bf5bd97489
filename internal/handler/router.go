package handler

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRoutes, img *ImageHandler, page *PageHandler) {
	r.GET("/", page.Index)
	r.POST("/api/v1/upload", img.Upload)
	r.GET("/api/v1/gallery", img.Gallery)
	r.GET("/health", Health)
}
