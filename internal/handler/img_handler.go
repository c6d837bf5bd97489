package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"seungpyo.lee/LanternflyGallery/internal/domain"
	"seungpyo.lee/LanternflyGallery/internal/model"
	"seungpyo.lee/LanternflyGallery/pkg/logger"
	"seungpyo.lee/LanternflyGallery/pkg/util"
)

const uploadFormField = "file"

// ImageHandler serves the upload and gallery API.
type ImageHandler struct {
	service domain.ImgService
	log     *logger.Logger
}

func NewImageHandler(service domain.ImgService, log *logger.Logger) *ImageHandler {
	return &ImageHandler{service: service, log: log}
}

// Upload handles POST /api/v1/upload (multipart, field "file").
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		// a part with an empty filename is parsed as a plain form value
		if form := c.Request.MultipartForm; form != nil {
			if _, ok := form.Value[uploadFormField]; ok {
				h.writeError(c, domain.ErrEmptyFilename)
				return
			}
		}
		h.writeError(c, domain.ErrMissingFile)
		return
	}
	if fileHeader.Filename == "" {
		h.writeError(c, domain.ErrEmptyFilename)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeError(c, fmt.Errorf("failed to open uploaded file: %w", err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(c, fmt.Errorf("failed to read uploaded file: %w", err))
		return
	}

	img, err := h.service.UploadImage(c.Request.Context(), fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.requestLogger(c).With("key", img.Key).With("size", img.Size).Debug("image uploaded")
	c.JSON(http.StatusOK, model.UploadResponse{OK: true, URL: img.URL})
}

// Gallery handles GET /api/v1/gallery.
func (h *ImageHandler) Gallery(c *gin.Context) {
	urls, err := h.service.ListGallery(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.GalleryResponse{OK: true, Gallery: urls})
}

// Health handles GET /health. It never touches storage.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{OK: true, Status: "healthy"})
}

// writeError answers validation errors with 400 and everything else with 500.
// Storage errors carry the provider message to the client unchanged.
func (h *ImageHandler) writeError(c *gin.Context, err error) {
	if domain.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{OK: false, Error: err.Error()})
		return
	}
	h.requestLogger(c).WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{OK: false, Error: err.Error()})
}

func (h *ImageHandler) requestLogger(c *gin.Context) *logger.Logger {
	if id, ok := util.GetRequestID(c); ok {
		return h.log.With("request_id", id)
	}
	return h.log
}
