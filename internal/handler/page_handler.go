package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	title string
}

func NewPageHandler(title string) *PageHandler {
	return &PageHandler{title: title}
}

// Index renders index.html; the page itself talks to the JSON API.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":      h.title,
		"uploadURL":  "/api/v1/upload",
		"galleryURL": "/api/v1/gallery",
	})
}
