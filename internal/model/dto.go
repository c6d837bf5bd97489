package model

// UploadResponse is returned by POST /api/v1/upload on success
type UploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

// GalleryResponse lists image URLs, newest first
type GalleryResponse struct {
	OK      bool     `json:"ok"`
	Gallery []string `json:"gallery"`
}

type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx/5xx JSON answer
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
