package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/metrics"
	"github.com/lookai-app/backend/internal/upload"
)

// UploadController handles HTTP requests for photo uploads.
type UploadController struct {
	store *upload.Store
}

// NewUploadController creates a new UploadController with the given store.
func NewUploadController(store *upload.Store) *UploadController {
	return &UploadController{
		store: store,
	}
}

// UploadPhoto handles the HTTP POST request for storing a single user photo.
// The request must carry exactly one multipart file under the "photo" field;
// the response echoes the public URL for use as a product image_url.
func (uc *UploadController) UploadPhoto(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	files := form.File["photo"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if len(files) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exactly one file is expected"})
		return
	}

	src, err := files[0].Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	imageURL, err := uc.store.Save(src, files[0].Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.PhotoUploads.Inc()

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"image_url": imageURL,
	})
}
