package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stegotool/image-service/internal/entity"
	"github.com/stegotool/image-service/internal/pkg/policy"
)

// ProcessImage handles POST /process_image. Every failure is terminal for
// the request and reported synchronously, nothing is retried.
func (h *ImageHandler) ProcessImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		// Browsers submit an empty part without filename when no file was
		// chosen; the multipart parser files it under form values.
		if _, ok := c.GetPostForm("image"); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file part"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No selected file"})
		return
	}

	if !policy.IsAllowed(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	response, err := h.service.ProcessImage(file)
	if err != nil {
		logrus.Errorf("Error processing image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// DownloadImage handles POST /download_image. The declared format tag is
// trusted as supplied by the caller.
func (h *ImageHandler) DownloadImage(c *gin.Context) {
	var req entity.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image data received"})
		return
	}

	file, err := h.service.PrepareDownload(&req)
	if err != nil {
		if errors.Is(err, entity.ErrNoImageData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image data received"})
			return
		}
		logrus.Errorf("Error downloading image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error downloading image: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
