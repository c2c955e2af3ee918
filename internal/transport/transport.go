package transport

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/stegotool/image-service/internal/pkg/policy"
	"github.com/stegotool/image-service/internal/transport/middleware"
)

func InitRoutes(imgHandler *ImageHandler, templatesDir string) *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.BodyLimit(policy.MaxUploadBytes))

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.MaxMultipartMemory = policy.MaxUploadBytes

	router.POST("/process_image", imgHandler.ProcessImage)
	router.POST("/download_image", imgHandler.DownloadImage)

	if templatesDir != "" {
		router.LoadHTMLGlob(filepath.Join(templatesDir, "*.html"))
		router.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", nil)
		})
		// Unroutable paths fall back to the index page.
		router.NoRoute(func(c *gin.Context) {
			c.HTML(http.StatusNotFound, "index.html", nil)
		})
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "steganography-image-service",
		})
	})
	return router
}
