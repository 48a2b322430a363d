package http

import (
	"github.com/gin-gonic/gin"
	"github.com/lookai-app/backend/internal/http/controller"
	"github.com/lookai-app/backend/internal/http/middleware"
	"github.com/lookai-app/backend/internal/upload"
)

// InitRouter registers the catalog API routes on the given gin engine.
// Controllers may be nil for routes a caller does not need (tests wire only
// what they exercise).
func InitRouter(server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController, uploadCtr *controller.UploadController, askCtr *controller.AskController, uploadDir string) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestLogger())

	if ctr != nil {
		server.GET("/ping", ctr.Ping)
		server.GET("/health", ctr.Health)
	}

	// Product endpoints
	if productCtr != nil {
		products := server.Group("/products")
		{
			products.POST("", productCtr.CreateProduct)
			products.GET("", productCtr.ListProducts)
		}
	}

	if uploadCtr != nil {
		server.POST("/upload", uploadCtr.UploadPhoto)
		// Stored photos are served under the same prefix the upload
		// handler embeds in image_url.
		server.Static(upload.PublicPrefix, uploadDir)
	}

	if askCtr != nil {
		server.POST("/api/ask", askCtr.Ask)
	}

	return server
}
