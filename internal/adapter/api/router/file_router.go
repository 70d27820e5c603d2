package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)

	files.POST("/upload", fileHandler.UploadImage, rateLimitMiddleware.Limit("upload_image"))
	files.GET("", fileHandler.ListMyFiles)
	files.DELETE("/:id", fileHandler.DeleteFile)
}
