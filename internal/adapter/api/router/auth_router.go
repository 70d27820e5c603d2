package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	auth := e.Group("/v1/auth")
	auth.POST("/signup", authHandler.Signup, rateLimitMiddleware.Limit("signup"))
	auth.POST("/login", authHandler.Login)
}
