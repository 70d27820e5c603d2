package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupPropertyRouter(
	e *echo.Echo,
	propertyHandler *handler.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	// Browsing the marketplace is public.
	properties := e.Group("/v1/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)

	authed := e.Group("/v1/properties")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", propertyHandler.CreateProperty, roleMiddleware.OwnerOnly, rateLimitMiddleware.Limit("create_listing"))
	authed.PUT("/:id", propertyHandler.UpdateProperty)
	authed.DELETE("/:id", propertyHandler.DeleteProperty)
	authed.POST("/:id/sold", propertyHandler.MarkSold)

	myProperties := e.Group("/v1/my-properties")
	myProperties.Use(authMiddleware.Authenticate)
	myProperties.GET("", propertyHandler.ListMyProperties, roleMiddleware.OwnerOnly)
}
