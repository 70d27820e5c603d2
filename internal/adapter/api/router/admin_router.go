package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupAdminRouter(
	e *echo.Echo,
	adminHandler *handler.AdminHandler,
	propertyHandler *handler.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
) {
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/properties/:id/approve", propertyHandler.ApproveProperty)
	admin.PUT("/properties/:id/reject", propertyHandler.RejectProperty)
}
