package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

// Handlers groups everything the HTTP surface needs. Constructed once
// in main and passed down; no package-level state.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Property     *handler.PropertyHandler
	Booking      *handler.BookingHandler
	Favorite     *handler.FavoriteHandler
	Notification *handler.NotificationHandler
	Admin        *handler.AdminHandler
	File         *handler.FileHandler
	Health       *handler.HealthHandler
}

func Setup(
	e *echo.Echo,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	SetupHealthRouter(e, h.Health, h.Property)
	SetupAuthRouter(e, h.Auth, rateLimitMiddleware)
	SetupUserRouter(e, h.User, authMiddleware)
	SetupPropertyRouter(e, h.Property, authMiddleware, roleMiddleware, rateLimitMiddleware)
	SetupAdminRouter(e, h.Admin, h.Property, authMiddleware, roleMiddleware)
	SetupBookingRouter(e, h.Booking, authMiddleware, roleMiddleware, rateLimitMiddleware)
	SetupFavoriteRouter(e, h.Favorite, authMiddleware)
	SetupNotificationRouter(e, h.Notification, authMiddleware)
	SetupFileRouter(e, h.File, authMiddleware, rateLimitMiddleware)
}
