package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupBookingRouter(
	e *echo.Echo,
	bookingHandler *handler.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) {
	bookings := e.Group("/v1/bookings")
	bookings.Use(authMiddleware.Authenticate)

	bookings.POST("", bookingHandler.CreateBooking, roleMiddleware.CustomerOnly, rateLimitMiddleware.Limit("create_booking"))
	bookings.GET("", bookingHandler.ListBookings)
	bookings.PUT("/:id", bookingHandler.UpdateBookingStatus)
}
