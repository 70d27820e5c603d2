package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler, propertyHandler *handler.PropertyHandler) {
	e.GET("/health", healthHandler.Check)

	// Raw store diagnostics, public like the listing endpoints.
	e.GET("/v1/debug/properties", propertyHandler.DumpProperties)
}
