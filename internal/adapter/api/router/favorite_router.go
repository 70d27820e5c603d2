package router

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/adapter/api/handler"
	"estateconnect/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, favoriteHandler *handler.FavoriteHandler, authMiddleware *middleware.AuthMiddleware) {
	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.DELETE("/:propertyId", favoriteHandler.RemoveFavorite)
}
