package handler

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/usecase"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

type addFavoriteRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	favorite, err := h.favoriteUseCase.AddFavorite(c.Request().Context(), userID, req.PropertyID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	propertyID := c.Param("propertyId")

	if propertyID == "" {
		return response.Error(c, errors.BadRequest("Property ID is required", nil))
	}

	if err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property removed from favorites",
	})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)

	properties, err := h.favoriteUseCase.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}
