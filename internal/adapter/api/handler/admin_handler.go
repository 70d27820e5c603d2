package handler

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/usecase"
	"estateconnect/pkg/response"
	"estateconnect/pkg/utils"
)

type AdminHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewAdminHandler(userUseCase *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{
		userUseCase: userUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}
