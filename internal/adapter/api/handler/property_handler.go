package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"estateconnect/internal/domain/repository"
	"estateconnect/internal/usecase"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/response"
)

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

type createPropertyRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Type        string   `json:"type" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"omitempty,gte=0"`
	Area        float64  `json:"area" validate:"omitempty,gt=0"`
	Images      []string `json:"images"`
	Duration    string   `json:"duration" validate:"omitempty,oneof=1day 1week 1month 2months 3months"`
}

type updatePropertyRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Type        *string  `json:"type"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Area        *float64 `json:"area" validate:"omitempty,gt=0"`
	Images      []string `json:"images"`
}

type rejectPropertyRequest struct {
	Reason string `json:"reason"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ownerID := c.Get("uid").(string)

	property, err := h.propertyUseCase.CreateProperty(c.Request().Context(), ownerID, usecase.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Images:      req.Images,
		Duration:    req.Duration,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	filter := repository.PropertyFilter{
		Location: c.QueryParam("location"),
		Status:   c.QueryParam("status"),
		Type:     c.QueryParam("type"),
	}

	if minPriceStr := c.QueryParam("minPrice"); minPriceStr != "" {
		minPrice, err := strconv.ParseFloat(minPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid minPrice", err))
		}
		filter.MinPrice = minPrice
	}

	if maxPriceStr := c.QueryParam("maxPrice"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid maxPrice", err))
		}
		filter.MaxPrice = maxPrice
	}

	properties, err := h.propertyUseCase.ListProperties(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) ListMyProperties(c echo.Context) error {
	ownerID := c.Get("uid").(string)

	properties, err := h.propertyUseCase.ListMyProperties(c.Request().Context(), ownerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	property, err := h.propertyUseCase.GetPropertyByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	property, err := h.propertyUseCase.UpdateProperty(c.Request().Context(), c.Param("id"), callerID, usecase.UpdatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Images:      req.Images,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	callerID := c.Get("uid").(string)

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), c.Param("id"), callerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property deleted successfully",
	})
}

func (h *PropertyHandler) MarkSold(c echo.Context) error {
	callerID := c.Get("uid").(string)

	property, err := h.propertyUseCase.MarkSold(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) ApproveProperty(c echo.Context) error {
	adminID := c.Get("uid").(string)

	property, err := h.propertyUseCase.ApproveProperty(c.Request().Context(), c.Param("id"), adminID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) RejectProperty(c echo.Context) error {
	var req rejectPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	adminID := c.Get("uid").(string)

	property, err := h.propertyUseCase.RejectProperty(c.Request().Context(), c.Param("id"), adminID, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, property)
}

func (h *PropertyHandler) DumpProperties(c echo.Context) error {
	diagnostics, err := h.propertyUseCase.DumpProperties(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, diagnostics)
}
