package handler

import (
	"github.com/labstack/echo/v4"

	"estateconnect/internal/usecase"
	"estateconnect/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	PropertyID    string  `json:"property_id" validate:"required"`
	BookingType   string  `json:"booking_type" validate:"required,oneof=purchase rent"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	ContactInfo   string  `json:"contact_info" validate:"required"`
}

type updateBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), customerID, usecase.CreateBookingInput{
		PropertyID:    req.PropertyID,
		BookingType:   req.BookingType,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		ContactInfo:   req.ContactInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID := c.Get("uid").(string)

	bookings, err := h.bookingUseCase.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	callerID := c.Get("uid").(string)

	booking, err := h.bookingUseCase.UpdateBookingStatus(c.Request().Context(), c.Param("id"), callerID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}
