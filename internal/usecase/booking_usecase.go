package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
)

type BookingUseCase struct {
	bookingRepo  repository.BookingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

type CreateBookingInput struct {
	PropertyID    string
	BookingType   string
	PaymentMethod string
	Amount        float64
	ContactInfo   string
}

// CreateBooking records a customer's purchase or rent request against
// an approved listing. The amount is a payment intent, not an executed
// payment. Multiple pending bookings may coexist for one property.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, customerID string, input CreateBookingInput) (*entity.Booking, error) {
	customer, err := uc.userRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, errors.Forbidden("Only customers can make bookings", err)
	}
	if customer.Role != entity.RoleCustomer {
		return nil, errors.Forbidden("Only customers can make bookings", nil)
	}

	property, err := uc.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if property.Status != entity.PropertyStatusApproved {
		return nil, errors.BadRequest("Property is not available for booking", nil)
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:            uuid.New().String(),
		PropertyID:    property.ID,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		OwnerID:       property.OwnerID,
		BookingType:   input.BookingType,
		PaymentMethod: input.PaymentMethod,
		Amount:        input.Amount,
		ContactInfo:   input.ContactInfo,
		Status:        entity.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListBookings returns every booking where the caller is the customer
// or the property owner, newest first, each augmented with the current
// property record. A deleted property becomes a placeholder rather
// than dropping the booking.
func (uc *BookingUseCase) ListBookings(ctx context.Context, userID string) ([]*entity.BookingWithProperty, error) {
	asCustomer, err := uc.bookingRepo.ListByCustomerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	asOwner, err := uc.bookingRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(asCustomer)+len(asOwner))
	merged := make([]*entity.Booking, 0, len(asCustomer)+len(asOwner))
	for _, booking := range append(asCustomer, asOwner...) {
		if seen[booking.ID] {
			continue
		}
		seen[booking.ID] = true
		merged = append(merged, booking)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	result := make([]*entity.BookingWithProperty, 0, len(merged))
	for _, booking := range merged {
		property, err := uc.propertyRepo.GetByID(ctx, booking.PropertyID)
		if err != nil {
			// Only a deleted listing gets the placeholder; a store
			// failure must not masquerade as a missing property.
			if !errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			property = &entity.Property{
				ID:    booking.PropertyID,
				Title: "Property Unavailable",
			}
		}
		result = append(result, &entity.BookingWithProperty{
			Booking:  *booking,
			Property: property,
		})
	}

	return result, nil
}

// UpdateBookingStatus transitions pending → confirmed or cancelled.
// Only the property's owner may decide, and decided bookings are
// terminal.
func (uc *BookingUseCase) UpdateBookingStatus(ctx context.Context, bookingID, callerID, newStatus string) (*entity.Booking, error) {
	if newStatus != entity.BookingStatusConfirmed && newStatus != entity.BookingStatusCancelled {
		return nil, errors.BadRequest("Status must be confirmed or cancelled", nil)
	}

	return uc.bookingRepo.Mutate(ctx, bookingID, func(booking *entity.Booking) error {
		if booking.OwnerID != callerID {
			return errors.Forbidden("Not authorized to update this booking", nil)
		}
		if booking.Status != entity.BookingStatusPending {
			return errors.BadRequest("Only pending bookings can be updated", nil)
		}

		booking.Status = newStatus
		return nil
	})
}
