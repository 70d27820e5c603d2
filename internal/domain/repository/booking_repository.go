package repository

import (
	"context"

	"estateconnect/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Booking, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Booking, error)

	// Mutate applies fn to the stored booking inside a transaction.
	Mutate(ctx context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error)
}
