package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		doc := r.client.Collection("bookings").NewDoc()
		booking.ID = doc.ID
	}

	now := time.Now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	_, err := r.client.Collection("bookings").Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection("bookings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Booking", err)
		}
		return nil, errors.Internal("Failed to get booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}

	return &booking, nil
}

func (r *firestoreBookingRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.Booking, error) {
	return r.listByField(ctx, "customerId", customerID)
}

func (r *firestoreBookingRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Booking, error) {
	return r.listByField(ctx, "ownerId", ownerID)
}

func (r *firestoreBookingRepository) listByField(ctx context.Context, field, value string) ([]*entity.Booking, error) {
	iter := r.client.Collection("bookings").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var bookings []*entity.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *firestoreBookingRepository) Mutate(ctx context.Context, id string, fn func(*entity.Booking) error) (*entity.Booking, error) {
	ref := r.client.Collection("bookings").Doc(id)

	var updated *entity.Booking
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Booking", err)
			}
			return errors.Internal("Failed to get booking", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return errors.Internal("Failed to parse booking data", err)
		}

		if err := fn(&booking); err != nil {
			return err
		}

		booking.UpdatedAt = time.Now()
		updated = &booking
		return tx.Set(ref, &booking)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
