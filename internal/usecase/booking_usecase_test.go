package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateconnect/internal/domain/entity"
	"estateconnect/pkg/errors"
)

type bookingFixture struct {
	bookings   *BookingUseCase
	properties *PropertyUseCase
	userRepo   *fakeUserRepo
	bookRepo   *fakeBookingRepo
	propRepo   *fakePropertyRepo
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	propRepo := newFakePropertyRepo()
	bookRepo := newFakeBookingRepo()
	notificationRepo := newFakeNotificationRepo()

	seedUser(t, userRepo, "owner1", entity.RoleOwner)
	seedUser(t, userRepo, "cust1", entity.RoleCustomer)

	return &bookingFixture{
		bookings:   NewBookingUseCase(bookRepo, propRepo, userRepo),
		properties: NewPropertyUseCase(propRepo, userRepo, notificationRepo, true),
		userRepo:   userRepo,
		bookRepo:   bookRepo,
		propRepo:   propRepo,
	}
}

func (f *bookingFixture) listing(t *testing.T, status string) *entity.Property {
	t.Helper()
	property, err := f.properties.CreateProperty(context.Background(), "owner1", CreatePropertyInput{
		Title: "City Loft",
		Price: 90000,
	})
	require.NoError(t, err)
	if status != entity.PropertyStatusApproved {
		_, err = f.propRepo.Mutate(context.Background(), property.ID, func(p *entity.Property) error {
			p.Status = status
			return nil
		})
		require.NoError(t, err)
	}
	return property
}

func TestCreateBookingOnApprovedProperty(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	booking, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID:    property.ID,
		BookingType:   entity.BookingTypePurchase,
		PaymentMethod: "bank_transfer",
		Amount:        90000,
		ContactInfo:   "+6281234567",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "cust1", booking.CustomerID)
	assert.Equal(t, "owner1", booking.OwnerID)
	assert.Equal(t, property.ID, booking.PropertyID)
}

func TestCreateBookingOnPendingPropertyFails(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusPending)

	_, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// no partial record left behind
	asCustomer, err := f.bookRepo.ListByCustomerID(context.Background(), "cust1")
	require.NoError(t, err)
	assert.Empty(t, asCustomer)
}

func TestCreateBookingRequiresCustomerRole(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	_, err := f.bookings.CreateBooking(context.Background(), "owner1", CreateBookingInput{
		PropertyID: property.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestListBookingsMergesRolesAndDedupes(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	booking, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.NoError(t, err)

	forCustomer, err := f.bookings.ListBookings(context.Background(), "cust1")
	require.NoError(t, err)
	require.Len(t, forCustomer, 1)
	assert.Equal(t, booking.ID, forCustomer[0].ID)
	require.NotNil(t, forCustomer[0].Property)
	assert.Equal(t, "City Loft", forCustomer[0].Property.Title)

	forOwner, err := f.bookings.ListBookings(context.Background(), "owner1")
	require.NoError(t, err)
	require.Len(t, forOwner, 1)
	assert.Equal(t, booking.ID, forOwner[0].ID)
}

func TestListBookingsDeletedPropertyPlaceholder(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	booking, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.NoError(t, err)

	require.NoError(t, f.propRepo.Delete(context.Background(), property.ID))

	result, err := f.bookings.ListBookings(context.Background(), "cust1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, booking.ID, result[0].ID)
	require.NotNil(t, result[0].Property)
	assert.Equal(t, "Property Unavailable", result[0].Property.Title)
}

type failingPropertyRepo struct {
	*fakePropertyRepo
	fail bool
}

func (r *failingPropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	if r.fail {
		return nil, errors.Internal("Failed to get property", nil)
	}
	return r.fakePropertyRepo.GetByID(ctx, id)
}

func TestListBookingsPropagatesStoreFailures(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	_, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.NoError(t, err)

	failing := &failingPropertyRepo{fakePropertyRepo: f.propRepo, fail: true}
	bookings := NewBookingUseCase(f.bookRepo, failing, f.userRepo)

	_, err = bookings.ListBookings(context.Background(), "cust1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"), "a store outage must not read as a deleted property")
}

func TestUpdateBookingStatusOwnerOnly(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	booking, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.NoError(t, err)

	_, err = f.bookings.UpdateBookingStatus(context.Background(), booking.ID, "cust1", entity.BookingStatusConfirmed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	stored, err := f.bookRepo.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)

	confirmed, err := f.bookings.UpdateBookingStatus(context.Background(), booking.ID, "owner1", entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, confirmed.Status)
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	f := newBookingFixture(t)
	property := f.listing(t, entity.PropertyStatusApproved)

	booking, err := f.bookings.CreateBooking(context.Background(), "cust1", CreateBookingInput{
		PropertyID: property.ID,
		Amount:     90000,
	})
	require.NoError(t, err)

	_, err = f.bookings.UpdateBookingStatus(context.Background(), booking.ID, "owner1", "shipped")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// decided bookings are terminal
	_, err = f.bookings.UpdateBookingStatus(context.Background(), booking.ID, "owner1", entity.BookingStatusCancelled)
	require.NoError(t, err)
	_, err = f.bookings.UpdateBookingStatus(context.Background(), booking.ID, "owner1", entity.BookingStatusConfirmed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
