package entity

import (
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	BookingTypePurchase = "purchase"
	BookingTypeRent     = "rent"
)

type Booking struct {
	ID         string `json:"id" firestore:"id"`
	PropertyID string `json:"property_id" firestore:"propertyId"`

	CustomerID    string `json:"customer_id" firestore:"customerId"`
	CustomerName  string `json:"customer_name" firestore:"customerName"`
	CustomerEmail string `json:"customer_email" firestore:"customerEmail"`

	// Copied from the property at creation time, not re-derived.
	OwnerID string `json:"owner_id" firestore:"ownerId"`

	BookingType   string  `json:"booking_type" firestore:"bookingType"`
	PaymentMethod string  `json:"payment_method" firestore:"paymentMethod"`
	Amount        float64 `json:"amount" firestore:"amount"`
	ContactInfo   string  `json:"contact_info" firestore:"contactInfo"`

	Status string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// BookingWithProperty augments a booking with the current property
// record for list views. Property carries a placeholder title when the
// listing has been deleted since the booking was made.
type BookingWithProperty struct {
	Booking
	Property *Property `json:"property"`
}
