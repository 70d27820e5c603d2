package entity

import (
	"time"
)

const (
	PropertyStatusPending  = "pending"
	PropertyStatusApproved = "approved"
	PropertyStatusRejected = "rejected"
	PropertyStatusSold     = "sold"
)

type Property struct {
	ID          string   `json:"id" firestore:"id"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Location    string   `json:"location" firestore:"location"`
	Price       float64  `json:"price" firestore:"price"`
	Type        string   `json:"type" firestore:"type"`
	Bedrooms    int      `json:"bedrooms,omitempty" firestore:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty" firestore:"bathrooms,omitempty"`
	Area        float64  `json:"area,omitempty" firestore:"area,omitempty"`
	Images      []string `json:"images" firestore:"images"`
	Status      string   `json:"status" firestore:"status"`

	// Owner fields are stamped from the resolved profile at creation
	// time and never recomputed.
	OwnerID    string `json:"owner_id" firestore:"ownerId"`
	OwnerName  string `json:"owner_name" firestore:"ownerName"`
	OwnerEmail string `json:"owner_email" firestore:"ownerEmail"`

	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
	ExpiryDate time.Time `json:"expiry_date" firestore:"expiryDate"`

	ApprovedAt      *time.Time `json:"approved_at,omitempty" firestore:"approvedAt,omitempty"`
	ApprovedBy      string     `json:"approved_by,omitempty" firestore:"approvedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty" firestore:"rejectedAt,omitempty"`
	RejectedBy      string     `json:"rejected_by,omitempty" firestore:"rejectedBy,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" firestore:"rejectionReason,omitempty"`

	SoldAt *time.Time `json:"sold_at,omitempty" firestore:"soldAt,omitempty"`
}
