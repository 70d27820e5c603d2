package entity

import (
	"time"
)

const (
	NotificationPropertyListed   = "property_listed"
	NotificationPropertyApproved = "property_approved"
	NotificationPropertyRejected = "property_rejected"
)

// Notification is a denormalized inbox entry: it carries enough context
// (property title, owner name) to render without a join.
type Notification struct {
	ID          string `json:"id" firestore:"id"`
	RecipientID string `json:"recipient_id" firestore:"recipientId"`
	Type        string `json:"type" firestore:"type"`

	PropertyID    string `json:"property_id,omitempty" firestore:"propertyId,omitempty"`
	PropertyTitle string `json:"property_title,omitempty" firestore:"propertyTitle,omitempty"`
	OwnerName     string `json:"owner_name,omitempty" firestore:"ownerName,omitempty"`

	Message string `json:"message" firestore:"message"`
	Read    bool   `json:"read" firestore:"read"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
