package repository

import (
	"context"

	"estateconnect/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByRecipient returns the recipient's inbox, most recent first.
	ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error)

	// MarkRead flips the read flag on a notification owned by
	// recipientID. Marking someone else's notification is a not-found.
	MarkRead(ctx context.Context, recipientID, notificationID string) (*entity.Notification, error)
}
