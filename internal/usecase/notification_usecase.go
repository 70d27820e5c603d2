package usecase

import (
	"context"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) ListNotifications(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByRecipient(ctx, userID)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) (*entity.Notification, error) {
	return uc.notificationRepo.MarkRead(ctx, userID, notificationID)
}
