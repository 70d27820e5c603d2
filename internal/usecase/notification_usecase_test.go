package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateconnect/internal/domain/entity"
	"estateconnect/pkg/errors"
)

func TestNotificationsScopedToRecipient(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	require.NoError(t, repo.Create(context.Background(), &entity.Notification{
		ID:          "n1",
		RecipientID: "owner1",
		Type:        entity.NotificationPropertyApproved,
		Message:     "approved",
		CreatedAt:   time.Now().Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(context.Background(), &entity.Notification{
		ID:          "n2",
		RecipientID: "owner1",
		Type:        entity.NotificationPropertyRejected,
		Message:     "rejected",
		CreatedAt:   time.Now(),
	}))
	require.NoError(t, repo.Create(context.Background(), &entity.Notification{
		ID:          "n3",
		RecipientID: "owner2",
		Type:        entity.NotificationPropertyListed,
		Message:     "listed",
		CreatedAt:   time.Now(),
	}))

	inbox, err := uc.ListNotifications(context.Background(), "owner1")
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "n2", inbox[0].ID, "most recent first")
	assert.Equal(t, "n1", inbox[1].ID)
}

func TestMarkReadIsRecipientScoped(t *testing.T) {
	repo := newFakeNotificationRepo()
	uc := NewNotificationUseCase(repo)

	require.NoError(t, repo.Create(context.Background(), &entity.Notification{
		ID:          "n1",
		RecipientID: "owner1",
		Message:     "approved",
		CreatedAt:   time.Now(),
	}))

	// someone else's notification is indistinguishable from a missing one
	_, err := uc.MarkRead(context.Background(), "owner2", "n1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	marked, err := uc.MarkRead(context.Background(), "owner1", "n1")
	require.NoError(t, err)
	assert.True(t, marked.Read)

	inbox, err := uc.ListNotifications(context.Background(), "owner1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].Read)
}
