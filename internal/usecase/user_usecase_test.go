package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateconnect/internal/domain/entity"
	"estateconnect/pkg/errors"
)

func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo)
	seedUser(t, userRepo, "cust1", entity.RoleCustomer)

	updated, err := uc.UpdateProfile(context.Background(), "cust1", UpdateProfileInput{
		Phone: "+628123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, "+628123456789", updated.Phone)
	assert.Equal(t, "User cust1", updated.Name, "empty fields keep their stored value")
	assert.Equal(t, entity.RoleCustomer, updated.Role)

	stored, err := uc.GetProfile(context.Background(), "cust1")
	require.NoError(t, err)
	assert.Equal(t, "+628123456789", stored.Phone)
}

func TestGetProfileUnknownUser(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())

	_, err := uc.GetProfile(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListUsersPagination(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo)
	for _, id := range []string{"u1", "u2", "u3"} {
		seedUser(t, userRepo, id, entity.RoleCustomer)
	}

	page, total, err := uc.ListUsers(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)

	rest, _, err := uc.ListUsers(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
