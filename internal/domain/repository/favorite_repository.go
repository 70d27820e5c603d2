package repository

import (
	"context"

	"estateconnect/internal/domain/entity"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, propertyID string) (*entity.Favorite, error)
	Remove(ctx context.Context, userID, propertyID string) error
	IsFavorite(ctx context.Context, userID, propertyID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
