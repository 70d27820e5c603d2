package usecase

import (
	"context"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	propertyRepo repository.PropertyRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// AddFavorite is idempotent: favoriting the same property twice leaves
// a single entry.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, userID, propertyID string) (*entity.Favorite, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, errors.NotFound("Property", err)
	}

	exists, err := uc.favoriteRepo.IsFavorite(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, favorite := range favorites {
			if favorite.PropertyID == propertyID {
				return favorite, nil
			}
		}
	}

	return uc.favoriteRepo.Add(ctx, userID, propertyID)
}

// RemoveFavorite removes unconditionally; removing a property that was
// never favorited is not an error.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, propertyID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, propertyID)
}

// ListFavorites resolves each favorite to its current property record,
// silently dropping references to listings that have been deleted.
func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID string) ([]*entity.Property, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	properties := make([]*entity.Property, 0, len(favorites))
	for _, favorite := range favorites {
		property, err := uc.propertyRepo.GetByID(ctx, favorite.PropertyID)
		if err != nil {
			logger.Debug("Dropping dangling favorite %s for user %s", favorite.PropertyID, userID)
			continue
		}
		properties = append(properties, property)
	}

	return properties, nil
}
