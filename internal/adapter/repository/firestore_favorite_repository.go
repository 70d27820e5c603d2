package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

// The document id is derived from user and property, so adding the same
// favorite twice overwrites the same document instead of duplicating it.
func favoriteDocID(userID, propertyID string) string {
	return fmt.Sprintf("%s_%s", userID, propertyID)
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, propertyID string) (*entity.Favorite, error) {
	favorite := entity.Favorite{
		ID:         favoriteDocID(userID, propertyID),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}

	_, err := r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, propertyID string) error {
	_, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, propertyID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) IsFavorite(ctx context.Context, userID, propertyID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, propertyID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	iter := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var favorites []*entity.Favorite
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate favorites", err)
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			return nil, errors.Internal("Failed to parse favorite data", err)
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}
