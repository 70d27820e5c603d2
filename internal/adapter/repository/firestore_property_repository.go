package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/logger"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		doc := r.client.Collection("properties").NewDoc()
		property.ID = doc.ID
	}

	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}

	return &property, nil
}

// List applies exact-match filters in the store query and the rest in
// memory: Firestore has no substring match for location, and a price
// range combined with the createdAt ordering would need a composite
// index per filter combination.
func (r *firestorePropertyRepository) List(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	query := r.client.Collection("properties").Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type", "==", filter.Type)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to list properties", err)
	}

	properties := make([]*entity.Property, 0, len(docs))
	for _, doc := range docs {
		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			logger.Warn("Skipping unparseable property %s: %v", doc.Ref.ID, err)
			continue
		}
		// Partial writes without id or title are treated as corrupt.
		if property.ID == "" || property.Title == "" {
			logger.Warn("Skipping property %s missing id or title", doc.Ref.ID)
			continue
		}
		if filter.Location != "" && !strings.Contains(strings.ToLower(property.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.MinPrice > 0 && property.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && property.Price > filter.MaxPrice {
			continue
		}
		properties = append(properties, &property)
	}

	// Newest first; a missing createdAt sorts as oldest.
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].CreatedAt.After(properties[j].CreatedAt)
	})

	return properties, nil
}

func (r *firestorePropertyRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	iter := r.client.Collection("properties").
		Where("ownerId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var properties []*entity.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, errors.Internal("Failed to parse property data", err)
		}
		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *firestorePropertyRepository) Mutate(ctx context.Context, id string, fn func(*entity.Property) error) (*entity.Property, error) {
	ref := r.client.Collection("properties").Doc(id)

	var updated *entity.Property
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Property", err)
			}
			return errors.Internal("Failed to get property", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return errors.Internal("Failed to parse property data", err)
		}

		if err := fn(&property); err != nil {
			return err
		}

		property.UpdatedAt = time.Now()
		updated = &property
		return tx.Set(ref, &property)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("properties").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete property", err)
	}
	return nil
}

func (r *firestorePropertyRepository) Dump(ctx context.Context) ([]map[string]interface{}, error) {
	docs, err := r.client.Collection("properties").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to dump properties", err)
	}

	raw := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		raw = append(raw, doc.Data())
	}
	return raw, nil
}
