package repository

import (
	"context"

	"estateconnect/internal/domain/entity"
)

// PropertyFilter narrows the public listing query. Zero values mean
// "no constraint"; price bounds are inclusive.
type PropertyFilter struct {
	Location string
	Status   string
	Type     string
	MinPrice float64
	MaxPrice float64
}

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	GetByID(ctx context.Context, id string) (*entity.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]*entity.Property, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Property, error)

	// Mutate loads the property, applies fn and persists the result
	// inside a single store transaction, so concurrent lifecycle
	// transitions cannot lose each other's writes.
	Mutate(ctx context.Context, id string, fn func(*entity.Property) error) (*entity.Property, error)

	Delete(ctx context.Context, id string) error

	// Dump returns the raw stored documents, including records a
	// normal List would discard as corrupt. Diagnostics only.
	Dump(ctx context.Context) ([]map[string]interface{}, error)
}
