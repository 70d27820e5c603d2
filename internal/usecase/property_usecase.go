package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/logger"
)

type PropertyUseCase struct {
	propertyRepo     repository.PropertyRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository

	// autoApprove controls the initial listing status: approved
	// immediately, or pending until an admin decides.
	autoApprove bool
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	autoApprove bool,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo:     propertyRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		autoApprove:      autoApprove,
	}
}

type CreatePropertyInput struct {
	Title       string
	Description string
	Location    string
	Price       float64
	Type        string
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Images      []string
	Duration    string
}

type UpdatePropertyInput struct {
	Title       *string
	Description *string
	Location    *string
	Price       *float64
	Type        *string
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Images      []string
}

// expiryFromDuration derives the listing expiry once at creation time;
// it is never recalculated or swept afterwards.
func expiryFromDuration(now time.Time, duration string) time.Time {
	switch duration {
	case "1day":
		return now.AddDate(0, 0, 1)
	case "1week":
		return now.AddDate(0, 0, 7)
	case "1month":
		return now.AddDate(0, 1, 0)
	case "2months":
		return now.AddDate(0, 2, 0)
	case "3months":
		return now.AddDate(0, 3, 0)
	default:
		return now.AddDate(0, 1, 0)
	}
}

func (uc *PropertyUseCase) CreateProperty(ctx context.Context, ownerID string, input CreatePropertyInput) (*entity.Property, error) {
	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, errors.Forbidden("Only property owners can create listings", err)
	}
	if owner.Role != entity.RoleOwner {
		return nil, errors.Forbidden("Only property owners can create listings", nil)
	}

	status := entity.PropertyStatusPending
	if uc.autoApprove {
		status = entity.PropertyStatusApproved
	}

	now := time.Now()
	property := &entity.Property{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Price:       input.Price,
		Type:        input.Type,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
		Images:      input.Images,
		Status:      status,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		OwnerEmail:  owner.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiryDate:  expiryFromDuration(now, input.Duration),
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	uc.notifyAdmins(ctx, property, owner)

	return property, nil
}

// notifyAdmins fans a property_listed notification out to every admin.
// Failures are logged, not returned: the listing is already persisted.
func (uc *PropertyUseCase) notifyAdmins(ctx context.Context, property *entity.Property, owner *entity.User) {
	admins, err := uc.userRepo.ListByRole(ctx, entity.RoleAdmin)
	if err != nil {
		logger.Error("Failed to list admins for listing notification: %v", err)
		return
	}

	for _, admin := range admins {
		notification := &entity.Notification{
			ID:            uuid.New().String(),
			RecipientID:   admin.ID,
			Type:          entity.NotificationPropertyListed,
			PropertyID:    property.ID,
			PropertyTitle: property.Title,
			OwnerName:     owner.Name,
			Message:       fmt.Sprintf("New property %q listed by %s", property.Title, owner.Name),
			CreatedAt:     time.Now(),
		}
		if err := uc.notificationRepo.Create(ctx, notification); err != nil {
			logger.Error("Failed to notify admin %s: %v", admin.ID, err)
		}
	}
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]*entity.Property, error) {
	return uc.propertyRepo.List(ctx, filter)
}

func (uc *PropertyUseCase) ListMyProperties(ctx context.Context, ownerID string) ([]*entity.Property, error) {
	return uc.propertyRepo.ListByOwnerID(ctx, ownerID)
}

func (uc *PropertyUseCase) GetPropertyByID(ctx context.Context, id string) (*entity.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

// UpdateProperty patches the listing. Allowed for the listing's owner
// or an admin.
func (uc *PropertyUseCase) UpdateProperty(ctx context.Context, id, callerID string, input UpdatePropertyInput) (*entity.Property, error) {
	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, errors.Forbidden("Not authorized to update this property", err)
	}

	return uc.propertyRepo.Mutate(ctx, id, func(property *entity.Property) error {
		if property.OwnerID != callerID && caller.Role != entity.RoleAdmin {
			return errors.Forbidden("Not authorized to update this property", nil)
		}

		if input.Title != nil {
			property.Title = *input.Title
		}
		if input.Description != nil {
			property.Description = *input.Description
		}
		if input.Location != nil {
			property.Location = *input.Location
		}
		if input.Price != nil {
			property.Price = *input.Price
		}
		if input.Type != nil {
			property.Type = *input.Type
		}
		if input.Bedrooms != nil {
			property.Bedrooms = *input.Bedrooms
		}
		if input.Bathrooms != nil {
			property.Bathrooms = *input.Bathrooms
		}
		if input.Area != nil {
			property.Area = *input.Area
		}
		if input.Images != nil {
			property.Images = input.Images
		}
		return nil
	})
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, id, callerID string) error {
	property, err := uc.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	caller, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return errors.Forbidden("Not authorized to delete this property", err)
	}

	if property.OwnerID != callerID && caller.Role != entity.RoleAdmin {
		return errors.Forbidden("Not authorized to delete this property", nil)
	}

	return uc.propertyRepo.Delete(ctx, id)
}

// ApproveProperty is admin-only and transitions pending → approved.
// Approving a property twice is a validation error, so the owner gets
// exactly one approval notification per decision.
func (uc *PropertyUseCase) ApproveProperty(ctx context.Context, id, adminID string) (*entity.Property, error) {
	property, err := uc.propertyRepo.Mutate(ctx, id, func(property *entity.Property) error {
		if property.Status != entity.PropertyStatusPending {
			return errors.BadRequest("Only pending properties can be approved", nil)
		}

		now := time.Now()
		property.Status = entity.PropertyStatusApproved
		property.ApprovedAt = &now
		property.ApprovedBy = adminID
		return nil
	})
	if err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		ID:            uuid.New().String(),
		RecipientID:   property.OwnerID,
		Type:          entity.NotificationPropertyApproved,
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		Message:       fmt.Sprintf("Your property %q has been approved and is now live!", property.Title),
		CreatedAt:     time.Now(),
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to notify owner %s of approval: %v", property.OwnerID, err)
	}

	return property, nil
}

// RejectProperty is admin-only and transitions pending → rejected. An
// empty reason falls back to a documented placeholder rather than
// storing an empty string.
func (uc *PropertyUseCase) RejectProperty(ctx context.Context, id, adminID, reason string) (*entity.Property, error) {
	if reason == "" {
		reason = "No reason provided"
	}

	property, err := uc.propertyRepo.Mutate(ctx, id, func(property *entity.Property) error {
		if property.Status != entity.PropertyStatusPending {
			return errors.BadRequest("Only pending properties can be rejected", nil)
		}

		now := time.Now()
		property.Status = entity.PropertyStatusRejected
		property.RejectedAt = &now
		property.RejectedBy = adminID
		property.RejectionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		ID:            uuid.New().String(),
		RecipientID:   property.OwnerID,
		Type:          entity.NotificationPropertyRejected,
		PropertyID:    property.ID,
		PropertyTitle: property.Title,
		Message:       fmt.Sprintf("Your property %q was not approved. Reason: %s", property.Title, reason),
		CreatedAt:     time.Now(),
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to notify owner %s of rejection: %v", property.OwnerID, err)
	}

	return property, nil
}

// MarkSold transitions approved → sold. Only the listing's owner may
// do this; sold is terminal.
func (uc *PropertyUseCase) MarkSold(ctx context.Context, id, callerID string) (*entity.Property, error) {
	return uc.propertyRepo.Mutate(ctx, id, func(property *entity.Property) error {
		if property.OwnerID != callerID {
			return errors.Forbidden("Only the property owner can mark it as sold", nil)
		}
		if property.Status != entity.PropertyStatusApproved {
			return errors.BadRequest("Only approved properties can be marked as sold", nil)
		}

		now := time.Now()
		property.Status = entity.PropertyStatusSold
		property.SoldAt = &now
		return nil
	})
}

// DumpProperties returns the raw store contents with per-record
// validity flags and status counts. Diagnostics only.
func (uc *PropertyUseCase) DumpProperties(ctx context.Context) (map[string]interface{}, error) {
	raw, err := uc.propertyRepo.Dump(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(raw))
	valid, pending, approved, rejected := 0, 0, 0, 0
	for i, record := range raw {
		id, _ := record["id"].(string)
		title, _ := record["title"].(string)
		status, _ := record["status"].(string)

		if id != "" && title != "" {
			valid++
		}
		switch status {
		case entity.PropertyStatusPending:
			pending++
		case entity.PropertyStatusApproved:
			approved++
		case entity.PropertyStatusRejected:
			rejected++
		}

		items = append(items, map[string]interface{}{
			"index":    i,
			"hasId":    id != "",
			"hasTitle": title != "",
			"status":   status,
		})
	}

	return map[string]interface{}{
		"totalItems":      len(raw),
		"validProperties": valid,
		"pendingCount":    pending,
		"approvedCount":   approved,
		"rejectedCount":   rejected,
		"items":           items,
	}, nil
}
